// action_service.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActionService manages corrective and preventive actions
type ActionService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewActionService creates an ActionService
func NewActionService(db *gorm.DB, log *zap.Logger) *ActionService {
	return &ActionService{db: db, log: log}
}

// ActionInput is the body accepted when raising an action
type ActionInput struct {
	ActionType        *models.ActionType `json:"action_type"`
	Description       string             `json:"description"`
	ResponsiblePerson *string            `json:"responsible_person"`
	TargetDate        *models.Date       `json:"target_date" swaggertype:"string"`
	EightDID          *string            `json:"eight_d_id"`
}

// ActionUpdate is the body accepted when progressing an action
type ActionUpdate struct {
	Status              models.ActionStatus `json:"status"`
	CompletionDate      *models.Date        `json:"completion_date" swaggertype:"string"`
	EffectivenessRating types.FlexInt       `json:"effectiveness_rating" swaggertype:"integer"`
	VerificationNotes   *string             `json:"verification_notes"`
}

// List returns the actions of a complaint oldest first
func (s *ActionService) List(ctx context.Context, complaintID string) ([]models.CorrectiveActionView, error) {
	db := s.db.WithContext(ctx)
	ok, err := complaintExists(db, complaintID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("complaint")
	}
	return listActionViews(db, complaintID)
}

func listActionViews(db *gorm.DB, complaintID string) ([]models.CorrectiveActionView, error) {
	actions := []models.CorrectiveActionView{}
	err := db.Table("corrective_actions AS ca").
		Select("ca.*, u.display_name AS responsible_name").
		Joins("LEFT JOIN users u ON ca.responsible_person = u.id").
		Where("ca.complaint_id = ?", complaintID).
		Order("ca.created_at ASC").
		Scan(&actions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load corrective actions: %w", err)
	}
	return actions, nil
}

// Add raises a new action against a complaint. Without an explicit 8D link the
// action is attached to the complaint's report.
func (s *ActionService) Add(ctx context.Context, complaintID string, input ActionInput, actorID string) (*models.CorrectiveAction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, validationError("description is required")
	}
	actionType := input.ActionType
	if actionType != nil && *actionType == "" {
		actionType = nil
	}
	if actionType != nil && !actionType.Valid() {
		return nil, validationError("unknown action type %q", *actionType)
	}

	action := models.CorrectiveAction{
		ComplaintID:       complaintID,
		ActionType:        actionType,
		Description:       description,
		ResponsiblePerson: emptyToNil(input.ResponsiblePerson),
		TargetDate:        input.TargetDate,
		Status:            models.ActionOpen,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := complaintExists(tx, complaintID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("complaint")
		}

		eightDID, err := resolveEightD(tx, complaintID, emptyToNil(input.EightDID))
		if err != nil {
			return err
		}
		action.EightDID = eightDID

		if action.ResponsiblePerson != nil {
			var count int64
			if err := tx.Model(&models.User{}).Where("id = ?", *action.ResponsiblePerson).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return validationError("responsible_person %q is not a known user", *action.ResponsiblePerson)
			}
		}

		if err := tx.Create(&action).Error; err != nil {
			return err
		}
		return recordAudit(tx, action.TableName(), action.ID, models.AuditInsert, emptyToNil(&actorID), nil, action)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add corrective action: %w", err)
	}
	return &action, nil
}

func resolveEightD(tx *gorm.DB, complaintID string, eightDID *string) (*string, error) {
	var report models.EightDReport
	q := tx.Select("id").Where("complaint_id = ?", complaintID)
	if eightDID != nil {
		q = q.Where("id = ?", *eightDID)
	}
	err := q.First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if eightDID != nil {
			return nil, validationError("eight_d_id %q does not belong to complaint", *eightDID)
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report.ID, nil
}

// Update progresses an action. The action must belong to complaintID; an
// action of another complaint is reported as not found and left untouched.
func (s *ActionService) Update(ctx context.Context, complaintID, actionID string, input ActionUpdate, actorID string) (*models.CorrectiveAction, error) {
	if !input.Status.Valid() {
		return nil, validationError("unknown action status %q", input.Status)
	}
	if input.EffectivenessRating.Set && (input.EffectivenessRating.Int < 1 || input.EffectivenessRating.Int > 5) {
		return nil, validationError("effectiveness_rating must be between 1 and 5")
	}

	var updated models.CorrectiveAction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.CorrectiveAction
		err := tx.Where("id = ? AND complaint_id = ?", actionID, complaintID).First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("corrective action")
		}
		if err != nil {
			return err
		}

		changes := map[string]interface{}{
			"status":               input.Status,
			"completion_date":      input.CompletionDate,
			"effectiveness_rating": input.EffectivenessRating.Ptr(),
			"verification_notes":   input.VerificationNotes,
			"updated_at":           time.Now().UTC(),
		}
		res := tx.Model(&models.CorrectiveAction{}).
			Where("id = ? AND complaint_id = ?", actionID, complaintID).
			Updates(changes)
		if res.Error != nil {
			return res.Error
		}

		if err := tx.Where("id = ?", actionID).First(&updated).Error; err != nil {
			return err
		}
		return recordAudit(tx, current.TableName(), actionID, models.AuditUpdate, emptyToNil(&actorID), current, updated)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update corrective action: %w", err)
	}
	return &updated, nil
}
