// eightd_service.go
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
	"time"

	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EightDService reads and replaces 8D reports
type EightDService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewEightDService creates an EightDService
func NewEightDService(db *gorm.DB, log *zap.Logger) *EightDService {
	return &EightDService{db: db, log: log}
}

// EightDInput replaces every discipline field of a report
type EightDInput struct {
	D1TeamMembers           types.FlexList[string] `json:"d1_team_members" swaggertype:"array,string"`
	D2ProblemDescription    *string                `json:"d2_problem_description"`
	D3ContainmentActions    *string                `json:"d3_containment_actions"`
	D3ContainmentDate       *models.Date           `json:"d3_containment_date" swaggertype:"string"`
	D4RootCause             *string                `json:"d4_root_cause"`
	D4IshikawaData          models.JSON            `json:"d4_ishikawa_data" swaggertype:"object"`
	D5CorrectiveActions     *string                `json:"d5_corrective_actions"`
	D6ImplementationDate    *models.Date           `json:"d6_implementation_date" swaggertype:"string"`
	D6EffectivenessEvidence *string                `json:"d6_effectiveness_evidence"`
	D7PreventiveActions     *string                `json:"d7_preventive_actions"`
	D7DocumentsUpdated      *string                `json:"d7_documents_updated"`
	D8TeamRecognition       *string                `json:"d8_team_recognition"`
	D8ClosureDate           *models.Date           `json:"d8_closure_date" swaggertype:"string"`
	Status                  models.EightDStatus    `json:"status"`
}

// TeamMembersSeparator joins D1 team members into the stored column
const TeamMembersSeparator = ", "

// Get returns the 8D report of a complaint
func (s *EightDService) Get(ctx context.Context, complaintID string) (*models.EightDReport, error) {
	var report models.EightDReport
	err := s.db.WithContext(ctx).Where("complaint_id = ?", complaintID).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("8D report")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load 8D report: %w", err)
	}
	return &report, nil
}

// Update replaces all discipline fields and the sub-status, recording the editor
func (s *EightDService) Update(ctx context.Context, complaintID string, input EightDInput, actorID string) (*models.EightDReport, error) {
	if !input.Status.Valid() {
		return nil, validationError("unknown 8D status %q", input.Status)
	}

	var updated models.EightDReport
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.EightDReport
		if err := tx.Where("complaint_id = ?", complaintID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("8D report")
			}
			return err
		}

		changes := map[string]interface{}{
			"d1_team_members":           types.JoinList(input.D1TeamMembers, TeamMembersSeparator),
			"d2_problem_description":    input.D2ProblemDescription,
			"d3_containment_actions":    input.D3ContainmentActions,
			"d3_containment_date":       input.D3ContainmentDate,
			"d4_root_cause":             input.D4RootCause,
			"d4_ishikawa_data":          input.D4IshikawaData,
			"d5_corrective_actions":     input.D5CorrectiveActions,
			"d6_implementation_date":    input.D6ImplementationDate,
			"d6_effectiveness_evidence": input.D6EffectivenessEvidence,
			"d7_preventive_actions":     input.D7PreventiveActions,
			"d7_documents_updated":      input.D7DocumentsUpdated,
			"d8_team_recognition":       input.D8TeamRecognition,
			"d8_closure_date":           input.D8ClosureDate,
			"status":                    input.Status,
			"updated_by":                emptyToNil(&actorID),
			"updated_at":                time.Now().UTC(),
		}
		if err := tx.Model(&models.EightDReport{}).Where("id = ?", current.ID).Updates(changes).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", current.ID).First(&updated).Error; err != nil {
			return err
		}
		return recordAudit(tx, current.TableName(), current.ID, models.AuditUpdate, emptyToNil(&actorID), current, updated)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update 8D report: %w", err)
	}
	return &updated, nil
}
