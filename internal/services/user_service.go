// user_service.go
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
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserService manages the local user directory mirrored from the identity provider
type UserService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserService creates a UserService
func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{db: db, log: log}
}

// UserSummary is the directory listing shape
type UserSummary struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	DisplayName string      `json:"display_name"`
	Role        models.Role `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Upsert inserts the user on first sight or refreshes email and display name.
// Role is never touched here.
func (s *UserService) Upsert(ctx context.Context, identity *Identity) (*models.User, error) {
	if identity == nil || identity.Subject == "" {
		return nil, validationError("identity has no subject")
	}
	if identity.Email == "" {
		return nil, validationError("identity has no email")
	}

	now := time.Now().UTC()
	user := models.User{
		Email:       identity.Email,
		DisplayName: identity.DisplayName(),
		Role:        models.DefaultRole,
		ExternalUID: identity.Subject,
	}

	db := s.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_uid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"email":        user.Email,
			"display_name": user.DisplayName,
			"updated_at":   now,
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	var stored models.User
	if err := db.Where("external_uid = ?", identity.Subject).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load user after upsert: %w", err)
	}
	return &stored, nil
}

// List returns every user ordered by display name
func (s *UserService) List(ctx context.Context) ([]UserSummary, error) {
	users := []UserSummary{}
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id, email, display_name, role, created_at").
		Order("display_name ASC").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns one user
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("user")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// UpdateDisplayName changes the caller's own display name
func (s *UserService) UpdateDisplayName(ctx context.Context, id, displayName string) (*models.User, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, validationError("display_name is required")
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"display_name": displayName,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update display name: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound("user")
	}
	return s.Get(ctx, id)
}

// UpdateRole assigns a role from the closed enumeration and audits the change
func (s *UserService) UpdateRole(ctx context.Context, actorID, id, role string) (*models.User, error) {
	newRole, err := models.ParseRole(role)
	if err != nil {
		return nil, validationError("%v", err)
	}

	var updated models.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.User
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user")
			}
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"role":       newRole,
			"updated_at": time.Now().UTC(),
		}).Error; err != nil {
			return err
		}

		if err := recordAudit(tx, current.TableName(), id, models.AuditUpdate, strPtr(actorID),
			map[string]any{"role": current.Role},
			map[string]any{"role": newRole},
		); err != nil {
			return err
		}

		return tx.Where("id = ?", id).First(&updated).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.log.Info("user role changed",
		zap.String("user_id", id),
		zap.String("role", string(newRole)),
		zap.String("changed_by", actorID),
	)
	return &updated, nil
}
