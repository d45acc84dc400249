// action.go
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

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionType classifies a CAPA item
type ActionType string

const (
	ActionContainment ActionType = "containment"
	ActionCorrective  ActionType = "corrective"
	ActionPreventive  ActionType = "preventive"
)

// Valid reports whether t is a known action type
func (t ActionType) Valid() bool {
	switch t {
	case ActionContainment, ActionCorrective, ActionPreventive:
		return true
	}
	return false
}

// ActionStatus is the progress of a CAPA item
type ActionStatus string

const (
	ActionOpen       ActionStatus = "open"
	ActionInProgress ActionStatus = "in_progress"
	ActionCompleted  ActionStatus = "completed"
	ActionVerified   ActionStatus = "verified"
	ActionOverdue    ActionStatus = "overdue"
)

// Valid reports whether s is a known action status
func (s ActionStatus) Valid() bool {
	switch s {
	case ActionOpen, ActionInProgress, ActionCompleted, ActionVerified, ActionOverdue:
		return true
	}
	return false
}

// Done reports whether the action no longer counts toward due or overdue work
func (s ActionStatus) Done() bool {
	return s == ActionCompleted || s == ActionVerified
}

// CorrectiveAction is a containment, corrective or preventive action raised against a complaint
type CorrectiveAction struct {
	ID                  string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	ComplaintID         string       `gorm:"type:varchar(36);not null;index:idx_corrective_actions_complaint" json:"complaint_id"`
	EightDID            *string      `gorm:"column:eight_d_id;type:varchar(36)" json:"eight_d_id"`
	ActionType          *ActionType  `gorm:"size:30;check:chk_actions_type,action_type IN ('containment','corrective','preventive')" json:"action_type"`
	Description         string       `gorm:"type:text;not null" json:"description"`
	ResponsiblePerson   *string      `gorm:"type:varchar(36)" json:"responsible_person"`
	TargetDate          *Date        `json:"target_date"`
	CompletionDate      *Date        `json:"completion_date"`
	Status              ActionStatus `gorm:"size:20;not null;default:open;check:chk_actions_status,status IN ('open','in_progress','completed','verified','overdue')" json:"status"`
	EffectivenessRating *int         `gorm:"check:chk_actions_rating,effectiveness_rating BETWEEN 1 AND 5" json:"effectiveness_rating"`
	VerificationNotes   *string      `gorm:"type:text" json:"verification_notes"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`

	EightD      *EightDReport `gorm:"foreignKey:EightDID" json:"-"`
	Responsible *User         `gorm:"foreignKey:ResponsiblePerson" json:"-"`
}

// BeforeCreate generates a UUID primary key if not set.
func (a *CorrectiveAction) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for CorrectiveAction
func (CorrectiveAction) TableName() string {
	return "corrective_actions"
}

// CorrectiveActionView is an action joined with its responsible person's name
type CorrectiveActionView struct {
	CorrectiveAction
	ResponsibleName *string `json:"responsible_name"`
}

// DueActionView is an open action joined with its complaint for the due list
type DueActionView struct {
	CorrectiveAction
	ComplaintNumber string  `json:"complaint_number"`
	Title           string  `json:"title"`
	ResponsibleName *string `json:"responsible_name"`
}
