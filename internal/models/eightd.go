// eightd.go
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

// EightDStatus tracks which discipline an 8D report has reached
type EightDStatus string

const (
	EightDD1     EightDStatus = "d1"
	EightDD2     EightDStatus = "d2"
	EightDD3     EightDStatus = "d3"
	EightDD4     EightDStatus = "d4"
	EightDD5     EightDStatus = "d5"
	EightDD6     EightDStatus = "d6"
	EightDD7     EightDStatus = "d7"
	EightDD8     EightDStatus = "d8"
	EightDClosed EightDStatus = "closed"
)

// Valid reports whether s is a known 8D sub-status
func (s EightDStatus) Valid() bool {
	switch s {
	case EightDD1, EightDD2, EightDD3, EightDD4, EightDD5, EightDD6, EightDD7, EightDD8, EightDClosed:
		return true
	}
	return false
}

// EightDReport holds the eight disciplines of the problem-solving record for one complaint
type EightDReport struct {
	ID                      string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	ComplaintID             string       `gorm:"type:varchar(36);uniqueIndex;not null" json:"complaint_id"`
	D1TeamMembers           *string      `gorm:"column:d1_team_members;type:text" json:"d1_team_members"`
	D2ProblemDescription    *string      `gorm:"column:d2_problem_description;type:text" json:"d2_problem_description"`
	D3ContainmentActions    *string      `gorm:"column:d3_containment_actions;type:text" json:"d3_containment_actions"`
	D3ContainmentDate       *Date        `gorm:"column:d3_containment_date" json:"d3_containment_date"`
	D4RootCause             *string      `gorm:"column:d4_root_cause;type:text" json:"d4_root_cause"`
	D4IshikawaData          JSON         `gorm:"column:d4_ishikawa_data" json:"d4_ishikawa_data"`
	D5CorrectiveActions     *string      `gorm:"column:d5_corrective_actions;type:text" json:"d5_corrective_actions"`
	D6ImplementationDate    *Date        `gorm:"column:d6_implementation_date" json:"d6_implementation_date"`
	D6EffectivenessEvidence *string      `gorm:"column:d6_effectiveness_evidence;type:text" json:"d6_effectiveness_evidence"`
	D7PreventiveActions     *string      `gorm:"column:d7_preventive_actions;type:text" json:"d7_preventive_actions"`
	D7DocumentsUpdated      *string      `gorm:"column:d7_documents_updated;type:text" json:"d7_documents_updated"`
	D8TeamRecognition       *string      `gorm:"column:d8_team_recognition;type:text" json:"d8_team_recognition"`
	D8ClosureDate           *Date        `gorm:"column:d8_closure_date" json:"d8_closure_date"`
	Status                  EightDStatus `gorm:"size:30;not null;default:d1;check:chk_eight_d_status,status IN ('d1','d2','d3','d4','d5','d6','d7','d8','closed')" json:"status"`
	CreatedBy               *string      `gorm:"type:varchar(36)" json:"created_by"`
	UpdatedBy               *string      `gorm:"type:varchar(36)" json:"updated_by"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
}

// BeforeCreate generates a UUID primary key if not set.
func (r *EightDReport) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for EightDReport
func (EightDReport) TableName() string {
	return "eight_d_reports"
}

// IsEmpty reports whether no discipline field has been filled in
func (r *EightDReport) IsEmpty() bool {
	texts := []*string{
		r.D1TeamMembers, r.D2ProblemDescription, r.D3ContainmentActions, r.D4RootCause,
		r.D5CorrectiveActions, r.D6EffectivenessEvidence, r.D7PreventiveActions,
		r.D7DocumentsUpdated, r.D8TeamRecognition,
	}
	for _, t := range texts {
		if t != nil && *t != "" {
			return false
		}
	}
	return r.D3ContainmentDate == nil && r.D6ImplementationDate == nil &&
		r.D8ClosureDate == nil && r.D4IshikawaData.IsEmpty()
}
