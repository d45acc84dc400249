// audit.go
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

// AuditAction is the kind of change recorded in the audit log
type AuditAction string

const (
	AuditInsert AuditAction = "INSERT"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditLogEntry records one change to a tracked table
type AuditLogEntry struct {
	ID        string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Table     string      `gorm:"column:table_name;size:100" json:"table_name"`
	RecordID  string      `gorm:"type:varchar(36);index" json:"record_id"`
	Action    AuditAction `gorm:"size:20;check:chk_audit_action,action IN ('INSERT','UPDATE','DELETE')" json:"action"`
	ChangedBy *string     `gorm:"type:varchar(36)" json:"changed_by"`
	OldValues JSON        `json:"old_values"`
	NewValues JSON        `json:"new_values"`
	CreatedAt time.Time   `json:"created_at"`
}

// BeforeCreate generates a UUID primary key if not set.
func (e *AuditLogEntry) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for AuditLogEntry
func (AuditLogEntry) TableName() string {
	return "audit_log"
}
