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

package services

import (
	"fmt"

	"github.com/localnerve/qms/internal/models"
	"gorm.io/gorm"
)

// recordAudit appends an audit_log row on the given handle. Callers pass their
// transaction so the entry commits or rolls back with the change it describes.
func recordAudit(tx *gorm.DB, table, recordID string, action models.AuditAction, actor *string, before, after any) error {
	oldValues, err := models.NewJSON(before)
	if err != nil {
		return fmt.Errorf("failed to encode audit old values: %w", err)
	}
	newValues, err := models.NewJSON(after)
	if err != nil {
		return fmt.Errorf("failed to encode audit new values: %w", err)
	}

	entry := models.AuditLogEntry{
		Table:     table,
		RecordID:  recordID,
		Action:    action,
		ChangedBy: actor,
		OldValues: oldValues,
		NewValues: newValues,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// AuditTrail returns the audit entries for one record, oldest first.
func AuditTrail(db *gorm.DB, table, recordID string) ([]models.AuditLogEntry, error) {
	var entries []models.AuditLogEntry
	err := db.Where("table_name = ? AND record_id = ?", table, recordID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func strPtr(s string) *string {
	return &s
}
