// sequence.go
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

package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ComplaintNumberSequence names the counter complaint numbers are drawn from
const ComplaintNumberSequence = "complaint_number"

// NextValue atomically reserves the next value of the named counter.
// It must run outside the caller's transaction: a reserved value stays
// consumed even when the insert that uses it rolls back.
func NextValue(ctx context.Context, db *gorm.DB, name string) (int64, error) {
	var (
		value int64
		res   *gorm.DB
	)
	db = db.WithContext(ctx)

	switch db.Dialector.Name() {
	case "postgres":
		res = db.Raw(fmt.Sprintf("SELECT nextval('%s_seq')", name)).Scan(&value)

	case "sqlite":
		res = db.Raw("UPDATE sequences SET value = value + 1 WHERE name = ? RETURNING value", name).Scan(&value)

	case "mysql":
		// LAST_INSERT_ID is connection scoped, so both statements share one connection
		err := db.Connection(func(conn *gorm.DB) error {
			upd := conn.Exec("UPDATE sequences SET value = LAST_INSERT_ID(value + 1) WHERE name = ?", name)
			if upd.Error != nil {
				return upd.Error
			}
			if upd.RowsAffected == 0 {
				return fmt.Errorf("sequence %s is not initialized", name)
			}
			return conn.Raw("SELECT LAST_INSERT_ID()").Scan(&value).Error
		})
		if err != nil {
			return 0, fmt.Errorf("failed to reserve %s: %w", name, err)
		}
		return value, nil

	case "sqlserver":
		res = db.Raw("UPDATE sequences SET value = value + 1 OUTPUT INSERTED.value WHERE name = ?", name).Scan(&value)

	default:
		return 0, fmt.Errorf("unsupported database type: %s", db.Dialector.Name())
	}

	if res.Error != nil {
		return 0, fmt.Errorf("failed to reserve %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("sequence %s is not initialized", name)
	}
	return value, nil
}
