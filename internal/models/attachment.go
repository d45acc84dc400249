// attachment.go
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

// Attachment is the metadata of a file held in the object store
type Attachment struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ComplaintID  string    `gorm:"type:varchar(36);not null;index" json:"complaint_id"`
	Filename     string    `gorm:"size:500;not null" json:"filename"`
	OriginalName string    `gorm:"size:500" json:"original_name"`
	StoragePath  string    `gorm:"size:1000" json:"storage_path"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `gorm:"size:100" json:"mime_type"`
	UploadedBy   *string   `gorm:"type:varchar(36)" json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID primary key if not set.
func (a *Attachment) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
