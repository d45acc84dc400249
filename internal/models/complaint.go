// complaint.go
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

// ComplaintStatus is the lifecycle state of a complaint
type ComplaintStatus string

const (
	StatusOpen            ComplaintStatus = "open"
	StatusInProgress      ComplaintStatus = "in_progress"
	StatusPendingApproval ComplaintStatus = "pending_approval"
	StatusClosed          ComplaintStatus = "closed"
	StatusRejected        ComplaintStatus = "rejected"
)

// Valid reports whether s is a known complaint status
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusPendingApproval, StatusClosed, StatusRejected:
		return true
	}
	return false
}

// Severity ranks the impact of a complaint
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Valid reports whether s is a known severity
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// ComplaintType is the origin of a complaint
type ComplaintType string

const (
	TypeCustomer ComplaintType = "customer"
	TypeInternal ComplaintType = "internal"
	TypeSupplier ComplaintType = "supplier"
	TypeAudit    ComplaintType = "audit"
)

// Valid reports whether t is a known complaint type
func (t ComplaintType) Valid() bool {
	switch t {
	case TypeCustomer, TypeInternal, TypeSupplier, TypeAudit:
		return true
	}
	return false
}

// Complaint is a product or process quality complaint
type Complaint struct {
	ID                 string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	ComplaintNumber    string          `gorm:"size:50;uniqueIndex;not null" json:"complaint_number"`
	Title              string          `gorm:"size:500;not null" json:"title"`
	Description        string          `gorm:"type:text;not null" json:"description"`
	CustomerName       *string         `gorm:"size:255" json:"customer_name"`
	CustomerPartNumber *string         `gorm:"size:100" json:"customer_part_number"`
	InternalPartNumber *string         `gorm:"size:100" json:"internal_part_number"`
	ComplaintDate      Date            `gorm:"not null" json:"complaint_date"`
	ReceivedDate       Date            `gorm:"not null" json:"received_date"`
	Status             ComplaintStatus `gorm:"size:50;not null;default:open;index:idx_complaints_status;check:chk_complaints_status,status IN ('open','in_progress','pending_approval','closed','rejected')" json:"status"`
	Severity           Severity        `gorm:"size:20;not null;default:medium;check:chk_complaints_severity,severity IN ('critical','high','medium','low')" json:"severity"`
	ComplaintType      *ComplaintType  `gorm:"size:50;check:chk_complaints_type,complaint_type IN ('customer','internal','supplier','audit')" json:"complaint_type"`
	DefectCategory     *string         `gorm:"size:100" json:"defect_category"`
	DefectQuantity     *int            `json:"defect_quantity"`
	TotalQuantity      *int            `json:"total_quantity"`
	ProductionDate     *Date           `json:"production_date"`
	LotNumber          *string         `gorm:"size:100" json:"lot_number"`
	CreatedBy          *string         `gorm:"type:varchar(36)" json:"created_by"`
	AssignedTo         *string         `gorm:"type:varchar(36);index:idx_complaints_assigned_to" json:"assigned_to"`
	CreatedAt          time.Time       `gorm:"index:idx_complaints_created_at" json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`

	Creator           *User              `gorm:"foreignKey:CreatedBy" json:"-"`
	Assignee          *User              `gorm:"foreignKey:AssignedTo" json:"-"`
	EightD            *EightDReport      `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE" json:"-"`
	CorrectiveActions []CorrectiveAction `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE" json:"-"`
	Attachments       []Attachment       `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate generates a UUID primary key if not set.
func (c *Complaint) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Complaint
func (Complaint) TableName() string {
	return "complaints"
}

// ComplaintView is a complaint joined with the display names of its creator and assignee
type ComplaintView struct {
	Complaint
	CreatedByName  *string `json:"created_by_name"`
	AssignedToName *string `json:"assigned_to_name"`
}
