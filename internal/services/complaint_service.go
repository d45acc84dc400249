// complaint_service.go
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
	"math"
	"strings"
	"time"

	"github.com/localnerve/qms/internal/database"
	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// DefaultPageSize is used when the caller gives no limit
	DefaultPageSize = 20
	// MaxPageSize caps the list window
	MaxPageSize = 100
	// MaxListOffset bounds (page-1)*limit so the offset fits every dialect's OFFSET
	MaxListOffset = math.MaxInt32
)

// ComplaintService owns complaint numbering, creation and updates
type ComplaintService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewComplaintService creates a ComplaintService
func NewComplaintService(db *gorm.DB, log *zap.Logger) *ComplaintService {
	return &ComplaintService{db: db, log: log}
}

// ComplaintFilter narrows and pages the complaint list
type ComplaintFilter struct {
	Status     string
	Severity   string
	Type       string
	AssignedTo string
	Page       int
	Limit      int
}

// ComplaintPage is one window of the complaint list.
// Total counts every row matching the filter, not just this page.
type ComplaintPage struct {
	Data  []models.ComplaintView `json:"data"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// ComplaintDetail is a complaint with its 8D report, actions and attachments
type ComplaintDetail struct {
	models.ComplaintView
	EightD            *models.EightDReport          `json:"eight_d"`
	CorrectiveActions []models.CorrectiveActionView `json:"corrective_actions"`
	Attachments       []models.Attachment           `json:"attachments"`
}

// ComplaintInput is the body accepted when filing a complaint
type ComplaintInput struct {
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	CustomerName       *string               `json:"customer_name"`
	CustomerPartNumber *string               `json:"customer_part_number"`
	InternalPartNumber *string               `json:"internal_part_number"`
	ComplaintDate      *models.Date          `json:"complaint_date"`
	ReceivedDate       *models.Date          `json:"received_date"`
	ProductionDate     *models.Date          `json:"production_date"`
	LotNumber          *string               `json:"lot_number"`
	Severity           models.Severity       `json:"severity"`
	ComplaintType      *models.ComplaintType `json:"complaint_type"`
	DefectCategory     *string               `json:"defect_category"`
	DefectQuantity     types.FlexInt         `json:"defect_quantity" swaggertype:"integer"`
	TotalQuantity      types.FlexInt         `json:"total_quantity" swaggertype:"integer"`
	AssignedTo         *string               `json:"assigned_to"`
}

// ComplaintUpdate is the body accepted when editing a complaint. Every field is overwritten.
type ComplaintUpdate struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Status         models.ComplaintStatus `json:"status"`
	Severity       models.Severity        `json:"severity"`
	AssignedTo     *string                `json:"assigned_to"`
	DefectCategory *string                `json:"defect_category"`
	DefectQuantity types.FlexInt          `json:"defect_quantity" swaggertype:"integer"`
	TotalQuantity  types.FlexInt          `json:"total_quantity" swaggertype:"integer"`
	CustomerName   *string                `json:"customer_name"`
}

// FormatComplaintNumber renders a counter value as COMP-NNNNNN
func FormatComplaintNumber(n int64) string {
	return fmt.Sprintf("COMP-%06d", n)
}

func (f *ComplaintFilter) normalize() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Page-1 > MaxListOffset/f.Limit {
		return validationError("page %d is out of range", f.Page)
	}
	if f.Status != "" && !models.ComplaintStatus(f.Status).Valid() {
		return validationError("unknown status %q", f.Status)
	}
	if f.Severity != "" && !models.Severity(f.Severity).Valid() {
		return validationError("unknown severity %q", f.Severity)
	}
	if f.Type != "" && !models.ComplaintType(f.Type).Valid() {
		return validationError("unknown complaint type %q", f.Type)
	}
	return nil
}

func (f *ComplaintFilter) apply(q *gorm.DB, prefix string) *gorm.DB {
	if f.Status != "" {
		q = q.Where(prefix+"status = ?", f.Status)
	}
	if f.Severity != "" {
		q = q.Where(prefix+"severity = ?", f.Severity)
	}
	if f.Type != "" {
		q = q.Where(prefix+"complaint_type = ?", f.Type)
	}
	if f.AssignedTo != "" {
		q = q.Where(prefix+"assigned_to = ?", f.AssignedTo)
	}
	return q
}

func (s *ComplaintService) views(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("complaints AS c").
		Select("c.*, u1.display_name AS created_by_name, u2.display_name AS assigned_to_name").
		Joins("LEFT JOIN users u1 ON c.created_by = u1.id").
		Joins("LEFT JOIN users u2 ON c.assigned_to = u2.id")
}

// List returns a newest-first page of complaints matching filter
func (s *ComplaintService) List(ctx context.Context, filter ComplaintFilter) (*ComplaintPage, error) {
	if err := filter.normalize(); err != nil {
		return nil, err
	}

	var total int64
	if err := filter.apply(s.db.WithContext(ctx).Model(&models.Complaint{}), "").Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count complaints: %w", err)
	}

	rows := []models.ComplaintView{}
	err := filter.apply(s.views(ctx), "c.").
		Order("c.created_at DESC").
		Order("c.complaint_number DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	return &ComplaintPage{
		Data:  rows,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Get returns one complaint with everything attached to it
func (s *ComplaintService) Get(ctx context.Context, id string) (*ComplaintDetail, error) {
	var views []models.ComplaintView
	if err := s.views(ctx).Where("c.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to load complaint: %w", err)
	}
	if len(views) == 0 {
		return nil, notFound("complaint")
	}

	detail := &ComplaintDetail{
		ComplaintView:     views[0],
		CorrectiveActions: []models.CorrectiveActionView{},
		Attachments:       []models.Attachment{},
	}

	db := s.db.WithContext(ctx)

	var report models.EightDReport
	err := db.Where("complaint_id = ?", id).First(&report).Error
	switch {
	case err == nil:
		detail.EightD = &report
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load 8D report: %w", err)
	}

	actions, err := listActionViews(db, id)
	if err != nil {
		return nil, err
	}
	detail.CorrectiveActions = actions

	if err := db.Where("complaint_id = ?", id).Order("created_at ASC").Find(&detail.Attachments).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	return detail, nil
}

// Create files a complaint and its empty 8D report in one transaction.
// The number is reserved first and stays consumed if the transaction fails.
func (s *ComplaintService) Create(ctx context.Context, input ComplaintInput, actorID string) (*models.Complaint, error) {
	complaint, err := s.newComplaint(ctx, input, actorID)
	if err != nil {
		return nil, err
	}

	n, err := database.NextValue(ctx, s.db, database.ComplaintNumberSequence)
	if err != nil {
		return nil, err
	}
	complaint.ComplaintNumber = FormatComplaintNumber(n)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(complaint).Error; err != nil {
			return fmt.Errorf("failed to insert complaint: %w", err)
		}

		shell := models.EightDReport{
			ComplaintID: complaint.ID,
			Status:      models.EightDD1,
			CreatedBy:   complaint.CreatedBy,
		}
		if err := tx.Create(&shell).Error; err != nil {
			return fmt.Errorf("failed to insert 8D report: %w", err)
		}

		return recordAudit(tx, complaint.TableName(), complaint.ID, models.AuditInsert, complaint.CreatedBy, nil, complaint)
	})
	if err != nil {
		s.log.Error("complaint creation rolled back",
			zap.String("complaint_number", complaint.ComplaintNumber),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("complaint created",
		zap.String("id", complaint.ID),
		zap.String("complaint_number", complaint.ComplaintNumber),
	)
	return complaint, nil
}

func (s *ComplaintService) newComplaint(ctx context.Context, input ComplaintInput, actorID string) (*models.Complaint, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("title is required")
	}

	severity := input.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}
	if !severity.Valid() {
		return nil, validationError("unknown severity %q", severity)
	}

	complaintType := input.ComplaintType
	if complaintType != nil && *complaintType == "" {
		complaintType = nil
	}
	if complaintType != nil && !complaintType.Valid() {
		return nil, validationError("unknown complaint type %q", *complaintType)
	}

	if err := validateQuantities(input.DefectQuantity, input.TotalQuantity); err != nil {
		return nil, err
	}

	assignedTo, err := s.resolveAssignee(ctx, input.AssignedTo)
	if err != nil {
		return nil, err
	}

	today := models.Today()
	complaintDate := today
	if input.ComplaintDate != nil {
		complaintDate = *input.ComplaintDate
	}
	receivedDate := today
	if input.ReceivedDate != nil {
		receivedDate = *input.ReceivedDate
	}

	return &models.Complaint{
		Title:              title,
		Description:        input.Description,
		CustomerName:       emptyToNil(input.CustomerName),
		CustomerPartNumber: emptyToNil(input.CustomerPartNumber),
		InternalPartNumber: emptyToNil(input.InternalPartNumber),
		ComplaintDate:      complaintDate,
		ReceivedDate:       receivedDate,
		ProductionDate:     input.ProductionDate,
		LotNumber:          emptyToNil(input.LotNumber),
		Status:             models.StatusOpen,
		Severity:           severity,
		ComplaintType:      complaintType,
		DefectCategory:     emptyToNil(input.DefectCategory),
		DefectQuantity:     input.DefectQuantity.Ptr(),
		TotalQuantity:      input.TotalQuantity.Ptr(),
		CreatedBy:          emptyToNil(&actorID),
		AssignedTo:         assignedTo,
	}, nil
}

// Update overwrites the editable fields of a complaint. A missing complaint
// is reported before anything is written.
func (s *ComplaintService) Update(ctx context.Context, id string, input ComplaintUpdate, actorID string) (*models.Complaint, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("title is required")
	}
	if !input.Status.Valid() {
		return nil, validationError("unknown status %q", input.Status)
	}
	if !input.Severity.Valid() {
		return nil, validationError("unknown severity %q", input.Severity)
	}
	if err := validateQuantities(input.DefectQuantity, input.TotalQuantity); err != nil {
		return nil, err
	}
	assignedTo, err := s.resolveAssignee(ctx, input.AssignedTo)
	if err != nil {
		return nil, err
	}

	var updated models.Complaint
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Complaint
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("complaint")
			}
			return err
		}

		changes := map[string]interface{}{
			"title":           title,
			"description":     input.Description,
			"status":          input.Status,
			"severity":        input.Severity,
			"assigned_to":     assignedTo,
			"defect_category": emptyToNil(input.DefectCategory),
			"defect_quantity": input.DefectQuantity.Ptr(),
			"total_quantity":  input.TotalQuantity.Ptr(),
			"customer_name":   emptyToNil(input.CustomerName),
			"updated_at":      time.Now().UTC(),
		}
		if err := tx.Model(&models.Complaint{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", id).First(&updated).Error; err != nil {
			return err
		}
		return recordAudit(tx, current.TableName(), id, models.AuditUpdate, emptyToNil(&actorID), current, updated)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}
	return &updated, nil
}

func complaintExists(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Model(&models.Complaint{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up complaint: %w", err)
	}
	return count > 0, nil
}

func (s *ComplaintService) resolveAssignee(ctx context.Context, assignedTo *string) (*string, error) {
	assignedTo = emptyToNil(assignedTo)
	if assignedTo == nil {
		return nil, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", *assignedTo).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to look up assignee: %w", err)
	}
	if count == 0 {
		return nil, validationError("assigned_to %q is not a known user", *assignedTo)
	}
	return assignedTo, nil
}

func validateQuantities(defect, total types.FlexInt) error {
	if defect.Set && defect.Int < 0 {
		return validationError("defect_quantity must not be negative")
	}
	if total.Set && total.Int < 0 {
		return validationError("total_quantity must not be negative")
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
