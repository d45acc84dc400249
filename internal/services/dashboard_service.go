// dashboard_service.go
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
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/localnerve/qms/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// DefaultTrendMonths is the trailing window used when none is given
	DefaultTrendMonths = 12
	// MaxTrendMonths bounds the trailing window
	MaxTrendMonths = 60
	// DueSoonWindow is how far ahead the due list looks
	DueSoonWindow = 7 * 24 * time.Hour
	// DueListLimit caps the due list
	DueListLimit = 20
	// TopIssuesLimit caps the defect category ranking
	TopIssuesLimit = 10
)

var doneActionStatuses = []models.ActionStatus{models.ActionCompleted, models.ActionVerified}

// DashboardService computes KPI aggregates directly from current table state
type DashboardService struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

// NewDashboardService creates a DashboardService
func NewDashboardService(db *gorm.DB, log *zap.Logger) *DashboardService {
	return &DashboardService{
		db:  db,
		log: log,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// StatusCount is a complaint count for one status
type StatusCount struct {
	Status models.ComplaintStatus `json:"status"`
	Count  int64                  `json:"count"`
}

// SeverityCount is a complaint count for one severity
type SeverityCount struct {
	Severity models.Severity `json:"severity"`
	Count    int64           `json:"count"`
}

// TypeCount is a complaint count for one complaint type
type TypeCount struct {
	ComplaintType models.ComplaintType `json:"complaint_type"`
	Count         int64                `json:"count"`
}

// Summary is the KPI overview
type Summary struct {
	Total             int64           `json:"total"`
	ByStatus          []StatusCount   `json:"by_status"`
	BySeverity        []SeverityCount `json:"by_severity"`
	ByType            []TypeCount     `json:"by_type"`
	OverdueActions    int64           `json:"overdue_actions"`
	AvgResolutionDays float64         `json:"avg_resolution_days"`
}

// TrendBucket holds the counts for one calendar month
type TrendBucket struct {
	Month    string `json:"month"`
	Total    int64  `json:"total"`
	Closed   int64  `json:"closed"`
	Critical int64  `json:"critical"`
	High     int64  `json:"high"`
}

// TopIssue is one defect category with its share of categorized complaints
type TopIssue struct {
	DefectCategory string  `json:"defect_category"`
	Count          int64   `json:"count"`
	Percentage     float64 `json:"percentage"`
}

// Summary runs the overview aggregates concurrently
func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	sum := &Summary{
		ByStatus:   []StatusCount{},
		BySeverity: []SeverityCount{},
		ByType:     []TypeCount{},
	}
	now := s.now()

	g, gctx := errgroup.WithContext(ctx)
	complaints := func() *gorm.DB {
		return s.db.WithContext(gctx).Model(&models.Complaint{})
	}

	g.Go(func() error {
		return complaints().Count(&sum.Total).Error
	})
	g.Go(func() error {
		return complaints().
			Select("status, COUNT(*) AS count").
			Group("status").
			Order("count DESC").
			Scan(&sum.ByStatus).Error
	})
	g.Go(func() error {
		return complaints().
			Select("severity, COUNT(*) AS count").
			Group("severity").
			Order("count DESC").
			Scan(&sum.BySeverity).Error
	})
	g.Go(func() error {
		return complaints().
			Select("complaint_type, COUNT(*) AS count").
			Where("complaint_type IS NOT NULL").
			Group("complaint_type").
			Order("count DESC").
			Scan(&sum.ByType).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.CorrectiveAction{}).
			Where("status NOT IN ?", doneActionStatuses).
			Where("target_date < ?", now).
			Count(&sum.OverdueActions).Error
	})
	g.Go(func() error {
		var avg sql.NullFloat64
		err := complaints().
			Select(fmt.Sprintf("AVG(%s)", daysBetween(s.db, "created_at", "updated_at"))).
			Where("status = ?", models.StatusClosed).
			Scan(&avg).Error
		if err != nil {
			return err
		}
		if avg.Valid {
			sum.AvgResolutionDays = round1(avg.Float64)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute dashboard summary: %w", err)
	}
	return sum, nil
}

// Trends buckets complaints created in the trailing window by month, oldest first
func (s *DashboardService) Trends(ctx context.Context, months int) ([]TrendBucket, error) {
	if months == 0 {
		months = DefaultTrendMonths
	}
	if months < 1 || months > MaxTrendMonths {
		return nil, validationError("months must be between 1 and %d", MaxTrendMonths)
	}

	bucket := monthBucket(s.db, "created_at")
	since := s.now().AddDate(0, -months, 0)

	buckets := []TrendBucket{}
	err := s.db.WithContext(ctx).Model(&models.Complaint{}).
		Select(fmt.Sprintf(`%s AS month,
			COUNT(*) AS total,
			SUM(CASE WHEN status = 'closed' THEN 1 ELSE 0 END) AS closed,
			SUM(CASE WHEN severity = 'critical' THEN 1 ELSE 0 END) AS critical,
			SUM(CASE WHEN severity = 'high' THEN 1 ELSE 0 END) AS high`, bucket)).
		Where("created_at >= ?", since).
		Group(bucket).
		Order("month ASC").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute trends: %w", err)
	}
	return buckets, nil
}

// TopIssues ranks the most frequent defect categories
func (s *DashboardService) TopIssues(ctx context.Context) ([]TopIssue, error) {
	var (
		issues = []TopIssue{}
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	categorized := func() *gorm.DB {
		return s.db.WithContext(gctx).Model(&models.Complaint{}).Where("defect_category IS NOT NULL")
	}
	g.Go(func() error {
		return categorized().Count(&total).Error
	})
	g.Go(func() error {
		return categorized().
			Select("defect_category, COUNT(*) AS count").
			Group("defect_category").
			Order("count DESC").
			Order("defect_category ASC").
			Limit(TopIssuesLimit).
			Scan(&issues).Error
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute top issues: %w", err)
	}

	for i := range issues {
		if total > 0 {
			issues[i].Percentage = round1(float64(issues[i].Count) * 100 / float64(total))
		}
	}
	return issues, nil
}

// ActionsDue lists open actions that are overdue or due within the next week
func (s *DashboardService) ActionsDue(ctx context.Context) ([]models.DueActionView, error) {
	due := []models.DueActionView{}
	err := s.db.WithContext(ctx).
		Table("corrective_actions AS ca").
		Select("ca.*, c.complaint_number, c.title, u.display_name AS responsible_name").
		Joins("JOIN complaints c ON ca.complaint_id = c.id").
		Joins("LEFT JOIN users u ON ca.responsible_person = u.id").
		Where("ca.status NOT IN ?", doneActionStatuses).
		Where("ca.target_date <= ?", s.now().Add(DueSoonWindow)).
		Order("ca.target_date ASC").
		Limit(DueListLimit).
		Scan(&due).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due actions: %w", err)
	}
	return due, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// monthBucket renders a YYYY-MM expression for col in the connection's dialect
func monthBucket(db *gorm.DB, col string) string {
	switch db.Dialector.Name() {
	case "postgres":
		return fmt.Sprintf("TO_CHAR(DATE_TRUNC('month', %s), 'YYYY-MM')", col)
	case "mysql":
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m')", col)
	case "sqlserver":
		return fmt.Sprintf("FORMAT(%s, 'yyyy-MM')", col)
	}
	return fmt.Sprintf("strftime('%%Y-%%m', %s)", col)
}

// daysBetween renders the fractional day difference end - start
func daysBetween(db *gorm.DB, start, end string) string {
	switch db.Dialector.Name() {
	case "postgres":
		return fmt.Sprintf("EXTRACT(EPOCH FROM (%s - %s)) / 86400", end, start)
	case "mysql":
		return fmt.Sprintf("TIMESTAMPDIFF(SECOND, %s, %s) / 86400", start, end)
	case "sqlserver":
		return fmt.Sprintf("DATEDIFF(SECOND, %s, %s) / 86400.0", start, end)
	}
	return fmt.Sprintf("(julianday(%s) - julianday(%s))", end, start)
}
