// dashboard_service_test.go
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

package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func seedAction(t *testing.T, db *gorm.DB, complaintID string, status models.ActionStatus, target time.Time) *models.CorrectiveAction {
	t.Helper()
	date := models.NewDate(target)
	action := &models.CorrectiveAction{
		ComplaintID: complaintID,
		Description: fmt.Sprintf("%s action due %s", status, date),
		Status:      status,
		TargetDate:  &date,
	}
	require.NoError(t, db.Create(action).Error)
	return action
}

func TestDashboardSummaryEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewDashboardService(db, zaptest.NewLogger(t))

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Total)
	assert.Empty(t, sum.ByStatus)
	assert.NotNil(t, sum.ByStatus)
	assert.Zero(t, sum.OverdueActions)
	assert.Zero(t, sum.AvgResolutionDays)
}

func TestDashboardSummary(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewDashboardService(db, zaptest.NewLogger(t))
	now := time.Now().UTC()

	open := testutil.CreateComplaint(t, db, "COMP-000001", func(c *models.Complaint) {
		c.Severity = models.SeverityCritical
		c.ComplaintType = ptr(models.TypeCustomer)
	})
	testutil.CreateComplaint(t, db, "COMP-000002", func(c *models.Complaint) {
		c.ComplaintType = ptr(models.TypeCustomer)
	})
	testutil.CreateComplaint(t, db, "COMP-000003", func(c *models.Complaint) {
		c.Status = models.StatusClosed
		c.CreatedAt = now.Add(-48 * time.Hour)
		c.UpdatedAt = now
	})
	testutil.CreateComplaint(t, db, "COMP-000004", func(c *models.Complaint) {
		c.Status = models.StatusClosed
		c.ComplaintType = ptr(models.TypeInternal)
		c.CreatedAt = now.Add(-24 * time.Hour)
		c.UpdatedAt = now
	})

	seedAction(t, db, open.ID, models.ActionOpen, now.AddDate(0, 0, -3))
	seedAction(t, db, open.ID, models.ActionInProgress, now.AddDate(0, 0, -1))
	seedAction(t, db, open.ID, models.ActionCompleted, now.AddDate(0, 0, -5))
	seedAction(t, db, open.ID, models.ActionOpen, now.AddDate(0, 0, 3))

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), sum.Total)
	assert.ElementsMatch(t, []services.StatusCount{
		{Status: models.StatusOpen, Count: 2},
		{Status: models.StatusClosed, Count: 2},
	}, sum.ByStatus)
	require.Len(t, sum.BySeverity, 2)
	assert.Equal(t, services.SeverityCount{Severity: models.SeverityMedium, Count: 3}, sum.BySeverity[0])
	require.Len(t, sum.ByType, 2)
	assert.Equal(t, services.TypeCount{ComplaintType: models.TypeCustomer, Count: 2}, sum.ByType[0])
	assert.Equal(t, int64(2), sum.OverdueActions)
	assert.InDelta(t, 1.5, sum.AvgResolutionDays, 0.05)
}

func TestDashboardTrends(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewDashboardService(db, zaptest.NewLogger(t))
	ctx := context.Background()
	now := time.Now().UTC()
	earlier := now.AddDate(0, -2, 0)

	testutil.CreateComplaint(t, db, "COMP-000001", func(c *models.Complaint) {
		c.Severity = models.SeverityCritical
	})
	testutil.CreateComplaint(t, db, "COMP-000002", func(c *models.Complaint) {
		c.Severity = models.SeverityHigh
		c.Status = models.StatusClosed
	})
	testutil.CreateComplaint(t, db, "COMP-000003", func(c *models.Complaint) {
		c.CreatedAt = earlier
	})
	testutil.CreateComplaint(t, db, "COMP-000004", func(c *models.Complaint) {
		c.CreatedAt = now.AddDate(-6, 0, 0)
	})

	trends, err := svc.Trends(ctx, 0)
	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, services.TrendBucket{Month: earlier.Format("2006-01"), Total: 1}, trends[0])
	assert.Equal(t, services.TrendBucket{
		Month:    now.Format("2006-01"),
		Total:    2,
		Closed:   1,
		Critical: 1,
		High:     1,
	}, trends[1])

	trends, err = svc.Trends(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, now.Format("2006-01"), trends[0].Month)

	for _, months := range []int{-1, services.MaxTrendMonths + 1} {
		_, err = svc.Trends(ctx, months)
		assert.ErrorIs(t, err, services.ErrValidation)
	}
}

func TestDashboardTopIssues(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewDashboardService(db, zaptest.NewLogger(t))

	categories := []*string{ptr("weld"), ptr("weld"), ptr("weld"), ptr("paint"), nil, nil}
	for i, category := range categories {
		category := category
		testutil.CreateComplaint(t, db, fmt.Sprintf("COMP-%06d", i+1), func(c *models.Complaint) {
			c.DefectCategory = category
		})
	}

	issues, err := svc.TopIssues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []services.TopIssue{
		{DefectCategory: "weld", Count: 3, Percentage: 75},
		{DefectCategory: "paint", Count: 1, Percentage: 25},
	}, issues)
}

func TestDashboardActionsDue(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewDashboardService(db, zaptest.NewLogger(t))
	now := time.Now().UTC()
	owner := testutil.CreateUser(t, db, "owner", models.RoleOperator)
	c := testutil.CreateComplaint(t, db, "COMP-000001", func(c *models.Complaint) {
		c.Title = "Loose bolt"
	})

	overdue := seedAction(t, db, c.ID, models.ActionOpen, now.AddDate(0, 0, -2))
	soon := seedAction(t, db, c.ID, models.ActionInProgress, now.AddDate(0, 0, 3))
	require.NoError(t, db.Model(soon).Update("responsible_person", owner.ID).Error)
	seedAction(t, db, c.ID, models.ActionVerified, now.AddDate(0, 0, 1))
	seedAction(t, db, c.ID, models.ActionOpen, now.AddDate(0, 0, 30))

	due, err := svc.ActionsDue(context.Background())
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, overdue.ID, due[0].ID)
	assert.Equal(t, soon.ID, due[1].ID)
	assert.Equal(t, "COMP-000001", due[1].ComplaintNumber)
	assert.Equal(t, "Loose bolt", due[1].Title)
	require.NotNil(t, due[1].ResponsibleName)
	assert.Equal(t, "owner", *due[1].ResponsibleName)
	assert.Nil(t, due[0].ResponsibleName)
}
