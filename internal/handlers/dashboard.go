// dashboard.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/services"
	"go.uber.org/zap"
)

// DashboardHandler handles KPI routes
type DashboardHandler struct {
	Dashboard *services.DashboardService
	Log       *zap.Logger
}

// Summary handles GET /api/dashboard/summary
// @Summary KPI summary
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Summary
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.Dashboard.Summary(c.UserContext())
	if err != nil {
		return serviceError(c, h.Log, "compute summary", err)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}

// Trends handles GET /api/dashboard/trends
// @Summary Monthly complaint trends
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param months query int false "Trailing months" default(12)
// @Success 200 {array} services.TrendBucket
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /dashboard/trends [get]
func (h *DashboardHandler) Trends(c *fiber.Ctx) error {
	months, err := queryInt(c, "months")
	if err != nil {
		return err
	}
	trends, err := h.Dashboard.Trends(c.UserContext(), months)
	if err != nil {
		return serviceError(c, h.Log, "compute trends", err)
	}
	return c.Status(fiber.StatusOK).JSON(trends)
}

// TopIssues handles GET /api/dashboard/top-issues
// @Summary Most frequent defect categories
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.TopIssue
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /dashboard/top-issues [get]
func (h *DashboardHandler) TopIssues(c *fiber.Ctx) error {
	issues, err := h.Dashboard.TopIssues(c.UserContext())
	if err != nil {
		return serviceError(c, h.Log, "compute top issues", err)
	}
	return c.Status(fiber.StatusOK).JSON(issues)
}

// ActionsDue handles GET /api/dashboard/actions-due
// @Summary Open actions overdue or due within a week
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DueActionView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /dashboard/actions-due [get]
func (h *DashboardHandler) ActionsDue(c *fiber.Ctx) error {
	due, err := h.Dashboard.ActionsDue(c.UserContext())
	if err != nil {
		return serviceError(c, h.Log, "list due actions", err)
	}
	return c.Status(fiber.StatusOK).JSON(due)
}
