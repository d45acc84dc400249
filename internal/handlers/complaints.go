// complaints.go
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

// ComplaintHandler handles complaint, 8D and corrective action routes
type ComplaintHandler struct {
	Complaints *services.ComplaintService
	EightD     *services.EightDService
	Actions    *services.ActionService
	Log        *zap.Logger
}

// ListComplaints handles GET /api/complaints
// @Summary List complaints
// @Description Newest first. total counts every complaint matching the filters.
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(open, in_progress, pending_approval, closed, rejected)
// @Param severity query string false "Severity filter" Enums(critical, high, medium, low)
// @Param type query string false "Complaint type filter" Enums(customer, internal, supplier, audit)
// @Param assigned_to query string false "Assignee user id"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} services.ComplaintPage
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /complaints [get]
func (h *ComplaintHandler) ListComplaints(c *fiber.Ctx) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	result, err := h.Complaints.List(c.UserContext(), services.ComplaintFilter{
		Status:     c.Query("status"),
		Severity:   c.Query("severity"),
		Type:       c.Query("type", c.Query("complaint_type")),
		AssignedTo: c.Query("assigned_to"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return serviceError(c, h.Log, "list complaints", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetComplaint handles GET /api/complaints/:id
// @Summary Get a complaint
// @Description Complaint with its 8D report, corrective actions and attachments
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} services.ComplaintDetail
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /complaints/{id} [get]
func (h *ComplaintHandler) GetComplaint(c *fiber.Ctx) error {
	detail, err := h.Complaints.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, h.Log, "get complaint", err)
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}

// CreateComplaint handles POST /api/complaints
// @Summary File a complaint
// @Description Assigns the next complaint number and creates an empty 8D report
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param complaint body services.ComplaintInput true "Complaint"
// @Success 201 {object} models.Complaint
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /complaints [post]
func (h *ComplaintHandler) CreateComplaint(c *fiber.Ctx) error {
	var input services.ComplaintInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	complaint, err := h.Complaints.Create(c.UserContext(), input, actorID(c))
	if err != nil {
		return serviceError(c, h.Log, "create complaint", err)
	}
	return c.Status(fiber.StatusCreated).JSON(complaint)
}

// UpdateComplaint handles PUT /api/complaints/:id
// @Summary Update a complaint
// @Description Overwrites every editable field
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param complaint body services.ComplaintUpdate true "Complaint fields"
// @Success 200 {object} models.Complaint
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /complaints/{id} [put]
func (h *ComplaintHandler) UpdateComplaint(c *fiber.Ctx) error {
	var input services.ComplaintUpdate
	if err := parseBody(c, &input); err != nil {
		return err
	}

	complaint, err := h.Complaints.Update(c.UserContext(), c.Params("id"), input, actorID(c))
	if err != nil {
		return serviceError(c, h.Log, "update complaint", err)
	}
	return c.Status(fiber.StatusOK).JSON(complaint)
}

// GetEightD handles GET /api/complaints/:id/8d
// @Summary Get the 8D report
// @Tags 8D
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} models.EightDReport
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/8d [get]
func (h *ComplaintHandler) GetEightD(c *fiber.Ctx) error {
	report, err := h.EightD.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, h.Log, "get 8D report", err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// UpdateEightD handles PUT /api/complaints/:id/8d
// @Summary Update the 8D report
// @Description Replaces every discipline field and the 8D status
// @Tags 8D
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param report body services.EightDInput true "8D report"
// @Success 200 {object} models.EightDReport
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/8d [put]
func (h *ComplaintHandler) UpdateEightD(c *fiber.Ctx) error {
	var input services.EightDInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	report, err := h.EightD.Update(c.UserContext(), c.Params("id"), input, actorID(c))
	if err != nil {
		return serviceError(c, h.Log, "update 8D report", err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// ListActions handles GET /api/complaints/:id/actions
// @Summary List corrective actions
// @Tags Actions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {array} models.CorrectiveActionView
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/actions [get]
func (h *ComplaintHandler) ListActions(c *fiber.Ctx) error {
	actions, err := h.Actions.List(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, h.Log, "list corrective actions", err)
	}
	return c.Status(fiber.StatusOK).JSON(actions)
}

// AddAction handles POST /api/complaints/:id/actions
// @Summary Add a corrective action
// @Tags Actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param action body services.ActionInput true "Action"
// @Success 201 {object} models.CorrectiveAction
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/actions [post]
func (h *ComplaintHandler) AddAction(c *fiber.Ctx) error {
	var input services.ActionInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	action, err := h.Actions.Add(c.UserContext(), c.Params("id"), input, actorID(c))
	if err != nil {
		return serviceError(c, h.Log, "add corrective action", err)
	}
	return c.Status(fiber.StatusCreated).JSON(action)
}

// UpdateAction handles PUT /api/complaints/:id/actions/:actionId
// @Summary Update a corrective action
// @Tags Actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param actionId path string true "Action ID"
// @Param action body services.ActionUpdate true "Action progress"
// @Success 200 {object} models.CorrectiveAction
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/actions/{actionId} [put]
func (h *ComplaintHandler) UpdateAction(c *fiber.Ctx) error {
	var input services.ActionUpdate
	if err := parseBody(c, &input); err != nil {
		return err
	}

	action, err := h.Actions.Update(c.UserContext(), c.Params("id"), c.Params("actionId"), input, actorID(c))
	if err != nil {
		return serviceError(c, h.Log, "update corrective action", err)
	}
	return c.Status(fiber.StatusOK).JSON(action)
}
