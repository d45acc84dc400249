// routes.go
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
	"github.com/localnerve/qms/internal/middleware"
)

// Handlers bundles every route handler
type Handlers struct {
	Complaints  *ComplaintHandler
	Attachments *AttachmentHandler
	Dashboard   *DashboardHandler
	Users       *UserHandler
	Health      *HealthHandler
}

// RegisterRoutes mounts the health probes on app and the authenticated API under /api
func RegisterRoutes(app fiber.Router, h *Handlers, authenticate fiber.Handler) {
	require := middleware.Require

	if h.Health != nil {
		app.Get("/health", h.Health.Liveness)
		app.Get("/health/ready", h.Health.Readiness)
	}

	api := app.Group("/api", authenticate)

	complaints := api.Group("/complaints")
	complaints.Get("/", require(middleware.OpListComplaints), h.Complaints.ListComplaints)
	complaints.Post("/", require(middleware.OpCreateComplaint), h.Complaints.CreateComplaint)
	complaints.Get("/:id", require(middleware.OpGetComplaint), h.Complaints.GetComplaint)
	complaints.Put("/:id", require(middleware.OpUpdateComplaint), h.Complaints.UpdateComplaint)
	complaints.Get("/:id/8d", require(middleware.OpGetEightD), h.Complaints.GetEightD)
	complaints.Put("/:id/8d", require(middleware.OpUpdateEightD), h.Complaints.UpdateEightD)
	complaints.Get("/:id/actions", require(middleware.OpListActions), h.Complaints.ListActions)
	complaints.Post("/:id/actions", require(middleware.OpCreateAction), h.Complaints.AddAction)
	complaints.Put("/:id/actions/:actionId", require(middleware.OpUpdateAction), h.Complaints.UpdateAction)

	attachments := api.Group("/attachments")
	attachments.Get("/:complaintId", require(middleware.OpListAttachments), h.Attachments.ListAttachments)
	attachments.Post("/:complaintId", require(middleware.OpUploadAttachment), h.Attachments.UploadAttachment)
	attachments.Get("/:complaintId/:id/download", require(middleware.OpDownloadFile), h.Attachments.DownloadAttachment)
	attachments.Delete("/:complaintId/:id", require(middleware.OpDeleteAttachment), h.Attachments.DeleteAttachment)

	dashboard := api.Group("/dashboard", require(middleware.OpViewDashboard))
	dashboard.Get("/summary", h.Dashboard.Summary)
	dashboard.Get("/trends", h.Dashboard.Trends)
	dashboard.Get("/top-issues", h.Dashboard.TopIssues)
	dashboard.Get("/actions-due", h.Dashboard.ActionsDue)

	users := api.Group("/users")
	users.Get("/", require(middleware.OpListUsers), h.Users.ListUsers)
	users.Get("/me", require(middleware.OpGetSelf), h.Users.GetMe)
	users.Put("/me", require(middleware.OpUpdateSelf), h.Users.UpdateMe)
	users.Put("/:id/role", require(middleware.OpUpdateRole), h.Users.UpdateRole)
}
