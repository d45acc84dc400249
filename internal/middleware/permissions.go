// permissions.go
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

package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/types"
)

// Operation names a guarded API action
type Operation string

const (
	OpListComplaints   Operation = "complaints.list"
	OpGetComplaint     Operation = "complaints.get"
	OpCreateComplaint  Operation = "complaints.create"
	OpUpdateComplaint  Operation = "complaints.update"
	OpGetEightD        Operation = "eightd.get"
	OpUpdateEightD     Operation = "eightd.update"
	OpListActions      Operation = "actions.list"
	OpCreateAction     Operation = "actions.create"
	OpUpdateAction     Operation = "actions.update"
	OpListAttachments  Operation = "attachments.list"
	OpUploadAttachment Operation = "attachments.upload"
	OpDownloadFile     Operation = "attachments.download"
	OpDeleteAttachment Operation = "attachments.delete"
	OpViewDashboard    Operation = "dashboard.view"
	OpListUsers        Operation = "users.list"
	OpGetSelf          Operation = "users.me.get"
	OpUpdateSelf       Operation = "users.me.update"
	OpUpdateRole       Operation = "users.role.update"
)

var (
	anyRole     = models.Roles
	engineering = []models.Role{models.RoleAdmin, models.RoleQualityEngineer}
	shopFloor   = []models.Role{models.RoleAdmin, models.RoleQualityEngineer, models.RoleOperator}
	adminOnly   = []models.Role{models.RoleAdmin}
)

// permissions maps each operation to the roles allowed to perform it.
// An operation missing from the table is denied to everyone.
var permissions = map[Operation][]models.Role{
	OpListComplaints:   anyRole,
	OpGetComplaint:     anyRole,
	OpCreateComplaint:  anyRole,
	OpUpdateComplaint:  engineering,
	OpGetEightD:        anyRole,
	OpUpdateEightD:     engineering,
	OpListActions:      anyRole,
	OpCreateAction:     engineering,
	OpUpdateAction:     engineering,
	OpListAttachments:  anyRole,
	OpUploadAttachment: shopFloor,
	OpDownloadFile:     anyRole,
	OpDeleteAttachment: shopFloor,
	OpViewDashboard:    anyRole,
	OpListUsers:        engineering,
	OpGetSelf:          anyRole,
	OpUpdateSelf:       anyRole,
	OpUpdateRole:       adminOnly,
}

// Allowed reports whether role may perform op
func Allowed(role models.Role, op Operation) bool {
	if !role.Valid() {
		return false
	}
	return slices.Contains(permissions[op], role)
}

// Require rejects requests whose user may not perform op
func Require(op Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return types.NewError(fiber.StatusUnauthorized, types.ErrTypeUnauthenticated, "Authentication required")
		}
		if !Allowed(user.Role, op) {
			return types.NewError(fiber.StatusForbidden, types.ErrTypeForbidden,
				"Role %q may not perform %s", user.Role, op)
		}
		return c.Next()
	}
}
