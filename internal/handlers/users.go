// users.go
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
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/types"
	"go.uber.org/zap"
)

// UserHandler handles user directory routes
type UserHandler struct {
	Users *services.UserService
	Log   *zap.Logger
}

// DisplayNameInput is the body of PUT /api/users/me
type DisplayNameInput struct {
	DisplayName string `json:"display_name"`
}

// RoleInput is the body of PUT /api/users/:id/role
type RoleInput struct {
	Role string `json:"role"`
}

// ListUsers handles GET /api/users
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.UserSummary
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Users.List(c.UserContext())
	if err != nil {
		return serviceError(c, h.Log, "list users", err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetMe handles GET /api/users/me
// @Summary Get the calling user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return types.NewError(fiber.StatusUnauthorized, types.ErrTypeUnauthenticated, "Authentication required")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateMe handles PUT /api/users/me
// @Summary Change the calling user's display name
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body DisplayNameInput true "Display name"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var input DisplayNameInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.Users.UpdateDisplayName(c.UserContext(), actorID(c), input.DisplayName)
	if err != nil {
		return serviceError(c, h.Log, "update display name", err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateRole handles PUT /api/users/:id/role
// @Summary Change a user's role
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param role body RoleInput true "Role"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var input RoleInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.Users.UpdateRole(c.UserContext(), actorID(c), c.Params("id"), input.Role)
	if err != nil {
		return serviceError(c, h.Log, "update role", err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
