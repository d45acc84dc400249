// common.go
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
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/middleware"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/types"
	"go.uber.org/zap"
)

// serviceError maps a service error onto the error envelope. Internal detail
// is logged and never returned to the caller.
func serviceError(c *fiber.Ctx, log *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return types.NewError(fiber.StatusNotFound, types.ErrTypeNotFound, "%s", capitalize(err.Error()))
	case errors.Is(err, services.ErrValidation):
		return types.NewError(fiber.StatusBadRequest, types.ErrTypeValidation, "%s", err.Error())
	}

	log.Error(op+" failed",
		zap.String("url", c.OriginalURL()),
		zap.Error(err),
	)
	return types.NewError(fiber.StatusInternalServerError, types.ErrTypeInternal, "Failed to %s", op)
}

// parseBody decodes the JSON request body into dst
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return types.NewError(fiber.StatusBadRequest, types.ErrTypeValidation, "Invalid request body: %v", err)
	}
	return nil
}

// queryInt reads an optional integer query parameter
func queryInt(c *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, types.NewError(fiber.StatusBadRequest, types.ErrTypeValidation, "Query parameter %s must be an integer", name)
	}
	return n, nil
}

// actorID is the id of the authenticated user, or empty when unauthenticated
func actorID(c *fiber.Ctx) string {
	if user := middleware.CurrentUser(c); user != nil {
		return user.ID
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
