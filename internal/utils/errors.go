// errors.go
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

package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/types"
	"go.uber.org/zap"
)

// ErrorHandler renders every error returned from a handler or middleware as the error envelope.
// Unknown errors are logged and reported as a generic 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			ce *types.CustomError
			fe *fiber.Error
		)
		switch {
		case errors.As(err, &ce):
			if ce.Code >= fiber.StatusInternalServerError {
				log.Error("request failed", zap.String("url", c.OriginalURL()), zap.String("message", ce.Message))
			}
			return ErrorResponse(c, ce.Message, ce.Code, ce.Type)
		case errors.As(err, &fe):
			return ErrorResponse(c, fe.Message, fe.Code, fiberErrorType(fe.Code))
		}

		log.Error("unhandled error", zap.String("url", c.OriginalURL()), zap.Error(err))
		return ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, types.ErrTypeInternal)
	}
}

func fiberErrorType(code int) string {
	switch {
	case code == fiber.StatusUnauthorized:
		return types.ErrTypeUnauthenticated
	case code == fiber.StatusForbidden:
		return types.ErrTypeForbidden
	case code == fiber.StatusNotFound:
		return types.ErrTypeNotFound
	case code < fiber.StatusInternalServerError:
		return types.ErrTypeValidation
	}
	return types.ErrTypeInternal
}
