// auth.go
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
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/types"
	"go.uber.org/zap"
)

// Fiber locals keys set by Authenticate
const (
	LocalUser     = "user"
	LocalIdentity = "identity"
)

// UserUpserter mirrors a verified identity into the local user directory
type UserUpserter interface {
	Upsert(ctx context.Context, identity *services.Identity) (*models.User, error)
}

// Authenticate verifies the bearer token, upserts the caller and stores the
// local user and verified identity in the request locals.
func Authenticate(verifier services.TokenVerifier, users UserUpserter, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return types.NewError(fiber.StatusUnauthorized, types.ErrTypeUnauthenticated,
				"Authorization header with a Bearer token is required")
		}

		ctx := c.UserContext()
		identity, err := verifier.Verify(ctx, token)
		if err != nil {
			log.Debug("token rejected", zap.Error(err))
			return types.NewError(fiber.StatusUnauthorized, types.ErrTypeUnauthenticated, "Invalid or expired token")
		}

		user, err := users.Upsert(ctx, identity)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				return types.NewError(fiber.StatusUnauthorized, types.ErrTypeUnauthenticated, "Token identity is incomplete")
			}
			log.Error("user upsert failed", zap.String("subject", identity.Subject), zap.Error(err))
			return types.NewError(fiber.StatusInternalServerError, types.ErrTypeInternal, "Failed to resolve user")
		}

		c.Locals(LocalUser, user)
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil before Authenticate ran
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalUser).(*models.User)
	return user
}

// CurrentIdentity returns the verified token identity
func CurrentIdentity(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals(LocalIdentity).(*services.Identity)
	return identity
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
