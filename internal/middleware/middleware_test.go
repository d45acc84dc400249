// middleware_test.go
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

package middleware_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/middleware"
	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/testutil"
	"github.com/localnerve/qms/internal/types"
	"github.com/localnerve/qms/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// stubVerifier accepts the token "good" for one fixed identity
type stubVerifier struct {
	identity *services.Identity
}

func (s stubVerifier) Verify(_ context.Context, token string) (*services.Identity, error) {
	if token != "good" {
		return nil, services.ErrInvalidToken
	}
	return s.identity, nil
}

func (stubVerifier) Close() {}

type failingUpserter struct{}

func (failingUpserter) Upsert(context.Context, *services.Identity) (*models.User, error) {
	return nil, errors.New("database is down")
}

func newAuthApp(t *testing.T, users middleware.UserUpserter, identity *services.Identity) *fiber.App {
	t.Helper()
	log := zaptest.NewLogger(t)
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(log)})
	app.Use(middleware.Authenticate(stubVerifier{identity: identity}, users, log))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":      middleware.CurrentUser(c).ID,
			"subject": middleware.CurrentIdentity(c).Subject,
		})
	})
	return app
}

func TestAuthenticateUpsertsCaller(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := services.NewUserService(db, zaptest.NewLogger(t))
	app := newAuthApp(t, users, &services.Identity{Subject: "sub-1", Email: "ana@example.com", Name: "Ana"})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		resp, err := app.Test(req)
		require.NoError(t, err)
		testutil.AssertStatus(t, resp, fiber.StatusOK)

		var body map[string]string
		testutil.ParseJSON(t, resp, &body)
		assert.Equal(t, "sub-1", body["subject"])
		assert.NotEmpty(t, body["id"])
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthenticateRejections(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := services.NewUserService(db, zaptest.NewLogger(t))
	app := newAuthApp(t, users, &services.Identity{Subject: "sub-1", Email: "ana@example.com"})

	for name, header := range map[string]string{
		"missing":     "",
		"wrong type":  "Basic Zm9vOmJhcg==",
		"empty token": "Bearer ",
		"bad token":   "Bearer forged",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			testutil.AssertStatus(t, resp, fiber.StatusUnauthorized)

			var body utils.ErrorResponseStruct
			testutil.ParseJSON(t, resp, &body)
			assert.Equal(t, types.ErrTypeUnauthenticated, body.Type)
		})
	}
}

func TestAuthenticateIncompleteIdentity(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := services.NewUserService(db, zaptest.NewLogger(t))
	app := newAuthApp(t, users, &services.Identity{Subject: "sub-1"})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, fiber.StatusUnauthorized)
}

func TestAuthenticateUpsertFailure(t *testing.T) {
	app := newAuthApp(t, failingUpserter{}, &services.Identity{Subject: "sub-1", Email: "a@example.com"})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, fiber.StatusInternalServerError)
}

func newGuardedApp(t *testing.T, user *models.User, op middleware.Operation) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(zaptest.NewLogger(t))})
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(middleware.LocalUser, user)
		}
		return c.Next()
	})
	app.Get("/", middleware.Require(op), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestRequire(t *testing.T) {
	cases := []struct {
		name   string
		user   *models.User
		op     middleware.Operation
		status int
	}{
		{"no user", nil, middleware.OpListComplaints, fiber.StatusUnauthorized},
		{"viewer lists", &models.User{Role: models.RoleViewer}, middleware.OpListComplaints, fiber.StatusNoContent},
		{"viewer role update", &models.User{Role: models.RoleViewer}, middleware.OpUpdateRole, fiber.StatusForbidden},
		{"engineer role update", &models.User{Role: models.RoleQualityEngineer}, middleware.OpUpdateRole, fiber.StatusForbidden},
		{"admin role update", &models.User{Role: models.RoleAdmin}, middleware.OpUpdateRole, fiber.StatusNoContent},
		{"operator uploads", &models.User{Role: models.RoleOperator}, middleware.OpUploadAttachment, fiber.StatusNoContent},
		{"viewer uploads", &models.User{Role: models.RoleViewer}, middleware.OpUploadAttachment, fiber.StatusForbidden},
		{"unknown role", &models.User{Role: "supervisor"}, middleware.OpListComplaints, fiber.StatusForbidden},
		{"unknown op", &models.User{Role: models.RoleAdmin}, middleware.Operation("complaints.delete"), fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := newGuardedApp(t, tc.user, tc.op).Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			testutil.AssertStatus(t, resp, tc.status)
		})
	}
}

func TestPermissionTable(t *testing.T) {
	engineeringOnly := []middleware.Operation{
		middleware.OpUpdateComplaint,
		middleware.OpUpdateEightD,
		middleware.OpCreateAction,
		middleware.OpUpdateAction,
		middleware.OpListUsers,
	}
	for _, op := range engineeringOnly {
		assert.True(t, middleware.Allowed(models.RoleAdmin, op), op)
		assert.True(t, middleware.Allowed(models.RoleQualityEngineer, op), op)
		assert.False(t, middleware.Allowed(models.RoleOperator, op), op)
		assert.False(t, middleware.Allowed(models.RoleViewer, op), op)
	}

	for _, role := range models.Roles {
		assert.True(t, middleware.Allowed(role, middleware.OpViewDashboard))
		assert.True(t, middleware.Allowed(role, middleware.OpCreateComplaint))
		assert.True(t, middleware.Allowed(role, middleware.OpDownloadFile))
	}
	assert.False(t, middleware.Allowed(models.RoleViewer, middleware.OpDeleteAttachment))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(log)})
	app.Use(middleware.RequestLogger(log))
	app.Get("/ok", func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalUser, &models.User{ID: "u-1"})
		return c.SendString("ok")
	})
	app.Get("/denied", func(c *fiber.Ctx) error {
		return types.NewError(fiber.StatusForbidden, types.ErrTypeForbidden, "denied")
	})

	for _, path := range []string{"/ok", "/denied"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, "u-1", entries[0].ContextMap()["user_id"])
	assert.Equal(t, int64(403), entries[1].ContextMap()["status"])
	assert.Equal(t, "/denied", entries[1].ContextMap()["path"])
}
