// user_service_test.go
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
	"testing"

	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestUpsertCreatesThenRefreshes(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewUserService(db, zaptest.NewLogger(t))
	ctx := context.Background()

	first, err := svc.Upsert(ctx, &services.Identity{Subject: "firebase-1", Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleOperator, first.Role)
	assert.Equal(t, "Ana", first.DisplayName)

	// role changes survive later logins
	_, err = svc.UpdateRole(ctx, "admin-id", first.ID, "viewer")
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, &services.Identity{Subject: "firebase-1", Email: "ana@corp.example", Name: "Ana Lopez"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "ana@corp.example", second.Email)
	assert.Equal(t, "Ana Lopez", second.DisplayName)
	assert.Equal(t, models.RoleViewer, second.Role)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertDisplayNameFallsBackToEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewUserService(db, zaptest.NewLogger(t))

	user, err := svc.Upsert(context.Background(), &services.Identity{Subject: "s", Email: "nameless@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "nameless@example.com", user.DisplayName)
}

func TestUpsertRejectsIncompleteIdentity(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewUserService(db, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := svc.Upsert(ctx, nil)
	assert.ErrorIs(t, err, services.ErrValidation)
	_, err = svc.Upsert(ctx, &services.Identity{Email: "x@example.com"})
	assert.ErrorIs(t, err, services.ErrValidation)
	_, err = svc.Upsert(ctx, &services.Identity{Subject: "s"})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestListUsersOrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewUserService(db, zaptest.NewLogger(t))
	testutil.CreateUser(t, db, "zoe", models.RoleViewer)
	testutil.CreateUser(t, db, "adam", models.RoleAdmin)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "adam", users[0].DisplayName)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, "zoe@example.com", users[1].Email)
}

func TestUpdateDisplayName(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewUserService(db, zaptest.NewLogger(t))
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "ana", models.RoleOperator)

	updated, err := svc.UpdateDisplayName(ctx, user.ID, "  Ana L.  ")
	require.NoError(t, err)
	assert.Equal(t, "Ana L.", updated.DisplayName)

	_, err = svc.UpdateDisplayName(ctx, user.ID, " ")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.UpdateDisplayName(ctx, "missing", "x")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewUserService(db, zaptest.NewLogger(t))
	ctx := context.Background()
	admin := testutil.CreateUser(t, db, "admin", models.RoleAdmin)
	user := testutil.CreateUser(t, db, "ana", models.RoleOperator)

	updated, err := svc.UpdateRole(ctx, admin.ID, user.ID, "quality_engineer")
	require.NoError(t, err)
	assert.Equal(t, models.RoleQualityEngineer, updated.Role)

	trail, err := services.AuditTrail(db, "users", user.ID)
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.JSONEq(t, `{"role":"operator"}`, string(trail[0].OldValues.JSON))
	assert.JSONEq(t, `{"role":"quality_engineer"}`, string(trail[0].NewValues.JSON))

	_, err = svc.UpdateRole(ctx, admin.ID, user.ID, "supervisor")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.UpdateRole(ctx, admin.ID, "missing", "viewer")
	assert.ErrorIs(t, err, services.ErrNotFound)

	stored, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleQualityEngineer, stored.Role)
}
