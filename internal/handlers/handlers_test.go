// handlers_test.go
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

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/config"
	"github.com/localnerve/qms/internal/handlers"
	"github.com/localnerve/qms/internal/middleware"
	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/storage"
	"github.com/localnerve/qms/internal/testutil"
	"github.com/localnerve/qms/internal/types"
	"github.com/localnerve/qms/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// nameVerifier treats the bearer token as a user name
type nameVerifier struct{}

func (nameVerifier) Verify(_ context.Context, token string) (*services.Identity, error) {
	if token == "forged" {
		return nil, services.ErrInvalidToken
	}
	return &services.Identity{
		Subject: "uid-" + token,
		Email:   token + "@example.com",
		Name:    token,
	}, nil
}

func (nameVerifier) Close() {}

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	store *storage.MemoryStore
	users map[models.Role]*models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zaptest.NewLogger(t)
	db := testutil.NewTestDB(t)
	store := storage.NewMemoryStore("attachments", "", "secret")

	users := services.NewUserService(db, log)
	h := &handlers.Handlers{
		Complaints: &handlers.ComplaintHandler{
			Complaints: services.NewComplaintService(db, log),
			EightD:     services.NewEightDService(db, log),
			Actions:    services.NewActionService(db, log),
			Log:        log,
		},
		Attachments: &handlers.AttachmentHandler{
			Attachments: services.NewAttachmentService(db, store, log, services.AttachmentOptions{MaxUploadBytes: 1024}),
			Log:         log,
		},
		Dashboard: &handlers.DashboardHandler{Dashboard: services.NewDashboardService(db, log), Log: log},
		Users:     &handlers.UserHandler{Users: users, Log: log},
		Health: &handlers.HealthHandler{
			Config: &config.Config{DBType: "sqlite", DBDatabase: "test", Auth: config.AuthConfig{Provider: "jwks"}},
			DB:     db,
			Log:    log,
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(log)})
	handlers.RegisterRoutes(app, h, middleware.Authenticate(nameVerifier{}, users, log))

	env := &testEnv{app: app, db: db, store: store, users: map[models.Role]*models.User{}}
	for _, role := range models.Roles {
		env.users[role] = testutil.CreateUser(t, db, string(role), role)
	}
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, role models.Role, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+string(role))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) upload(t *testing.T, complaintID string, role models.Role, filename, contentType string, data []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, handlers.UploadField, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/attachments/"+complaintID, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+string(role))
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateAndGetComplaintScenario(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/complaints", models.RoleOperator, map[string]string{
		"title":          "Cracked housing",
		"complaint_type": "customer",
		"severity":       "critical",
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)

	var created models.Complaint
	testutil.ParseJSON(t, resp, &created)
	assert.Equal(t, "COMP-000001", created.ComplaintNumber)
	assert.Equal(t, models.StatusOpen, created.Status)
	assert.Equal(t, models.SeverityCritical, created.Severity)
	require.NotNil(t, created.ComplaintType)
	assert.Equal(t, models.TypeCustomer, *created.ComplaintType)

	resp = env.do(t, "GET", "/api/complaints/"+created.ID, models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var detail struct {
		ComplaintNumber   string                    `json:"complaint_number"`
		CreatedByName     *string                   `json:"created_by_name"`
		EightD            *models.EightDReport      `json:"eight_d"`
		CorrectiveActions []models.CorrectiveAction `json:"corrective_actions"`
		Attachments       []models.Attachment       `json:"attachments"`
	}
	testutil.ParseJSON(t, resp, &detail)
	assert.Equal(t, created.ComplaintNumber, detail.ComplaintNumber)
	require.NotNil(t, detail.EightD)
	assert.Equal(t, models.EightDD1, detail.EightD.Status)
	require.NotNil(t, detail.CreatedByName)
	assert.Equal(t, "operator", *detail.CreatedByName)
	assert.NotNil(t, detail.CorrectiveActions)
	assert.NotNil(t, detail.Attachments)
}

func TestCreateComplaintBadInput(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/complaints", models.RoleOperator, `{"title": }`)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = env.do(t, "POST", "/api/complaints", models.RoleOperator, map[string]string{"severity": "high"})
	body := testutil.ParseError(t, resp, fiber.StatusBadRequest, types.ErrTypeValidation)
	assert.Contains(t, body.Message, "title is required")
}

func TestUnauthenticatedRequests(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "GET", "/api/complaints", "", nil)
	testutil.AssertStatus(t, resp, fiber.StatusUnauthorized)

	resp = env.do(t, "GET", "/api/complaints", "forged", nil)
	testutil.AssertStatus(t, resp, fiber.StatusUnauthorized)

	resp = env.do(t, "GET", "/health", "", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var live handlers.LivenessResponse
	testutil.ParseJSON(t, resp, &live)
	assert.Equal(t, "ok", live.Status)
	assert.NotEmpty(t, live.Timestamp)
}

func TestReadiness(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "GET", "/health/ready", "", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var result services.HealthCheckResult
	testutil.ParseJSON(t, resp, &result)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "skipped", result.IdentityProvider)
}

func TestListComplaintsPageOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "GET", "/api/complaints?page=9223372036854775807&limit=20", models.RoleViewer, nil)
	body := testutil.ParseError(t, resp, fiber.StatusBadRequest, types.ErrTypeValidation)
	assert.Contains(t, body.Message, "out of range")
}

func TestListComplaintsClosedSecondPage(t *testing.T) {
	env := newTestEnv(t)
	for i := 1; i <= 30; i++ {
		i := i
		testutil.CreateComplaint(t, env.db, fmt.Sprintf("COMP-%06d", i), func(c *models.Complaint) {
			if i <= 25 {
				c.Status = models.StatusClosed
			}
		})
	}

	resp := env.do(t, "GET", "/api/complaints?status=closed&page=2&limit=10", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var page services.ComplaintPage
	testutil.ParseJSON(t, resp, &page)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	require.Len(t, page.Data, 10)
	for _, c := range page.Data {
		assert.Equal(t, models.StatusClosed, c.Status)
	}

	resp = env.do(t, "GET", "/api/complaints?page=abc", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = env.do(t, "GET", "/api/complaints?severity=urgent", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestUpdateComplaintPermissionsAndMissing(t *testing.T) {
	env := newTestEnv(t)
	c := testutil.CreateComplaint(t, env.db, "COMP-000001", nil)
	update := map[string]string{"title": "New", "status": "in_progress", "severity": "low"}

	resp := env.do(t, "PUT", "/api/complaints/"+c.ID, models.RoleOperator, update)
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)

	resp = env.do(t, "PUT", "/api/complaints/does-not-exist", models.RoleQualityEngineer, update)
	body := testutil.ParseError(t, resp, fiber.StatusNotFound, types.ErrTypeNotFound)
	assert.Equal(t, "Complaint not found", body.Message)

	var count int64
	require.NoError(t, env.db.Model(&models.Complaint{}).Where("title = ?", "New").Count(&count).Error)
	assert.Zero(t, count)

	resp = env.do(t, "PUT", "/api/complaints/"+c.ID, models.RoleQualityEngineer, update)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var updated models.Complaint
	testutil.ParseJSON(t, resp, &updated)
	assert.Equal(t, "New", updated.Title)
}

func TestEightDRoutes(t *testing.T) {
	env := newTestEnv(t)
	c := testutil.CreateComplaint(t, env.db, "COMP-000001", nil)

	resp := env.do(t, "GET", "/api/complaints/"+c.ID+"/8d", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	body := map[string]interface{}{
		"d1_team_members": []string{"Ana", "Ben"},
		"d4_root_cause":   "Worn tooling",
		"status":          "d5",
	}
	resp = env.do(t, "PUT", "/api/complaints/"+c.ID+"/8d", models.RoleViewer, body)
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)

	resp = env.do(t, "PUT", "/api/complaints/"+c.ID+"/8d", models.RoleAdmin, body)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var report models.EightDReport
	testutil.ParseJSON(t, resp, &report)
	require.NotNil(t, report.D1TeamMembers)
	assert.Equal(t, "Ana, Ben", *report.D1TeamMembers)
	assert.Equal(t, models.EightDD5, report.Status)

	resp = env.do(t, "PUT", "/api/complaints/missing/8d", models.RoleAdmin, body)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestActionRoutes(t *testing.T) {
	env := newTestEnv(t)
	c := testutil.CreateComplaint(t, env.db, "COMP-000001", nil)
	other := testutil.CreateComplaint(t, env.db, "COMP-000002", nil)
	owner := env.users[models.RoleOperator]

	resp := env.do(t, "POST", "/api/complaints/"+c.ID+"/actions", models.RoleQualityEngineer, map[string]interface{}{
		"action_type":        "containment",
		"description":        "Quarantine lot 42",
		"responsible_person": owner.ID,
		"target_date":        "2026-12-01",
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var action models.CorrectiveAction
	testutil.ParseJSON(t, resp, &action)
	assert.Equal(t, models.ActionOpen, action.Status)

	resp = env.do(t, "POST", "/api/complaints/missing/actions", models.RoleQualityEngineer, map[string]string{"description": "x"})
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = env.do(t, "GET", "/api/complaints/"+c.ID+"/actions", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var actions []models.CorrectiveActionView
	testutil.ParseJSON(t, resp, &actions)
	require.Len(t, actions, 1)
	require.NotNil(t, actions[0].ResponsibleName)
	assert.Equal(t, "operator", *actions[0].ResponsibleName)

	progress := map[string]interface{}{"status": "completed", "effectiveness_rating": "4"}
	resp = env.do(t, "PUT", "/api/complaints/"+other.ID+"/actions/"+action.ID, models.RoleQualityEngineer, progress)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = env.do(t, "PUT", "/api/complaints/"+c.ID+"/actions/"+action.ID, models.RoleQualityEngineer,
		map[string]interface{}{"status": "completed", "effectiveness_rating": 9})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = env.do(t, "PUT", "/api/complaints/"+c.ID+"/actions/"+action.ID, models.RoleQualityEngineer, progress)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var updated models.CorrectiveAction
	testutil.ParseJSON(t, resp, &updated)
	assert.Equal(t, models.ActionCompleted, updated.Status)
	require.NotNil(t, updated.EffectivenessRating)
	assert.Equal(t, 4, *updated.EffectivenessRating)
}

func TestAttachmentRoutes(t *testing.T) {
	env := newTestEnv(t)
	c := testutil.CreateComplaint(t, env.db, "COMP-000001", nil)

	resp := env.upload(t, c.ID, models.RoleViewer, "photo.png", "image/png", []byte("png"))
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)

	resp = env.upload(t, c.ID, models.RoleOperator, "notes.txt", "text/plain", []byte("hello"))
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = env.upload(t, c.ID, models.RoleOperator, "huge.pdf", "application/pdf", bytes.Repeat([]byte("x"), 2048))
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
	assert.Zero(t, env.store.Puts())

	resp = env.upload(t, "missing", models.RoleOperator, "photo.png", "image/png", []byte("png"))
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = env.upload(t, c.ID, models.RoleOperator, "photo.png", "image/png", []byte("png"))
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var uploaded services.UploadedAttachment
	testutil.ParseJSON(t, resp, &uploaded)
	assert.Equal(t, "photo.png", uploaded.OriginalName)
	assert.NotEmpty(t, uploaded.DownloadURL)
	assert.Equal(t, 1, env.store.Puts())

	resp = env.do(t, "GET", "/api/attachments/"+c.ID, models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var list []models.Attachment
	testutil.ParseJSON(t, resp, &list)
	assert.Len(t, list, 1)

	resp = env.do(t, "GET", "/api/attachments/"+c.ID+"/"+uploaded.ID+"/download", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var link services.DownloadLink
	testutil.ParseJSON(t, resp, &link)
	assert.Equal(t, "photo.png", link.Filename)
	assert.Contains(t, link.URL, uploaded.Filename)

	resp = env.do(t, "DELETE", "/api/attachments/"+c.ID+"/"+uploaded.ID, models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)

	resp = env.do(t, "DELETE", "/api/attachments/"+c.ID+"/"+uploaded.ID, models.RoleOperator, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var msg utils.MessageResponseStruct
	testutil.ParseJSON(t, resp, &msg)
	assert.Equal(t, "Attachment deleted", msg.Message)

	resp = env.do(t, "GET", "/api/attachments/"+c.ID+"/"+uploaded.ID+"/download", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestUploadWithoutFile(t *testing.T) {
	env := newTestEnv(t)
	c := testutil.CreateComplaint(t, env.db, "COMP-000001", nil)

	resp := env.do(t, "POST", "/api/attachments/"+c.ID, models.RoleOperator, map[string]string{"file": "nope"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestDashboardRoutes(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateComplaint(t, env.db, "COMP-000001", nil)

	resp := env.do(t, "GET", "/api/dashboard/summary", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var summary services.Summary
	testutil.ParseJSON(t, resp, &summary)
	assert.Equal(t, int64(1), summary.Total)
	assert.Zero(t, summary.AvgResolutionDays)

	resp = env.do(t, "GET", "/api/dashboard/trends?months=6", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var trends []services.TrendBucket
	testutil.ParseJSON(t, resp, &trends)
	assert.Len(t, trends, 1)

	resp = env.do(t, "GET", "/api/dashboard/trends?months=0x", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
	resp = env.do(t, "GET", "/api/dashboard/trends?months=120", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = env.do(t, "GET", "/api/dashboard/top-issues", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = env.do(t, "GET", "/api/dashboard/actions-due", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var due []models.DueActionView
	testutil.ParseJSON(t, resp, &due)
	assert.Empty(t, due)
}

func TestUserRoutes(t *testing.T) {
	env := newTestEnv(t)
	viewer := env.users[models.RoleViewer]
	operator := env.users[models.RoleOperator]

	resp := env.do(t, "GET", "/api/users", models.RoleOperator, nil)
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)

	resp = env.do(t, "GET", "/api/users", models.RoleQualityEngineer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var users []services.UserSummary
	testutil.ParseJSON(t, resp, &users)
	assert.Len(t, users, len(models.Roles))

	resp = env.do(t, "GET", "/api/users/me", models.RoleViewer, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var me models.User
	testutil.ParseJSON(t, resp, &me)
	assert.Equal(t, viewer.ID, me.ID)
	assert.Equal(t, models.RoleViewer, me.Role)

	resp = env.do(t, "PUT", "/api/users/me", models.RoleViewer, map[string]string{"display_name": "  "})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = env.do(t, "PUT", "/api/users/me", models.RoleViewer, map[string]string{"display_name": "Vic"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &me)
	assert.Equal(t, "Vic", me.DisplayName)

	// a viewer may not change roles and nothing changes
	resp = env.do(t, "PUT", "/api/users/"+operator.ID+"/role", models.RoleViewer, map[string]string{"role": "admin"})
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)
	var stored models.User
	require.NoError(t, env.db.First(&stored, "id = ?", operator.ID).Error)
	assert.Equal(t, models.RoleOperator, stored.Role)

	resp = env.do(t, "PUT", "/api/users/"+operator.ID+"/role", models.RoleAdmin, map[string]string{"role": "supervisor"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = env.do(t, "PUT", "/api/users/missing/role", models.RoleAdmin, map[string]string{"role": "viewer"})
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = env.do(t, "PUT", "/api/users/"+operator.ID+"/role", models.RoleAdmin, map[string]string{"role": "quality_engineer"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	require.NoError(t, env.db.First(&stored, "id = ?", operator.ID).Error)
	assert.Equal(t, models.RoleQualityEngineer, stored.Role)
}
