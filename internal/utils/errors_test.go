// errors_test.go
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

package utils_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/testutil"
	"github.com/localnerve/qms/internal/types"
	"github.com/localnerve/qms/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorHandlerEnvelope(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(zap.New(core))})
	app.Get("/custom", func(c *fiber.Ctx) error {
		return types.NewError(fiber.StatusForbidden, types.ErrTypeForbidden, "no %s", "entry")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "too big")
	})
	app.Get("/raw", func(c *fiber.Ctx) error {
		return errors.New("connection refused: secret-host:5432")
	})

	cases := []struct {
		path    string
		status  int
		message string
		errType string
	}{
		{"/custom", fiber.StatusForbidden, "no entry", types.ErrTypeForbidden},
		{"/fiber", fiber.StatusRequestEntityTooLarge, "too big", types.ErrTypeValidation},
		{"/raw", fiber.StatusInternalServerError, "Internal server error", types.ErrTypeInternal},
		{"/missing", fiber.StatusNotFound, "Cannot GET /missing", types.ErrTypeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			testutil.AssertStatus(t, resp, tc.status)

			var body utils.ErrorResponseStruct
			testutil.ParseJSON(t, resp, &body)
			assert.Equal(t, tc.status, body.Status)
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, tc.errType, body.Type)
			assert.False(t, body.Ok)
			assert.Equal(t, tc.path, body.URL)
			assert.NotEmpty(t, body.Timestamp)
		})
	}

	assert.Equal(t, 1, logs.FilterMessage("unhandled error").Len())
}
