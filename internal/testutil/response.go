// response.go
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

package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/localnerve/qms/internal/utils"
	"github.com/stretchr/testify/require"
)

// AssertStatus stops the test when the status differs, reporting the body
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode == expected {
		return
	}
	body, _ := io.ReadAll(resp.Body)
	require.Equalf(t, expected, resp.StatusCode, "body: %s", body)
}

// ParseJSON decodes and closes the response body
func ParseJSON(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "read response body")
	require.NoErrorf(t, json.Unmarshal(body, target), "decode body: %s", body)
}

// ParseError decodes the error envelope and checks its status and type
func ParseError(t *testing.T, resp *http.Response, status int, errType string) utils.ErrorResponseStruct {
	t.Helper()
	AssertStatus(t, resp, status)

	var envelope utils.ErrorResponseStruct
	ParseJSON(t, resp, &envelope)
	require.False(t, envelope.Ok)
	require.Equal(t, status, envelope.Status)
	require.Equal(t, errType, envelope.Type)
	return envelope
}
