// types_test.go
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

package types

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    FlexInt
		wantErr bool
	}{
		{in: `12`, want: FlexInt{Int: 12, Set: true}},
		{in: `"500"`, want: FlexInt{Int: 500, Set: true}},
		{in: `" 7 "`, want: FlexInt{Int: 7, Set: true}},
		{in: `""`, want: FlexInt{}},
		{in: `null`, want: FlexInt{}},
		{in: `"twelve"`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var body struct {
				Qty FlexInt `json:"qty"`
			}
			err := json.Unmarshal([]byte(`{"qty":`+tt.in+`}`), &body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, body.Qty)
		})
	}
}

func TestFlexIntPtrAndMarshal(t *testing.T) {
	assert.Nil(t, FlexInt{}.Ptr())
	p := IntPtr(3).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)

	out, err := json.Marshal(struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
	}{A: IntPtr(4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":4,"b":null}`, string(out))
}

func TestFlexListUnmarshal(t *testing.T) {
	var list FlexList[string]

	require.NoError(t, json.Unmarshal([]byte(`["Ana","Ben"]`), &list))
	assert.Equal(t, []string{"Ana", "Ben"}, list.Slice())

	require.NoError(t, json.Unmarshal([]byte(`"Ana"`), &list))
	assert.Equal(t, []string{"Ana"}, list.Slice())

	require.NoError(t, json.Unmarshal([]byte(`null`), &list))
	assert.Nil(t, list.Slice())

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &list))
}

func TestJoinList(t *testing.T) {
	joined := JoinList(FlexList[string]{"Ana", "  ", "Ben "}, ", ")
	require.NotNil(t, joined)
	assert.Equal(t, "Ana, Ben", *joined)

	assert.Nil(t, JoinList(nil, ", "))
	assert.Nil(t, JoinList(FlexList[string]{" "}, ", "))
}

func TestNewError(t *testing.T) {
	err := NewError(http.StatusNotFound, ErrTypeNotFound, "%s not found", "Complaint")
	assert.Equal(t, "Complaint not found", err.Message)
	assert.Equal(t, "404: Complaint not found [type: not_found]", err.Error())
}
