// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package memory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text     string
		expected MaybeRelocatable
	}{
		{"2:7", FromSegment(2, 7)},
		{"-1:0", FromSegment(-1, 0)},
		{" 0:3 ", FromSegment(0, 3)},
		{"10", FromInt(10)},
		{"0x1f", FromInt(31)},
		{"-2", FromInt(-2)},
	}
	//
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			v, err := Parse(test.text)
			require.NoError(t, err)
			assert.True(t, test.expected.Equal(v), "expected %s, got %s", test.expected, v)
		})
	}
	//
	for _, text := range []string{"", "1:", ":1", "1:-1", "a:1", "1:2:3", "xyz", "0b101", "0o7", "1_000", "+5"} {
		_, err := Parse(text)
		assert.Error(t, err, text)
	}
}

func TestRelocatableText(t *testing.T) {
	var r Relocatable
	//
	text, err := NewRelocatable(-3, 9).MarshalText()
	require.NoError(t, err)
	require.NoError(t, r.UnmarshalText(text))
	assert.Equal(t, NewRelocatable(-3, 9), r)
	assert.Error(t, r.UnmarshalText([]byte("12")))
	assert.Equal(t, NewRelocatable(-3, 9), r)
}

func TestMaybeRelocatableJson(t *testing.T) {
	var cells []*MaybeRelocatable
	//
	require.NoError(t, json.Unmarshal([]byte(`["1:2", null, "0x10"]`), &cells))
	require.Len(t, cells, 3)
	assert.True(t, cells[0].Equal(FromSegment(1, 2)))
	assert.Nil(t, cells[1])
	assert.True(t, cells[2].Equal(FromInt(16)))
	//
	bytes, err := json.Marshal([]MaybeRelocatable{FromSegment(1, 2), FromInt(16)})
	require.NoError(t, err)
	assert.Equal(t, `["1:2","16"]`, string(bytes))
	// A bare cell cannot be null
	var cell MaybeRelocatable
	assert.Error(t, json.Unmarshal([]byte(`null`), &cell))
	assert.Error(t, json.Unmarshal([]byte(`12`), &cell))
}
