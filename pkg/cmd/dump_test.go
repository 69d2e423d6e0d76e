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
package cmd

import (
	"testing"

	"github.com/consensys/go-cairo/pkg/util/field/stark252"
	"github.com/consensys/go-cairo/pkg/vm/memory"
	"github.com/consensys/go-cairo/pkg/vm/trace"
	"github.com/consensys/go-cairo/pkg/vm/vmerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `{
	"segments": [
		["0x480680017fff8000", "10", "0x208b7fff7fff7ffe"],
		["2:0", "0:3", "12", null, "1:1"],
		[]
	],
	"trace": [
		{"pc": "0:0", "ap": "1:2", "fp": "1:2"},
		{"pc": "0:2", "ap": "1:3", "fp": "1:2"}
	]
}`

func TestParseDump(t *testing.T) {
	dump, err := ParseDump([]byte(sampleDump))
	require.NoError(t, err)
	//
	require.Len(t, dump.Segments, 3)
	assert.Len(t, dump.Segments[1], 5)
	assert.Nil(t, dump.Segments[1][3])
	assert.True(t, dump.Segments[1][1].Equal(memory.FromSegment(0, 3)))
	assert.Equal(t, DumpEntry{memory.NewRelocatable(0, 2), memory.NewRelocatable(1, 3), memory.NewRelocatable(1, 2)},
		dump.Trace[1])
}

func TestParseDumpErrors(t *testing.T) {
	for _, text := range []string{
		`{"segments": [["1:x"]]}`,
		`{"segments": [], "trace": [{"pc": "7"}]}`,
		`{"segments": [[12]]}`,
		`[`,
	} {
		_, err := ParseDump([]byte(text))
		assert.Error(t, err, text)
	}
}

func TestRelocateDump(t *testing.T) {
	dump, err := ParseDump([]byte(sampleDump))
	require.NoError(t, err)
	//
	relocated, err := dump.Relocate()
	require.NoError(t, err)
	//
	assert.Equal(t, memory.RelocationTable{1, 4, 9}, relocated.Table)
	assert.Equal(t, []trace.RelocatedEntry{{Pc: 1, Ap: 6, Fp: 6}, {Pc: 3, Ap: 7, Fp: 6}}, relocated.Trace)
	//
	expected := []memory.RelocatedCell{
		{Address: 4, Value: stark252.New(9)},
		{Address: 5, Value: stark252.New(4)},
		{Address: 6, Value: stark252.New(12)},
		{Address: 8, Value: stark252.New(5)},
	}
	//
	require.Len(t, relocated.Memory, 7)
	assert.Equal(t, uint64(1), relocated.Memory[0].Address)
	assert.Equal(t, stark252.New(10), relocated.Memory[1].Value)
	assert.Equal(t, expected, relocated.Memory[3:])
}

func TestRelocateDumpTemporarySegment(t *testing.T) {
	dump, err := ParseDump([]byte(`{"segments": [["-1:0"]], "trace": []}`))
	require.NoError(t, err)
	//
	_, err = dump.Relocate()
	assert.ErrorIs(t, err, vmerrors.TemporarySegmentInRelocation)
	//
	dump, err = ParseDump([]byte(`{"segments": [["1"]], "trace": [{"pc": "0:0", "ap": "3:0", "fp": "0:0"}]}`))
	require.NoError(t, err)
	//
	_, err = dump.Relocate()
	assert.ErrorIs(t, err, vmerrors.Relocation)
}
