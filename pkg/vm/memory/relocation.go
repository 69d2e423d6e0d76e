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
	"math/bits"

	"github.com/consensys/go-cairo/pkg/vm/vmerrors"
)

// RelocationTable holds the base address of each (non-temporary) segment within
// the flat address space, indexed by segment index.  Tables are constructed
// once a run has halted, and are read-only thereafter.
type RelocationTable []uint64

// NewRelocationTable constructs the relocation table for a sequence of segment
// sizes (given in segment creation order).  Segment 0 is placed at address 1,
// with each subsequent segment placed immediately after its predecessor.
func NewRelocationTable(sizes []uint64) (RelocationTable, error) {
	var (
		table = make(RelocationTable, len(sizes))
		base  = uint64(1)
		carry uint64
	)
	//
	for i, size := range sizes {
		table[i] = base
		//
		if base, carry = bits.Add64(base, size, 0); carry != 0 {
			return nil, vmerrors.RelocatableAdditionOffsetExceeded
		}
	}
	//
	return table, nil
}

// RelocateValues relocates every value in a given sequence, stopping at the
// first failure.
func RelocateValues(values []MaybeRelocatable, table RelocationTable) ([]Felt, error) {
	var felts = make([]Felt, len(values))
	//
	for i, v := range values {
		relocated, err := v.RelocateValue(table)
		//
		if err != nil {
			return nil, err
		}
		// Relocated values are always field elements
		felts[i] = relocated.felt
	}
	//
	return felts, nil
}

// RelocatedCell is a cell of the flat (i.e. relocated) memory.
type RelocatedCell struct {
	Address uint64
	Value   Felt
}

// RelocateSegments relocates the contents of a sequence of segments, where
// segment i is placed at table[i].  Unwritten cells (i.e. gaps) are represented
// by nil and are omitted from the result, which is therefore sorted by address
// but not necessarily contiguous.
func RelocateSegments(segments [][]*MaybeRelocatable, table RelocationTable) ([]RelocatedCell, error) {
	var cells []RelocatedCell
	//
	for i, segment := range segments {
		for j, cell := range segment {
			if cell == nil {
				continue
			}
			//
			address, err := NewRelocatable(int64(i), uint64(j)).RelocateAddress(table)
			if err != nil {
				return nil, err
			}
			//
			value, err := cell.RelocateValue(table)
			if err != nil {
				return nil, err
			}
			//
			cells = append(cells, RelocatedCell{address, value.felt})
		}
	}
	//
	return cells, nil
}
