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
	"fmt"
	"math"
	"math/bits"

	"github.com/consensys/go-cairo/pkg/util/field"
	"github.com/consensys/go-cairo/pkg/util/field/stark252"
	"github.com/consensys/go-cairo/pkg/vm/vmerrors"
)

// Felt is the type of field elements held in memory cells.
type Felt = stark252.Element

// Relocatable is an address within a given memory segment.  Segments are
// identified by a signed index, where negative indices denote temporary
// segments (i.e. those not yet placed into the final memory layout).  The
// offset of an address is never negative: arithmetic which would make it so
// fails rather than wrapping around.
//
// Relocatable addresses are totally ordered, first by segment index and then by
// offset.
type Relocatable struct {
	SegmentIndex int64
	Offset       uint64
}

// NewRelocatable constructs an address from a segment index and offset.
func NewRelocatable(segment int64, offset uint64) Relocatable {
	return Relocatable{segment, offset}
}

// IsTemporary checks whether this address lies within a temporary segment.
func (p Relocatable) IsTemporary() bool {
	return p.SegmentIndex < 0
}

// Cmp returns -1 if p < q, 0 if p = q and 1 if p > q.  Segment indices are
// compared as signed integers, hence temporary segments come before all others.
func (p Relocatable) Cmp(q Relocatable) int {
	switch {
	case p.SegmentIndex < q.SegmentIndex:
		return -1
	case p.SegmentIndex > q.SegmentIndex:
		return 1
	case p.Offset < q.Offset:
		return -1
	case p.Offset > q.Offset:
		return 1
	default:
		return 0
	}
}

// Equal checks whether two addresses are identical.
func (p Relocatable) Equal(q Relocatable) bool {
	return p == q
}

// Lt returns p < q
func (p Relocatable) Lt(q Relocatable) bool {
	return p.Cmp(q) < 0
}

// Le returns p <= q
func (p Relocatable) Le(q Relocatable) bool {
	return p.Cmp(q) <= 0
}

// Gt returns p > q
func (p Relocatable) Gt(q Relocatable) bool {
	return p.Cmp(q) > 0
}

// Ge returns p >= q
func (p Relocatable) Ge(q Relocatable) bool {
	return p.Cmp(q) >= 0
}

// Sub subtracts the offset of q from that of p, where both must be in the same
// segment.  The result is in the same segment as p.
func (p Relocatable) Sub(q Relocatable) (Relocatable, error) {
	if p.SegmentIndex != q.SegmentIndex {
		return Relocatable{}, vmerrors.TypeMismatchNotRelocatable
	}
	//
	return p.SubUint(q.Offset)
}

// SubUint subtracts n from the offset of p.
func (p Relocatable) SubUint(n uint64) (Relocatable, error) {
	if n > p.Offset {
		return Relocatable{}, vmerrors.RelocatableSubUsizeNegOffset
	}
	//
	return Relocatable{p.SegmentIndex, p.Offset - n}, nil
}

// AddUint adds n to the offset of p, failing if the offset overflows.
func (p Relocatable) AddUint(n uint64) (Relocatable, error) {
	offset, carry := bits.Add64(p.Offset, n, 0)
	//
	if carry != 0 {
		return Relocatable{}, vmerrors.RelocatableAdditionOffsetExceeded
	}
	//
	return Relocatable{p.SegmentIndex, offset}, nil
}

// AddUintInPlace adds n to the offset of this address.  The address is left
// unchanged on failure.
func (p *Relocatable) AddUintInPlace(n uint64) error {
	r, err := p.AddUint(n)
	//
	if err == nil {
		*p = r
	}
	//
	return err
}

// AddInt adds a signed value to the offset of p.
func (p Relocatable) AddInt(n int64) (Relocatable, error) {
	if n >= 0 {
		return p.AddUint(uint64(n))
	} else if n == math.MinInt64 {
		return p.SubUint(uint64(math.MaxInt64) + 1)
	}
	//
	return p.SubUint(uint64(-n))
}

// SubFelt subtracts a field element from the offset of p.  The field element
// must fit within 64 bits.
func (p Relocatable) SubFelt(f Felt) (Relocatable, error) {
	n, ok := field.ToUint64(f)
	//
	if !ok {
		return Relocatable{}, vmerrors.ValueTooLarge
	}
	//
	return p.SubUint(n)
}

// AddFelt adds a field element to the offset of p.  The addition is performed
// within the field and the sum then narrowed back into an offset, hence it
// wraps around the modulus before the width check is applied.
func (p Relocatable) AddFelt(f Felt) (Relocatable, error) {
	offset, ok := field.ToUint64(field.Uint64[Felt](p.Offset).Add(f))
	//
	if !ok {
		return Relocatable{}, vmerrors.ValueTooLarge
	}
	//
	return Relocatable{p.SegmentIndex, offset}, nil
}

// AddFeltInPlace adds a field element to the offset of this address.  The
// address is left unchanged on failure.
func (p *Relocatable) AddFeltInPlace(f Felt) error {
	r, err := p.AddFelt(f)
	//
	if err == nil {
		*p = r
	}
	//
	return err
}

// AddMaybeRelocatableInPlace adds a cell value to the offset of this address,
// which is only permitted when the value is a field element.
func (p *Relocatable) AddMaybeRelocatableInPlace(v MaybeRelocatable) error {
	f, err := v.TryIntoFelt()
	//
	if err != nil {
		return err
	}
	//
	return p.AddFeltInPlace(f)
}

// RelocateAddress maps this address into the flat address space described by a
// given relocation table.  Temporary segments cannot be relocated, and neither
// can segments beyond the end of the table.
func (p Relocatable) RelocateAddress(table RelocationTable) (uint64, error) {
	if p.SegmentIndex < 0 {
		return 0, vmerrors.TemporarySegmentInRelocation
	} else if uint64(p.SegmentIndex) >= uint64(len(table)) {
		return 0, vmerrors.Relocation
	}
	//
	address, carry := bits.Add64(table[p.SegmentIndex], p.Offset, 0)
	//
	if carry != 0 {
		return 0, vmerrors.RelocatableAdditionOffsetExceeded
	}
	//
	return address, nil
}

// AdjustedSegmentIndex returns the segment index of this address such that
// temporary segments -1, -2, -3, ... map to 0, 1, 2, ...  Non-negative indices
// are returned unchanged.  Thus, the result for a temporary segment collides
// with that of some real segment, and must only be used to index structures
// dedicated to temporary segments.
func (p Relocatable) AdjustedSegmentIndex() uint64 {
	if p.SegmentIndex < 0 {
		return uint64(-(p.SegmentIndex + 1))
	}
	//
	return uint64(p.SegmentIndex)
}

func (p Relocatable) String() string {
	return fmt.Sprintf("%d:%d", p.SegmentIndex, p.Offset)
}
