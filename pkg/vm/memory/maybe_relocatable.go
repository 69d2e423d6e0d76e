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
	"math/big"

	"github.com/consensys/go-cairo/pkg/util/field"
	"github.com/consensys/go-cairo/pkg/util/field/stark252"
	"github.com/consensys/go-cairo/pkg/vm/vmerrors"
	"golang.org/x/exp/constraints"
)

// MaybeRelocatable is the value held in (or computed from) a memory cell.  A
// cell value is either an address (i.e. a Relocatable) or a field element, and
// exactly one of these is held at any time.  The zero value holds the field
// element 0.
type MaybeRelocatable struct {
	relocatable   Relocatable
	felt          Felt
	isRelocatable bool
}

// FromRelocatable constructs a cell value holding a given address.
func FromRelocatable(r Relocatable) MaybeRelocatable {
	return MaybeRelocatable{relocatable: r, isRelocatable: true}
}

// FromSegment constructs a cell value holding the address with the given
// segment index and offset.
func FromSegment(segment int64, offset uint64) MaybeRelocatable {
	return FromRelocatable(Relocatable{segment, offset})
}

// FromFelt constructs a cell value holding a given field element.
func FromFelt(f Felt) MaybeRelocatable {
	return MaybeRelocatable{felt: f}
}

// FromInt constructs a cell value holding a given integer lifted into the
// field.  Negative integers wrap around the modulus.
func FromInt[T constraints.Integer](n T) MaybeRelocatable {
	if n >= 0 {
		return FromFelt(field.Uint64[Felt](uint64(n)))
	}
	//
	return FromFelt(field.Int64[Felt](int64(n)))
}

// FromBigInt constructs a cell value holding a given integer lifted into the
// field.
func FromBigInt(n *big.Int) MaybeRelocatable {
	return FromFelt(stark252.FromBigInt(n))
}

// IsRelocatable checks whether this value holds an address.
func (v MaybeRelocatable) IsRelocatable() bool {
	return v.isRelocatable
}

// IsFelt checks whether this value holds a field element.
func (v MaybeRelocatable) IsFelt() bool {
	return !v.isRelocatable
}

// IsZero checks whether this value is the field element 0.  An address is
// never zero.
func (v MaybeRelocatable) IsZero() bool {
	return !v.isRelocatable && v.felt.IsZero()
}

// TryIntoFelt returns the field element held by this value, or fails if it
// holds an address.
func (v MaybeRelocatable) TryIntoFelt() (Felt, error) {
	if v.isRelocatable {
		return Felt{}, vmerrors.TypeMismatchNotFelt
	}
	//
	return v.felt, nil
}

// TryIntoRelocatable returns the address held by this value, or fails if it
// holds a field element.
func (v MaybeRelocatable) TryIntoRelocatable() (Relocatable, error) {
	if !v.isRelocatable {
		return Relocatable{}, vmerrors.TypeMismatchNotRelocatable
	}
	//
	return v.relocatable, nil
}

// TryIntoUint64 returns the field element held by this value as a uint64.  This
// fails if the value holds an address, or a field element which does not fit
// in 64 bits.
func (v MaybeRelocatable) TryIntoUint64() (uint64, error) {
	f, err := v.TryIntoFelt()
	//
	if err != nil {
		return 0, err
	} else if n, ok := field.ToUint64(f); ok {
		return n, nil
	}
	//
	return 0, vmerrors.ValueTooLarge
}

// TryIntoUint128 returns the field element held by this value split into its
// high and low 64-bit halves.  This fails if the value holds an address, or a
// field element which does not fit in 128 bits.
func (v MaybeRelocatable) TryIntoUint128() (hi uint64, lo uint64, err error) {
	f, err := v.TryIntoFelt()
	//
	if err != nil {
		return 0, 0, err
	} else if hi, lo, ok := f.ToUint128(); ok {
		return hi, lo, nil
	}
	//
	return 0, 0, vmerrors.ValueTooLarge
}

// Equal checks whether two values hold the same variant with the same
// contents.
func (v MaybeRelocatable) Equal(w MaybeRelocatable) bool {
	switch {
	case v.isRelocatable && w.isRelocatable:
		return v.relocatable == w.relocatable
	case !v.isRelocatable && !w.isRelocatable:
		return v.felt.Equal(w.felt)
	default:
		return false
	}
}

// Cmp returns -1 if v < w, 0 if v = w and 1 if v > w.  Values of the same
// variant are compared as addresses or field elements, respectively.  Across
// variants, an address is always less than a field element.  This bias makes
// the order total (e.g. for sorting cells of mixed variants) but does not
// relate the two domains in any meaningful way.
func (v MaybeRelocatable) Cmp(w MaybeRelocatable) int {
	switch {
	case v.isRelocatable && w.isRelocatable:
		return v.relocatable.Cmp(w.relocatable)
	case !v.isRelocatable && !w.isRelocatable:
		return v.felt.Cmp(w.felt)
	case v.isRelocatable:
		return -1
	default:
		return 1
	}
}

// Lt returns v < w, or false if v and w hold different variants.
func (v MaybeRelocatable) Lt(w MaybeRelocatable) bool {
	return v.isRelocatable == w.isRelocatable && v.Cmp(w) < 0
}

// Le returns v <= w, or false if v and w hold different variants.
func (v MaybeRelocatable) Le(w MaybeRelocatable) bool {
	return v.isRelocatable == w.isRelocatable && v.Cmp(w) <= 0
}

// Gt returns v > w, or false if v and w hold different variants.
func (v MaybeRelocatable) Gt(w MaybeRelocatable) bool {
	return v.isRelocatable == w.isRelocatable && v.Cmp(w) > 0
}

// Ge returns v >= w, or false if v and w hold different variants.
func (v MaybeRelocatable) Ge(w MaybeRelocatable) bool {
	return v.isRelocatable == w.isRelocatable && v.Cmp(w) >= 0
}

// Add computes v + w.  Adding a field element to an address (in either order)
// shifts its offset, whilst adding two addresses is not permitted.
func (v MaybeRelocatable) Add(w MaybeRelocatable) (MaybeRelocatable, error) {
	switch {
	case v.isRelocatable && w.isRelocatable:
		return MaybeRelocatable{}, vmerrors.RelocatableAdd
	case v.isRelocatable:
		return liftRelocatable(v.relocatable.AddFelt(w.felt))
	case w.isRelocatable:
		return liftRelocatable(w.relocatable.AddFelt(v.felt))
	default:
		return FromFelt(v.felt.Add(w.felt)), nil
	}
}

// Sub computes v - w.  Subtracting an address from a field element is not
// permitted, and subtracting two addresses requires them to be in the same
// segment.
func (v MaybeRelocatable) Sub(w MaybeRelocatable) (MaybeRelocatable, error) {
	switch {
	case v.isRelocatable && w.isRelocatable:
		return liftRelocatable(v.relocatable.Sub(w.relocatable))
	case v.isRelocatable:
		return liftRelocatable(v.relocatable.SubFelt(w.felt))
	case w.isRelocatable:
		return MaybeRelocatable{}, vmerrors.SubRelocatableFromInt
	default:
		return FromFelt(v.felt.Sub(w.felt)), nil
	}
}

// Mul computes v * w, which is only permitted between field elements.
func (v MaybeRelocatable) Mul(w MaybeRelocatable) (MaybeRelocatable, error) {
	if v.isRelocatable || w.isRelocatable {
		return MaybeRelocatable{}, vmerrors.RelocatableMul
	}
	//
	return FromFelt(v.felt.Mul(w.felt)), nil
}

// RelocateValue maps this value into the flat address space described by a
// given relocation table.  Field elements are returned unchanged, whilst
// addresses are relocated and lifted into the field.
func (v MaybeRelocatable) RelocateValue(table RelocationTable) (MaybeRelocatable, error) {
	if !v.isRelocatable {
		return v, nil
	}
	//
	address, err := v.relocatable.RelocateAddress(table)
	//
	if err != nil {
		return MaybeRelocatable{}, err
	}
	//
	return FromInt(address), nil
}

func (v MaybeRelocatable) String() string {
	if v.isRelocatable {
		return v.relocatable.String()
	}
	//
	return v.felt.String()
}

func liftRelocatable(r Relocatable, err error) (MaybeRelocatable, error) {
	if err != nil {
		return MaybeRelocatable{}, err
	}
	//
	return FromRelocatable(r), nil
}
