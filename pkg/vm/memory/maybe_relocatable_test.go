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
	"math"
	"math/big"
	"sort"
	"testing"

	"github.com/consensys/go-cairo/pkg/util/field/stark252"
	"github.com/consensys/go-cairo/pkg/vm/vmerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeRelocatable_ZeroValue(t *testing.T) {
	var v MaybeRelocatable
	//
	assert.True(t, v.IsFelt())
	assert.False(t, v.IsRelocatable())
	assert.True(t, v.IsZero())
	assert.True(t, v.Equal(FromInt(0)))
}

func TestMaybeRelocatable_Constructors(t *testing.T) {
	assert.True(t, FromSegment(2, 7).Equal(FromRelocatable(NewRelocatable(2, 7))))
	assert.True(t, FromInt(uint8(200)).Equal(FromFelt(stark252.New(200))))
	assert.True(t, FromInt(int32(-1)).Equal(FromFelt(stark252.New(0).Sub(stark252.New(1)))))
	assert.True(t, FromInt(int64(math.MinInt64)).Equal(FromBigInt(big.NewInt(math.MinInt64))))
	assert.True(t, FromInt(uint64(math.MaxUint64)).Equal(FromFelt(stark252.New(math.MaxUint64))))
}

func TestMaybeRelocatable_FromIntNegative(t *testing.T) {
	for _, n := range []int64{-1, -2, -128, math.MinInt32, math.MinInt64} {
		assert.True(t, FromInt(n).Equal(FromBigInt(big.NewInt(n))), "%d", n)
	}
	// Narrow types at their minimum
	assert.True(t, FromInt(int8(math.MinInt8)).Equal(FromInt(int64(-128))))
	assert.True(t, FromInt(int16(math.MinInt16)).Equal(FromInt(-32768)))
	// Adding back the magnitude yields zero
	sum, err := FromInt(-5).Add(FromInt(5))
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestMaybeRelocatable_Predicates(t *testing.T) {
	assert.True(t, FromSegment(0, 0).IsRelocatable())
	assert.False(t, FromSegment(0, 0).IsFelt())
	// An address is never zero, even at offset 0
	assert.False(t, FromSegment(0, 0).IsZero())
	assert.False(t, FromInt(1).IsZero())
	assert.True(t, FromInt(7).IsFelt())
}

func TestMaybeRelocatable_Projections(t *testing.T) {
	f, err := FromInt(9).TryIntoFelt()
	require.NoError(t, err)
	assert.Equal(t, stark252.New(9), f)
	//
	_, err = FromSegment(1, 2).TryIntoFelt()
	assert.ErrorIs(t, err, vmerrors.TypeMismatchNotFelt)
	//
	r, err := FromSegment(1, 2).TryIntoRelocatable()
	require.NoError(t, err)
	assert.Equal(t, NewRelocatable(1, 2), r)
	//
	_, err = FromInt(9).TryIntoRelocatable()
	assert.ErrorIs(t, err, vmerrors.TypeMismatchNotRelocatable)
	//
	n, err := FromInt(uint64(math.MaxUint64)).TryIntoUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), n)
	//
	_, err = FromInt(-1).TryIntoUint64()
	assert.ErrorIs(t, err, vmerrors.ValueTooLarge)
	//
	_, err = FromSegment(1, 2).TryIntoUint64()
	assert.ErrorIs(t, err, vmerrors.TypeMismatchNotFelt)
}

func TestMaybeRelocatable_TryIntoUint128(t *testing.T) {
	hi, lo, err := FromInt(uint64(math.MaxUint64)).TryIntoUint128()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), hi)
	assert.Equal(t, uint64(math.MaxUint64), lo)
	// 2^64 + 3
	hi, lo, err = FromFelt(stark252.New(math.MaxUint64).Add(stark252.New(4))).TryIntoUint128()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), hi)
	assert.Equal(t, uint64(3), lo)
	// 2^128 - 1 is the largest value which fits
	max128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	hi, lo, err = FromBigInt(max128).TryIntoUint128()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), hi)
	assert.Equal(t, uint64(math.MaxUint64), lo)
	//
	_, _, err = FromBigInt(new(big.Int).Lsh(big.NewInt(1), 128)).TryIntoUint128()
	assert.ErrorIs(t, err, vmerrors.ValueTooLarge)
	//
	_, _, err = FromInt(-1).TryIntoUint128()
	assert.ErrorIs(t, err, vmerrors.ValueTooLarge)
	//
	_, _, err = FromSegment(0, 1).TryIntoUint128()
	assert.ErrorIs(t, err, vmerrors.TypeMismatchNotFelt)
}

func TestMaybeRelocatable_Comparisons(t *testing.T) {
	var (
		addr = FromSegment(1, 5)
		felt = FromInt(5)
	)
	// Same variant
	assert.True(t, FromSegment(1, 4).Lt(addr))
	assert.True(t, FromSegment(0, 9).Lt(addr))
	assert.True(t, addr.Le(addr))
	assert.True(t, FromInt(6).Gt(felt))
	assert.True(t, felt.Ge(felt))
	assert.True(t, FromInt(-1).Gt(FromInt(math.MaxInt64)))
	// Mixed variants are never ordered by the predicates
	for _, pair := range [][2]MaybeRelocatable{{addr, felt}, {felt, addr}} {
		assert.False(t, pair[0].Lt(pair[1]))
		assert.False(t, pair[0].Le(pair[1]))
		assert.False(t, pair[0].Gt(pair[1]))
		assert.False(t, pair[0].Ge(pair[1]))
		assert.False(t, pair[0].Equal(pair[1]))
	}
}

func TestMaybeRelocatable_CmpBias(t *testing.T) {
	// An address is always less than a field element, regardless of contents.
	assert.Equal(t, -1, FromSegment(100, 100).Cmp(FromInt(0)))
	assert.Equal(t, 1, FromInt(0).Cmp(FromSegment(-5, 0)))
	assert.Equal(t, 0, FromSegment(1, 1).Cmp(FromSegment(1, 1)))
	assert.Equal(t, 0, FromInt(3).Cmp(FromInt(3)))
	//
	cells := []MaybeRelocatable{FromInt(2), FromSegment(1, 0), FromInt(1), FromSegment(-1, 3), FromSegment(0, 7)}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Cmp(cells[j]) < 0 })
	//
	expected := []MaybeRelocatable{FromSegment(-1, 3), FromSegment(0, 7), FromSegment(1, 0), FromInt(1), FromInt(2)}
	for i := range expected {
		assert.True(t, expected[i].Equal(cells[i]), "at %d: %s vs %s", i, expected[i], cells[i])
	}
}

func TestMaybeRelocatable_Add(t *testing.T) {
	// Field + Field, commutative
	a, b := FromInt(-3), FromInt(10)
	ab, err := a.Add(b)
	require.NoError(t, err)
	ba, err := b.Add(a)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba))
	assert.True(t, ab.Equal(FromInt(7)))
	// Field wraps around the modulus
	wrapped, err := FromInt(-1).Add(FromInt(1))
	require.NoError(t, err)
	assert.True(t, wrapped.IsZero())
	// Address + Field, in either order
	v, err := FromSegment(1, 4).Add(FromInt(6))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromSegment(1, 10)))
	v, err = FromInt(6).Add(FromSegment(1, 4))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromSegment(1, 10)))
	// Address + Address
	_, err = FromSegment(0, 10).Add(FromSegment(0, 10))
	assert.ErrorIs(t, err, vmerrors.RelocatableAdd)
	// Address + Field which does not fit
	_, err = FromSegment(0, math.MaxUint64).Add(FromInt(1))
	assert.ErrorIs(t, err, vmerrors.ValueTooLarge)
}

func TestMaybeRelocatable_Sub(t *testing.T) {
	v, err := FromSegment(2, 8).Sub(FromSegment(2, 5))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromSegment(2, 3)))
	//
	_, err = FromSegment(2, 8).Sub(FromSegment(1, 5))
	assert.ErrorIs(t, err, vmerrors.TypeMismatchNotRelocatable)
	//
	v, err = FromSegment(2, 8).Sub(FromInt(8))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromSegment(2, 0)))
	//
	_, err = FromSegment(2, 8).Sub(FromInt(9))
	assert.ErrorIs(t, err, vmerrors.RelocatableSubUsizeNegOffset)
	//
	_, err = FromSegment(2, 8).Sub(FromInt(-1))
	assert.ErrorIs(t, err, vmerrors.ValueTooLarge)
	//
	v, err = FromInt(3).Sub(FromInt(5))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInt(-2)))
	//
	_, err = FromInt(3).Sub(FromSegment(0, 1))
	assert.ErrorIs(t, err, vmerrors.SubRelocatableFromInt)
}

func TestMaybeRelocatable_Mul(t *testing.T) {
	v, err := FromInt(10).Mul(FromInt(5))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInt(50)))
	//
	for _, pair := range [][2]MaybeRelocatable{
		{FromSegment(0, 1), FromInt(2)},
		{FromInt(2), FromSegment(0, 1)},
		{FromSegment(0, 1), FromSegment(0, 1)},
	} {
		_, err := pair[0].Mul(pair[1])
		assert.ErrorIs(t, err, vmerrors.RelocatableMul)
	}
}

func TestMaybeRelocatable_RelocateValue(t *testing.T) {
	v, err := FromSegment(2, 7).RelocateValue(RelocationTable{1, 2, 5})
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInt(12)))
	//
	_, err = FromSegment(2, 7).RelocateValue(RelocationTable{1, 2})
	assert.ErrorIs(t, err, vmerrors.Relocation)
	//
	_, err = FromSegment(-1, 7).RelocateValue(RelocationTable{1, 2})
	assert.ErrorIs(t, err, vmerrors.TemporarySegmentInRelocation)
	// Field elements pass through unchanged, even when the table is empty
	v, err = FromInt(-4).RelocateValue(nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInt(-4)))
	// Relocation agrees with RelocateAddress
	table := RelocationTable{1, 30, 64}
	for s := range table {
		r := NewRelocatable(int64(s), 3)
		address, err := r.RelocateAddress(table)
		require.NoError(t, err)
		v, err := FromRelocatable(r).RelocateValue(table)
		require.NoError(t, err)
		assert.True(t, v.Equal(FromInt(address)))
	}
}

func TestMaybeRelocatable_String(t *testing.T) {
	assert.Equal(t, "-1:3", FromSegment(-1, 3).String())
	assert.Equal(t, "42", FromInt(42).String())
}
