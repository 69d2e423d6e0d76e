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
package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  Elements are values: every operation
// returns a fresh element and leaves its operands untouched.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.  Elements are
	// ordered by their canonical (i.e. fully reduced) integer value.
	Cmp(y Operand) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Compute x - y
	Sub(y Operand) Operand
	// Text returns the numerical value of x in the given base.
	Text(base int) string
	// SetUint64 returns an element holding the given value.
	SetUint64(uint64) Operand
	// SetBytes returns an element holding the given big-endian value, reduced
	// modulo the field's prime.
	SetBytes([]byte) Operand
	// Bytes returns the canonical big-endian encoding of this element.
	Bytes() []byte
	// ToUint64 narrows this element into a uint64, returning false when its
	// canonical value does not fit.
	ToUint64() (uint64, bool)
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// BigInt construct a field element from a given big.Int
func BigInt[F Element[F]](val big.Int) F {
	var (
		element F
	)
	// Handle negative values
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return element.SetBytes(val.Bytes())
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Int64 constructs a field element from a given int64.  Negative values wrap
// around the modulus, such that Int64(-1) is the largest element of the field.
func Int64[F Element[F]](val int64) F {
	var element F
	//
	if val >= 0 {
		return element.SetUint64(uint64(val))
	}
	// Negate without overflowing on math.MinInt64
	magnitude := element.SetUint64(uint64(-(val + 1))).Add(One[F]())
	//
	return element.Sub(magnitude)
}

// FromBigEndianBytes constructs an element from an array of bytes given in big
// endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) F {
	var element F
	//
	return element.SetBytes(bytes)
}

// ToUint64 narrows a field element into a uint64, returning false if its value
// is too large.
func ToUint64[F Element[F]](element F) (uint64, bool) {
	return element.ToUint64()
}

// Pow takes a given value to the power n.
func Pow[F Element[F]](val F, n uint64) F {
	var result = One[F]()
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(val)
		}
		//
		val = val.Mul(val)
	}
	//
	return result
}
