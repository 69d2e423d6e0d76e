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
package stark252

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Bytes is the number of bytes needed to encode an Element.
const Bytes = fp.Bytes

// Element wraps fp.Element (i.e. the base field of the STARK curve, whose
// modulus is 2^251 + 17*2^192 + 1) to conform to the field.Element interface.
type Element struct {
	fp.Element
}

// New constructs an element holding the given value.
func New(val uint64) Element {
	return Element{fp.NewElement(val)}
}

// Modulus returns the field's prime as a big.Int.
func Modulus() *big.Int {
	return fp.Modulus()
}

// Parse constructs an element from a decimal or (0x-prefixed) hexadecimal
// string, optionally preceded by a minus sign.  Negative values wrap around the
// modulus, whilst values larger than the modulus are reduced.  Other integer
// notations (e.g. 0b or 0o prefixes, or underscore separators) are rejected.
func Parse(text string) (Element, error) {
	var (
		val    big.Int
		digits = strings.TrimPrefix(text, "-")
		base   = 10
	)
	//
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
		base = 16
	}
	// Reject anything big.Int accepts beyond plain digits (e.g. signs or
	// underscores)
	if !isDigits(digits, base) {
		return Element{}, fmt.Errorf("invalid field element \"%s\"", text)
	}
	//
	val.SetString(digits, base)
	//
	if len(digits) != len(text) && text[0] == '-' {
		val.Neg(&val)
	}
	//
	return FromBigInt(&val), nil
}

func isDigits(text string, base int) bool {
	for i := range len(text) {
		c := text[i]
		//
		switch {
		case c >= '0' && c <= '9':
		case base == 16 && c >= 'a' && c <= 'f':
		case base == 16 && c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	//
	return len(text) > 0
}

// FromBigInt constructs an element from a given big.Int, where negative values
// wrap around the modulus.
func FromBigInt(val *big.Int) Element {
	var elem fp.Element
	//
	elem.SetBigInt(val)
	//
	return Element{elem}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fp.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Equal returns true if x = y.
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var elem fp.Element
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return fp.Modulus()
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fp.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fp.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// ToUint64 returns the numerical value of x, provided it fits within 64 bits.
func (x Element) ToUint64() (uint64, bool) {
	if !x.Element.IsUint64() {
		return 0, false
	}
	//
	return x.Element.Uint64(), true
}

// ToUint128 returns the numerical value of x as a (hi,lo) pair of 64bit words,
// provided it fits within 128 bits.
func (x Element) ToUint128() (hi uint64, lo uint64, ok bool) {
	var bits = x.Element.Bits()
	//
	if bits[2] != 0 || bits[3] != 0 {
		return 0, 0, false
	}
	//
	return bits[1], bits[0], true
}

// SetBytes implementation for Element.
func (x Element) SetBytes(bytes []byte) Element {
	x.Element.SetBytes(bytes)
	//
	return x
}

// SetUint64 implementation for Element.
func (x Element) SetUint64(val uint64) Element {
	x.Element.SetUint64(val)
	//
	return x
}

// Bytes returns the big-endian encoded value of the Element, possibly with leading zeros.
func (x Element) Bytes() []byte {
	return x.Marshal()
}

// BigInt returns the canonical value of this element as a big.Int.
func (x Element) BigInt() *big.Int {
	var val big.Int
	//
	return x.Element.BigInt(&val)
}

// PutLittleEndian writes the canonical value of this element into the given
// array using little-endian byte order.
func (x Element) PutLittleEndian(bytes *[Bytes]byte) {
	fp.LittleEndian.PutElement(bytes, x.Element)
}

func (x Element) String() string {
	return x.Element.String()
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}
