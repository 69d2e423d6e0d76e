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
package vmerrors

// MathError identifies an illegal arithmetic operation between cell values or
// addresses, including offsets which overflow or underflow and field values
// which do not fit into a machine word.
type MathError uint8

// Members of the MathError set.
const (
	RelocatableAdd MathError = iota
	SubRelocatableFromInt
	RelocatableSubUsizeNegOffset
	ValueTooLarge
	SubWithOverflow
	RelocatableAdditionOffsetExceeded
	RelocatableMul
	PointNotOnCurve
	NotOutputCell
)

var mathErrors = []descriptor{
	{"RelocatableAdd", "cannot add two relocatable values"},
	{"SubRelocatableFromInt", "cannot subtract a relocatable value from a field element"},
	{"RelocatableSubUsizeNegOffset", "offset of relocatable value would become negative"},
	{"ValueTooLarge", "value does not fit into the target width"},
	{"SubWithOverflow", "subtraction overflowed"},
	{"RelocatableAdditionOffsetExceeded", "offset of relocatable value exceeds its maximum"},
	{"RelocatableMul", "cannot multiply a relocatable value"},
	{"PointNotOnCurve", "point is not on the curve"},
	{"NotOutputCell", "cell is not an output cell"},
}

// MathErrors returns every member of the MathError set, in declaration order.
func MathErrors() []MathError {
	return members[MathError](len(mathErrors))
}

// Error implementation for the error interface.
func (e MathError) Error() string {
	return format("math", mathErrors, uint(e))
}

func (e MathError) String() string {
	return name(mathErrors, uint(e))
}
