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

// MemoryError identifies a failure related to the segmented memory, such as
// accessing an unallocated segment, reading an unknown cell or an inconsistent
// relocation of segments.
type MemoryError uint8

// Members of the MemoryError set.
const (
	UnallocatedSegment MemoryError = iota
	SegmentHasMoreAccessedAddressesThanSize
	MissingSegmentUsedSizes
	Relocation
	TemporarySegmentInRelocation
	DuplicatedRelocation
	AddressNotInTemporarySegment
	NonZeroOffset
	UnknownMemoryCell
	ExpectedInteger
	ExpectedRelocatable
	GetRangeMemoryGap
	RangeCheckNumberOutOfBounds
	RangecheckNonInt
)

var memoryErrors = []descriptor{
	{"UnallocatedSegment", "segment has not been allocated"},
	{"SegmentHasMoreAccessedAddressesThanSize", "segment has more accessed addresses than its size"},
	{"MissingSegmentUsedSizes", "segment used sizes have not been computed"},
	{"Relocation", "segment index is outside the relocation table"},
	{"TemporarySegmentInRelocation", "temporary segment found during relocation"},
	{"DuplicatedRelocation", "temporary segment has already been relocated"},
	{"AddressNotInTemporarySegment", "address is not in a temporary segment"},
	{"NonZeroOffset", "relocation source has a non-zero offset"},
	{"UnknownMemoryCell", "memory cell has not been written"},
	{"ExpectedInteger", "expected an integer memory cell"},
	{"ExpectedRelocatable", "expected a relocatable memory cell"},
	{"GetRangeMemoryGap", "memory range contains a gap"},
	{"RangeCheckNumberOutOfBounds", "range check value is out of bounds"},
	{"RangecheckNonInt", "range check value is not an integer"},
}

// MemoryErrors returns every member of the MemoryError set, in declaration order.
func MemoryErrors() []MemoryError {
	return members[MemoryError](len(memoryErrors))
}

// Error implementation for the error interface.
func (e MemoryError) Error() string {
	return format("memory", memoryErrors, uint(e))
}

func (e MemoryError) String() string {
	return name(memoryErrors, uint(e))
}
