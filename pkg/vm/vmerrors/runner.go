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

// RunnerError identifies a failure in the bookkeeping of a builtin runner, or a
// mismatch between the builtins of a program and those of the chosen layout.
type RunnerError uint8

// Members of the RunnerError set.
const (
	NoStopPointer RunnerError = iota
	InvalidStopPointer
	InvalidStopPointerIndex
	BuiltinExpectedInteger
	BuiltinNotInLayout
	IntegerBiggerThanPowerOfTwo
)

var runnerErrors = []descriptor{
	{"NoStopPointer", "builtin has no stop pointer"},
	{"InvalidStopPointer", "builtin has an invalid stop pointer"},
	{"InvalidStopPointerIndex", "builtin stop pointer index is out of range"},
	{"BuiltinExpectedInteger", "builtin expected an integer value"},
	{"BuiltinNotInLayout", "builtin is not present in the layout"},
	{"IntegerBiggerThanPowerOfTwo", "integer is bigger than the permitted power of two"},
}

// RunnerErrors returns every member of the RunnerError set, in declaration order.
func RunnerErrors() []RunnerError {
	return members[RunnerError](len(runnerErrors))
}

// Error implementation for the error interface.
func (e RunnerError) Error() string {
	return format("runner", runnerErrors, uint(e))
}

func (e RunnerError) String() string {
	return name(runnerErrors, uint(e))
}
