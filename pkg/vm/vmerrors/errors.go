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

// Package vmerrors defines the closed sets of failures reported by the
// machine.  Each domain (execution, memory, math, builtin runners, trace and
// program loading) has its own error type, such that call sites can recover
// the domain of a failure using errors.As and then switch exhaustively over its
// members.  Members are plain values and, hence, can be compared directly or
// via errors.Is.
package vmerrors

import (
	"fmt"
)

// descriptor provides the human-readable details of an error member.
type descriptor struct {
	name    string
	message string
}

func name(table []descriptor, index uint) string {
	if index >= uint(len(table)) {
		return fmt.Sprintf("Unknown(%d)", index)
	}
	//
	return table[index].name
}

func format(domain string, table []descriptor, index uint) string {
	if index >= uint(len(table)) {
		return fmt.Sprintf("%s error: unknown error (%d)", domain, index)
	}
	//
	return fmt.Sprintf("%s error: %s", domain, table[index].message)
}

func members[E ~uint8](n int) []E {
	var kinds = make([]E, n)
	//
	for i := range kinds {
		kinds[i] = E(i)
	}
	//
	return kinds
}

// StopPointerError records the details of an InvalidStopPointer failure for a
// given builtin.  It unwraps to InvalidStopPointer.
type StopPointerError struct {
	// Name of the builtin whose stop pointer is invalid.
	Builtin string
	// Expected value for the stop pointer.
	Expected uint64
	// Stop pointer actually found.
	Found uint64
}

// Error implementation for the error interface.
func (e *StopPointerError) Error() string {
	return fmt.Sprintf("%s (builtin %s, expected %d, found %d)", InvalidStopPointer.Error(), e.Builtin, e.Expected,
		e.Found)
}

// Unwrap returns the underlying member of the RunnerError set.
func (e *StopPointerError) Unwrap() error {
	return InvalidStopPointer
}

// ProgramIOError records a failure reading a program from a given path.  It
// unwraps to both ProgramIO and the underlying I/O error.
type ProgramIOError struct {
	Path string
	Err  error
}

// Error implementation for the error interface.
func (e *ProgramIOError) Error() string {
	return fmt.Sprintf("%s (%s): %s", ProgramIO.Error(), e.Path, e.Err)
}

// Unwrap returns both ProgramIO and the underlying I/O error.
func (e *ProgramIOError) Unwrap() []error {
	return []error{ProgramIO, e.Err}
}
