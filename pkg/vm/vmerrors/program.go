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

// ProgramError identifies a failure when loading a program.
type ProgramError uint8

// Members of the ProgramError set.
const (
	EntrypointNotFound ProgramError = iota
	ConstWithoutValue
	PrimeDiffers
	StrippedProgramNoMain
	InvalidHintPc
	UnsupportedBuiltin
	ProgramIO
	ProgramParse
)

var programErrors = []descriptor{
	{"EntrypointNotFound", "entrypoint not found"},
	{"ConstWithoutValue", "constant has no value"},
	{"PrimeDiffers", "program prime differs from the field prime"},
	{"StrippedProgramNoMain", "stripped program has no main"},
	{"InvalidHintPc", "hint pc is outside the program"},
	{"UnsupportedBuiltin", "builtin is not supported"},
	{"ProgramIO", "program could not be read"},
	{"ProgramParse", "program could not be parsed"},
}

// ProgramErrors returns every member of the ProgramError set, in declaration order.
func ProgramErrors() []ProgramError {
	return members[ProgramError](len(programErrors))
}

// Error implementation for the error interface.
func (e ProgramError) Error() string {
	return format("program", programErrors, uint(e))
}

func (e ProgramError) String() string {
	return name(programErrors, uint(e))
}
