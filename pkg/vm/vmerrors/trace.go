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

// TraceError identifies a misuse of the execution trace, whose relocation is a
// one-shot finalisation step: a trace cannot be used when tracing is disabled,
// cannot be relocated twice and its relocated form cannot be read before it
// has been relocated.
type TraceError uint8

// Members of the TraceError set.
const (
	TraceNotEnabled TraceError = iota
	AlreadyRelocated
	TraceNotRelocated
)

var traceErrors = []descriptor{
	{"TraceNotEnabled", "tracing is not enabled"},
	{"AlreadyRelocated", "trace has already been relocated"},
	{"TraceNotRelocated", "trace has not been relocated"},
}

// TraceErrors returns every member of the TraceError set, in declaration order.
func TraceErrors() []TraceError {
	return members[TraceError](len(traceErrors))
}

// Error implementation for the error interface.
func (e TraceError) Error() string {
	return format("trace", traceErrors, uint(e))
}

func (e TraceError) String() string {
	return name(traceErrors, uint(e))
}
