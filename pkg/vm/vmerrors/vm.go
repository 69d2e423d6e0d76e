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

// VirtualMachineError identifies a failure arising during the fetch-decode-execute
// cycle of the machine.  This covers decoding failures, operand deduction
// failures, violations of an opcode's contract and type errors between cells.
type VirtualMachineError uint8

// Members of the VirtualMachineError set.
const (
	InstructionFetchingFailed VirtualMachineError = iota
	InstructionEncodingError
	InvalidInstructionEncoding
	FailedToComputeOp0
	FailedToComputeOp1
	FailedToComputeOperands
	NoDst
	UnconstrainedResAdd
	UnconstrainedResJump
	UnconstrainedResJumpRel
	UnconstrainedResAssertEq
	DiffAssertValues
	InvalidOpcode
	InvalidPcUpdate
	InvalidApUpdate
	InvalidResLogic
	InvalidOp1Reg
	TypeMismatchNotFelt
	TypeMismatchNotRelocatable
	AddRelocToRelocForbidden
	MulRelocForbidden
	RunNotFinished
	CantWriteReturnPc
	CantWriteReturnFp
	NoPendingInstruction
)

var virtualMachineErrors = []descriptor{
	{"InstructionFetchingFailed", "failed to fetch instruction"},
	{"InstructionEncodingError", "instruction encoding is not a valid field element"},
	{"InvalidInstructionEncoding", "instruction encoding exceeds 64 bits"},
	{"FailedToComputeOp0", "failed to compute or deduce op0"},
	{"FailedToComputeOp1", "failed to compute or deduce op1"},
	{"FailedToComputeOperands", "failed to compute operands"},
	{"NoDst", "destination operand could not be deduced"},
	{"UnconstrainedResAdd", "res is unconstrained for an add instruction"},
	{"UnconstrainedResJump", "res is unconstrained for an absolute jump"},
	{"UnconstrainedResJumpRel", "res is unconstrained for a relative jump"},
	{"UnconstrainedResAssertEq", "res is unconstrained for an assert_eq instruction"},
	{"DiffAssertValues", "an assert_eq instruction failed: dst != res"},
	{"InvalidOpcode", "invalid opcode"},
	{"InvalidPcUpdate", "invalid pc update"},
	{"InvalidApUpdate", "invalid ap update"},
	{"InvalidResLogic", "invalid res logic"},
	{"InvalidOp1Reg", "invalid op1 register"},
	{"TypeMismatchNotFelt", "expected a field element"},
	{"TypeMismatchNotRelocatable", "expected a relocatable value in the same segment"},
	{"AddRelocToRelocForbidden", "cannot add two relocatable values"},
	{"MulRelocForbidden", "cannot multiply a relocatable value"},
	{"RunNotFinished", "execution has not finished"},
	{"CantWriteReturnPc", "cannot write the return pc of a call"},
	{"CantWriteReturnFp", "cannot write the return fp of a call"},
	{"NoPendingInstruction", "no pending instruction"},
}

// VirtualMachineErrors returns every member of the VirtualMachineError set, in declaration order.
func VirtualMachineErrors() []VirtualMachineError {
	return members[VirtualMachineError](len(virtualMachineErrors))
}

// Error implementation for the error interface.
func (e VirtualMachineError) Error() string {
	return format("vm", virtualMachineErrors, uint(e))
}

func (e VirtualMachineError) String() string {
	return name(virtualMachineErrors, uint(e))
}
