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
	"bufio"
	"encoding/binary"
	"io"

	"github.com/consensys/go-cairo/pkg/util/field/stark252"
)

// WriteRelocatedMemory writes a sequence of relocated cells in the binary
// memory file format: each cell is written as its address (8 bytes) followed
// by its value (32 bytes), both in little-endian byte order.
func WriteRelocatedMemory(w io.Writer, cells []RelocatedCell) error {
	var (
		out   = bufio.NewWriter(w)
		addr  [8]byte
		value [stark252.Bytes]byte
	)
	//
	for _, cell := range cells {
		binary.LittleEndian.PutUint64(addr[:], cell.Address)
		cell.Value.PutLittleEndian(&value)
		//
		if _, err := out.Write(addr[:]); err != nil {
			return err
		} else if _, err := out.Write(value[:]); err != nil {
			return err
		}
	}
	//
	return out.Flush()
}
