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
package trace

import (
	"bufio"
	"encoding/binary"
	"io"
)

// WriteRelocatedTrace writes a relocated trace in the binary trace file format:
// each entry is written as its ap, fp and pc registers (in that order), each
// as 8 bytes in little-endian byte order.
func WriteRelocatedTrace(w io.Writer, entries []RelocatedEntry) error {
	var (
		out = bufio.NewWriter(w)
		buf [24]byte
	)
	//
	for _, e := range entries {
		binary.LittleEndian.PutUint64(buf[0:8], e.Ap)
		binary.LittleEndian.PutUint64(buf[8:16], e.Fp)
		binary.LittleEndian.PutUint64(buf[16:24], e.Pc)
		//
		if _, err := out.Write(buf[:]); err != nil {
			return err
		}
	}
	//
	return out.Flush()
}
