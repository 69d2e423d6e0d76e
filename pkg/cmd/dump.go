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
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/go-cairo/pkg/vm/memory"
	"github.com/consensys/go-cairo/pkg/vm/trace"
)

// Dump represents the state of a halted run, as read from a JSON dump file.
// Each segment lists its cells in offset order, where unwritten cells are null.
type Dump struct {
	Segments [][]*memory.MaybeRelocatable `json:"segments"`
	Trace    []DumpEntry                  `json:"trace"`
}

// DumpEntry represents one entry of the execution trace within a dump file.
type DumpEntry struct {
	Pc memory.Relocatable `json:"pc"`
	Ap memory.Relocatable `json:"ap"`
	Fp memory.Relocatable `json:"fp"`
}

// RelocatedDump holds the result of relocating a dump.
type RelocatedDump struct {
	Table  memory.RelocationTable
	Memory []memory.RelocatedCell
	Trace  []trace.RelocatedEntry
}

// ParseDump parses the contents of a JSON dump file.
func ParseDump(bytes []byte) (*Dump, error) {
	var dump Dump
	//
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return nil, err
	}
	//
	return &dump, nil
}

// Relocate relocates the memory and trace of this dump.  Segments are placed
// one after the other in the order given, with their sizes determined by the
// number of cells they contain.
func (p *Dump) Relocate() (*RelocatedDump, error) {
	var (
		sizes = make([]uint64, len(p.Segments))
		ctx   = trace.NewContext(true)
	)
	//
	for i, segment := range p.Segments {
		sizes[i] = uint64(len(segment))
	}
	//
	table, err := memory.NewRelocationTable(sizes)
	if err != nil {
		return nil, err
	}
	//
	cells, err := memory.RelocateSegments(p.Segments, table)
	if err != nil {
		return nil, fmt.Errorf("relocating memory: %w", err)
	}
	//
	for _, e := range p.Trace {
		if err := ctx.Record(trace.Entry{Pc: e.Pc, Ap: e.Ap, Fp: e.Fp}); err != nil {
			return nil, err
		}
	}
	//
	if err := ctx.Relocate(table); err != nil {
		return nil, fmt.Errorf("relocating trace: %w", err)
	}
	//
	entries, err := ctx.RelocatedEntries()
	if err != nil {
		return nil, err
	}
	//
	return &RelocatedDump{table, cells, entries}, nil
}
