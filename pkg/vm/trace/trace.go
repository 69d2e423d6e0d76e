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
	"fmt"

	"github.com/consensys/go-cairo/pkg/vm/memory"
	"github.com/consensys/go-cairo/pkg/vm/vmerrors"
	log "github.com/sirupsen/logrus"
)

// State identifies the stage a trace context has reached.  A context is either
// permanently NOT_ENABLED, or moves from RECORDED to RELOCATED exactly once.
type State uint8

const (
	// NOT_ENABLED indicates tracing was disabled for the run.
	NOT_ENABLED State = iota
	// RECORDED indicates entries are being (or have been) recorded, but not yet
	// relocated.
	RECORDED
	// RELOCATED indicates the trace has been relocated, after which it can no
	// longer be modified.
	RELOCATED
)

func (s State) String() string {
	switch s {
	case NOT_ENABLED:
		return "not enabled"
	case RECORDED:
		return "recorded"
	case RELOCATED:
		return "relocated"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Entry captures the registers of the machine at a given step.
type Entry struct {
	Pc memory.Relocatable
	Ap memory.Relocatable
	Fp memory.Relocatable
}

// RelocatedEntry captures the registers of the machine at a given step, after
// they have been mapped into the flat address space.
type RelocatedEntry struct {
	Pc uint64
	Ap uint64
	Fp uint64
}

// Context records the execution trace of a run, and finalises it through
// relocation once the run has halted.
type Context struct {
	state     State
	entries   []Entry
	relocated []RelocatedEntry
}

// NewContext constructs a trace context which is either enabled (and ready to
// record entries) or disabled.
func NewContext(enabled bool) *Context {
	if enabled {
		return &Context{state: RECORDED}
	}
	//
	return &Context{state: NOT_ENABLED}
}

// State returns the current state of this context.
func (p *Context) State() State {
	return p.state
}

// Record appends an entry to the trace.
func (p *Context) Record(entry Entry) error {
	switch p.state {
	case NOT_ENABLED:
		return vmerrors.TraceNotEnabled
	case RELOCATED:
		return vmerrors.AlreadyRelocated
	}
	//
	p.entries = append(p.entries, entry)
	//
	return nil
}

// Entries returns the recorded (i.e. unrelocated) trace.
func (p *Context) Entries() ([]Entry, error) {
	if p.state == NOT_ENABLED {
		return nil, vmerrors.TraceNotEnabled
	}
	//
	return p.entries, nil
}

// RelocatedEntries returns the relocated trace, which is only available once
// the trace has been relocated.
func (p *Context) RelocatedEntries() ([]RelocatedEntry, error) {
	switch p.state {
	case NOT_ENABLED:
		return nil, vmerrors.TraceNotEnabled
	case RECORDED:
		return nil, vmerrors.TraceNotRelocated
	}
	//
	return p.relocated, nil
}

// Relocate maps every recorded entry into the flat address space described by
// a given relocation table.  This can happen at most once and, if it fails,
// the context remains unrelocated.
func (p *Context) Relocate(table memory.RelocationTable) error {
	switch p.state {
	case NOT_ENABLED:
		return vmerrors.TraceNotEnabled
	case RELOCATED:
		return vmerrors.AlreadyRelocated
	}
	//
	relocated := make([]RelocatedEntry, len(p.entries))
	//
	for i, e := range p.entries {
		var err error
		//
		if relocated[i], err = relocateEntry(e, table); err != nil {
			return fmt.Errorf("trace entry %d: %w", i, err)
		}
	}
	//
	log.Debugf("relocated %d trace entries across %d segments", len(relocated), len(table))
	//
	p.relocated = relocated
	p.state = RELOCATED
	//
	return nil
}

func relocateEntry(e Entry, table memory.RelocationTable) (RelocatedEntry, error) {
	var (
		entry RelocatedEntry
		err   error
	)
	//
	if entry.Pc, err = e.Pc.RelocateAddress(table); err != nil {
		return entry, err
	} else if entry.Ap, err = e.Ap.RelocateAddress(table); err != nil {
		return entry, err
	}
	//
	entry.Fp, err = e.Fp.RelocateAddress(table)
	//
	return entry, err
}
