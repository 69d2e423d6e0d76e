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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of the time and memory consumed from a given
// point onwards.
type PerfStats struct {
	// Time at which the snapshot was taken
	startTime time.Time
	// Total bytes allocated at the snapshot
	startAlloc uint64
	// Number of gc cycles completed at the snapshot
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current amount of memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log logs (at debug level) the time elapsed, memory allocated and gc cycles
// completed since this snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	allocated := float64(m.TotalAlloc-p.startAlloc) / (1024 * 1024)
	gcs := m.NumGC - p.startGc
	elapsed := time.Since(p.startTime)
	//
	log.WithFields(log.Fields{
		"elapsed": elapsed.Round(time.Microsecond),
		"gc":      gcs,
	}).Debugf("%s allocated %0.2f Mb", prefix, allocated)
}
