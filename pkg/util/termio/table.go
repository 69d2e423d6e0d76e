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
package termio

import (
	"fmt"
	"io"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows}
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidths puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := uint(0); i < uint(len(p.widths)); i++ {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of any column.  Widths below
// two are raised to two, leaving room for the truncation marker.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 2))
}

// Print writes the table to a given writer.  Cells are right-aligned within
// their column, and cells wider than their column are truncated with "..".
func (p *TablePrinter) Print(w io.Writer) error {
	for _, row := range p.rows {
		for j, col := range row {
			var (
				jth      = col
				jthWidth = p.widths[j]
				err      error
			)
			// Print data
			if uint(len(col)) > jthWidth {
				jth = col[0 : jthWidth-2]
				_, err = fmt.Fprintf(w, " %*s..", jthWidth-2, jth)
			} else {
				_, err = fmt.Fprintf(w, " %*s", jthWidth, jth)
			}
			//
			if err != nil {
				return err
			}
			//
			if _, err = fmt.Fprint(w, " |"); err != nil {
				return err
			}
		}
		//
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	//
	return nil
}
