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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-cairo/pkg/util"
	"github.com/consensys/go-cairo/pkg/util/termio"
	"github.com/consensys/go-cairo/pkg/vm/memory"
	"github.com/consensys/go-cairo/pkg/vm/trace"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Widest printed cell: a 252-bit field element in hex, plus its "0x" prefix.
const maxCellWidth = 65

var relocateCmd = &cobra.Command{
	Use:   "relocate [flags] dump.json",
	Short: "relocate the memory and trace of a halted run.",
	Long: `Relocate the segmented memory and execution trace of a halted run (given as a JSON dump)
into the flat address space, optionally writing the binary memory and trace files.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRelocateCmd(cmd, args)
	},
}

func runRelocateCmd(cmd *cobra.Command, args []string) {
	var (
		stats      = util.NewPerfStats()
		traceFile  = GetString(cmd, "trace-file")
		memoryFile = GetString(cmd, "memory-file")
		quiet      = GetFlag(cmd, "quiet")
	)
	//
	bytes, err := os.ReadFile(args[0])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	dump, err := ParseDump(bytes)
	if err != nil {
		log.Errorf("%s: %s", args[0], err)
		os.Exit(2)
	}
	//
	log.Debugf("read %d segments and %d trace entries from %s", len(dump.Segments), len(dump.Trace), args[0])
	//
	relocated, err := dump.Relocate()
	if err != nil {
		log.Error(err)
		os.Exit(4)
	}
	//
	stats.Log("Relocation")
	//
	if memoryFile != "" {
		writeOutputFile(memoryFile, func(w io.Writer) error {
			return memory.WriteRelocatedMemory(w, relocated.Memory)
		})
	}
	//
	if traceFile != "" {
		writeOutputFile(traceFile, func(w io.Writer) error {
			return trace.WriteRelocatedTrace(w, relocated.Trace)
		})
	}
	//
	if !quiet {
		aligned := term.IsTerminal(int(os.Stdout.Fd()))
		//
		if err := printRelocatedMemory(os.Stdout, relocated.Memory, aligned); err != nil {
			log.Error(err)
			os.Exit(2)
		}
	}
}

func writeOutputFile(filename string, writer func(io.Writer) error) {
	file, err := os.Create(filename)
	//
	if err == nil {
		err = errors.Join(writer(file), file.Close())
	}
	//
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	log.Debugf("wrote %s", filename)
}

// Print the relocated memory, one cell per line.  When writing to a terminal,
// cells are laid out in a table under a header.  Otherwise, each line simply
// holds an address and value separated by a space.
func printRelocatedMemory(w io.Writer, cells []memory.RelocatedCell, aligned bool) error {
	if !aligned {
		for _, cell := range cells {
			if _, err := fmt.Fprintf(w, "%d %s\n", cell.Address, cell.Value.String()); err != nil {
				return err
			}
		}
		//
		return nil
	}
	//
	table := termio.NewTablePrinter(2, uint(len(cells))+1)
	table.SetRow(0, "address", "value")
	//
	for i, cell := range cells {
		table.SetRow(uint(i)+1, fmt.Sprintf("%d", cell.Address), "0x"+cell.Value.Text(16))
	}
	//
	table.SetMaxWidths(maxCellWidth)
	//
	return table.Print(w)
}

func init() {
	rootCmd.AddCommand(relocateCmd)
	relocateCmd.Flags().String("trace-file", "", "write relocated trace to binary file")
	relocateCmd.Flags().String("memory-file", "", "write relocated memory to binary file")
	relocateCmd.Flags().BoolP("quiet", "q", false, "do not print relocated memory")
}
