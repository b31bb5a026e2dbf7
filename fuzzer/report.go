// This file is part of the dynarmic project.
//
// dynarmic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 2 of the License, or
// (at your option) any later version.
//
// dynarmic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dynarmic.  If not, see <https://www.gnu.org/licenses/>.

package fuzzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/arm/disassembly"
)

// behaviourMatches decides whether two snapshots describe the same machine
// behaviour: every register, the status register and the exact sequence of
// writes.
func behaviourMatches(a, b Snapshot) bool {
	if a.Registers != b.Registers {
		return false
	}
	if a.Status != b.Status {
		return false
	}
	if len(a.Writes) != len(b.Writes) {
		return false
	}
	for i := range a.Writes {
		if a.Writes[i] != b.Writes[i] {
			return false
		}
	}
	return true
}

// report builds the diagnostic text for a diverging run: the generated
// instruction listing, the initial registers and the two final states side
// by side with differing values flagged.
func report(words []uint16, initial arm.Registers, a, b Snapshot) string {
	s := strings.Builder{}

	s.WriteString("instruction listing:\n")
	for i, w := range words {
		s.WriteString(fmt.Sprintf("%04x: %04x  %s\n", i*2, w, disassembly.Disassemble(w).String()))
	}

	s.WriteString("\ninitial registers:\n")
	for i, r := range initial {
		s.WriteString(fmt.Sprintf("%4d: %08x\n", i, r))
	}

	s.WriteString("\nfinal registers (interpreter / jit):\n")
	for i := range a.Registers {
		flag := ""
		if a.Registers[i] != b.Registers[i] {
			flag = "*"
		}
		s.WriteString(fmt.Sprintf("%4d: %08x %08x %s\n", i, a.Registers[i], b.Registers[i], flag))
	}

	flag := ""
	if a.Status != b.Status {
		flag = "*"
	}
	s.WriteString(fmt.Sprintf("cpsr: %08x %08x %s\n", a.Status, b.Status, flag))

	s.WriteString(fmt.Sprintf("\nwrite log (interpreter %d / jit %d):\n", len(a.Writes), len(b.Writes)))
	n := len(a.Writes)
	if len(b.Writes) > n {
		n = len(b.Writes)
	}
	for i := 0; i < n; i++ {
		av := "-"
		bv := "-"
		if i < len(a.Writes) {
			av = a.Writes[i].String()
		}
		if i < len(b.Writes) {
			bv = b.Writes[i].String()
		}
		flag := ""
		if av != bv {
			flag = "*"
		}
		s.WriteString(fmt.Sprintf("%4d: %-28s %-28s %s\n", i, av, bv, flag))
	}

	return s.String()
}

func (w WriteRecord) String() string {
	return fmt.Sprintf("w%d [%08x] = %0*x", w.Size, w.Addr, w.Size/4, w.Value)
}

// renderGraph writes a graphviz description of the two snapshots. feeding
// the output to dot gives a picture of the diverging states.
func renderGraph(output io.Writer, a, b *Snapshot) {
	memviz.Map(output, a, b)
}
