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

package jit

import (
	"fmt"
	"strings"

	"github.com/clondy999/dynarmic/arm"
)

// maximum number of instructions translated into a single block.
const maxBlockLength = 64

// an op is one translated instruction. every op leaves R15 holding the
// address of the next instruction to execute.
type op func(j *JIT)

// JIT is the block-translating Thumb engine. instructions are decoded into
// closures a basic block at a time and the closures are cached keyed by the
// block's start address. instructions with no translation are delegated to
// the bus's Fallback capability.
//
// the name is aspirational: no machine code is generated, but the
// translate-once/execute-many structure and the cache invalidation rules are
// those of a jit.
type JIT struct {
	bus arm.Bus

	registers arm.Registers
	cpsr      uint32

	// set to false when execution must end (leaving Thumb state)
	running bool

	// translated blocks keyed by start address. only blocks in read-only
	// memory are cached
	blocks map[uint32][]op
}

// NewJIT is the preferred method of initialisation for the JIT type. the bus
// is the engine's only view of memory.
func NewJIT(bus arm.Bus) *JIT {
	return &JIT{
		bus:    bus,
		blocks: make(map[uint32][]op),
	}
}

// Registers implements the arm.Core interface.
func (j *JIT) Registers() arm.Registers {
	return j.registers
}

// SetRegisters implements the arm.Core interface.
func (j *JIT) SetRegisters(regs arm.Registers) {
	j.registers = regs
}

// Status implements the arm.Core interface.
func (j *JIT) Status() uint32 {
	return j.cpsr
}

// SetStatus implements the arm.Core interface.
func (j *JIT) SetStatus(cpsr uint32) {
	j.cpsr = cpsr
}

// ClearCache drops every translated block. must be called whenever the code
// area changes underneath the engine.
func (j *JIT) ClearCache() {
	j.blocks = make(map[uint32][]op)
}

func (j *JIT) String() string {
	s := strings.Builder{}
	for i, r := range j.registers {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString("\t\t")
			}
		}
		s.WriteString(fmt.Sprintf("R%-2d: %08x", i, r))
	}
	return s.String()
}

// Run executes count instructions, starting at the address in R15.
// execution ends early, without error, if the engine leaves Thumb state.
func (j *JIT) Run(count int) error {
	j.running = true

	remaining := count
	for remaining > 0 && j.running {
		start := j.registers[arm.PC]

		ops, ok := j.blocks[start]
		if !ok {
			ops = j.translateBlock(start)

			// a block is only safe to reuse if nothing can write to it
			if j.bus.IsReadOnly(start) {
				j.blocks[start] = ops
			}
		}

		for _, o := range ops {
			if remaining == 0 || !j.running {
				break
			}
			o(j)
			remaining--
		}
	}

	return nil
}

// condition flag helpers. the JIT works on the packed CPSR directly.

func (j *JIT) setNZ(v uint32) {
	j.cpsr &^= arm.StatusNegative | arm.StatusZero
	if v&0x80000000 == 0x80000000 {
		j.cpsr |= arm.StatusNegative
	}
	if v == 0 {
		j.cpsr |= arm.StatusZero
	}
}

func (j *JIT) setCarry(set bool) {
	if set {
		j.cpsr |= arm.StatusCarry
	} else {
		j.cpsr &^= arm.StatusCarry
	}
}

// setAddFlags sets the carry and overflow flags for the sum a+b+c, where c
// is 0 or 1. subtraction x-y is expressed as x + ^y + 1 in the usual way.
func (j *JIT) setAddFlags(a, b, c uint32) {
	sum := uint64(a) + uint64(b) + uint64(c)
	res := uint32(sum)

	j.cpsr &^= arm.StatusCarry | arm.StatusOverflow
	if sum > 0xffffffff {
		j.cpsr |= arm.StatusCarry
	}
	if (a^res)&(b^res)&0x80000000 == 0x80000000 {
		j.cpsr |= arm.StatusOverflow
	}
}

func (j *JIT) condition(cond uint16) bool {
	n := j.cpsr&arm.StatusNegative == arm.StatusNegative
	z := j.cpsr&arm.StatusZero == arm.StatusZero
	c := j.cpsr&arm.StatusCarry == arm.StatusCarry
	v := j.cpsr&arm.StatusOverflow == arm.StatusOverflow

	switch cond {
	case 0b0000: // EQ
		return z
	case 0b0001: // NE
		return !z
	case 0b0010: // CS
		return c
	case 0b0011: // CC
		return !c
	case 0b0100: // MI
		return n
	case 0b0101: // PL
		return !n
	case 0b0110: // VS
		return v
	case 0b0111: // VC
		return !v
	case 0b1000: // HI
		return c && !z
	case 0b1001: // LS
		return !c || z
	case 0b1010: // GE
		return n == v
	case 0b1011: // LT
		return n != v
	case 0b1100: // GT
		return !z && n == v
	case 0b1101: // LE
		return z || n != v
	}
	return false
}
