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

package arm

// register names.
const (
	SP = 13 + iota
	LR
	PC
	NumRegisters
)

// Registers is the full general purpose register file. R15 is the program
// counter and holds the address of the next instruction to be fetched.
type Registers [NumRegisters]uint32

// CPSR fields. only the fields relevant to unprivileged Thumb execution are
// named.
const (
	StatusNegative = uint32(1) << 31
	StatusZero     = uint32(1) << 30
	StatusCarry    = uint32(1) << 29
	StatusOverflow = uint32(1) << 28

	// the T bit. set means the processor is executing the compressed (Thumb)
	// encoding. clear means the 32bit ARM encoding, which neither engine
	// implements - leaving Thumb state ends execution.
	StatusThumb = uint32(1) << 5
)

// StatusUser is the fixed status register configuration every fuzzed run
// starts from: user mode, Thumb state, IRQ/FIQ disabled, all condition flags
// clear.
const StatusUser = uint32(0x000001f0)

// AlignPC masks a program counter value according to the instruction set
// state in the status argument. Thumb instructions are halfword aligned and
// ARM instructions are word aligned.
func AlignPC(pc uint32, status uint32) uint32 {
	if status&StatusThumb == StatusThumb {
		return pc &^ 0x01
	}
	return pc &^ 0x03
}

// Bus is the set of memory capabilities handed to an engine on construction.
// The fuzzing harness implements Bus; the engines only ever touch memory
// through it.
//
// Read and write widths are 8, 16, 32 and 64 bits. writes are recorded
// rather than stored so the address space is immutable for the duration of a
// run.
type Bus interface {
	IsReadOnly(addr uint32) bool

	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Read64(addr uint32) uint64

	Write8(addr uint32, val uint8)
	Write16(addr uint32, val uint16)
	Write32(addr uint32, val uint32)
	Write64(addr uint32, val uint64)

	// Fallback executes the single instruction at pc on behalf of core,
	// updating core's state through its whole-state accessors. used by
	// engines that have no translation for an instruction.
	Fallback(pc uint32, core Core)

	// OnTrap is called when a software interrupt is reached. the fuzzed
	// instruction corpus never legitimately contains one so a trap is always
	// a hard failure.
	OnTrap(call uint32)
}

// Core is the whole-state access an engine exposes to the harness. the
// harness never reaches into an engine other than through these functions.
type Core interface {
	Registers() Registers
	SetRegisters(regs Registers)
	Status() uint32
	SetStatus(status uint32)
}
