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
	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/arm/interpreter"
	"github.com/clondy999/dynarmic/curated"
	"github.com/clondy999/dynarmic/logger"
)

// error patterns for the Memory type.
const (
	TrapRaised = "memory: trap raised by generated code (svc %02x)"
)

// number of halfword units in the code area.
const CodeUnits = 3000

// extent of the code area in bytes.
const codeExtent = CodeUnits * 2

// the fill value for the code area. an unconditional branch to itself, so a
// stray PC parks harmlessly instead of running into garbage.
const sentinel = 0xe7fe

// WriteRecord is one entry in the write log. Size is the width of the write
// in bits.
type WriteRecord struct {
	Size  int
	Addr  uint32
	Value uint64
}

// Memory is the bus shared by both engines during a fuzz run.
//
// Reads inside the code area are serviced from the code buffer. reads
// outside it, and all 64-bit reads, return the address value itself: the
// fuzzed instructions load from effectively random addresses and the open
// bus convention keeps those loads deterministic without backing the whole
// address space.
//
// Writes are never performed. every write of every width is appended to the
// write log instead, which makes the two engines' store behaviour directly
// comparable.
type Memory struct {
	code   [CodeUnits]uint16
	writes []WriteRecord

	// OnTrap delegates to TrapHandler. generated code never contains a
	// software interrupt so reaching a trap means an engine has run wild.
	// the default handler panics
	TrapHandler func(call uint32)
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	m := &Memory{
		writes: make([]WriteRecord, 0, 64),
	}
	m.TrapHandler = func(call uint32) {
		panic(curated.Errorf(TrapRaised, call))
	}
	m.Fill()
	return m
}

// Fill resets every unit of the code area to the branch-to-self sentinel.
func (m *Memory) Fill() {
	for i := range m.code {
		m.code[i] = sentinel
	}
}

// Load copies instruction words into the code area starting at address zero.
func (m *Memory) Load(instructions []uint16) {
	copy(m.code[:], instructions)
}

// Code returns the instruction word at the given unit index.
func (m *Memory) Code(idx int) uint16 {
	return m.code[idx]
}

// ClearWrites empties the write log.
func (m *Memory) ClearWrites() {
	m.writes = m.writes[:0]
}

// Writes returns a copy of the write log.
func (m *Memory) Writes() []WriteRecord {
	w := make([]WriteRecord, len(m.writes))
	copy(w, m.writes)
	return w
}

// IsReadOnly implements the arm.Bus interface. the code area cannot be
// written (no memory can) so translated blocks inside it are safe to cache.
func (m *Memory) IsReadOnly(addr uint32) bool {
	return addr < codeExtent
}

// Read8 implements the arm.Bus interface.
func (m *Memory) Read8(addr uint32) uint8 {
	if addr < codeExtent {
		unit := m.code[addr>>1]
		if addr&0x01 == 0x01 {
			return uint8(unit >> 8)
		}
		return uint8(unit)
	}
	return uint8(addr)
}

// Read16 implements the arm.Bus interface.
func (m *Memory) Read16(addr uint32) uint16 {
	if addr < codeExtent {
		return m.code[addr>>1]
	}
	return uint16(addr)
}

// Read32 implements the arm.Bus interface. the two covering units are
// combined low unit first.
func (m *Memory) Read32(addr uint32) uint32 {
	idx := addr >> 1
	if addr < codeExtent && idx+1 < CodeUnits {
		return uint32(m.code[idx]) | uint32(m.code[idx+1])<<16
	}
	return addr
}

// Read64 implements the arm.Bus interface. 64-bit reads are always open bus.
func (m *Memory) Read64(addr uint32) uint64 {
	return uint64(addr)
}

// Write8 implements the arm.Bus interface.
func (m *Memory) Write8(addr uint32, val uint8) {
	m.writes = append(m.writes, WriteRecord{Size: 8, Addr: addr, Value: uint64(val)})
}

// Write16 implements the arm.Bus interface.
func (m *Memory) Write16(addr uint32, val uint16) {
	m.writes = append(m.writes, WriteRecord{Size: 16, Addr: addr, Value: uint64(val)})
}

// Write32 implements the arm.Bus interface.
func (m *Memory) Write32(addr uint32, val uint32) {
	m.writes = append(m.writes, WriteRecord{Size: 32, Addr: addr, Value: uint64(val)})
}

// Write64 implements the arm.Bus interface.
func (m *Memory) Write64(addr uint32, val uint64) {
	m.writes = append(m.writes, WriteRecord{Size: 64, Addr: addr, Value: val})
}

// OnTrap implements the arm.Bus interface.
func (m *Memory) OnTrap(call uint32) {
	m.TrapHandler(call)
}

// Fallback implements the arm.Bus interface. a fresh one-shot interpreter is
// seeded from the calling engine's state, run for a single instruction and
// its state written back. the PC is realigned according to the mode the
// instruction left the processor in.
func (m *Memory) Fallback(pc uint32, core arm.Core) {
	one := interpreter.NewInterpreter(m)
	one.ExecuteCount = 1

	regs := core.Registers()
	regs[arm.PC] = pc
	one.SetRegisters(regs)
	one.SetStatus(core.Status())

	if err := one.Run(); err != nil {
		// an undecodable word at the delegated address. the write-back below
		// still happens so both engines settle on the same state
		logger.Logf("fallback", "%v", err)
	}

	regs = one.Registers()
	cpsr := one.Status()
	regs[arm.PC] = arm.AlignPC(regs[arm.PC], cpsr)

	core.SetRegisters(regs)
	core.SetStatus(cpsr)
}
