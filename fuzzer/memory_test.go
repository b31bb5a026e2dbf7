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

package fuzzer_test

import (
	"testing"

	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/arm/jit"
	"github.com/clondy999/dynarmic/fuzzer"
	"github.com/clondy999/dynarmic/test"
)

func TestMemoryCodeReads(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0x1234, 0x5678})

	test.Equate(t, mem.Read16(0x00), 0x1234)
	test.Equate(t, mem.Read16(0x02), 0x5678)

	// byte reads select halves of the covering unit
	test.Equate(t, uint32(mem.Read8(0x00)), 0x34)
	test.Equate(t, uint32(mem.Read8(0x01)), 0x12)

	// word reads combine the two covering units low unit first
	test.Equate(t, mem.Read32(0x00), 0x56781234)

	// the rest of the code area holds the sentinel
	test.Equate(t, mem.Read16(0x04), 0xe7fe)
}

func TestMemoryOpenBus(t *testing.T) {
	mem := fuzzer.NewMemory()

	// reads outside the code area return the address value
	test.Equate(t, uint32(mem.Read16(0x8000)), 0x8000)
	test.Equate(t, mem.Read32(0x12344), 0x12344)
	test.Equate(t, uint64(mem.Read64(0x8000)), uint64(0x8000))

	// 64-bit reads are open bus even inside the code area
	test.Equate(t, uint64(mem.Read64(0x10)), uint64(0x10))

	// a word read of the last unit would need a unit beyond the buffer
	test.Equate(t, mem.Read32(5998), 5998)
}

func TestMemoryReadOnlyExtent(t *testing.T) {
	mem := fuzzer.NewMemory()
	test.ExpectedSuccess(t, mem.IsReadOnly(0))
	test.ExpectedSuccess(t, mem.IsReadOnly(5999))
	test.ExpectedFailure(t, mem.IsReadOnly(6000))
}

func TestMemoryWriteLog(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.ClearWrites()

	mem.Write16(0x1000, 0xabcd)
	mem.Write8(0x2000, 0xff)
	mem.Write32(0x3000, 0xdeadbeef)
	mem.Write64(0x4000, 0x0123456789abcdef)

	w := mem.Writes()
	test.Equate(t, len(w), 4)

	// width, address and value at the same ordinal
	test.Equate(t, w[0].Size, 16)
	test.Equate(t, w[0].Addr, 0x1000)
	test.Equate(t, uint64(w[0].Value), uint64(0xabcd))
	test.Equate(t, w[1].Size, 8)
	test.Equate(t, w[2].Size, 32)
	test.Equate(t, uint64(w[3].Value), uint64(0x0123456789abcdef))

	// writes are recorded, never performed. address 0x1000 is inside the
	// code area and still reads as the sentinel
	test.Equate(t, mem.Read16(0x1000), 0xe7fe)

	mem.ClearWrites()
	test.Equate(t, len(mem.Writes()), 0)
}

func TestMemoryTrapHandler(t *testing.T) {
	mem := fuzzer.NewMemory()

	var trapped []uint32
	mem.TrapHandler = func(call uint32) {
		trapped = append(trapped, call)
	}

	mem.OnTrap(0x2a)
	test.Equate(t, len(trapped), 1)
	test.Equate(t, trapped[0], 0x2a)
}

func TestMemoryFallback(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0x202a}) // MOV R0, #2a

	core := jit.NewJIT(mem)
	core.SetStatus(arm.StatusUser)

	mem.Fallback(0x00, core)

	regs := core.Registers()
	test.Equate(t, regs[0], 0x2a)
	test.Equate(t, regs[arm.PC], 0x02)
	test.Equate(t, core.Status()&arm.StatusThumb, arm.StatusThumb)
}
