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

package jit_test

import (
	"testing"

	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/arm/interpreter"
	"github.com/clondy999/dynarmic/arm/jit"
	"github.com/clondy999/dynarmic/fuzzer"
	"github.com/clondy999/dynarmic/test"
)

// runBoth executes the same program on both engines from the same initial
// state and checks they agree with each other.
func runBoth(t *testing.T, program []uint16, count int) (*jit.JIT, *fuzzer.Memory) {
	t.Helper()

	mem := fuzzer.NewMemory()
	mem.Load(program)

	in := interpreter.NewInterpreter(mem)
	in.SetStatus(arm.StatusUser)
	in.ExecuteCount = count
	test.ExpectedSuccess(t, in.Run())
	want := in.Registers()
	want[arm.PC] = arm.AlignPC(want[arm.PC], in.Status())

	mem2 := fuzzer.NewMemory()
	mem2.Load(program)
	j := jit.NewJIT(mem2)
	j.SetStatus(arm.StatusUser)
	test.ExpectedSuccess(t, j.Run(count))

	got := j.Registers()
	for i := range got {
		test.Equate(t, got[i], want[i])
	}
	test.Equate(t, j.Status(), in.Status())

	return j, mem2
}

func TestNativeTranslation(t *testing.T) {
	j, _ := runBoth(t, []uint16{
		0x2005, // MOV R0, #05
		0x2103, // MOV R1, #03
		0x1842, // ADD R2, R0, R1
		0x0112, // LSL R2, R2, #04
	}, 4)

	regs := j.Registers()
	test.Equate(t, regs[0], 0x05)
	test.Equate(t, regs[1], 0x03)
	test.Equate(t, regs[2], 0x80)
}

func TestDelegatedInstructions(t *testing.T) {
	// AND is an ALU operation with no native translation. it reaches the
	// same result through the fallback path
	j, _ := runBoth(t, []uint16{
		0x2007, // MOV R0, #07
		0x210c, // MOV R1, #0c
		0x4008, // AND R0, R1
	}, 3)

	test.Equate(t, j.Registers()[0], 0x04)
}

func TestBranchEndsBlock(t *testing.T) {
	j, _ := runBoth(t, []uint16{
		0x2000, // MOV R0, #00 (sets Z)
		0xd000, // BEQ +0 (to address 6)
		0x2101, // MOV R1, #01 (skipped)
		0x2102, // MOV R1, #02
	}, 3)

	test.Equate(t, j.Registers()[1], 0x02)
	test.Equate(t, j.Registers()[arm.PC], 0x08)
}

func TestSentinelParksPC(t *testing.T) {
	// a budget longer than the program runs into the sentinel, which
	// branches to itself
	j, _ := runBoth(t, []uint16{
		0x2005, // MOV R0, #05
	}, 10)

	test.Equate(t, j.Registers()[arm.PC], 0x02)
}

func TestLeavingThumbEndsRun(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0x4710}) // BX R2

	j := jit.NewJIT(mem)
	j.SetStatus(arm.StatusUser)

	regs := j.Registers()
	regs[2] = 0x100
	j.SetRegisters(regs)

	test.ExpectedSuccess(t, j.Run(10))
	test.Equate(t, j.Registers()[arm.PC], 0x100)
	test.Equate(t, j.Status()&arm.StatusThumb, uint32(0))
}

func TestBlockCacheClear(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0x2005}) // MOV R0, #05

	j := jit.NewJIT(mem)
	j.SetStatus(arm.StatusUser)
	test.ExpectedSuccess(t, j.Run(1))
	test.Equate(t, j.Registers()[0], 0x05)

	// the block at address zero is cached. replacing the code without
	// clearing the cache executes the stale block
	mem.Fill()
	mem.Load([]uint16{0x2107}) // MOV R1, #07

	var regs arm.Registers
	j.SetRegisters(regs)
	test.ExpectedSuccess(t, j.Run(1))
	test.Equate(t, j.Registers()[0], 0x05)
	test.Equate(t, j.Registers()[1], 0x00)

	j.ClearCache()
	j.SetRegisters(regs)
	test.ExpectedSuccess(t, j.Run(1))
	test.Equate(t, j.Registers()[1], 0x07)
	test.Equate(t, j.Registers()[0], 0x00)
}
