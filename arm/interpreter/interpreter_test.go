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

package interpreter_test

import (
	"testing"

	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/arm/interpreter"
	"github.com/clondy999/dynarmic/curated"
	"github.com/clondy999/dynarmic/fuzzer"
	"github.com/clondy999/dynarmic/test"
)

// run assembles a tiny harness around a program: a fresh memory, a fresh
// interpreter and count executed instructions from address zero.
func run(t *testing.T, program []uint16, count int) (*interpreter.Interpreter, *fuzzer.Memory) {
	t.Helper()

	mem := fuzzer.NewMemory()
	mem.Load(program)

	in := interpreter.NewInterpreter(mem)
	in.SetStatus(arm.StatusUser)
	in.ExecuteCount = count

	test.ExpectedSuccess(t, in.Run())
	return in, mem
}

func TestMovAddImmediate(t *testing.T) {
	in, _ := run(t, []uint16{
		0x2005, // MOV R0, #05
		0x3003, // ADD R0, #03
	}, 2)

	regs := in.Registers()
	test.Equate(t, regs[0], 0x08)
	test.Equate(t, regs[arm.PC], 0x04)

	// positive non-zero result leaves the flags clear
	test.Equate(t, in.Status(), arm.StatusUser)
}

func TestZeroFlag(t *testing.T) {
	in, _ := run(t, []uint16{
		0x2000, // MOV R0, #00
	}, 1)

	test.Equate(t, in.Status()&arm.StatusZero, arm.StatusZero)
	test.Equate(t, in.Status()&arm.StatusNegative, uint32(0))
}

func TestSubtractFlags(t *testing.T) {
	in, _ := run(t, []uint16{
		0x2005, // MOV R0, #05
		0x2103, // MOV R1, #03
		0x1a42, // SUB R2, R0, R1
	}, 3)

	regs := in.Registers()
	test.Equate(t, regs[2], 0x02)

	// no borrow means carry set. result is positive and non-zero
	test.Equate(t, in.Status()&arm.StatusCarry, arm.StatusCarry)
	test.Equate(t, in.Status()&arm.StatusZero, uint32(0))
	test.Equate(t, in.Status()&arm.StatusNegative, uint32(0))
	test.Equate(t, in.Status()&arm.StatusOverflow, uint32(0))
}

func TestConditionalBranch(t *testing.T) {
	in, _ := run(t, []uint16{
		0x2000, // MOV R0, #00 (sets Z)
		0xd000, // BEQ +0 (to address 6)
		0x2101, // MOV R1, #01 (skipped)
		0x2102, // MOV R1, #02
	}, 3)

	regs := in.Registers()
	test.Equate(t, regs[1], 0x02)
	test.Equate(t, regs[arm.PC], 0x08)
}

func TestBranchExchangeLeavesThumb(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0x4710}) // BX R2

	in := interpreter.NewInterpreter(mem)
	in.SetStatus(arm.StatusUser)

	regs := in.Registers()
	regs[2] = 0x100 // bit 0 clear: exchange to the 32bit instruction set
	in.SetRegisters(regs)

	// execution ends at the BX even though the budget is larger
	in.ExecuteCount = 10
	test.ExpectedSuccess(t, in.Run())

	regs = in.Registers()
	test.Equate(t, regs[arm.PC], 0x100)
	test.Equate(t, in.Status()&arm.StatusThumb, uint32(0))
}

func TestPushWriteLog(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0xb403}) // PUSH {R0, R1}

	in := interpreter.NewInterpreter(mem)
	in.SetStatus(arm.StatusUser)

	regs := in.Registers()
	regs[0] = 0x11
	regs[1] = 0x22
	regs[arm.SP] = 0x100
	in.SetRegisters(regs)

	in.ExecuteCount = 1
	test.ExpectedSuccess(t, in.Run())

	// lowest register at the lowest address, stack pointer lowered past both
	w := mem.Writes()
	test.Equate(t, len(w), 2)
	test.Equate(t, w[0].Addr, 0xf8)
	test.Equate(t, uint64(w[0].Value), uint64(0x11))
	test.Equate(t, w[1].Addr, 0xfc)
	test.Equate(t, uint64(w[1].Value), uint64(0x22))
	test.Equate(t, in.Registers()[arm.SP], 0xf8)
}

func TestSoftwareInterrupt(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0xdf2a}) // SWI #2a

	var trapped []uint32
	mem.TrapHandler = func(call uint32) {
		trapped = append(trapped, call)
	}

	in := interpreter.NewInterpreter(mem)
	in.SetStatus(arm.StatusUser)
	in.ExecuteCount = 1

	err := in.Run()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, interpreter.TrapReached))
	test.Equate(t, len(trapped), 1)
	test.Equate(t, trapped[0], 0x2a)
}

func TestUndefinedInstruction(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0xde00})

	in := interpreter.NewInterpreter(mem)
	in.SetStatus(arm.StatusUser)
	in.ExecuteCount = 1

	err := in.Run()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, interpreter.UndefinedInstruction))
}

func TestInstructionCacheClear(t *testing.T) {
	mem := fuzzer.NewMemory()
	mem.Load([]uint16{0x2005}) // MOV R0, #05

	in := interpreter.NewInterpreter(mem)
	in.SetStatus(arm.StatusUser)
	in.ExecuteCount = 1
	test.ExpectedSuccess(t, in.Run())
	test.Equate(t, in.Registers()[0], 0x05)

	// replace the code underneath the engine. without clearing the decode
	// cache the stale instruction executes again
	mem.Fill()
	mem.Load([]uint16{0x2107}) // MOV R1, #07

	var regs arm.Registers
	in.SetRegisters(regs)
	test.ExpectedSuccess(t, in.Run())
	test.Equate(t, in.Registers()[0], 0x05)
	test.Equate(t, in.Registers()[1], 0x00)

	// clearing the cache picks up the new code
	in.ClearInstructionCache()
	in.SetRegisters(regs)
	test.ExpectedSuccess(t, in.Run())
	test.Equate(t, in.Registers()[1], 0x07)
	test.Equate(t, in.Registers()[0], 0x00)
}
