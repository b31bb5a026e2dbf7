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

package interpreter

import (
	"fmt"
	"strings"

	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/curated"
)

// error patterns for the interpreter package.
const (
	UndefinedInstruction = "interpreter: undefined instruction (%04x)"
	TrapReached          = "interpreter: trap reached (svc %02x)"
)

// Interpreter is the reference Thumb engine. one instruction is decoded and
// executed per step.
type Interpreter struct {
	bus arm.Bus

	registers arm.Registers
	status    status

	// number of instructions the next call to Run() will execute
	ExecuteCount int

	// address of the instruction currently being executed. valid only during
	// a step
	fetch uint32

	// execution flags. set to false and/or error when Run() should end
	continueExecution bool
	executionError    error

	// decoded instructions keyed by fetch address. valid for as long as the
	// code area is unchanged - the harness clears it between runs
	cache map[uint32]cachedInstruction
}

type cachedInstruction struct {
	opcode  uint16
	execute func(uint16)
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. the bus is the engine's only view of memory.
func NewInterpreter(bus arm.Bus) *Interpreter {
	return &Interpreter{
		bus:          bus,
		ExecuteCount: 1,
		cache:        make(map[uint32]cachedInstruction),
	}
}

// Registers implements the arm.Core interface.
func (in *Interpreter) Registers() arm.Registers {
	return in.registers
}

// SetRegisters implements the arm.Core interface.
func (in *Interpreter) SetRegisters(regs arm.Registers) {
	in.registers = regs
}

// Status implements the arm.Core interface.
func (in *Interpreter) Status() uint32 {
	return in.status.toCPSR()
}

// SetStatus implements the arm.Core interface.
func (in *Interpreter) SetStatus(cpsr uint32) {
	in.status.fromCPSR(cpsr)
}

// ClearInstructionCache drops all decoded instructions. must be called
// whenever the code area changes underneath the engine.
func (in *Interpreter) ClearInstructionCache() {
	in.cache = make(map[uint32]cachedInstruction)
}

// ClearCache is an alias of ClearInstructionCache. the interpreter has no
// other cached state.
func (in *Interpreter) ClearCache() {
	in.ClearInstructionCache()
}

func (in *Interpreter) String() string {
	s := strings.Builder{}
	for i, r := range in.registers {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString("\t\t")
			}
		}
		s.WriteString(fmt.Sprintf("R%-2d: %08x", i, r))
	}
	s.WriteString(fmt.Sprintf("\n%s", in.status.String()))
	return s.String()
}

// Run executes ExecuteCount instructions, starting at the address in R15.
// execution ends early, without error, if the engine leaves Thumb state.
func (in *Interpreter) Run() error {
	in.continueExecution = true
	in.executionError = nil

	for i := 0; i < in.ExecuteCount && in.continueExecution; i++ {
		in.step()
	}

	return in.executionError
}

func (in *Interpreter) step() {
	addr := in.registers[arm.PC]

	e, ok := in.cache[addr]
	if !ok {
		opcode := in.bus.Read16(addr)
		execute, err := in.decode(opcode)
		if err != nil {
			in.continueExecution = false
			in.executionError = err
			return
		}
		e = cachedInstruction{opcode: opcode, execute: execute}
		in.cache[addr] = e
	}

	in.fetch = addr
	in.registers[arm.PC] = addr + 2
	e.execute(e.opcode)
}

// the architecturally visible value of R15 during execution of the current
// instruction.
func (in *Interpreter) visiblePC() uint32 {
	return in.fetch + 4
}

// readReg returns the value of a register as seen by an instruction operand.
// R15 reads as the visible PC.
func (in *Interpreter) readReg(reg uint16) uint32 {
	if reg == arm.PC {
		return in.visiblePC()
	}
	return in.registers[reg]
}

// decode works backwards up the format table in Figure 5-1 of the ARM7TDMI
// Data Sheet, with the v6 extensions slotted into the unallocated regions of
// the miscellaneous (0b1011) space.
func (in *Interpreter) decode(opcode uint16) (func(uint16), error) {
	switch {
	case opcode&0xf000 == 0xf000:
		// format 19 - Long branch with link
		return in.executeLongBranchWithLink, nil
	case opcode&0xf800 == 0xe000:
		// format 18 - Unconditional branch
		return in.executeUnconditionalBranch, nil
	case opcode&0xff00 == 0xdf00:
		// format 17 - Software interrupt
		return in.executeSoftwareInterrupt, nil
	case opcode&0xff00 == 0xde00:
		// permanently undefined space
		return nil, curated.Errorf(UndefinedInstruction, opcode)
	case opcode&0xf000 == 0xd000:
		// format 16 - Conditional branch
		return in.executeConditionalBranch, nil
	case opcode&0xf000 == 0xc000:
		// format 15 - Multiple load/store
		return in.executeMultipleLoadStore, nil
	case opcode&0xffe8 == 0xb660:
		// CPS (v6)
		return in.executeChangeProcessorState, nil
	case opcode&0xffc0 == 0xba00:
		// REV (v6)
		return in.executeReverseBytes, nil
	case opcode&0xffc0 == 0xba40:
		// REV16 (v6)
		return in.executeReverseBytes16, nil
	case opcode&0xffc0 == 0xbac0:
		// REVSH (v6)
		return in.executeReverseBytesSignedHalfword, nil
	case opcode&0xf600 == 0xb400:
		// format 14 - Push/pop registers
		return in.executePushPopRegisters, nil
	case opcode&0xff00 == 0xb200:
		// SXTH/SXTB/UXTH/UXTB (v6)
		return in.executeSignZeroExtend, nil
	case opcode&0xff00 == 0xb000:
		// format 13 - Add offset to stack pointer
		return in.executeAddOffsetToSP, nil
	case opcode&0xf000 == 0xb000:
		// remaining miscellaneous space is unallocated
		return nil, curated.Errorf(UndefinedInstruction, opcode)
	case opcode&0xf000 == 0xa000:
		// format 12 - Load address
		return in.executeLoadAddress, nil
	case opcode&0xf000 == 0x9000:
		// format 11 - SP-relative load/store
		return in.executeSPRelativeLoadStore, nil
	case opcode&0xf000 == 0x8000:
		// format 10 - Load/store halfword
		return in.executeLoadStoreHalfword, nil
	case opcode&0xe000 == 0x6000:
		// format 9 - Load/store with immediate offset
		return in.executeLoadStoreWithImmOffset, nil
	case opcode&0xf200 == 0x5200:
		// format 8 - Load/store sign-extended byte/halfword
		return in.executeLoadStoreSignExtended, nil
	case opcode&0xf200 == 0x5000:
		// format 7 - Load/store with register offset
		return in.executeLoadStoreWithRegisterOffset, nil
	case opcode&0xf800 == 0x4800:
		// format 6 - PC-relative load
		return in.executePCRelativeLoad, nil
	case opcode&0xfc00 == 0x4400:
		// format 5 - Hi register operations/branch exchange
		return in.executeHiRegisterOps, nil
	case opcode&0xfc00 == 0x4000:
		// format 4 - ALU operations
		return in.executeALUOperations, nil
	case opcode&0xe000 == 0x2000:
		// format 3 - Move/compare/add/subtract immediate
		return in.executeMovCmpAddSubImm, nil
	case opcode&0xf800 == 0x1800:
		// format 2 - Add/subtract
		return in.executeAddSubtract, nil
	case opcode&0xe000 == 0x0000:
		// format 1 - Move shifted register
		return in.executeMoveShiftedRegister, nil
	}

	return nil, curated.Errorf(UndefinedInstruction, opcode)
}
