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
	"math/bits"

	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/curated"
)

func (in *Interpreter) executeMoveShiftedRegister(opcode uint16) {
	// format 1 - Move shifted register
	op := (opcode & 0x1800) >> 11
	shift := uint32((opcode & 0x7c0) >> 6)
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	// in this class of operation the src register may also be the dest
	// register so we need to make a note of the value before it is
	// overwritten
	src := in.registers[srcReg]

	switch op {
	case 0b00:
		// if immed_5 == 0
		//	C Flag = unaffected
		//	Rd = Rm
		// else /* immed_5 > 0 */
		//	C Flag = Rm[32 - immed_5]
		//	Rd = Rm Logical_Shift_Left immed_5

		if shift == 0 {
			in.registers[destReg] = src
		} else {
			m := uint32(0x01) << (32 - shift)
			in.status.carry = src&m == m
			in.registers[destReg] = src << shift
		}
	case 0b01:
		// if immed_5 == 0
		//		C Flag = Rm[31]
		//		Rd = 0
		// else /* immed_5 > 0 */
		//		C Flag = Rm[immed_5 - 1]
		//		Rd = Rm Logical_Shift_Right immed_5

		if shift == 0 {
			in.status.carry = src&0x80000000 == 0x80000000
			in.registers[destReg] = 0x00
		} else {
			m := uint32(0x01) << (shift - 1)
			in.status.carry = src&m == m
			in.registers[destReg] = src >> shift
		}
	case 0b10:
		// if immed_5 == 0
		//		C Flag = Rm[31]
		//		Rd = 0 or 0xFFFFFFFF depending on Rm[31]
		// else /* immed_5 > 0 */
		//		C Flag = Rm[immed_5 - 1]
		//		Rd = Rm Arithmetic_Shift_Right immed_5

		if shift == 0 {
			in.status.carry = src&0x80000000 == 0x80000000
			if in.status.carry {
				in.registers[destReg] = 0xffffffff
			} else {
				in.registers[destReg] = 0x00000000
			}
		} else {
			m := uint32(0x01) << (shift - 1)
			in.status.carry = src&m == m
			in.registers[destReg] = uint32(int32(src) >> shift)
		}
	}

	in.status.isZero(in.registers[destReg])
	in.status.isNegative(in.registers[destReg])
}

func (in *Interpreter) executeAddSubtract(opcode uint16) {
	// format 2 - Add/subtract
	immediate := opcode&0x0400 == 0x0400
	subtract := opcode&0x0200 == 0x0200
	imm := uint32((opcode & 0x01c0) >> 6)
	srcReg := (opcode & 0x038) >> 3
	destReg := opcode & 0x07

	// value to work with is either an immediate value or is in a register
	val := imm
	if !immediate {
		val = in.registers[imm]
	}

	if subtract {
		in.status.setCarry(in.registers[srcReg], ^val, 1)
		in.status.setOverflow(in.registers[srcReg], ^val, 1)
		in.registers[destReg] = in.registers[srcReg] - val
	} else {
		in.status.setCarry(in.registers[srcReg], val, 0)
		in.status.setOverflow(in.registers[srcReg], val, 0)
		in.registers[destReg] = in.registers[srcReg] + val
	}

	in.status.isZero(in.registers[destReg])
	in.status.isNegative(in.registers[destReg])
}

// "The instructions in this group perform operations between a Lo register
// and an 8-bit immediate value".
func (in *Interpreter) executeMovCmpAddSubImm(opcode uint16) {
	// format 3 - Move/compare/add/subtract immediate
	op := (opcode & 0x1800) >> 11
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode & 0x00ff)

	switch op {
	case 0b00: // MOV
		in.registers[destReg] = imm
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b01: // CMP
		in.status.setCarry(in.registers[destReg], ^imm, 1)
		in.status.setOverflow(in.registers[destReg], ^imm, 1)
		cmp := in.registers[destReg] - imm
		in.status.isNegative(cmp)
		in.status.isZero(cmp)
	case 0b10: // ADD
		in.status.setCarry(in.registers[destReg], imm, 0)
		in.status.setOverflow(in.registers[destReg], imm, 0)
		in.registers[destReg] += imm
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b11: // SUB
		in.status.setCarry(in.registers[destReg], ^imm, 1)
		in.status.setOverflow(in.registers[destReg], ^imm, 1)
		in.registers[destReg] -= imm
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	}
}

// "The following instructions perform ALU operations on a Lo register pair".
func (in *Interpreter) executeALUOperations(opcode uint16) {
	// format 4 - ALU operations
	op := (opcode & 0x03c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	switch op {
	case 0b0000: // AND
		in.registers[destReg] &= in.registers[srcReg]
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b0001: // EOR
		in.registers[destReg] ^= in.registers[srcReg]
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b0010: // LSL
		// if Rs[7:0] == 0
		//		C Flag = unaffected
		//		Rd = unaffected
		// else if Rs[7:0] < 32 then
		//		C Flag = Rd[32 - Rs[7:0]]
		//		Rd = Rd Logical_Shift_Left Rs[7:0]
		// else if Rs[7:0] == 32 then
		//		C Flag = Rd[0]
		//		Rd = 0
		// else /* Rs[7:0] > 32 */
		//		C Flag = 0
		//		Rd = 0

		shift := in.registers[srcReg] & 0xff
		if shift > 0 && shift < 32 {
			m := uint32(0x01) << (32 - shift)
			in.status.carry = in.registers[destReg]&m == m
			in.registers[destReg] <<= shift
		} else if shift == 32 {
			in.status.carry = in.registers[destReg]&0x01 == 0x01
			in.registers[destReg] = 0x00
		} else if shift > 32 {
			in.status.carry = false
			in.registers[destReg] = 0x00
		}
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b0011: // LSR
		// if Rs[7:0] == 0 then
		//		C Flag = unaffected
		//		Rd = unaffected
		// else if Rs[7:0] < 32 then
		//		C Flag = Rd[Rs[7:0] - 1]
		//		Rd = Rd Logical_Shift_Right Rs[7:0]
		// else if Rs[7:0] == 32 then
		//		C Flag = Rd[31]
		//		Rd = 0
		// else /* Rs[7:0] > 32 */
		//		C Flag = 0
		//		Rd = 0

		shift := in.registers[srcReg] & 0xff
		if shift > 0 && shift < 32 {
			m := uint32(0x01) << (shift - 1)
			in.status.carry = in.registers[destReg]&m == m
			in.registers[destReg] >>= shift
		} else if shift == 32 {
			in.status.carry = in.registers[destReg]&0x80000000 == 0x80000000
			in.registers[destReg] = 0x00
		} else if shift > 32 {
			in.status.carry = false
			in.registers[destReg] = 0x00
		}
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b0100: // ASR
		// if Rs[7:0] == 0 then
		//		C Flag = unaffected
		//		Rd = unaffected
		// else if Rs[7:0] < 32 then
		//		C Flag = Rd[Rs[7:0] - 1]
		//		Rd = Rd Arithmetic_Shift_Right Rs[7:0]
		// else /* Rs[7:0] >= 32 */
		//		C Flag = Rd[31]
		//		Rd = 0 or 0xFFFFFFFF depending on Rd[31]

		shift := in.registers[srcReg] & 0xff
		if shift > 0 && shift < 32 {
			m := uint32(0x01) << (shift - 1)
			in.status.carry = in.registers[destReg]&m == m
			in.registers[destReg] = uint32(int32(in.registers[destReg]) >> shift)
		} else if shift >= 32 {
			in.status.carry = in.registers[destReg]&0x80000000 == 0x80000000
			if !in.status.carry {
				in.registers[destReg] = 0x00
			} else {
				in.registers[destReg] = 0xffffffff
			}
		}
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b0101: // ADC
		if in.status.carry {
			in.status.setCarry(in.registers[destReg], in.registers[srcReg], 1)
			in.status.setOverflow(in.registers[destReg], in.registers[srcReg], 1)
			in.registers[destReg] += in.registers[srcReg]
			in.registers[destReg]++
		} else {
			in.status.setCarry(in.registers[destReg], in.registers[srcReg], 0)
			in.status.setOverflow(in.registers[destReg], in.registers[srcReg], 0)
			in.registers[destReg] += in.registers[srcReg]
		}
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b0110: // SBC
		if !in.status.carry {
			in.status.setCarry(in.registers[destReg], ^in.registers[srcReg], 0)
			in.status.setOverflow(in.registers[destReg], ^in.registers[srcReg], 0)
			in.registers[destReg] -= in.registers[srcReg]
			in.registers[destReg]--
		} else {
			in.status.setCarry(in.registers[destReg], ^in.registers[srcReg], 1)
			in.status.setOverflow(in.registers[destReg], ^in.registers[srcReg], 1)
			in.registers[destReg] -= in.registers[srcReg]
		}
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b0111: // ROR
		// if Rs[7:0] == 0 then
		//		C Flag = unaffected
		//		Rd = unaffected
		// else if Rs[4:0] == 0 then
		//		C Flag = Rd[31]
		//		Rd = unaffected
		// else /* Rs[4:0] > 0 */
		//		C Flag = Rd[Rs[4:0] - 1]
		//		Rd = Rd Rotate_Right Rs[4:0]

		shift := in.registers[srcReg] & 0xff
		if shift == 0 {
			// unaffected
		} else if shift&0x1f == 0 {
			in.status.carry = in.registers[destReg]&0x80000000 == 0x80000000
		} else {
			m := uint32(0x01) << (shift&0x1f - 1)
			in.status.carry = in.registers[destReg]&m == m
			in.registers[destReg] = bits.RotateLeft32(in.registers[destReg], -int(shift&0x1f))
		}
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b1000: // TST
		w := in.registers[destReg] & in.registers[srcReg]
		in.status.isZero(w)
		in.status.isNegative(w)
	case 0b1001: // NEG
		in.status.setCarry(0, ^in.registers[srcReg], 1)
		in.status.setOverflow(0, ^in.registers[srcReg], 1)
		in.registers[destReg] = -in.registers[srcReg]
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b1010: // CMP
		in.status.setCarry(in.registers[destReg], ^in.registers[srcReg], 1)
		in.status.setOverflow(in.registers[destReg], ^in.registers[srcReg], 1)
		cmp := in.registers[destReg] - in.registers[srcReg]
		in.status.isZero(cmp)
		in.status.isNegative(cmp)
	case 0b1011: // CMN
		in.status.setCarry(in.registers[destReg], in.registers[srcReg], 0)
		in.status.setOverflow(in.registers[destReg], in.registers[srcReg], 0)
		cmp := in.registers[destReg] + in.registers[srcReg]
		in.status.isZero(cmp)
		in.status.isNegative(cmp)
	case 0b1100: // ORR
		in.registers[destReg] |= in.registers[srcReg]
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b1101: // MUL
		// C and V flags are unaffected
		in.registers[destReg] *= in.registers[srcReg]
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b1110: // BIC
		in.registers[destReg] &= ^in.registers[srcReg]
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	case 0b1111: // MVN
		in.registers[destReg] = ^in.registers[srcReg]
		in.status.isZero(in.registers[destReg])
		in.status.isNegative(in.registers[destReg])
	}
}

func (in *Interpreter) executeHiRegisterOps(opcode uint16) {
	// format 5 - Hi register operations/branch exchange
	op := (opcode & 0x300) >> 8
	hi1 := opcode&0x80 == 0x80
	hi2 := opcode&0x40 == 0x40
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	if hi1 {
		destReg += 8
	}
	if hi2 {
		srcReg += 8
	}

	switch op {
	case 0b00: // ADD
		res := in.readReg(destReg) + in.readReg(srcReg)
		if destReg == arm.PC {
			// a write to R15 is a branch. bit 0 is ignored
			in.registers[arm.PC] = res &^ 0x01
		} else {
			in.registers[destReg] = res
		}
		// status register not changed
	case 0b01: // CMP
		// alu_out = Rn - Rm
		// N Flag = alu_out[31]
		// Z Flag = if alu_out == 0 then 1 else 0
		// C Flag = NOT BorrowFrom(Rn - Rm)
		// V Flag = OverflowFrom(Rn - Rm)
		in.status.setCarry(in.readReg(destReg), ^in.readReg(srcReg), 1)
		in.status.setOverflow(in.readReg(destReg), ^in.readReg(srcReg), 1)
		cmp := in.readReg(destReg) - in.readReg(srcReg)
		in.status.isZero(cmp)
		in.status.isNegative(cmp)
	case 0b10: // MOV
		res := in.readReg(srcReg)
		if destReg == arm.PC {
			in.registers[arm.PC] = res &^ 0x01
		} else {
			in.registers[destReg] = res
		}
		// status register not changed
	case 0b11: // BX/BLX
		// in this encoding the hi1 bit selects BLX
		if hi1 {
			in.registers[arm.LR] = (in.fetch + 2) | 0x01
		}

		val := in.readReg(srcReg)
		in.registers[arm.PC] = val &^ 0x01
		if val&0x01 != 0x01 {
			// switch to the 32bit instruction set. this engine only executes
			// Thumb so execution ends here. the harness masks the final PC
			// according to the T bit
			in.status.setThumb(false)
			in.continueExecution = false
		}
	}
}

func (in *Interpreter) executePCRelativeLoad(opcode uint16) {
	// format 6 - PC-relative load
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode&0x00ff) << 2

	// "Bit 1 of the PC value is forced to zero for the purpose of this
	// calculation, so the address is always word-aligned."
	addr := (in.visiblePC() &^ 0x03) + imm
	in.registers[destReg] = in.bus.Read32(addr)
}

func (in *Interpreter) executeLoadStoreWithRegisterOffset(opcode uint16) {
	// format 7 - Load/store with register offset
	load := opcode&0x0800 == 0x0800
	byteTransfer := opcode&0x0400 == 0x0400
	offsetReg := (opcode & 0x01c0) >> 6
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := in.registers[baseReg] + in.registers[offsetReg]

	if load {
		if byteTransfer {
			in.registers[reg] = uint32(in.bus.Read8(addr))
			return
		}
		in.registers[reg] = in.bus.Read32(addr)
		return
	}

	if byteTransfer {
		in.bus.Write8(addr, uint8(in.registers[reg]))
		return
	}
	in.bus.Write32(addr, in.registers[reg])
}

func (in *Interpreter) executeLoadStoreSignExtended(opcode uint16) {
	// format 8 - Load/store sign-extended byte/halfword
	hi := opcode&0x0800 == 0x0800
	sign := opcode&0x0400 == 0x0400
	offsetReg := (opcode & 0x01c0) >> 6
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := in.registers[baseReg] + in.registers[offsetReg]

	if sign {
		if hi {
			// load sign-extended halfword
			in.registers[reg] = uint32(in.bus.Read16(addr))
			if in.registers[reg]&0x8000 == 0x8000 {
				in.registers[reg] |= 0xffff0000
			}
			return
		}

		// load sign-extended byte
		in.registers[reg] = uint32(in.bus.Read8(addr))
		if in.registers[reg]&0x0080 == 0x0080 {
			in.registers[reg] |= 0xffffff00
		}
		return
	}

	if hi {
		// load halfword
		in.registers[reg] = uint32(in.bus.Read16(addr))
		return
	}

	// store halfword
	in.bus.Write16(addr, uint16(in.registers[reg]))
}

func (in *Interpreter) executeLoadStoreWithImmOffset(opcode uint16) {
	// format 9 - Load/store with immediate offset
	load := opcode&0x0800 == 0x0800
	byteTransfer := opcode&0x1000 == 0x1000

	offset := uint32((opcode & 0x07c0) >> 6)
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	// "For word accesses (B = 0), the value specified by #Imm is a full 7-bit
	// address, but must be word-aligned (ie with bits 1:0 set to 0), since
	// the assembler places #Imm >> 2 in the Offset5 field." -- ARM7TDMI Data
	// Sheet
	if !byteTransfer {
		offset <<= 2
	}

	addr := in.registers[baseReg] + offset

	if load {
		if byteTransfer {
			in.registers[reg] = uint32(in.bus.Read8(addr))
			return
		}
		in.registers[reg] = in.bus.Read32(addr)
		return
	}

	if byteTransfer {
		in.bus.Write8(addr, uint8(in.registers[reg]))
		return
	}
	in.bus.Write32(addr, in.registers[reg])
}

func (in *Interpreter) executeLoadStoreHalfword(opcode uint16) {
	// format 10 - Load/store halfword
	load := opcode&0x0800 == 0x0800
	offset := uint32((opcode&0x07c0)>>6) << 1
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := in.registers[baseReg] + offset

	if load {
		in.registers[reg] = uint32(in.bus.Read16(addr))
		return
	}
	in.bus.Write16(addr, uint16(in.registers[reg]))
}

func (in *Interpreter) executeSPRelativeLoadStore(opcode uint16) {
	// format 11 - SP-relative load/store
	load := opcode&0x0800 == 0x0800
	reg := (opcode & 0x0700) >> 8
	offset := uint32(opcode&0xff) << 2

	addr := in.registers[arm.SP] + offset

	if load {
		in.registers[reg] = in.bus.Read32(addr)
		return
	}
	in.bus.Write32(addr, in.registers[reg])
}

func (in *Interpreter) executeLoadAddress(opcode uint16) {
	// format 12 - Load address
	sp := opcode&0x0800 == 0x0800
	destReg := (opcode & 0x0700) >> 8
	offset := uint32(opcode&0xff) << 2

	if sp {
		in.registers[destReg] = in.registers[arm.SP] + offset
		return
	}

	// "Where the PC is used as the source register (SP = 0), bit 1 of the PC
	// is always read as 0."
	in.registers[destReg] = (in.visiblePC() &^ 0x03) + offset
}

func (in *Interpreter) executeAddOffsetToSP(opcode uint16) {
	// format 13 - Add offset to stack pointer
	sign := opcode&0x80 == 0x80
	imm := uint32(opcode&0x7f) << 2

	if sign {
		in.registers[arm.SP] -= imm
		return
	}
	in.registers[arm.SP] += imm

	// status register not changed
}

func (in *Interpreter) executePushPopRegisters(opcode uint16) {
	// format 14 - Push/pop registers

	// the ARM pushes registers in descending order and pops in ascending
	// order. in other words the LR is pushed first and PC is popped last

	load := opcode&0x0800 == 0x0800
	pclr := opcode&0x0100 == 0x0100
	regList := uint8(opcode & 0x00ff)

	if load {
		// pop. start at the stack pointer and work upwards
		addr := in.registers[arm.SP]

		for i := 0; i <= 7; i++ {
			m := uint8(0x01 << i)
			if regList&m == m {
				in.registers[i] = in.bus.Read32(addr)
				addr += 4
			}
		}

		// load PC register after all other registers
		if pclr {
			v := in.bus.Read32(addr)
			addr += 4
			in.registers[arm.PC] = v &^ 0x01
			in.status.setThumb(v&0x01 == 0x01)
			if !in.status.thumb() {
				in.continueExecution = false
			}
		}

		// leave stack pointer at the final address
		in.registers[arm.SP] = addr
		return
	}

	// push. the stack grows down so the lowest register is stored at the
	// lowest address
	c := uint32(bits.OnesCount8(regList)) * 4
	if pclr {
		c += 4
	}

	addr := in.registers[arm.SP] - c

	for i := 0; i <= 7; i++ {
		m := uint8(0x01 << i)
		if regList&m == m {
			in.bus.Write32(addr, in.registers[i])
			addr += 4
		}
	}

	// store LR register after all the other registers
	if pclr {
		in.bus.Write32(addr, in.registers[arm.LR])
	}

	in.registers[arm.SP] -= c
}

func (in *Interpreter) executeMultipleLoadStore(opcode uint16) {
	// format 15 - Multiple load/store
	load := opcode&0x0800 == 0x0800
	baseReg := (opcode & 0x0700) >> 8
	regList := uint8(opcode & 0xff)

	// load/store the registers in the list starting at the address in the
	// base register
	addr := in.registers[baseReg]

	for i := 0; i <= 7; i++ {
		m := uint8(0x01 << i)
		if regList&m == m {
			if load {
				in.registers[i] = in.bus.Read32(addr)
			} else {
				in.bus.Write32(addr, in.registers[i])
			}
			addr += 4
		}
	}

	// write back the new base address
	in.registers[baseReg] = addr
}

func (in *Interpreter) executeConditionalBranch(opcode uint16) {
	// format 16 - Conditional branch
	cond := (opcode & 0x0f00) >> 8
	offset := int32(int8(uint8(opcode & 0x00ff)))

	b := false

	switch cond {
	case 0b0000: // BEQ
		b = in.status.zero
	case 0b0001: // BNE
		b = !in.status.zero
	case 0b0010: // BCS
		b = in.status.carry
	case 0b0011: // BCC
		b = !in.status.carry
	case 0b0100: // BMI
		b = in.status.negative
	case 0b0101: // BPL
		b = !in.status.negative
	case 0b0110: // BVS
		b = in.status.overflow
	case 0b0111: // BVC
		b = !in.status.overflow
	case 0b1000: // BHI
		b = in.status.carry && !in.status.zero
	case 0b1001: // BLS
		b = !in.status.carry || in.status.zero
	case 0b1010: // BGE
		b = in.status.negative == in.status.overflow
	case 0b1011: // BLT
		b = in.status.negative != in.status.overflow
	case 0b1100: // BGT
		b = !in.status.zero && in.status.negative == in.status.overflow
	case 0b1101: // BLE
		b = in.status.zero || in.status.negative != in.status.overflow
	}

	if b {
		in.registers[arm.PC] = uint32(int32(in.visiblePC()) + offset*2)
	}
}

func (in *Interpreter) executeSoftwareInterrupt(opcode uint16) {
	// format 17 - Software interrupt
	call := uint32(opcode & 0x00ff)
	in.bus.OnTrap(call)

	// if the trap handler returns at all then execution cannot meaningfully
	// continue
	in.continueExecution = false
	in.executionError = curated.Errorf(TrapReached, call)
}

func (in *Interpreter) executeUnconditionalBranch(opcode uint16) {
	// format 18 - Unconditional branch

	// offset is an eleven-bit two's complement value
	offset := int32(opcode&0x07ff) << 21 >> 21
	in.registers[arm.PC] = uint32(int32(in.visiblePC()) + offset*2)
}

func (in *Interpreter) executeLongBranchWithLink(opcode uint16) {
	// format 19 - Long branch with link
	low := opcode&0x0800 == 0x0800
	offset := uint32(opcode & 0x07ff)

	// there is no direct ARM equivalent for this instruction. the two
	// halves form one branch: the first stages the high part of the offset
	// in LR, the second completes the target address and stores the return
	// address

	if low {
		target := in.registers[arm.LR] + (offset << 1)
		in.registers[arm.LR] = (in.fetch + 2) | 0x01
		in.registers[arm.PC] = target
		return
	}

	// sign-extended 11-bit value shifted up by 12
	in.registers[arm.LR] = uint32(int32(in.visiblePC()) + (int32(offset)<<21>>21)<<12)
}

func (in *Interpreter) executeSignZeroExtend(opcode uint16) {
	// SXTH/SXTB/UXTH/UXTB
	op := (opcode & 0x00c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	v := in.registers[srcReg]

	switch op {
	case 0b00: // SXTH
		in.registers[destReg] = uint32(int32(int16(uint16(v))))
	case 0b01: // SXTB
		in.registers[destReg] = uint32(int32(int8(uint8(v))))
	case 0b10: // UXTH
		in.registers[destReg] = v & 0x0000ffff
	case 0b11: // UXTB
		in.registers[destReg] = v & 0x000000ff
	}

	// status register not changed
}

func (in *Interpreter) executeReverseBytes(opcode uint16) {
	// REV
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	in.registers[destReg] = bits.ReverseBytes32(in.registers[srcReg])
}

func (in *Interpreter) executeReverseBytes16(opcode uint16) {
	// REV16 - reverse the bytes in each halfword independently
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	v := in.registers[srcReg]
	in.registers[destReg] = ((v & 0x00ff00ff) << 8) | ((v & 0xff00ff00) >> 8)
}

func (in *Interpreter) executeReverseBytesSignedHalfword(opcode uint16) {
	// REVSH - reverse the bytes in the low halfword and sign extend
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	v := bits.ReverseBytes16(uint16(in.registers[srcReg]))
	in.registers[destReg] = uint32(int32(int16(v)))
}

func (in *Interpreter) executeChangeProcessorState(opcode uint16) {
	// CPS - in unprivileged (user) mode changes to the interrupt masks are
	// ignored, so the instruction has no effect beyond advancing the PC
	_ = opcode
}
