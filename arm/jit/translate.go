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
	"math/bits"

	"github.com/clondy999/dynarmic/arm"
)

// translateBlock decodes a run of instructions starting at addr into a
// sequence of ops. a block ends at the first instruction that can change the
// PC, at the first instruction that must be delegated through the fallback
// capability, or at the block length cap.
func (j *JIT) translateBlock(addr uint32) []op {
	var ops []op

	pc := addr
	for len(ops) < maxBlockLength {
		opcode := j.bus.Read16(pc)

		o, terminal, native := j.translate(opcode, pc)
		if !native {
			// a delegated instruction is a block of its own. if we already
			// have ops the block ends before it and the next Run iteration
			// picks it up
			if len(ops) == 0 {
				ops = append(ops, fallbackOp(pc))
			}
			break
		}

		ops = append(ops, o)
		if terminal {
			break
		}
		pc += 2
	}

	return ops
}

// fallbackOp delegates a single instruction to the bus's interpreter
// fallback. the fallback writes the whole machine state back, including the
// PC, so the op only needs to notice a switch out of Thumb state.
func fallbackOp(fetch uint32) op {
	return func(j *JIT) {
		j.bus.Fallback(fetch, j)
		if j.cpsr&arm.StatusThumb != arm.StatusThumb {
			j.running = false
		}
	}
}

// translate decodes a single instruction at address fetch into an op.
// terminal is true if the op must end its block (it can modify the PC).
// native is false if the instruction has no direct translation and must be
// delegated.
//
// translation precomputes whatever only depends on the instruction word and
// its address: field extraction, immediate scaling, PC-relative addresses
// and branch targets all happen here rather than at execution time.
func (j *JIT) translate(opcode uint16, fetch uint32) (o op, terminal bool, native bool) {
	next := fetch + 2
	visible := fetch + 4

	switch {
	case opcode&0xf800 == 0xe000:
		// unconditional branch. target is fixed at translation time
		offset := int32(opcode&0x07ff) << 21 >> 21
		target := uint32(int32(visible) + offset*2)
		return func(j *JIT) {
			j.registers[arm.PC] = target
		}, true, true

	case opcode&0xff00 == 0xdf00 || opcode&0xff00 == 0xde00:
		// software interrupt and the permanently undefined space
		return nil, false, false

	case opcode&0xf000 == 0xd000:
		// conditional branch
		cond := (opcode & 0x0f00) >> 8
		offset := int32(int8(uint8(opcode & 0x00ff)))
		target := uint32(int32(visible) + offset*2)
		return func(j *JIT) {
			if j.condition(cond) {
				j.registers[arm.PC] = target
			} else {
				j.registers[arm.PC] = next
			}
		}, true, true

	case opcode&0xffc0 == 0xba00:
		// REV
		srcReg := (opcode & 0x38) >> 3
		destReg := opcode & 0x07
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[destReg] = bits.ReverseBytes32(j.registers[srcReg])
		}, false, true

	case opcode&0xffc0 == 0xba40:
		// REV16
		srcReg := (opcode & 0x38) >> 3
		destReg := opcode & 0x07
		return func(j *JIT) {
			j.registers[arm.PC] = next
			v := j.registers[srcReg]
			j.registers[destReg] = ((v & 0x00ff00ff) << 8) | ((v & 0xff00ff00) >> 8)
		}, false, true

	case opcode&0xffc0 == 0xbac0:
		// REVSH
		srcReg := (opcode & 0x38) >> 3
		destReg := opcode & 0x07
		return func(j *JIT) {
			j.registers[arm.PC] = next
			v := bits.ReverseBytes16(uint16(j.registers[srcReg]))
			j.registers[destReg] = uint32(int32(int16(v)))
		}, false, true

	case opcode&0xff00 == 0xb200:
		// SXTH/SXTB/UXTH/UXTB
		return j.translateSignZeroExtend(opcode, next), false, true

	case opcode&0xff00 == 0xb000:
		// add offset to stack pointer
		imm := uint32(opcode&0x7f) << 2
		if opcode&0x80 == 0x80 {
			return func(j *JIT) {
				j.registers[arm.PC] = next
				j.registers[arm.SP] -= imm
			}, false, true
		}
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[arm.SP] += imm
		}, false, true

	case opcode&0xf000 == 0xa000:
		// load address
		destReg := (opcode & 0x0700) >> 8
		offset := uint32(opcode&0xff) << 2
		if opcode&0x0800 == 0x0800 {
			return func(j *JIT) {
				j.registers[arm.PC] = next
				j.registers[destReg] = j.registers[arm.SP] + offset
			}, false, true
		}
		// the PC-relative value is a constant
		val := (visible &^ 0x03) + offset
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[destReg] = val
		}, false, true

	case opcode&0xf000 == 0x9000:
		// SP-relative load/store
		reg := (opcode & 0x0700) >> 8
		offset := uint32(opcode&0xff) << 2
		if opcode&0x0800 == 0x0800 {
			return func(j *JIT) {
				j.registers[arm.PC] = next
				j.registers[reg] = j.bus.Read32(j.registers[arm.SP] + offset)
			}, false, true
		}
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.bus.Write32(j.registers[arm.SP]+offset, j.registers[reg])
		}, false, true

	case opcode&0xf000 == 0x8000:
		// load/store halfword
		offset := uint32((opcode&0x07c0)>>6) << 1
		baseReg := (opcode & 0x0038) >> 3
		reg := opcode & 0x0007
		if opcode&0x0800 == 0x0800 {
			return func(j *JIT) {
				j.registers[arm.PC] = next
				j.registers[reg] = uint32(j.bus.Read16(j.registers[baseReg] + offset))
			}, false, true
		}
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.bus.Write16(j.registers[baseReg]+offset, uint16(j.registers[reg]))
		}, false, true

	case opcode&0xe000 == 0x6000:
		// load/store with immediate offset
		return j.translateLoadStoreImm(opcode, next), false, true

	case opcode&0xf200 == 0x5000:
		// load/store with register offset
		return j.translateLoadStoreReg(opcode, next), false, true

	case opcode&0xf800 == 0x4800:
		// PC-relative load. the address is a constant
		destReg := (opcode & 0x0700) >> 8
		addr := (visible &^ 0x03) + uint32(opcode&0x00ff)<<2
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[destReg] = j.bus.Read32(addr)
		}, false, true

	case opcode&0xe000 == 0x2000:
		// move/compare/add/subtract immediate
		return j.translateMovCmpAddSubImm(opcode, next), false, true

	case opcode&0xf800 == 0x1800:
		// add/subtract
		return j.translateAddSubtract(opcode, next), false, true

	case opcode&0xe000 == 0x0000:
		// move shifted register
		return j.translateMoveShiftedRegister(opcode, next), false, true
	}

	// everything else - ALU operations, hi register operations and branch
	// exchange, sign-extended load/store, push/pop, multiple load/store,
	// long branch with link, CPS - is delegated
	return nil, false, false
}

func (j *JIT) translateMoveShiftedRegister(opcode uint16, next uint32) op {
	shiftOp := (opcode & 0x1800) >> 11
	shift := uint32((opcode & 0x7c0) >> 6)
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	switch shiftOp {
	case 0b00: // LSL
		if shift == 0 {
			return func(j *JIT) {
				j.registers[arm.PC] = next
				j.registers[destReg] = j.registers[srcReg]
				j.setNZ(j.registers[destReg])
			}
		}
		m := uint32(0x01) << (32 - shift)
		return func(j *JIT) {
			j.registers[arm.PC] = next
			src := j.registers[srcReg]
			j.setCarry(src&m == m)
			j.registers[destReg] = src << shift
			j.setNZ(j.registers[destReg])
		}
	case 0b01: // LSR
		if shift == 0 {
			return func(j *JIT) {
				j.registers[arm.PC] = next
				j.setCarry(j.registers[srcReg]&0x80000000 == 0x80000000)
				j.registers[destReg] = 0x00
				j.setNZ(j.registers[destReg])
			}
		}
		m := uint32(0x01) << (shift - 1)
		return func(j *JIT) {
			j.registers[arm.PC] = next
			src := j.registers[srcReg]
			j.setCarry(src&m == m)
			j.registers[destReg] = src >> shift
			j.setNZ(j.registers[destReg])
		}
	}

	// ASR
	if shift == 0 {
		return func(j *JIT) {
			j.registers[arm.PC] = next
			carry := j.registers[srcReg]&0x80000000 == 0x80000000
			j.setCarry(carry)
			if carry {
				j.registers[destReg] = 0xffffffff
			} else {
				j.registers[destReg] = 0x00000000
			}
			j.setNZ(j.registers[destReg])
		}
	}
	m := uint32(0x01) << (shift - 1)
	return func(j *JIT) {
		j.registers[arm.PC] = next
		src := j.registers[srcReg]
		j.setCarry(src&m == m)
		j.registers[destReg] = uint32(int32(src) >> shift)
		j.setNZ(j.registers[destReg])
	}
}

func (j *JIT) translateAddSubtract(opcode uint16, next uint32) op {
	immediate := opcode&0x0400 == 0x0400
	subtract := opcode&0x0200 == 0x0200
	imm := uint32((opcode & 0x01c0) >> 6)
	srcReg := (opcode & 0x038) >> 3
	destReg := opcode & 0x07

	if subtract {
		return func(j *JIT) {
			j.registers[arm.PC] = next
			val := imm
			if !immediate {
				val = j.registers[imm]
			}
			j.setAddFlags(j.registers[srcReg], ^val, 1)
			j.registers[destReg] = j.registers[srcReg] - val
			j.setNZ(j.registers[destReg])
		}
	}
	return func(j *JIT) {
		j.registers[arm.PC] = next
		val := imm
		if !immediate {
			val = j.registers[imm]
		}
		j.setAddFlags(j.registers[srcReg], val, 0)
		j.registers[destReg] = j.registers[srcReg] + val
		j.setNZ(j.registers[destReg])
	}
}

func (j *JIT) translateMovCmpAddSubImm(opcode uint16, next uint32) op {
	op2 := (opcode & 0x1800) >> 11
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode & 0x00ff)

	switch op2 {
	case 0b00: // MOV
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[destReg] = imm
			j.setNZ(imm)
		}
	case 0b01: // CMP
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.setAddFlags(j.registers[destReg], ^imm, 1)
			j.setNZ(j.registers[destReg] - imm)
		}
	case 0b10: // ADD
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.setAddFlags(j.registers[destReg], imm, 0)
			j.registers[destReg] += imm
			j.setNZ(j.registers[destReg])
		}
	}

	// SUB
	return func(j *JIT) {
		j.registers[arm.PC] = next
		j.setAddFlags(j.registers[destReg], ^imm, 1)
		j.registers[destReg] -= imm
		j.setNZ(j.registers[destReg])
	}
}

func (j *JIT) translateLoadStoreImm(opcode uint16, next uint32) op {
	load := opcode&0x0800 == 0x0800
	byteTransfer := opcode&0x1000 == 0x1000

	offset := uint32((opcode & 0x07c0) >> 6)
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	// word offsets are stored pre-scaled in the instruction
	if !byteTransfer {
		offset <<= 2
	}

	if load {
		if byteTransfer {
			return func(j *JIT) {
				j.registers[arm.PC] = next
				j.registers[reg] = uint32(j.bus.Read8(j.registers[baseReg] + offset))
			}
		}
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[reg] = j.bus.Read32(j.registers[baseReg] + offset)
		}
	}

	if byteTransfer {
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.bus.Write8(j.registers[baseReg]+offset, uint8(j.registers[reg]))
		}
	}
	return func(j *JIT) {
		j.registers[arm.PC] = next
		j.bus.Write32(j.registers[baseReg]+offset, j.registers[reg])
	}
}

func (j *JIT) translateLoadStoreReg(opcode uint16, next uint32) op {
	load := opcode&0x0800 == 0x0800
	byteTransfer := opcode&0x0400 == 0x0400
	offsetReg := (opcode & 0x01c0) >> 6
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	if load {
		if byteTransfer {
			return func(j *JIT) {
				j.registers[arm.PC] = next
				j.registers[reg] = uint32(j.bus.Read8(j.registers[baseReg] + j.registers[offsetReg]))
			}
		}
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[reg] = j.bus.Read32(j.registers[baseReg] + j.registers[offsetReg])
		}
	}

	if byteTransfer {
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.bus.Write8(j.registers[baseReg]+j.registers[offsetReg], uint8(j.registers[reg]))
		}
	}
	return func(j *JIT) {
		j.registers[arm.PC] = next
		j.bus.Write32(j.registers[baseReg]+j.registers[offsetReg], j.registers[reg])
	}
}

func (j *JIT) translateSignZeroExtend(opcode uint16, next uint32) op {
	extendOp := (opcode & 0x00c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	switch extendOp {
	case 0b00: // SXTH
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[destReg] = uint32(int32(int16(uint16(j.registers[srcReg]))))
		}
	case 0b01: // SXTB
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[destReg] = uint32(int32(int8(uint8(j.registers[srcReg]))))
		}
	case 0b10: // UXTH
		return func(j *JIT) {
			j.registers[arm.PC] = next
			j.registers[destReg] = j.registers[srcReg] & 0x0000ffff
		}
	}

	// UXTB
	return func(j *JIT) {
		j.registers[arm.PC] = next
		j.registers[destReg] = j.registers[srcReg] & 0x000000ff
	}
}
