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

package disassembly

import (
	"fmt"
	"strings"
)

// Entry is one disassembled instruction.
type Entry struct {
	Operator string
	Operand  string
}

func (e Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%-5s %s", e.Operator, e.Operand))
}

// condition mnemonics for the conditional branch instruction. index 14 is
// the permanently undefined encoding and index 15 is the software interrupt,
// neither of which reaches the lookup.
var branchConditions = [14]string{
	"BEQ", "BNE", "BCS", "BCC", "BMI", "BPL", "BVS", "BVC",
	"BHI", "BLS", "BGE", "BLT", "BGT", "BLE",
}

var aluOperators = [16]string{
	"AND", "EOR", "LSL", "LSR", "ASR", "ADC", "SBC", "ROR",
	"TST", "NEG", "CMP", "CMN", "ORR", "MUL", "BIC", "MVN",
}

// registerList formats the Rlist field of the push/pop and multiple
// load/store instructions. extra names the additional register implied by
// the R bit, or is empty.
func registerList(rlist uint16, extra string) string {
	s := strings.Builder{}
	s.WriteRune('{')
	comma := false
	for i := 0; i <= 7; i++ {
		if rlist&(0x01<<i) != 0x00 {
			if comma {
				s.WriteString(", ")
			}
			s.WriteString(fmt.Sprintf("R%d", i))
			comma = true
		}
	}
	if extra != "" {
		if comma {
			s.WriteString(", ")
		}
		s.WriteString(extra)
	}
	s.WriteRune('}')
	return s.String()
}

// Disassemble decodes a single 16-bit opcode. it never fails: encodings in
// the undefined space disassemble to a raw hex dump of the opcode.
//
// the second half of a long branch with link only makes sense alongside the
// first half so it is shown as "BL +" with the partial offset.
func Disassemble(opcode uint16) Entry {
	switch {
	case opcode&0xf000 == 0xf000:
		// format 19 - Long branch with link
		offset := uint32(opcode & 0x07ff)
		if opcode&0x0800 == 0x0800 {
			return Entry{Operator: "BL +", Operand: fmt.Sprintf("#%03x", offset<<1)}
		}
		return Entry{Operator: "BL", Operand: fmt.Sprintf("#%06x", offset<<12)}

	case opcode&0xf800 == 0xe000:
		// format 18 - Unconditional branch
		offset := int32(opcode&0x07ff) << 21 >> 21
		return Entry{Operator: "B", Operand: fmt.Sprintf("%+d", offset*2)}

	case opcode&0xff00 == 0xdf00:
		// format 17 - Software interrupt
		return Entry{Operator: "SWI", Operand: fmt.Sprintf("#%02x", opcode&0x00ff)}

	case opcode&0xff00 == 0xde00:
		// permanently undefined space
		break

	case opcode&0xf000 == 0xd000:
		// format 16 - Conditional branch
		cond := (opcode & 0x0f00) >> 8
		offset := int32(int8(uint8(opcode & 0x00ff)))
		return Entry{Operator: branchConditions[cond], Operand: fmt.Sprintf("%+d", offset*2)}

	case opcode&0xf000 == 0xc000:
		// format 15 - Multiple load/store
		baseReg := (opcode & 0x0700) >> 8
		operator := "STMIA"
		if opcode&0x0800 == 0x0800 {
			operator = "LDMIA"
		}
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d!, %s", baseReg, registerList(opcode&0x00ff, ""))}

	case opcode&0xffe8 == 0xb660:
		// CPS (v6)
		operator := "CPSIE"
		if opcode&0x0010 == 0x0010 {
			operator = "CPSID"
		}
		flags := strings.Builder{}
		if opcode&0x0002 == 0x0002 {
			flags.WriteRune('i')
		}
		if opcode&0x0001 == 0x0001 {
			flags.WriteRune('f')
		}
		return Entry{Operator: operator, Operand: flags.String()}

	case opcode&0xffc0 == 0xba00:
		// REV (v6)
		return Entry{Operator: "REV", Operand: fmt.Sprintf("R%d, R%d", opcode&0x07, (opcode&0x38)>>3)}

	case opcode&0xffc0 == 0xba40:
		// REV16 (v6)
		return Entry{Operator: "REV16", Operand: fmt.Sprintf("R%d, R%d", opcode&0x07, (opcode&0x38)>>3)}

	case opcode&0xffc0 == 0xbac0:
		// REVSH (v6)
		return Entry{Operator: "REVSH", Operand: fmt.Sprintf("R%d, R%d", opcode&0x07, (opcode&0x38)>>3)}

	case opcode&0xf600 == 0xb400:
		// format 14 - Push/pop registers
		if opcode&0x0800 == 0x0800 {
			extra := ""
			if opcode&0x0100 == 0x0100 {
				extra = "PC"
			}
			return Entry{Operator: "POP", Operand: registerList(opcode&0x00ff, extra)}
		}
		extra := ""
		if opcode&0x0100 == 0x0100 {
			extra = "LR"
		}
		return Entry{Operator: "PUSH", Operand: registerList(opcode&0x00ff, extra)}

	case opcode&0xff00 == 0xb200:
		// SXTH/SXTB/UXTH/UXTB (v6)
		operator := [4]string{"SXTH", "SXTB", "UXTH", "UXTB"}[(opcode&0x00c0)>>6]
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, R%d", opcode&0x07, (opcode&0x38)>>3)}

	case opcode&0xff00 == 0xb000:
		// format 13 - Add offset to stack pointer
		imm := uint32(opcode&0x7f) << 2
		if opcode&0x80 == 0x80 {
			return Entry{Operator: "SUB", Operand: fmt.Sprintf("SP, #%02x", imm)}
		}
		return Entry{Operator: "ADD", Operand: fmt.Sprintf("SP, #%02x", imm)}

	case opcode&0xf000 == 0xb000:
		// remaining miscellaneous space is unallocated
		break

	case opcode&0xf000 == 0xa000:
		// format 12 - Load address
		destReg := (opcode & 0x0700) >> 8
		offset := uint32(opcode&0xff) << 2
		if opcode&0x0800 == 0x0800 {
			return Entry{Operator: "ADD", Operand: fmt.Sprintf("R%d, SP, #%02x", destReg, offset)}
		}
		return Entry{Operator: "ADD", Operand: fmt.Sprintf("R%d, PC, #%02x", destReg, offset)}

	case opcode&0xf000 == 0x9000:
		// format 11 - SP-relative load/store
		reg := (opcode & 0x0700) >> 8
		offset := uint32(opcode&0xff) << 2
		operator := "STR"
		if opcode&0x0800 == 0x0800 {
			operator = "LDR"
		}
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, [SP, #%02x]", reg, offset)}

	case opcode&0xf000 == 0x8000:
		// format 10 - Load/store halfword
		offset := uint32((opcode&0x07c0)>>6) << 1
		baseReg := (opcode & 0x0038) >> 3
		reg := opcode & 0x0007
		operator := "STRH"
		if opcode&0x0800 == 0x0800 {
			operator = "LDRH"
		}
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, [R%d, #%02x]", reg, baseReg, offset)}

	case opcode&0xe000 == 0x6000:
		// format 9 - Load/store with immediate offset
		offset := uint32((opcode & 0x07c0) >> 6)
		baseReg := (opcode & 0x0038) >> 3
		reg := opcode & 0x0007
		operator := "STR"
		if opcode&0x0800 == 0x0800 {
			operator = "LDR"
		}
		if opcode&0x1000 == 0x1000 {
			operator += "B"
		} else {
			offset <<= 2
		}
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, [R%d, #%02x]", reg, baseReg, offset)}

	case opcode&0xf200 == 0x5200:
		// format 8 - Load/store sign-extended byte/halfword
		offsetReg := (opcode & 0x01c0) >> 6
		baseReg := (opcode & 0x0038) >> 3
		reg := opcode & 0x0007
		operator := [4]string{"STRH", "LDSB", "LDRH", "LDSH"}[(opcode&0x0c00)>>10]
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, [R%d, R%d]", reg, baseReg, offsetReg)}

	case opcode&0xf200 == 0x5000:
		// format 7 - Load/store with register offset
		offsetReg := (opcode & 0x01c0) >> 6
		baseReg := (opcode & 0x0038) >> 3
		reg := opcode & 0x0007
		operator := "STR"
		if opcode&0x0800 == 0x0800 {
			operator = "LDR"
		}
		if opcode&0x0400 == 0x0400 {
			operator += "B"
		}
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, [R%d, R%d]", reg, baseReg, offsetReg)}

	case opcode&0xf800 == 0x4800:
		// format 6 - PC-relative load
		destReg := (opcode & 0x0700) >> 8
		offset := uint32(opcode&0x00ff) << 2
		return Entry{Operator: "LDR", Operand: fmt.Sprintf("R%d, [PC, #%02x]", destReg, offset)}

	case opcode&0xfc00 == 0x4400:
		// format 5 - Hi register operations/branch exchange
		op2 := (opcode & 0x0300) >> 8
		srcReg := (opcode & 0x78) >> 3
		destReg := (opcode & 0x07) | ((opcode & 0x80) >> 4)
		switch op2 {
		case 0b00:
			return Entry{Operator: "ADD", Operand: fmt.Sprintf("R%d, R%d", destReg, srcReg)}
		case 0b01:
			return Entry{Operator: "CMP", Operand: fmt.Sprintf("R%d, R%d", destReg, srcReg)}
		case 0b10:
			return Entry{Operator: "MOV", Operand: fmt.Sprintf("R%d, R%d", destReg, srcReg)}
		}
		if opcode&0x80 == 0x80 {
			return Entry{Operator: "BLX", Operand: fmt.Sprintf("R%d", srcReg)}
		}
		return Entry{Operator: "BX", Operand: fmt.Sprintf("R%d", srcReg)}

	case opcode&0xfc00 == 0x4000:
		// format 4 - ALU operations
		srcReg := (opcode & 0x38) >> 3
		destReg := opcode & 0x07
		operator := aluOperators[(opcode&0x03c0)>>6]
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, R%d", destReg, srcReg)}

	case opcode&0xe000 == 0x2000:
		// format 3 - Move/compare/add/subtract immediate
		destReg := (opcode & 0x0700) >> 8
		imm := opcode & 0x00ff
		operator := [4]string{"MOV", "CMP", "ADD", "SUB"}[(opcode&0x1800)>>11]
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, #%02x", destReg, imm)}

	case opcode&0xf800 == 0x1800:
		// format 2 - Add/subtract
		srcReg := (opcode & 0x038) >> 3
		destReg := opcode & 0x07
		operator := "ADD"
		if opcode&0x0200 == 0x0200 {
			operator = "SUB"
		}
		if opcode&0x0400 == 0x0400 {
			return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, R%d, #%02x", destReg, srcReg, (opcode&0x01c0)>>6)}
		}
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, R%d, R%d", destReg, srcReg, (opcode&0x01c0)>>6)}

	case opcode&0xe000 == 0x0000:
		// format 1 - Move shifted register
		shift := (opcode & 0x7c0) >> 6
		srcReg := (opcode & 0x38) >> 3
		destReg := opcode & 0x07
		operator := [4]string{"LSL", "LSR", "ASR", ""}[(opcode&0x1800)>>11]
		return Entry{Operator: operator, Operand: fmt.Sprintf("R%d, R%d, #%02x", destReg, srcReg, shift)}
	}

	return Entry{Operator: fmt.Sprintf("%04x", opcode)}
}
