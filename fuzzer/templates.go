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

// the stock templates are compiled in so a bad one is a programming error,
// not a runtime condition.
func mustPattern(template string, valid ...func(uint16) bool) *Pattern {
	p, err := NewPattern(template, valid...)
	if err != nil {
		panic(err)
	}
	return p
}

// predicates excluding encodings whose behaviour is UNPREDICTABLE or that
// would end the fuzz case early.

func excludeHiOperandR15(inst uint16) bool {
	return (inst>>3)&0x07 != 0x07
}

func excludeLoOperandR15(inst uint16) bool {
	return inst&0x07 != 0x07
}

func excludeEmptyRegisterList(inst uint16) bool {
	return inst&0x00ff != 0x00
}

func excludeBranchExchangeR15(inst uint16) bool {
	return (inst>>3)&0x0f != 0x0f
}

// conditions 14 and 15 are the permanently undefined encoding and the
// software interrupt
func excludeReservedConditions(inst uint16) bool {
	return (inst>>8)&0x0f < 0x0e
}

// StandardSet returns the template table for instructions that cannot
// change the PC.
func StandardSet() []*Pattern {
	return []*Pattern{
		mustPattern("00000xxxxxxxxxxx"), // LSL <Rd>, <Rm>, #<imm5>
		mustPattern("00001xxxxxxxxxxx"), // LSR <Rd>, <Rm>, #<imm5>
		mustPattern("00010xxxxxxxxxxx"), // ASR <Rd>, <Rm>, #<imm5>
		mustPattern("000110oxxxxxxxxx"), // ADD/SUB_reg
		mustPattern("000111oxxxxxxxxx"), // ADD/SUB_imm
		mustPattern("001ooxxxxxxxxxxx"), // ADD/SUB/CMP/MOV_imm
		mustPattern("010000ooooxxxxxx"), // Data Processing
		mustPattern("010001000hxxxxxx"), // ADD (high registers)
		mustPattern("0100010101xxxxxx", // CMP (high registers)
			excludeHiOperandR15),
		mustPattern("0100010110xxxxxx", // CMP (high registers)
			excludeLoOperandR15),
		mustPattern("010001100hxxxxxx"), // MOV (high registers)
		mustPattern("10110000oxxxxxxx"), // Adjust stack pointer
		mustPattern("10110010ooxxxxxx"), // SXT/UXT
		mustPattern("1011101000xxxxxx"), // REV
		mustPattern("1011101001xxxxxx"), // REV16
		mustPattern("1011101011xxxxxx"), // REVSH
		mustPattern("01001xxxxxxxxxxx"), // LDR Rd, [PC, #]
		mustPattern("0101oooxxxxxxxxx"), // LDR/STR Rd, [Rn, Rm]
		mustPattern("011xxxxxxxxxxxxx"), // LDR(B)/STR(B) Rd, [Rn, #]
		mustPattern("1000xxxxxxxxxxxx"), // LDRH/STRH Rd, [Rn, #offset]
		mustPattern("1001xxxxxxxxxxxx"), // LDR/STR Rd, [SP, #]
		mustPattern("1011x100xxxxxxxx", // PUSH/POP (R = 0)
			excludeEmptyRegisterList),
		mustPattern("1100xxxxxxxxxxxx", // STMIA/LDMIA
			excludeEmptyRegisterList),
	}
}

// BranchSet returns the template table for instructions that can change
// the PC.
func BranchSet() []*Pattern {
	return []*Pattern{
		mustPattern("01000111xmmmm000", // BLX/BX
			excludeBranchExchangeR15),
		mustPattern("1010oxxxxxxxxxxx"), // add to pc/sp
		mustPattern("11100xxxxxxxxxxx"), // B
		mustPattern("01000100h0xxxxxx"), // ADD (high registers)
		mustPattern("01000110h0xxxxxx"), // MOV (high registers)
		mustPattern("1101ccccxxxxxxxx", // B<cond>
			excludeReservedConditions),
		mustPattern("10110110011x0xxx"), // CPS
	}
}
