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

package disassembly_test

import (
	"testing"

	"github.com/clondy999/dynarmic/arm/disassembly"
	"github.com/clondy999/dynarmic/test"
)

func TestDisassemble(t *testing.T) {
	e := disassembly.Disassemble(0x2005)
	test.Equate(t, e.Operator, "MOV")
	test.Equate(t, e.Operand, "R0, #05")

	e = disassembly.Disassemble(0x1a42)
	test.Equate(t, e.Operator, "SUB")
	test.Equate(t, e.Operand, "R2, R0, R1")

	e = disassembly.Disassemble(0x4008)
	test.Equate(t, e.Operator, "AND")
	test.Equate(t, e.Operand, "R0, R1")

	e = disassembly.Disassemble(0x4710)
	test.Equate(t, e.Operator, "BX")
	test.Equate(t, e.Operand, "R2")

	e = disassembly.Disassemble(0xe7fe)
	test.Equate(t, e.Operator, "B")
	test.Equate(t, e.Operand, "-4")

	e = disassembly.Disassemble(0xd0ff)
	test.Equate(t, e.Operator, "BEQ")
	test.Equate(t, e.Operand, "-2")

	e = disassembly.Disassemble(0xb403)
	test.Equate(t, e.Operator, "PUSH")
	test.Equate(t, e.Operand, "{R0, R1}")

	e = disassembly.Disassemble(0xbd81)
	test.Equate(t, e.Operator, "POP")
	test.Equate(t, e.Operand, "{R0, R7, PC}")

	e = disassembly.Disassemble(0xdf2a)
	test.Equate(t, e.Operator, "SWI")
	test.Equate(t, e.Operand, "#2a")
}

func TestDisassembleUndefined(t *testing.T) {
	// the permanently undefined space disassembles to the raw opcode
	e := disassembly.Disassemble(0xde01)
	test.Equate(t, e.Operator, "de01")
	test.Equate(t, e.Operand, "")
}
