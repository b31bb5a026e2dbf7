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

// Package interpreter implements a step-by-step Thumb interpreter. It is the
// reference engine of the fuzzing harness: every instruction format in the
// generated corpus is implemented here, including the formats the jit engine
// delegates back to a one-shot instance of this interpreter.
//
// The interpreter supports all nineteen Thumb instruction formats of the
// ARM7TDMI data sheet plus the v6 extensions the fuzz corpus generates
// (SXTH/SXTB/UXTH/UXTB, REV/REV16/REVSH and CPS).
//
// R15 holds the address of the next instruction to be fetched. When an
// instruction reads R15 as an operand it sees the architecturally visible
// value, the instruction address plus 4.
package interpreter
