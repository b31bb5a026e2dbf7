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

// Package jit implements the block-translating Thumb engine. instructions
// are decoded once into Go closures, a basic block at a time, with field
// extraction and PC-relative address calculation done at translation time.
// translated blocks are cached by start address whenever the bus reports the
// address as read-only.
//
// not every instruction is translated. instructions with complicated
// side-band behaviour (hi register operations, ALU operations with register
// specified shifts, push/pop, multiple load/store, long branch with link,
// software interrupts, CPS) are delegated one at a time to the bus through
// its Fallback capability. a delegated instruction always terminates the
// block it appears in.
//
// the JIT type implements the arm.Core interface so the harness can move
// machine state in and out of it the same way it does for the interpreter.
package jit
