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

// Package disassembly converts 16-bit Thumb opcodes into readable mnemonics.
// it exists to make mismatch reports legible and is deliberately independent
// of both execution engines.
package disassembly
