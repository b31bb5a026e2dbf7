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

// Package arm defines the small architectural surface shared by the
// execution engines and the fuzzing harness: register names, status register
// fields and the Bus and Core interfaces.
//
// The package deliberately contains no instruction semantics. The engines in
// the interpreter and jit sub-packages implement those independently of one
// another, which is the property the fuzzing harness exists to check.
package arm
