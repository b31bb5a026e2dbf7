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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the fuzzing harness.
//
// Unlike math/rand the package insists on an explicit seed, which is then
// carried around with the generator. The point of this is reproducibility: a
// failing fuzz run can always report the seed that produced it and the run
// repeated exactly.
//
// A seed of zero asks for a seed taken from the time of day at program start.
package random
