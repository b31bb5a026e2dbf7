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

// Package fuzzer drives the differential fuzzing of the two Thumb engines.
//
// A fuzzing campaign repeatedly fills a small code area with randomly
// generated instructions, runs the interpreter and the jit over identical
// initial machine state, and compares the final registers, the final status
// and the sequence of memory writes each engine produced. Any difference at
// all is a failure.
//
// Instructions are drawn from Pattern values. A pattern is a 16 character
// template of forced and free bits, with optional predicates to exclude
// encodings whose behaviour the architecture leaves unpredictable. The
// StandardSet and BranchSet functions return the two stock template tables.
//
// The Memory type is the bus shared by both engines. It records writes
// rather than performing them and serves reads from the code area, with
// reads outside the code area returning the address value itself (open bus).
// It also hosts the fallback path the jit uses for instructions it does not
// translate: a one-shot interpreter seeded from the calling engine's state.
//
// A Fuzzer owns its Memory, engines and random number generator so separate
// Fuzzer instances can run concurrently without interference.
package fuzzer
