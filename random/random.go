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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a seedable random number generator. every fuzzing session
// records the seed it started with so a failing run can be repeated exactly.
type Random struct {
	Seed int64
	rand *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. a
// seed of zero selects a seed from the time of day.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = baseSeed
	}
	return &Random{
		Seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (rnd *Random) Intn(n int) int {
	return rnd.rand.Intn(n)
}

func (rnd *Random) Uint16() uint16 {
	return uint16(rnd.rand.Uint32())
}

func (rnd *Random) Uint32() uint32 {
	return rnd.rand.Uint32()
}
