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

package random_test

import (
	"testing"

	"github.com/clondy999/dynarmic/random"
	"github.com/clondy999/dynarmic/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom(1)
	b := random.NewRandom(1)

	// the same seed must produce the same sequence
	for i := 0; i < 256; i++ {
		test.Equate(t, a.Uint32(), b.Uint32())
	}
}

func TestRandomDefaultSeed(t *testing.T) {
	// a zero seed is replaced with the package's base seed
	a := random.NewRandom(0)
	test.ExpectedSuccess(t, a.Seed != 0)
}
