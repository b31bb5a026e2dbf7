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

package fuzzer_test

import (
	"testing"

	"github.com/clondy999/dynarmic/curated"
	"github.com/clondy999/dynarmic/fuzzer"
	"github.com/clondy999/dynarmic/random"
	"github.com/clondy999/dynarmic/test"
)

func TestPatternTemplateLength(t *testing.T) {
	_, err := fuzzer.NewPattern("0101")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, fuzzer.InvalidTemplate))

	_, err = fuzzer.NewPattern("01010101010101010")
	test.ExpectedFailure(t, err)

	_, err = fuzzer.NewPattern("0101010101010101")
	test.ExpectedSuccess(t, err)
}

func TestPatternForcedBits(t *testing.T) {
	p, err := fuzzer.NewPattern("001ooxxxxxxxxxxx")
	test.ExpectedSuccess(t, err)

	rnd := random.NewRandom(1)
	for i := 0; i < 1000; i++ {
		inst := p.Generate(rnd)
		test.Equate(t, inst&0xe000, 0x2000)
	}
}

func TestPatternFullyForced(t *testing.T) {
	p, err := fuzzer.NewPattern("1110011111111110")
	test.ExpectedSuccess(t, err)

	rnd := random.NewRandom(1)
	test.Equate(t, p.Generate(rnd), 0xe7fe)
}

func TestPatternPredicate(t *testing.T) {
	odd := func(inst uint16) bool {
		return inst&0x01 == 0x01
	}

	p, err := fuzzer.NewPattern("xxxxxxxxxxxxxxxx", odd)
	test.ExpectedSuccess(t, err)

	rnd := random.NewRandom(1)
	for i := 0; i < 1000; i++ {
		test.ExpectedSuccess(t, p.Generate(rnd)&0x01 == 0x01)
	}

	// around half of all candidates fail the predicate
	test.ExpectedSuccess(t, p.Rejections > 0)
}

func TestStockTemplates(t *testing.T) {
	// the stock tables panic on a malformed template so constructing them is
	// the test
	test.Equate(t, len(fuzzer.StandardSet()), 23)
	test.Equate(t, len(fuzzer.BranchSet()), 7)

	// the branch-exchange template must never generate R15 as the target
	// register and the conditional branch template must never generate the
	// reserved conditions
	rnd := random.NewRandom(1)
	for _, p := range fuzzer.BranchSet() {
		for i := 0; i < 500; i++ {
			inst := p.Generate(rnd)
			if inst&0xff00 == 0x4700 {
				test.ExpectedSuccess(t, (inst>>3)&0x0f != 0x0f)
			}
			if inst&0xf000 == 0xd000 {
				test.ExpectedSuccess(t, (inst>>8)&0x0f < 0x0e)
			}
		}
	}
}
