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

	"github.com/clondy999/dynarmic/fuzzer"
	"github.com/clondy999/dynarmic/test"
)

func TestFuzzSingleInstructions(t *testing.T) {
	fz := fuzzer.NewFuzzer(fuzzer.StandardSet(), 1)
	test.ExpectedSuccess(t, fz.Fuzz(1, 2, 10000))
}

func TestFuzzShortBlocks(t *testing.T) {
	fz := fuzzer.NewFuzzer(fuzzer.StandardSet(), 2)
	test.ExpectedSuccess(t, fz.Fuzz(5, 6, 3000))
}

func TestFuzzLongBlocks(t *testing.T) {
	fz := fuzzer.NewFuzzer(fuzzer.StandardSet(), 3)
	test.ExpectedSuccess(t, fz.Fuzz(1024, 1025, 25))
}

func TestFuzzBranches(t *testing.T) {
	fz := fuzzer.NewFuzzer(fuzzer.BranchSet(), 4)
	test.ExpectedSuccess(t, fz.Fuzz(1, 1, 10000))
}

// campaigns on the same Fuzzer must be independent of one another. every run
// clears both engines' caches so nothing from an earlier campaign can leak
// into a later one.
func TestFuzzCampaignIndependence(t *testing.T) {
	fz := fuzzer.NewFuzzer(fuzzer.StandardSet(), 5)
	test.ExpectedSuccess(t, fz.Fuzz(5, 6, 100))
	test.ExpectedSuccess(t, fz.Fuzz(1, 2, 100))
	test.ExpectedSuccess(t, fz.Fuzz(1024, 1025, 5))
}

func TestFuzzSeedReporting(t *testing.T) {
	fz := fuzzer.NewFuzzer(fuzzer.StandardSet(), 99)
	test.Equate(t, fz.Seed(), int64(99))

	// a zero seed picks a seed from the time of day
	fz = fuzzer.NewFuzzer(fuzzer.StandardSet(), 0)
	test.ExpectedSuccess(t, fz.Seed() != 0)
}
