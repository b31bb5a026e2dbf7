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

package arm_test

import (
	"testing"

	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/test"
)

func TestAlignPC(t *testing.T) {
	// Thumb state masks to a halfword boundary
	test.Equate(t, arm.AlignPC(0x103, arm.StatusUser), 0x102)
	test.Equate(t, arm.AlignPC(0x102, arm.StatusUser), 0x102)

	// ARM state masks to a word boundary
	test.Equate(t, arm.AlignPC(0x103, arm.StatusUser&^arm.StatusThumb), 0x100)
	test.Equate(t, arm.AlignPC(0x106, arm.StatusUser&^arm.StatusThumb), 0x104)
}

func TestStatusUser(t *testing.T) {
	// Thumb state, all condition flags clear
	test.Equate(t, arm.StatusUser&arm.StatusThumb, arm.StatusThumb)
	test.Equate(t, arm.StatusUser&(arm.StatusNegative|arm.StatusZero|arm.StatusCarry|arm.StatusOverflow), uint32(0))
}
