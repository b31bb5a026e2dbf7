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

package interpreter

import (
	"strings"

	"github.com/clondy999/dynarmic/arm"
)

// the interpreter keeps the CPSR condition flags unpacked. the remaining
// bits (mode field, interrupt masks and the T bit) are kept as they were
// written.
type status struct {
	negative bool
	zero     bool
	overflow bool
	carry    bool

	// the non-flag portion of the CPSR
	other uint32
}

func (sr *status) String() string {
	s := strings.Builder{}
	if sr.negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	if sr.carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	return s.String()
}

func (sr *status) fromCPSR(cpsr uint32) {
	sr.negative = cpsr&arm.StatusNegative == arm.StatusNegative
	sr.zero = cpsr&arm.StatusZero == arm.StatusZero
	sr.carry = cpsr&arm.StatusCarry == arm.StatusCarry
	sr.overflow = cpsr&arm.StatusOverflow == arm.StatusOverflow
	sr.other = cpsr &^ (arm.StatusNegative | arm.StatusZero | arm.StatusCarry | arm.StatusOverflow)
}

func (sr *status) toCPSR() uint32 {
	cpsr := sr.other
	if sr.negative {
		cpsr |= arm.StatusNegative
	}
	if sr.zero {
		cpsr |= arm.StatusZero
	}
	if sr.carry {
		cpsr |= arm.StatusCarry
	}
	if sr.overflow {
		cpsr |= arm.StatusOverflow
	}
	return cpsr
}

func (sr *status) thumb() bool {
	return sr.other&arm.StatusThumb == arm.StatusThumb
}

func (sr *status) setThumb(set bool) {
	if set {
		sr.other |= arm.StatusThumb
	} else {
		sr.other &^= arm.StatusThumb
	}
}

func (sr *status) isNegative(a uint32) {
	sr.negative = a&0x80000000 == 0x80000000
}

func (sr *status) isZero(a uint32) {
	sr.zero = a == 0x00
}

func (sr *status) setOverflow(a, b, c uint32) {
	d := (a & 0x7fffffff) + (b & 0x7fffffff) + c
	d >>= 31
	e := (d & 0x01) + ((a >> 31) & 0x01) + ((b >> 31) & 0x01)
	e >>= 1
	sr.overflow = (d^e)&0x01 == 0x01
}

func (sr *status) setCarry(a, b, c uint32) {
	d := (a & 0x7fffffff) + (b & 0x7fffffff) + c
	d = (d >> 31) + (a >> 31) + (b >> 31)
	sr.carry = d&0x02 == 0x02
}
