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

package fuzzer

import (
	"github.com/clondy999/dynarmic/curated"
	"github.com/clondy999/dynarmic/random"
)

// error patterns for the fuzzer package.
const (
	InvalidTemplate = "pattern: invalid template (%s)"
)

// Pattern generates random instruction words from a bit template. the
// template is 16 characters long, one per instruction bit, most significant
// first. a '0' or '1' forces the bit and any other character leaves it free.
//
//	NewPattern("001ooxxxxxxxxxxx")
//
// generates move/compare/add/subtract immediate instructions with random
// operation, register and immediate fields.
type Pattern struct {
	template string
	bits     uint16
	mask     uint16
	valid    []func(uint16) bool

	// number of candidates discarded by the validity predicates since the
	// pattern was created
	Rejections int
}

// NewPattern is the preferred method of initialisation for the Pattern type.
// the optional predicates exclude candidate encodings. a template that is
// not exactly 16 characters long is an error.
func NewPattern(template string, valid ...func(uint16) bool) (*Pattern, error) {
	if len(template) != 16 {
		return nil, curated.Errorf(InvalidTemplate, template)
	}

	p := &Pattern{
		template: template,
		valid:    valid,
	}

	for i := 0; i < 16; i++ {
		bit := uint16(0x01) << (15 - i)
		switch template[i] {
		case '0':
			p.mask |= bit
		case '1':
			p.bits |= bit
			p.mask |= bit
		}
	}

	return p, nil
}

func (p *Pattern) String() string {
	return p.template
}

// Generate draws instruction words until one passes every validity
// predicate. forced bits are overlaid on each candidate before the
// predicates run.
func (p *Pattern) Generate(rnd *random.Random) uint16 {
	for {
		inst := p.bits | (rnd.Uint16() &^ p.mask)

		ok := true
		for _, v := range p.valid {
			if !v(inst) {
				ok = false
				break
			}
		}
		if ok {
			return inst
		}

		p.Rejections++
	}
}
