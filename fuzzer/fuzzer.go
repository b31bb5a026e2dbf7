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
	"fmt"
	"io"

	"github.com/clondy999/dynarmic/arm"
	"github.com/clondy999/dynarmic/arm/interpreter"
	"github.com/clondy999/dynarmic/arm/jit"
	"github.com/clondy999/dynarmic/curated"
	"github.com/clondy999/dynarmic/random"
)

// error patterns for the Fuzzer type.
const (
	Divergence  = "fuzzer: engines diverged at run %d (seed %d)\n%s"
	EngineFault = "fuzzer: run %d (seed %d): %v"
)

// Snapshot is the observable machine state at the end of a run: the register
// file, the status register and the log of every write the engine made.
type Snapshot struct {
	Registers arm.Registers
	Status    uint32
	Writes    []WriteRecord
}

// Fuzzer runs a differential fuzzing campaign over the two engines. each
// Fuzzer owns its memory, engines and random number generator, so instances
// are fully independent of one another.
type Fuzzer struct {
	mem      *Memory
	interp   *interpreter.Interpreter
	jit      *jit.JIT
	rnd      *random.Random
	patterns []*Pattern

	// run numbers are printed to Progress every ten runs. nil disables the
	// progress indicator
	Progress io.Writer

	// on divergence a graphviz rendering of the two snapshots is written to
	// Graph. nil disables the rendering
	Graph io.Writer
}

// NewFuzzer is the preferred method of initialisation for the Fuzzer type.
// instructions are drawn from the pattern table with equal probability per
// pattern. a seed of zero selects a seed from the time of day.
func NewFuzzer(patterns []*Pattern, seed int64) *Fuzzer {
	mem := NewMemory()
	return &Fuzzer{
		mem:      mem,
		interp:   interpreter.NewInterpreter(mem),
		jit:      jit.NewJIT(mem),
		rnd:      random.NewRandom(seed),
		patterns: patterns,
	}
}

// Seed returns the seed the campaign is running with, for reproducing
// failures.
func (fz *Fuzzer) Seed() int64 {
	return fz.rnd.Seed
}

// Fuzz performs runs fuzz cases. each case generates instructions
// instruction words, executes steps instructions on both engines from
// identical random initial state, and compares the results. the first
// divergence or engine fault ends the campaign with an error.
func (fz *Fuzzer) Fuzz(instructions int, steps int, runs int) error {
	for run := 0; run < runs; run++ {
		if err := fz.fuzzOne(run, instructions, steps); err != nil {
			return err
		}

		if fz.Progress != nil && run%10 == 0 {
			fmt.Fprintf(fz.Progress, "%d\r", run)
		}
	}

	return nil
}

func (fz *Fuzzer) fuzzOne(run int, instructions int, steps int) error {
	// runs must not be able to see one another through either engine's cache
	fz.interp.ClearCache()
	fz.jit.ClearCache()

	// generate the code for this case. everything beyond it is the sentinel
	fz.mem.Fill()
	words := make([]uint16, instructions)
	for i := range words {
		words[i] = fz.patterns[fz.rnd.Intn(len(fz.patterns))].Generate(fz.rnd)
	}
	fz.mem.Load(words)

	// identical initial state for both engines. execution starts at the
	// bottom of the code area
	var initial arm.Registers
	for i := 0; i < arm.PC; i++ {
		initial[i] = fz.rnd.Uint32()
	}
	initial[arm.PC] = 0x00

	// interpreter first
	fz.interp.SetRegisters(initial)
	fz.interp.SetStatus(arm.StatusUser)
	fz.mem.ClearWrites()
	fz.interp.ExecuteCount = steps
	if err := fz.interp.Run(); err != nil {
		return curated.Errorf(EngineFault, run, fz.Seed(), err)
	}

	a := Snapshot{
		Registers: fz.interp.Registers(),
		Status:    fz.interp.Status(),
		Writes:    fz.mem.Writes(),
	}

	// the interpreter leaves R15 pointing at the next fetch address. align
	// it the same way the jit's fallback path does so the comparison is of
	// like with like
	a.Registers[arm.PC] = arm.AlignPC(a.Registers[arm.PC], a.Status)

	// then the jit
	fz.jit.SetRegisters(initial)
	fz.jit.SetStatus(arm.StatusUser)
	fz.mem.ClearWrites()
	if err := fz.jit.Run(steps); err != nil {
		return curated.Errorf(EngineFault, run, fz.Seed(), err)
	}

	b := Snapshot{
		Registers: fz.jit.Registers(),
		Status:    fz.jit.Status(),
		Writes:    fz.mem.Writes(),
	}

	if !behaviourMatches(a, b) {
		if fz.Graph != nil {
			renderGraph(fz.Graph, &a, &b)
		}
		return curated.Errorf(Divergence, run, fz.Seed(), report(words, initial, a, b))
	}

	return nil
}
