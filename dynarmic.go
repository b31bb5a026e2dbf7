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

package main

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/clondy999/dynarmic/fuzzer"
	"github.com/clondy999/dynarmic/logger"
	"github.com/clondy999/dynarmic/modalflag"
	"github.com/clondy999/dynarmic/statsview"
	"github.com/clondy999/dynarmic/version"
)

// the command line modes
const (
	modeRun      = "RUN"
	modePatterns = "PATTERNS"
	modeVersion  = "VERSION"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes(modeRun, modePatterns, modeVersion)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case modeRun:
		if err := fuzz(md); err != nil {
			fmt.Printf("* %v\n", err)
			logger.Write(os.Stderr)
			os.Exit(10)
		}
	case modePatterns:
		patterns(md)
	case modeVersion:
		vrsn, revision, _ := version.Version()
		fmt.Printf("%s (%s)\n", vrsn, revision)
	}
}

// fuzz runs a fuzzing campaign according to the command line and the
// environment. every command line default can also be set through the
// environment, which is convenient for long soak runs under a supervisor.
func fuzz(md *modalflag.Modes) error {
	md.NewMode()

	set := md.AddString("set", env.Str("DYNARMIC_SET", "standard"), "pattern set to draw instructions from (standard, branch)")
	instructions := md.AddInt("instructions", env.Int("DYNARMIC_INSTRUCTIONS", 5), "number of instruction words generated per run")
	steps := md.AddInt("steps", env.Int("DYNARMIC_STEPS", 6), "number of instructions executed per run")
	runs := md.AddInt("runs", env.Int("DYNARMIC_RUNS", 3000), "number of runs in the campaign")
	seed := md.AddInt64("seed", env.Int64("DYNARMIC_SEED", 0), "random seed. zero means seed from the time of day")
	graph := md.AddString("graph", env.Str("DYNARMIC_GRAPH", ""), "on divergence, write a graphviz dump of both states to this file")
	stats := md.AddBool("stats", env.Bool("DYNARMIC_STATS"), "run the statistics server")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		return err
	}

	var table []*fuzzer.Pattern
	switch *set {
	case "standard":
		table = fuzzer.StandardSet()
	case "branch":
		table = fuzzer.BranchSet()
	default:
		return fmt.Errorf("unknown pattern set (%s)", *set)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			statsview.Launch(os.Stderr)
		}
	}

	fz := fuzzer.NewFuzzer(table, *seed)
	fz.Progress = os.Stdout

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		defer f.Close()
		fz.Graph = f
	}

	fmt.Printf("fuzzing %s set: %d instructions, %d steps, %d runs (seed %d)\n",
		*set, *instructions, *steps, *runs, fz.Seed())

	if err := fz.Fuzz(*instructions, *steps, *runs); err != nil {
		return err
	}

	fmt.Printf("%d runs, no divergence\n", *runs)
	return nil
}

// patterns lists the stock template tables.
func patterns(md *modalflag.Modes) {
	md.NewMode()

	fmt.Println("standard set (no PC writes):")
	for _, p := range fuzzer.StandardSet() {
		fmt.Printf("  %s\n", p)
	}

	fmt.Println("branch set (PC writes):")
	for _, p := range fuzzer.BranchSet() {
		fmt.Printf("  %s\n", p)
	}
}
