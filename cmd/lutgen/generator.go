// Copyright 2025 go-lutgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-lutgen/lut"
	"github.com/ajroetker/go-lutgen/lut/sverilog"
)

// Generator runs one build-and-emit pass: build the table, render the
// SystemVerilog module, write it out, report.
type Generator struct {
	FuncLabel string // human name of the tabulated function, e.g. "cosine"
	Builder   lut.Builder
	Spec      sverilog.ModuleSpec
	Out       string
	Verbose   bool
}

// Run executes the pass.
func (g *Generator) Run() error {
	tbl, err := g.Builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build table %s: %w", g.Builder.Name, err)
	}

	data := sverilog.EmitModule(g.Spec, tbl)
	if err := os.WriteFile(g.Out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.Out, err)
	}

	fmt.Printf("Wrote %s with %d entries.\n", g.Out, tbl.Len())
	if g.Verbose {
		g.printSanity(tbl)
	}
	return nil
}

// printSanity echoes a handful of entries so a generated table can be
// eyeballed against the expected shape of the function.
func (g *Generator) printSanity(tbl *lut.Table) {
	caser := cases.Title(language.English)
	fmt.Printf("%s LUT %s: %s over %s domain\n",
		caser.String(g.FuncLabel), tbl.Name, tbl.Format, tbl.Domain.Kind)

	digits := sverilog.HexDigits(tbl.Format)
	n := tbl.Len()
	switch tbl.Domain.Kind {
	case lut.Turns:
		for _, addr := range samplePicks(n, []int{0, n / 4, n / 2, 3 * n / 4, n - 1}) {
			e := tbl.Entries[addr]
			fmt.Printf("addr=%-6d turns=%.6f rad=%.6f y=0x%0*X\n",
				e.Addr, e.X, 2*math.Pi*e.X, digits, e.Word)
		}
	case lut.ScaledLinear:
		for _, addr := range samplePicks(n, []int{0, 1 << tbl.Domain.InFracBits, n - 1}) {
			e := tbl.Entries[addr]
			fmt.Printf("addr=%-6d x=%.6f y=0x%0*X (f(x)=%.6g)\n",
				e.Addr, e.X, digits, e.Word, e.Y)
		}
	}
}

// samplePicks drops out-of-range and repeated picks while keeping order.
func samplePicks(n int, picks []int) []int {
	out := picks[:0]
	last := -1
	for _, p := range picks {
		if p < 0 || p >= n || p == last {
			continue
		}
		out = append(out, p)
		last = p
	}
	return out
}
