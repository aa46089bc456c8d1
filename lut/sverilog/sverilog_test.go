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

package sverilog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ajroetker/go-lutgen/lut"
	"github.com/ajroetker/go-lutgen/lut/fixpt"
	"github.com/ajroetker/go-lutgen/lut/wave"
)

func buildCos2048(t *testing.T, workers int) *lut.Table {
	t.Helper()
	tbl, err := lut.Builder{
		Name:    "cos_lut_2048",
		Domain:  lut.Domain{AddrBits: 11, Kind: lut.Turns},
		Format:  fixpt.SQ(16, 15),
		Fn:      wave.CosTurns{},
		Workers: workers,
	}.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tbl
}

func buildExp1024(t *testing.T) *lut.Table {
	t.Helper()
	tbl, err := lut.Builder{
		Name:   "exp_lut_1024",
		Domain: lut.Domain{AddrBits: 10, Kind: lut.ScaledLinear, InFracBits: 6},
		Format: fixpt.UQ(16, 15),
		Fn:     wave.NegExp{},
	}.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tbl
}

func TestEmitCosModule(t *testing.T) {
	tbl := buildCos2048(t, 1)
	out := string(EmitModule(CosSpec(tbl.Domain, tbl.Format), tbl))
	lines := strings.Split(out, "\n")

	banner := "// " + strings.Repeat("-", 77)
	wantHead := []string{
		banner,
		"// Auto-generated cos(2*pi*x) LUT: 2048 entries",
		"//",
		"// Address encoding: x_real = x / 2048.0 turns  (x in [0..2047])",
		"// Output encoding : y is SQ1.15, y = round(cos(2*pi*x_real) * 2^15)",
		"// Note: +1.0 is saturated to 0x7FFF (32767), -1.0 is 0x8000 (-32768)",
		banner,
		"",
		"module cos_lut_2048 (",
		"    input  logic               en,",
		"    input  logic [10:0]        x,",
		"    output logic signed [15:0] y",
		");",
		"    timeunit 1ns;",
		"    timeprecision 1ps;",
		"",
		"    always_comb begin",
		"        if (!en) begin",
		"            y = 16'sd0;",
		"        end else begin",
		"            unique case (x)",
	}
	for i, want := range wantHead {
		if lines[i] != want {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want)
		}
	}

	// Quarter-turn entries, including the negative-zero address 1536.
	wantArms := []string{
		"                11'd0: y = 16'sh7FFF;",
		"                11'd512: y = 16'sh0000;",
		"                11'd1024: y = 16'sh8000;",
		"                11'd1536: y = 16'sh0000;",
		"                11'd2047: y = 16'sh7FFF;",
		"                default: y = 16'sd0;",
	}
	for _, want := range wantArms {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output missing arm %q", want)
		}
	}

	if got := strings.Count(out, "11'd"); got != 2048 {
		t.Errorf("case arm count = %d, want 2048", got)
	}
	if !strings.HasSuffix(out, "endmodule\n") {
		t.Errorf("output does not end with endmodule and a newline")
	}
}

func TestEmitExpModule(t *testing.T) {
	tbl := buildExp1024(t)
	out := string(EmitModule(ExpSpec(tbl.Domain, tbl.Format), tbl))
	lines := strings.Split(out, "\n")

	banner := "// " + strings.Repeat("-", 77)
	wantHead := []string{
		banner,
		"// Auto-generated exp(-x) LUT: 1024 entries",
		"//",
		"// Address encoding: x is Q4.6 over [0,16): x_real = x / 64",
		"// Output encoding : y is UQ0.15, y = round(exp(-x_real) * 2^15)",
		"// Note: 1.0 is represented as 0x7FFF (not 0x8000) to keep MSB=0.",
		banner,
		"",
		"module exp_lut_1024 (",
		"    input  logic        en,",
		"    input  logic [9:0]  x,",
		"    output logic [15:0] y",
		");",
		"    always_comb begin",
		"        if (!en) begin",
		"            y = 16'd0;",
		"        end else begin",
		"            unique case (x)",
	}
	for i, want := range wantHead {
		if lines[i] != want {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want)
		}
	}

	if !strings.Contains(out, "                10'd0: y = 16'h7FFF;\n") {
		t.Errorf("output missing the exp(0) = 1.0 arm")
	}
	if !strings.Contains(out, "                10'd1023: y = 16'h0000;\n") {
		t.Errorf("output missing the deep-tail zero arm")
	}
	if !strings.Contains(out, "                default: y = 16'd0;\n") {
		t.Errorf("output missing the unsigned default arm")
	}
	if strings.Contains(out, "timeunit") {
		t.Errorf("exp module must not carry timeunit directives")
	}
	// Reserved top bit: no arm may emit a word at or above 0x8000.
	for _, e := range tbl.Entries {
		if e.Word&0x8000 != 0 {
			t.Fatalf("entry %d word = %#04x has the reserved bit set", e.Addr, e.Word)
		}
	}
}

// The emitted text is a pure function of the table, and the table is
// independent of worker count.
func TestEmitDeterministic(t *testing.T) {
	seq := buildCos2048(t, 1)
	par := buildCos2048(t, 8)

	spec := CosSpec(seq.Domain, seq.Format)
	a := EmitModule(spec, seq)
	b := EmitModule(spec, par)
	c := EmitModule(spec, seq)

	if !bytes.Equal(a, b) {
		t.Errorf("sequential and parallel builds emitted different modules")
	}
	if !bytes.Equal(a, c) {
		t.Errorf("repeated emission differs")
	}
}

func TestWordLiteralWidths(t *testing.T) {
	tests := []struct {
		name   string
		format fixpt.Format
		word   uint64
		want   string
	}{
		{"Signed16", fixpt.SQ(16, 15), 0x8000, "16'sh8000"},
		{"Unsigned16", fixpt.UQ(16, 15), 0x7FFF, "16'h7FFF"},
		{"Signed8", fixpt.SQ(8, 7), 0x80, "8'sh80"},
		{"Signed12", fixpt.SQ(12, 11), 0xFFF, "12'shFFF"},
		{"Unsigned20", fixpt.UQ(20, 15), 0x1, "20'h00001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wordLiteral(tt.format, tt.word); got != tt.want {
				t.Errorf("wordLiteral(%s, %#x) = %q, want %q", tt.format, tt.word, got, tt.want)
			}
		})
	}
}
