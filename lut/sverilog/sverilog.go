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

// Package sverilog renders lookup tables as synthesizable SystemVerilog
// modules: enable-gated, one explicit case arm per address in ascending
// order, zero default.
package sverilog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ajroetker/go-lutgen/lut"
	"github.com/ajroetker/go-lutgen/lut/fixpt"
)

// ModuleSpec carries the banner text and module options for one emitted
// file. The numeric layout (port widths, literal widths, case arms) comes
// from the table itself.
type ModuleSpec struct {
	Title    string // banner summary, e.g. "cos(2*pi*x)"
	AddrDesc string // address encoding formula
	OutDesc  string // output encoding formula
	Note     string // saturation convention; line omitted when empty
	Timeunit bool   // emit timeunit/timeprecision directives
}

// EmitModule renders a table as a combinational module. The output is a
// pure function of the spec and table.
func EmitModule(spec ModuleSpec, tbl *lut.Table) []byte {
	var buf bytes.Buffer
	banner := "// " + strings.Repeat("-", 77)
	f := tbl.Format
	d := tbl.Domain

	fmt.Fprintf(&buf, "%s\n", banner)
	fmt.Fprintf(&buf, "// Auto-generated %s LUT: %d entries\n", spec.Title, tbl.Len())
	buf.WriteString("//\n")
	fmt.Fprintf(&buf, "// Address encoding: %s\n", spec.AddrDesc)
	fmt.Fprintf(&buf, "// Output encoding : %s\n", spec.OutDesc)
	if spec.Note != "" {
		fmt.Fprintf(&buf, "// Note: %s\n", spec.Note)
	}
	fmt.Fprintf(&buf, "%s\n\n", banner)

	fmt.Fprintf(&buf, "module %s (\n", tbl.Name)
	ytype := fmt.Sprintf("logic [%d:0]", f.TotalBits-1)
	if f.Signed {
		ytype = fmt.Sprintf("logic signed [%d:0]", f.TotalBits-1)
	}
	ports := []struct{ dir, typ, name string }{
		{"input", "logic", "en"},
		{"input", fmt.Sprintf("logic [%d:0]", d.AddrBits-1), "x"},
		{"output", ytype, "y"},
	}
	width := 0
	for _, p := range ports {
		width = max(width, len(p.typ))
	}
	for i, p := range ports {
		sep := ","
		if i == len(ports)-1 {
			sep = ""
		}
		fmt.Fprintf(&buf, "    %-6s %-*s %s%s\n", p.dir, width, p.typ, p.name, sep)
	}
	buf.WriteString(");\n")
	if spec.Timeunit {
		buf.WriteString("    timeunit 1ns;\n")
		buf.WriteString("    timeprecision 1ps;\n\n")
	}

	zero := zeroLiteral(f)
	buf.WriteString("    always_comb begin\n")
	buf.WriteString("        if (!en) begin\n")
	fmt.Fprintf(&buf, "            y = %s;\n", zero)
	buf.WriteString("        end else begin\n")
	buf.WriteString("            unique case (x)\n")
	for _, e := range tbl.Entries {
		fmt.Fprintf(&buf, "                %d'd%d: y = %s;\n", d.AddrBits, e.Addr, wordLiteral(f, e.Word))
	}
	fmt.Fprintf(&buf, "                default: y = %s;\n", zero)
	buf.WriteString("            endcase\n")
	buf.WriteString("        end\n")
	buf.WriteString("    end\n")
	buf.WriteString("endmodule\n")
	return buf.Bytes()
}

// CosSpec fills the banner for a cosine-of-turns table the way the shipped
// cos_lut artifacts document themselves.
func CosSpec(d lut.Domain, f fixpt.Format) ModuleSpec {
	n := d.Size()
	digits := HexDigits(f)
	return ModuleSpec{
		Title:    "cos(2*pi*x)",
		AddrDesc: fmt.Sprintf("x_real = x / %d.0 turns  (x in [0..%d])", n, n-1),
		OutDesc:  fmt.Sprintf("y is %s, y = round(cos(2*pi*x_real) * 2^%d)", f, f.FracBits),
		Note: fmt.Sprintf("+1.0 is saturated to 0x%0*X (%d), -1.0 is 0x%0*X (%d)",
			digits, f.MaxCode(), f.MaxCode(), digits, f.Encode(f.MinCode()), f.MinCode()),
		Timeunit: true,
	}
}

// ExpSpec fills the banner for a decaying-exponential table over a
// scaled-linear domain.
func ExpSpec(d lut.Domain, f fixpt.Format) ModuleSpec {
	intBits := d.AddrBits - d.InFracBits
	digits := HexDigits(f)
	return ModuleSpec{
		Title: "exp(-x)",
		AddrDesc: fmt.Sprintf("x is Q%d.%d over [0,%d): x_real = x / %d",
			intBits, d.InFracBits, 1<<intBits, 1<<d.InFracBits),
		OutDesc: fmt.Sprintf("y is %s, y = round(exp(-x_real) * 2^%d)", f, f.FracBits),
		Note: fmt.Sprintf("1.0 is represented as 0x%0*X (not 0x%0*X) to keep MSB=0.",
			digits, f.Word(1.0), digits, uint64(1)<<(f.TotalBits-1)),
		Timeunit: false,
	}
}

// HexDigits returns the hex literal width of a format's word.
func HexDigits(f fixpt.Format) int { return (f.TotalBits + 3) / 4 }

// wordLiteral renders one table word as a sized hex literal, signed-typed
// when the format is signed.
func wordLiteral(f fixpt.Format, word uint64) string {
	if f.Signed {
		return fmt.Sprintf("%d'sh%0*X", f.TotalBits, HexDigits(f), word)
	}
	return fmt.Sprintf("%d'h%0*X", f.TotalBits, HexDigits(f), word)
}

// zeroLiteral renders the zero word used for the disabled and default arms.
func zeroLiteral(f fixpt.Format) string {
	if f.Signed {
		return fmt.Sprintf("%d'sd0", f.TotalBits)
	}
	return fmt.Sprintf("%d'd0", f.TotalBits)
}
