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

// Package fixpt implements binary fixed-point formats and quantization.
//
// A Format describes a Qm.n encoding: a TotalBits-wide word holding values
// scaled by 2^FracBits. Signed formats use two's complement. Unsigned
// formats reserve the most significant bit, keeping it clear so the word
// reads as non-negative under either interpretation.
package fixpt

import (
	"fmt"
	"math"
)

// Format describes a fixed-point encoding.
type Format struct {
	TotalBits int  // word width in bits, 1..64 (1..63 unsigned)
	FracBits  int  // fractional bits; scale factor is 2^FracBits
	Signed    bool // two's complement vs reserved-MSB unsigned
}

// SQ returns a signed two's-complement format: SQ(16, 15) is SQ1.15.
func SQ(total, frac int) Format {
	return Format{TotalBits: total, FracBits: frac, Signed: true}
}

// UQ returns an unsigned format with the top bit reserved: UQ(16, 15) is
// UQ0.15.
func UQ(total, frac int) Format {
	return Format{TotalBits: total, FracBits: frac}
}

// RangeViolationError reports a Format whose bit widths cannot represent
// the encoding it names.
type RangeViolationError struct {
	Format Format
	Reason string
}

func (e *RangeViolationError) Error() string {
	return fmt.Sprintf("fixpt: invalid format %s: %s", e.Format, e.Reason)
}

// Validate checks the bit-width combination.
func (f Format) Validate() error {
	switch {
	case f.TotalBits < 1 || f.TotalBits > 64:
		return &RangeViolationError{Format: f, Reason: "total bits must be in 1..64"}
	case !f.Signed && f.TotalBits > 63:
		return &RangeViolationError{Format: f, Reason: "unsigned total bits above 63 overflow int64 codes"}
	case f.FracBits < 0:
		return &RangeViolationError{Format: f, Reason: "fractional bits must be non-negative"}
	case f.Signed && f.FracBits >= f.TotalBits:
		return &RangeViolationError{Format: f, Reason: "signed formats need a sign bit above the fraction"}
	case !f.Signed && f.FracBits > f.TotalBits:
		return &RangeViolationError{Format: f, Reason: "fractional bits exceed word width"}
	}
	return nil
}

// Scale returns the quantization scale factor 2^FracBits.
func (f Format) Scale() float64 { return math.Ldexp(1, f.FracBits) }

// MinCode returns the smallest integer code the word can hold.
func (f Format) MinCode() int64 {
	if f.Signed {
		return int64(-1) << (f.TotalBits - 1)
	}
	return 0
}

// MaxCode returns the largest integer code the word can hold.
func (f Format) MaxCode() int64 {
	if f.Signed {
		return int64(uint64(1)<<(f.TotalBits-1) - 1)
	}
	return int64(uint64(1)<<f.TotalBits - 1)
}

// satMax is the quantizer's upper saturation bound. For unsigned formats it
// is tighter than MaxCode: the reserved top bit stays clear.
func (f Format) satMax() int64 {
	if f.Signed {
		return f.MaxCode()
	}
	return int64(uint64(1)<<f.FracBits - 1)
}

// Quantize converts a real value to an integer code, saturating silently at
// the format's bounds.
//
// Signed formats round half away from zero, so +1.0 in SQ1.15 saturates to
// 32767 while -1.0 lands exactly on -32768. Unsigned formats round half up
// and saturate below the reserved bit, so 1.0 in UQ0.15 is 32767, never
// 0x8000.
func (f Format) Quantize(y float64) int64 {
	var scaled float64
	if f.Signed {
		scaled = math.Round(y * f.Scale())
	} else {
		scaled = math.Floor(y*f.Scale() + 0.5)
	}
	lo, hi := f.MinCode(), f.satMax()
	// Compare in float64 before converting: hi may round up when cast, so
	// the >= keeps out-of-range conversions unreachable.
	if scaled <= float64(lo) {
		return lo
	}
	if scaled >= float64(hi) {
		return hi
	}
	return int64(scaled)
}

// Encode masks a code to TotalBits, producing the two's-complement word.
func (f Format) Encode(code int64) uint64 {
	return uint64(code) & f.mask()
}

// Word quantizes y and encodes the resulting code.
func (f Format) Word(y float64) uint64 { return f.Encode(f.Quantize(y)) }

// Decode recovers the integer code from a word, sign-extending when the
// format is signed.
func (f Format) Decode(word uint64) int64 {
	w := word & f.mask()
	if f.Signed && w&(uint64(1)<<(f.TotalBits-1)) != 0 {
		w |= ^f.mask()
	}
	return int64(w)
}

// Real converts an integer code back to the value it represents.
func (f Format) Real(code int64) float64 {
	return float64(code) / f.Scale()
}

// String renders the conventional format label, e.g. "SQ1.15" or "UQ0.15".
func (f Format) String() string {
	if f.Signed {
		return fmt.Sprintf("SQ%d.%d", f.TotalBits-f.FracBits, f.FracBits)
	}
	return fmt.Sprintf("UQ%d.%d", f.TotalBits-f.FracBits-1, f.FracBits)
}

func (f Format) mask() uint64 {
	return ^uint64(0) >> (64 - f.TotalBits)
}
