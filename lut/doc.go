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

// Package lut builds fixed-point lookup tables from real-valued functions.
//
// A build is one pass over a power-of-two address space: each address maps
// to a real input (Domain), the input is evaluated (Func), and the sample
// is quantized into a fixed-point word (fixpt.Format). Every address's
// computation is independent, so the builder may fan evaluation out across
// goroutines; the assembled table is in increasing address order either
// way, bit-for-bit identical between sequential and parallel runs.
//
// # Example Usage
//
//	import (
//		"github.com/ajroetker/go-lutgen/lut"
//		"github.com/ajroetker/go-lutgen/lut/fixpt"
//		"github.com/ajroetker/go-lutgen/lut/wave"
//	)
//
//	// 2048-entry cos(2*pi*x) table in SQ1.15
//	tbl, err := lut.Builder{
//		Name:   "cos_lut_2048",
//		Domain: lut.Domain{AddrBits: 11, Kind: lut.Turns},
//		Format: fixpt.SQ(16, 15),
//		Fn:     wave.CosTurns{},
//	}.Build()
//
// Saturation is part of the contract, not an error: +1.0 in SQ1.15 encodes
// as 0x7FFF while -1.0 encodes as 0x8000, and unsigned formats keep their
// top bit clear so 1.0 in UQ0.15 is 0x7FFF.
package lut
