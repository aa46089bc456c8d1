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

package lut

import "github.com/ajroetker/go-lutgen/lut/fixpt"

// Entry is one produced table row.
type Entry struct {
	Addr int     // table address
	X    float64 // real input the address maps to
	Y    float64 // function output before quantization
	Code int64   // quantized integer code
	Word uint64  // code masked to the format's word width
}

// Table is a completed lookup table: one entry per address, in increasing
// address order, paired with the domain and format that produced it.
// Immutable once built.
type Table struct {
	Name    string
	Domain  Domain
	Format  fixpt.Format
	Entries []Entry
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.Entries) }

// Words returns the encoded word of every entry, in address order.
func (t *Table) Words() []uint64 {
	words := make([]uint64, len(t.Entries))
	for i, e := range t.Entries {
		words[i] = e.Word
	}
	return words
}
