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

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-lutgen/lut/fixpt"
)

// Func evaluates the real function being tabulated. Implementations must
// be pure: the builder may call Eval from several goroutines and relies on
// identical inputs producing identical outputs.
type Func interface {
	Eval(x float64) float64
}

// EvalFunc adapts a plain function to the Func interface.
type EvalFunc func(x float64) float64

// Eval calls f(x).
func (f EvalFunc) Eval(x float64) float64 { return f(x) }

// Builder configures one table build.
type Builder struct {
	Name    string // table name carried through to emitters and reports
	Domain  Domain
	Format  fixpt.Format
	Fn      Func
	Workers int // evaluation goroutines; <= 1 builds sequentially
}

// Build produces the complete table: for each address 0..Size-1 in order,
// map to the real input, evaluate, quantize, encode. Parameter errors are
// caught here, once, before any entry is computed. The result is
// deterministic and independent of Workers; the build itself performs no
// I/O and touches no global state.
func (b Builder) Build() (*Table, error) {
	if err := b.Domain.Validate(); err != nil {
		return nil, err
	}
	if err := b.Format.Validate(); err != nil {
		return nil, err
	}
	if b.Fn == nil {
		return nil, errors.New("lut: builder needs an evaluator function")
	}

	n := b.Domain.Size()
	entries := make([]Entry, n)

	fill := func(lo, hi int) error {
		for addr := lo; addr < hi; addr++ {
			x, err := b.Domain.Real(addr)
			if err != nil {
				return err
			}
			y := b.Fn.Eval(x)
			code := b.Format.Quantize(y)
			entries[addr] = Entry{
				Addr: addr,
				X:    x,
				Y:    y,
				Code: code,
				Word: b.Format.Encode(code),
			}
		}
		return nil
	}

	if b.Workers <= 1 {
		if err := fill(0, n); err != nil {
			return nil, err
		}
	} else {
		// Contiguous chunks, each worker writing its own index range of
		// the preallocated slice, so address order never depends on
		// scheduling.
		var g errgroup.Group
		chunk := (n + b.Workers - 1) / b.Workers
		for lo := 0; lo < n; lo += chunk {
			lo := lo
			g.Go(func() error { return fill(lo, min(lo+chunk, n)) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &Table{Name: b.Name, Domain: b.Domain, Format: b.Format, Entries: entries}, nil
}
