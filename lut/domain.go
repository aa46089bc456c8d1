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
	"fmt"
	"math"
)

// DomainKind selects how table addresses map to real function inputs.
type DomainKind int

const (
	// Turns maps addr to addr / 2^AddrBits, a fraction of one full
	// rotation in [0, 1).
	Turns DomainKind = iota
	// ScaledLinear treats the address as an unsigned fixed-point number
	// with InFracBits fractional bits: addr / 2^InFracBits.
	ScaledLinear
)

func (k DomainKind) String() string {
	switch k {
	case Turns:
		return "turns"
	case ScaledLinear:
		return "scaled"
	}
	return fmt.Sprintf("DomainKind(%d)", int(k))
}

// Domain describes a LUT address space and its mapping to real inputs.
type Domain struct {
	AddrBits   int        // address width in bits, 1..31
	Kind       DomainKind // mapping function
	InFracBits int        // ScaledLinear only: fractional bits of the address
}

// DomainError reports an invalid Domain parameter or an address outside
// the declared address space.
type DomainError struct {
	Field  string
	Value  int
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("lut: domain %s %d: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the domain parameters.
func (d Domain) Validate() error {
	if d.AddrBits < 1 || d.AddrBits > 31 {
		return &DomainError{Field: "address bits", Value: d.AddrBits, Reason: "must be in 1..31"}
	}
	switch d.Kind {
	case Turns:
		if d.InFracBits != 0 {
			return &DomainError{Field: "input fraction bits", Value: d.InFracBits, Reason: "turns mapping takes none"}
		}
	case ScaledLinear:
		if d.InFracBits < 0 || d.InFracBits > d.AddrBits {
			return &DomainError{Field: "input fraction bits", Value: d.InFracBits, Reason: fmt.Sprintf("must be in 0..%d", d.AddrBits)}
		}
	default:
		return &DomainError{Field: "kind", Value: int(d.Kind), Reason: "unknown mapping"}
	}
	return nil
}

// Size returns the number of addresses, 2^AddrBits.
func (d Domain) Size() int { return 1 << d.AddrBits }

// Real maps an address to the function input it samples. Both mappings
// divide by a power of two, so the result is exact in float64. The bounds
// check is part of the contract even though the builder's own iteration
// never trips it.
func (d Domain) Real(addr int) (float64, error) {
	if addr < 0 || addr >= d.Size() {
		return 0, &DomainError{Field: "address", Value: addr, Reason: fmt.Sprintf("outside [0, %d)", d.Size())}
	}
	if d.Kind == ScaledLinear {
		return float64(addr) / math.Ldexp(1, d.InFracBits), nil
	}
	return float64(addr) / math.Ldexp(1, d.AddrBits), nil
}
