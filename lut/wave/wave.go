// Package wave provides the built-in function evaluators.
package wave

import "math"

// CosTurns evaluates cos(2*pi*x) with x measured in turns.
type CosTurns struct{}

// Eval returns cos(2*pi*x).
func (CosTurns) Eval(x float64) float64 { return math.Cos(2 * math.Pi * x) }

// NegExp evaluates exp(-x).
type NegExp struct{}

// Eval returns exp(-x).
func (NegExp) Eval(x float64) float64 { return math.Exp(-x) }
