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

// Package pulse decodes the result documents written by the pulse
// simulation harness. The document is consumed read-only: each pulse pairs
// device-under-test I/Q samples with their golden reference.
package pulse

import (
	"encoding/json"
	"fmt"
	"io"
)

// Sample is one per-sample record. The _r fields carry real amplitudes,
// already scaled down from their SQ0.15 codes by the harness.
type Sample struct {
	N     int     `json:"n"`
	DutI  float64 `json:"dut_i_r"`
	GoldI float64 `json:"gold_i_r"`
	DutQ  float64 `json:"dut_q_r"`
	GoldQ float64 `json:"gold_q_r"`
}

// Pulse is one simulated pulse: the waveform generator's fixed-point
// configuration and the sampled output.
type Pulse struct {
	Name    string         `json:"name"`
	Params  map[string]any `json:"params"`
	Samples []Sample       `json:"samples"`
}

// Document is a full simulation result set.
type Document struct {
	Pulses []Pulse `json:"pulses"`
}

// Decode reads and validates one result document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode pulse results: %w", err)
	}
	if len(doc.Pulses) == 0 {
		return nil, fmt.Errorf("pulse results declare no pulses")
	}
	for i, p := range doc.Pulses {
		if p.Name == "" {
			return nil, fmt.Errorf("pulse %d has no name", i)
		}
		if len(p.Samples) == 0 {
			return nil, fmt.Errorf("pulse %d (%s) has no samples", i, p.Name)
		}
	}
	return &doc, nil
}

// Title renders the chart title line: the pulse name plus its len and mu
// generator parameters when both are present.
func (p Pulse) Title() string {
	l, okLen := p.Params["len"]
	mu, okMu := p.Params["mu"]
	if !okLen || !okMu {
		return p.Name
	}
	return fmt.Sprintf("%s  (len=%v mu=%v)", p.Name, l, mu)
}
