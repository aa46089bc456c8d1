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

package pulse

import (
	"strings"
	"testing"
)

const resultFixture = `{
  "pulses": [
    {
      "name": "pulse_short",
      "params": {"len": 16, "mu": 0.25},
      "samples": [
        {"n": 0, "dut_i_r": 0.0, "gold_i_r": 0.0, "dut_q_r": 0.5, "gold_q_r": 0.5},
        {"n": 1, "dut_i_r": 0.12, "gold_i_r": 0.125, "dut_q_r": 0.49, "gold_q_r": 0.5}
      ]
    },
    {
      "name": "pulse_long",
      "params": {"len": 128, "mu": 0.5},
      "samples": [
        {"n": 0, "dut_i_r": -0.25, "gold_i_r": -0.25, "dut_q_r": 0.0, "gold_q_r": 0.0}
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(resultFixture))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Pulses) != 2 {
		t.Fatalf("pulse count = %d, want 2", len(doc.Pulses))
	}

	p := doc.Pulses[0]
	if p.Name != "pulse_short" {
		t.Errorf("pulse name = %q", p.Name)
	}
	if len(p.Samples) != 2 {
		t.Fatalf("sample count = %d, want 2", len(p.Samples))
	}
	s := p.Samples[1]
	if s.N != 1 || s.DutI != 0.12 || s.GoldI != 0.125 || s.DutQ != 0.49 || s.GoldQ != 0.5 {
		t.Errorf("sample 1 = %+v", s)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantSub string
	}{
		{"Malformed", `{"pulses": [`, "failed to decode"},
		{"Empty", `{"pulses": []}`, "no pulses"},
		{"Unnamed", `{"pulses": [{"samples": [{"n": 0}]}]}`, "has no name"},
		{"NoSamples", `{"pulses": [{"name": "p0", "samples": []}]}`, "has no samples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestPulseTitle(t *testing.T) {
	doc, err := Decode(strings.NewReader(resultFixture))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got, want := doc.Pulses[0].Title(), "pulse_short  (len=16 mu=0.25)"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}

	bare := Pulse{Name: "unparameterized"}
	if got := bare.Title(); got != "unparameterized" {
		t.Errorf("Title() without params = %q", got)
	}
}
