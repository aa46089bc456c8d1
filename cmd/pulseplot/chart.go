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

package main

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ajroetker/go-lutgen/internal/pulse"
)

// Chart dimensions match the harness's reference plots.
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
	chartDPI    = 150
)

// iqPanel builds one comparison panel: DUT trace solid, golden reference
// dashed. comp is "I" or "Q".
func iqPanel(p pulse.Pulse, comp string) (*plot.Plot, error) {
	dut := make(plotter.XYs, len(p.Samples))
	gold := make(plotter.XYs, len(p.Samples))
	for i, s := range p.Samples {
		dutY, goldY := s.DutI, s.GoldI
		if comp == "Q" {
			dutY, goldY = s.DutQ, s.GoldQ
		}
		dut[i] = plotter.XY{X: float64(s.N), Y: dutY}
		gold[i] = plotter.XY{X: float64(s.N), Y: goldY}
	}

	dutLine, err := plotter.NewLine(dut)
	if err != nil {
		return nil, err
	}
	goldLine, err := plotter.NewLine(gold)
	if err != nil {
		return nil, err
	}
	dutLine.Color = plotutil.Color(0)
	goldLine.Color = plotutil.Color(1)
	goldLine.Dashes = plotutil.Dashes(1)

	pl := plot.New()
	pl.Add(plotter.NewGrid(), dutLine, goldLine)
	pl.Legend.Add("DUT "+comp, dutLine)
	pl.Legend.Add("Golden "+comp, goldLine)
	pl.Y.Label.Text = comp + " (real, SQ0.15 scaled)"
	return pl, nil
}

// renderPulse writes the stacked I/Q comparison chart for one pulse.
func renderPulse(p pulse.Pulse, path string) error {
	top, err := iqPanel(p, "I")
	if err != nil {
		return err
	}
	top.Title.Text = p.Title()

	bottom, err := iqPanel(p, "Q")
	if err != nil {
		return err
	}
	bottom.X.Label.Text = "Sample index n"

	img := vgimg.NewWith(vgimg.UseWH(chartWidth, chartHeight), vgimg.UseDPI(chartDPI))
	rows := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(rows, draw.Tiles{Rows: 2, Cols: 1}, draw.New(img))
	rows[0][0].Draw(canvases[0][0])
	rows[1][0].Draw(canvases[1][0])

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return w.Close()
}
