package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lutgen/internal/pulse"
)

var (
	plotIn     string
	plotPrefix string
	plotExpect int
)

var rootCmd = &cobra.Command{
	Use:   "pulseplot",
	Short: "Render DUT-vs-golden I/Q charts from pulse simulation results",
	Long: `pulseplot reads the JSON result document written by the pulse
simulation harness and renders one PNG per pulse: the device-under-test I
and Q traces over their golden references, stacked in two panels.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(plotIn)
		if err != nil {
			return fmt.Errorf("failed to open results: %w", err)
		}
		defer f.Close()

		doc, err := pulse.Decode(f)
		if err != nil {
			return err
		}
		if plotExpect > 0 && len(doc.Pulses) != plotExpect {
			fmt.Fprintf(os.Stderr, "Warning: expected %d pulses, found %d\n", plotExpect, len(doc.Pulses))
		}

		for _, p := range doc.Pulses {
			name := p.Name + ".png"
			if plotPrefix != "" {
				name = plotPrefix + "_" + p.Name + ".png"
			}
			if err := renderPulse(p, name); err != nil {
				return fmt.Errorf("failed to render %s: %w", p.Name, err)
			}
			fmt.Printf("Wrote %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&plotIn, "in", "pulse_results.json", "simulation result document")
	rootCmd.Flags().StringVar(&plotPrefix, "out-prefix", "", "output filename prefix")
	rootCmd.Flags().IntVar(&plotExpect, "expect", 0, "warn unless the document has exactly this many pulses")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
