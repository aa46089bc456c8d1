package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	workers int
)

var rootCmd = &cobra.Command{
	Use:   "lutgen",
	Short: "Generate fixed-point SystemVerilog lookup tables",
	Long: `lutgen samples a real-valued function over a power-of-two address
space, quantizes each sample into a fixed-point word, and emits the table
as a combinational SystemVerilog module.

Built-in tables:
  cos  - cos(2*pi*x) over one turn, signed SQ1.15
  exp  - exp(-x) over a scaled-linear domain, unsigned UQ0.15

Arbitrary table sets come from a TOML or YAML config via "lutgen gen".`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-table sanity samples")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 1, "parallel evaluation goroutines per table")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
