package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lutgen/lut"
	"github.com/ajroetker/go-lutgen/lut/fixpt"
	"github.com/ajroetker/go-lutgen/lut/sverilog"
	"github.com/ajroetker/go-lutgen/lut/wave"
)

var (
	expEntries int
	expInFrac  int
	expOut     string
)

var expCmd = &cobra.Command{
	Use:   "exp",
	Short: "Generate an exp(-x) table in UQ0.15",
	Long: `Generates an unsigned UQ0.15 lookup table of exp(-x), with the
address interpreted as an unsigned fixed-point x (in-frac fractional
bits). 1.0 is represented one code below the reserved top bit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addrBits, err := addrBitsFor(expEntries)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("exp_lut_%d", expEntries)
		out := expOut
		if out == "" {
			out = name + ".sv"
		}
		domain := lut.Domain{AddrBits: addrBits, Kind: lut.ScaledLinear, InFracBits: expInFrac}
		format := fixpt.UQ(16, 15)
		g := &Generator{
			FuncLabel: "exponential",
			Builder: lut.Builder{
				Name:    name,
				Domain:  domain,
				Format:  format,
				Fn:      wave.NegExp{},
				Workers: workers,
			},
			Spec:    sverilog.ExpSpec(domain, format),
			Out:     out,
			Verbose: verbose,
		}
		return g.Run()
	},
}

func init() {
	expCmd.Flags().IntVar(&expEntries, "entries", 1024, "table length, a power of two")
	expCmd.Flags().IntVar(&expInFrac, "in-frac", 6, "fractional bits of the address")
	expCmd.Flags().StringVar(&expOut, "out", "", "output .sv filename (default exp_lut_<entries>.sv)")
	rootCmd.AddCommand(expCmd)
}
