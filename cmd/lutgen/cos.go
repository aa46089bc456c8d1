package main

import (
	"fmt"
	"math/bits"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lutgen/lut"
	"github.com/ajroetker/go-lutgen/lut/fixpt"
	"github.com/ajroetker/go-lutgen/lut/sverilog"
	"github.com/ajroetker/go-lutgen/lut/wave"
)

var (
	cosEntries int
	cosOut     string
)

var cosCmd = &cobra.Command{
	Use:   "cos",
	Short: "Generate a cos(2*pi*x) table in SQ1.15",
	Long: `Generates a signed SQ1.15 lookup table of cos(2*pi*x), with the
address interpreted as a fraction of one turn. +1.0 saturates to the top
positive code; -1.0 is exact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addrBits, err := addrBitsFor(cosEntries)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("cos_lut_%d", cosEntries)
		out := cosOut
		if out == "" {
			out = name + ".sv"
		}
		domain := lut.Domain{AddrBits: addrBits, Kind: lut.Turns}
		format := fixpt.SQ(16, 15)
		g := &Generator{
			FuncLabel: "cosine",
			Builder: lut.Builder{
				Name:    name,
				Domain:  domain,
				Format:  format,
				Fn:      wave.CosTurns{},
				Workers: workers,
			},
			Spec:    sverilog.CosSpec(domain, format),
			Out:     out,
			Verbose: verbose,
		}
		return g.Run()
	},
}

func init() {
	cosCmd.Flags().IntVar(&cosEntries, "entries", 2048, "table length, a power of two")
	cosCmd.Flags().StringVar(&cosOut, "out", "", "output .sv filename (default cos_lut_<entries>.sv)")
	rootCmd.AddCommand(cosCmd)
}

// addrBitsFor converts a table length to its address width.
func addrBitsFor(entries int) (int, error) {
	if entries < 2 || bits.OnesCount(uint(entries)) != 1 {
		return 0, &lut.DomainError{Field: "entries", Value: entries, Reason: "must be a power of two >= 2"}
	}
	return bits.TrailingZeros(uint(entries)), nil
}
