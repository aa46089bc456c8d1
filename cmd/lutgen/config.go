package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lutgen/lut"
	"github.com/ajroetker/go-lutgen/lut/fixpt"
	"github.com/ajroetker/go-lutgen/lut/sverilog"
	"github.com/ajroetker/go-lutgen/lut/wave"
)

// TableConfig describes one table of a generation config. Zero fields take
// the same defaults the built-in cos/exp commands use.
type TableConfig struct {
	Name       string `toml:"name" yaml:"name"`
	Func       string `toml:"func" yaml:"func"`
	AddrBits   int    `toml:"addr_bits" yaml:"addr_bits"`
	Domain     string `toml:"domain" yaml:"domain"`
	InFracBits int    `toml:"in_frac_bits" yaml:"in_frac_bits"`
	Format     string `toml:"format" yaml:"format"`
	TotalBits  int    `toml:"total_bits" yaml:"total_bits"`
	FracBits   int    `toml:"frac_bits" yaml:"frac_bits"`
	Out        string `toml:"out" yaml:"out"`
	Timeunit   *bool  `toml:"timeunit" yaml:"timeunit"`
}

// Config is a declarative table set.
type Config struct {
	Tables []TableConfig `toml:"tables" yaml:"tables"`
}

// LoadConfig reads a TOML or YAML table-set config, picked by extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .toml, .yaml, or .yml)", ext)
	}

	if len(cfg.Tables) == 0 {
		return nil, fmt.Errorf("config %s declares no tables", path)
	}
	return &cfg, nil
}

// generator resolves a config entry into a runnable Generator.
func (tc TableConfig) generator(index, workers int, verbose bool) (*Generator, error) {
	fail := func(format string, args ...any) (*Generator, error) {
		return nil, fmt.Errorf("table %d (%s): %s", index, tc.Name, fmt.Sprintf(format, args...))
	}

	var (
		fn       lut.Func
		label    string
		kind     lut.DomainKind
		addrBits = tc.AddrBits
		inFrac   = tc.InFracBits
		timeunit bool
	)
	switch tc.Func {
	case "cos":
		fn, label, kind, timeunit = wave.CosTurns{}, "cosine", lut.Turns, true
		if addrBits == 0 {
			addrBits = 11
		}
	case "exp":
		fn, label, kind = wave.NegExp{}, "exponential", lut.ScaledLinear
		if addrBits == 0 {
			addrBits = 10
		}
		if inFrac == 0 {
			inFrac = 6
		}
	default:
		return fail("unknown func %q", tc.Func)
	}

	switch tc.Domain {
	case "":
	case "turns":
		kind = lut.Turns
	case "scaled":
		kind = lut.ScaledLinear
	default:
		return fail("unknown domain %q (want turns or scaled)", tc.Domain)
	}
	if kind == lut.Turns {
		inFrac = 0
	}
	domain := lut.Domain{AddrBits: addrBits, Kind: kind, InFracBits: inFrac}

	total, frac := tc.TotalBits, tc.FracBits
	if total == 0 {
		total = 16
	}
	if frac == 0 {
		frac = 15
	}
	var format fixpt.Format
	switch tc.Format {
	case "sq", "":
		format = fixpt.SQ(total, frac)
		if tc.Format == "" && tc.Func == "exp" {
			format = fixpt.UQ(total, frac)
		}
	case "uq":
		format = fixpt.UQ(total, frac)
	default:
		return fail("unknown format %q (want sq or uq)", tc.Format)
	}

	name := tc.Name
	if name == "" {
		name = fmt.Sprintf("%s_lut_%d", tc.Func, domain.Size())
	}
	out := tc.Out
	if out == "" {
		out = name + ".sv"
	}

	var spec sverilog.ModuleSpec
	switch tc.Func {
	case "cos":
		spec = sverilog.CosSpec(domain, format)
	case "exp":
		spec = sverilog.ExpSpec(domain, format)
	}
	if tc.Timeunit != nil {
		timeunit = *tc.Timeunit
	}
	spec.Timeunit = timeunit

	return &Generator{
		FuncLabel: label,
		Builder: lut.Builder{
			Name:    name,
			Domain:  domain,
			Format:  format,
			Fn:      fn,
			Workers: workers,
		},
		Spec:    spec,
		Out:     out,
		Verbose: verbose,
	}, nil
}
