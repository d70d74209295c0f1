// Copyright 2025 go-highway Authors
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

// radixbench measures RadixSort, LinearSort and a comparison sort over a
// matrix of element shapes and input sizes.
//
// Usage:
//
//	radixbench [flags]
//	radixbench shapes
//
// Examples:
//
//	radixbench --shapes int32,pair-bool-float32 --max-size 65536
//	radixbench --config profile.toml --chart bench.html
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-radix/internal/workerpool"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
		workers    int
		flagged    = defaultProfile()
	)

	cmd := &cobra.Command{
		Use:           "radixbench",
		Short:         "Benchmark radix and comparison sorts",
		Long:          "Sort random inputs of several element shapes and sizes with each algorithm and report ns/element.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			p := defaultProfile()
			if configPath != "" {
				if p, err = loadProfile(configPath); err != nil {
					return err
				}
			}
			overrideProfile(cmd, &p, flagged)
			if err := p.validate(); err != nil {
				return err
			}

			pool := workerpool.New(workers)
			defer pool.Close()

			log.Info("starting", append(hostFields(),
				zap.Strings("shapes", p.Shapes),
				zap.Ints("sizes", p.sizes()),
				zap.Strings("algorithms", p.Algorithms),
				zap.Int("workers", pool.NumWorkers()),
			)...)

			env := &benchEnv{profile: p, pool: pool, log: log}
			results, runErr := runAll(cmd.Context(), env)
			if err := writeTable(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if p.Chart != "" {
				if err := writeChart(p.Chart, results, p.sizes(), p.Algorithms); err != nil {
					return err
				}
				log.Info("chart written", zap.String("file", p.Chart))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "TOML profile to load before applying flags")
	f.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.IntVar(&workers, "workers", 0, "input generation workers (0 = GOMAXPROCS)")
	f.Uint64Var(&flagged.Seed, "seed", flagged.Seed, "PRNG seed")
	f.IntVar(&flagged.Multiplier, "multiplier", flagged.Multiplier, "size growth factor")
	f.IntVar(&flagged.MinSize, "min-size", flagged.MinSize, "smallest input size")
	f.IntVar(&flagged.MaxSize, "max-size", flagged.MaxSize, "largest input size")
	f.DurationVar(&flagged.MinTime, "min-time", flagged.MinTime, "minimum measuring time per cell")
	f.StringSliceVar(&flagged.Shapes, "shapes", flagged.Shapes, "shapes to run (see 'radixbench shapes')")
	f.StringSliceVar(&flagged.Algorithms, "algorithms", flagged.Algorithms, "algorithms to run: radix, linear, comparison")
	f.BoolVar(&flagged.Verify, "verify", flagged.Verify, "check every output against a reference sort")
	f.StringVar(&flagged.Chart, "chart", flagged.Chart, "write an HTML chart to this file")
	f.IntVar(&flagged.MinRadixLen, "min-radix-len", flagged.MinRadixLen, "linear: smallest input sorted by radix")
	f.IntVar(&flagged.MaxPasses, "max-passes", flagged.MaxPasses, "linear: largest pass count sorted by radix")
	f.BoolVar(&flagged.NoRadix, "no-radix", flagged.NoRadix, "linear: always use comparison sort")

	cmd.AddCommand(shapesCommand())
	return cmd
}

// overrideProfile copies every flag the user set explicitly from flagged
// into p.
func overrideProfile(cmd *cobra.Command, p *Profile, flagged Profile) {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("seed", func() { p.Seed = flagged.Seed })
	set("multiplier", func() { p.Multiplier = flagged.Multiplier })
	set("min-size", func() { p.MinSize = flagged.MinSize })
	set("max-size", func() { p.MaxSize = flagged.MaxSize })
	set("min-time", func() { p.MinTime = flagged.MinTime })
	set("shapes", func() { p.Shapes = flagged.Shapes })
	set("algorithms", func() { p.Algorithms = flagged.Algorithms })
	set("verify", func() { p.Verify = flagged.Verify })
	set("chart", func() { p.Chart = flagged.Chart })
	set("min-radix-len", func() { p.MinRadixLen = flagged.MinRadixLen })
	set("max-passes", func() { p.MaxPasses = flagged.MaxPasses })
	set("no-radix", func() { p.NoRadix = flagged.NoRadix })
}

func shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the available shapes",
		Long:  "List every shape with its key schema, pass count and the algorithm LinearSort picks for the largest default size.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := defaultProfile()
			sel := p.selector()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "SHAPE\tPASSES\tSCHEMA\tLINEAR")
			for _, s := range shapes {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.name, s.passes, schemaString(s.schema), sel.Choose(p.MaxSize, s.passes))
			}
			return tw.Flush()
		},
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	return cfg.Build()
}
