// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/kernelab/series"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) seriesCmd() *cobra.Command {
	var (
		kind                  string
		count, length, stride int
		seed                  int64
		freq, noise, trend    float64
	)

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Write sliding windows of a synthetic signal as a gram data file",
		Long: `series generates a pulse, triangle or chirp signal, cuts it into
sliding windows and prints them as YAML with the windows under x, ready
for "kernelab gram".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, err := series.Windows(series.Kind(kind), count, length, stride, seed,
				series.WithFrequency(freq),
				series.WithNoise(noise),
				series.WithTrend(trend))
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(dataset{X: x})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", string(series.Chirp), "Signal kind: pulse, triangle or chirp")
	f.IntVar(&count, "count", 4, "Number of windows")
	f.IntVar(&length, "len", 16, "Samples per window")
	f.IntVar(&stride, "stride", 1, "Samples between window starts")
	f.Int64Var(&seed, "seed", 1, "Noise seed")
	f.Float64Var(&freq, "freq", series.DefaultFrequency, "Base or chirp start frequency (cycles/sample)")
	f.Float64Var(&noise, "noise", 0, "Gaussian noise sigma")
	f.Float64Var(&trend, "trend", 0, "Linear trend per sample")

	return cmd
}
