// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kernelab/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errNoFX = errors.New("predict needs fx in the data file")

func (a *app) predictCmd() *cobra.Command {
	var (
		reg    float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "predict DATA.yaml",
		Short: "Fit the kernel to (x, fx) and predict at z",
		Long: `predict reads x, fx and z (default: x) from a YAML file, solves
θ = (K(x,x) + reg·I)⁻¹·fx and prints f(z) = K(z,x)·θ.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "yaml" {
				return fmt.Errorf("unknown output format %q", output)
			}
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			if len(ds.FX) == 0 {
				return errNoFX
			}
			z := ds.Z
			if len(z) == 0 {
				z = ds.X
			}
			e, _, err := a.newEngine(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			m, err := e.Fit(ctx, ds.X, ds.FX, reg)
			if err != nil {
				return err
			}
			f, err := m.Predict(ctx, z)
			if err != nil {
				return err
			}
			a.logger.Debug("predicted", zap.Int("points", len(z)), zap.Float64("reg", reg))

			w := cmd.OutOrStdout()
			if output == "yaml" {
				out, err := yaml.Marshal(table{Rows: f.Rows(), Cols: f.Cols(), Values: f.ToRows()})
				if err != nil {
					return err
				}
				_, err = w.Write(out)
				return err
			}
			_, err = fmt.Fprint(w, f)
			return err
		},
	}
	f := cmd.Flags()
	f.Float64Var(&reg, "reg", engine.DefaultRegularization, "Ridge added to the diagonal of K(x,x)")
	f.StringVarP(&output, "output", "o", "text", "Output format: text or yaml")

	return cmd
}
