// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/kernelab/matrix"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// dataset is the YAML input of the gram and predict commands. An absent y
// means y = x; fx and z are read by predict only.
type dataset struct {
	X  [][]float64 `yaml:"x"`
	Y  [][]float64 `yaml:"y,omitempty"`
	FY [][]float64 `yaml:"fy,omitempty"`
	FX [][]float64 `yaml:"fx,omitempty"`
	Z  [][]float64 `yaml:"z,omitempty"`
}

// table is the YAML output of the gram command.
type table struct {
	Rows   int         `yaml:"rows"`
	Cols   int         `yaml:"cols"`
	Values [][]float64 `yaml:"values"`
}

var errDistanceWithFY = errors.New("fy cannot be combined with --distance")

func loadDataset(path string) (*dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	var ds dataset
	if err = yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse data %s: %w", path, err)
	}
	if len(ds.Y) == 0 {
		ds.Y = ds.X
	}

	return &ds, nil
}

func (a *app) gramCmd() *cobra.Command {
	var (
		distance  bool
		symmetric bool
		tol       float64
		output    string
	)

	cmd := &cobra.Command{
		Use:   "gram DATA.yaml",
		Short: "Build K(x, y), K(x, y)·fy or the kernel distance table",
		Long: `gram reads a YAML file with batches x, y (default: x) and an
optional fy, then prints K(x, y) using the active kernel. With fy it
prints K(x, y)·fy; with --distance it prints the kernel distance table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "yaml" {
				return fmt.Errorf("unknown output format %q", output)
			}
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			if distance && len(ds.FY) > 0 {
				return errDistanceWithFY
			}
			e, _, err := a.newEngine(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var m *matrix.Dense
			switch {
			case distance:
				m, err = e.Dnm(ctx, ds.X, ds.Y)
			case len(ds.FY) > 0:
				m, err = e.KnmProduct(ctx, ds.X, ds.Y, ds.FY)
			default:
				m, err = e.Knm(ctx, ds.X, ds.Y)
			}
			if err != nil {
				return err
			}
			if symmetric {
				if err = matrix.ValidateSymmetric(m, tol); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if output == "yaml" {
				out, err := yaml.Marshal(table{Rows: m.Rows(), Cols: m.Cols(), Values: m.ToRows()})
				if err != nil {
					return err
				}
				_, err = w.Write(out)
				return err
			}
			_, err = fmt.Fprint(w, m)
			return err
		},
	}
	f := cmd.Flags()
	f.BoolVar(&distance, "distance", false, "Print k(x,x)+k(y,y)-2k(x,y) instead of K")
	f.BoolVar(&symmetric, "symmetric-check", false, "Fail unless the result is symmetric")
	f.Float64Var(&tol, "tol", matrix.DefaultEpsilon, "Tolerance for --symmetric-check")
	f.StringVarP(&output, "output", "o", "text", "Output format: text or yaml")

	return cmd
}
