// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kernelab/kernel"
	"github.com/spf13/cobra"
)

func (a *app) evalCmd() *cobra.Command {
	var x, y []float64

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the kernel and its gradient on one pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, k, err := a.newEngine(cmd)
			if err != nil {
				return err
			}
			v, err := k.Evaluate(x, y)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "k(x, y) = %g\n", v)

			g, err := k.Gradient(x, y)
			switch {
			case errors.Is(err, kernel.ErrNoGradient):
				fmt.Fprintln(w, "grad = n/a")
			case err != nil:
				return err
			default:
				fmt.Fprintf(w, "grad = %v\n", g)
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&x, "x", nil, "First vector, comma separated")
	cmd.Flags().Float64SliceVar(&y, "y", nil, "Second vector, comma separated")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
