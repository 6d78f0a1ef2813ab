// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/kernelab/kernel"
	"github.com/spf13/cobra"
)

func (a *app) kernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List built-in kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := kernel.NewRegistry()
			if err := kernel.RegisterBuiltins(r); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range r.Names() {
				fmt.Fprintf(w, "%-12s %s\n", name, r.Doc(name))
			}
			return nil
		},
	}
}
