// SPDX-License-Identifier: MIT

// Command kernelab lists, evaluates and tabulates pairwise kernels and
// fits kernel regressors.
//
// Usage:
//
//	kernelab kernels
//	kernelab eval -k my_kernel -p bandwidth=2 --x 1,0 --y 0,0
//	kernelab gram -k gaussian data.yaml --distance --symmetric-check
//	kernelab predict -k gaussian --reg 1e-9 samples.yaml
//	kernelab series --kind triangle --count 8 --len 32 > data.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
