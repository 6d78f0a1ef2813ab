// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kernelab/kernel"
	"github.com/katalvlaran/kernelab/matrix"
	"github.com/katalvlaran/kernelab/vector"
	"golang.org/x/sync/errgroup"
)

// validateBatch rejects empty batches and empty or non-finite vectors.
// Vectors are not required to share a length; kernels report mismatches.
func validateBatch(name string, b [][]float64) error {
	if len(b) == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyBatch)
	}
	for i, v := range b {
		if err := vector.Validate(v); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
	}

	return nil
}

// Gram returns the |x|×|y| table with entry (i,j) = k.Evaluate(x[i], y[j]).
//
// Stage 1 (Validate): k non-nil; both batches non-empty with finite vectors.
// Stage 2 (Prepare): allocate the result Dense.
// Stage 3 (Execute): one errgroup task per row, at most workers at a time
// (workers < 1 means unbounded); the first kernel error cancels the rest.
// Stage 4 (Finalize): return the table or the first error.
//
// Errors: ErrNilKernel, ErrEmptyBatch, vector.ErrEmpty/ErrNaNInf, any kernel
// error (wrapped with its (i,j)), matrix.ErrNaNInf for non-finite kernel
// values, ctx.Err() on cancellation.
// Complexity: O(|x|·|y|·cost(k)) time, O(|x|·|y|) memory.
func Gram(ctx context.Context, k kernel.Kernel, x, y [][]float64, workers int) (*matrix.Dense, error) {
	// Stage 1: Validate
	if k == nil {
		return nil, engineErrorf("Gram", ErrNilKernel)
	}
	if err := validateBatch("x", x); err != nil {
		return nil, engineErrorf("Gram", err)
	}
	if err := validateBatch("y", y); err != nil {
		return nil, engineErrorf("Gram", err)
	}

	// Stage 2: Prepare
	out, err := matrix.NewDense(len(x), len(y))
	if err != nil {
		return nil, engineErrorf("Gram", err)
	}

	// Stage 3: Execute
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range x {
		if gctx.Err() != nil {
			break // a row already failed or the caller cancelled
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := make([]float64, len(y))
			for j := range y {
				v, err := k.Evaluate(x[i], y[j])
				if err != nil {
					return fmt.Errorf("k(x[%d], y[%d]): %w", i, j, err)
				}
				row[j] = v
			}
			// distinct rows never share cells, so no lock is needed
			return out.SetRow(i, row)
		})
	}

	// Stage 4: Finalize
	if err = g.Wait(); err != nil {
		return nil, engineErrorf("Gram", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, engineErrorf("Gram", err)
	}

	return out, nil
}

// diagonal returns k(v, v) for every v in b.
func diagonal(k kernel.Kernel, name string, b [][]float64) ([]float64, error) {
	out := make([]float64, len(b))
	for i, v := range b {
		kv, err := k.Evaluate(v, v)
		if err != nil {
			return nil, fmt.Errorf("k(%s[%d], %s[%d]): %w", name, i, name, i, err)
		}
		out[i] = kv
	}

	return out, nil
}
