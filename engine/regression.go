// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/kernelab/kernel"
	"github.com/katalvlaran/kernelab/matrix"
	"go.uber.org/zap"
)

// DefaultRegularization is the ridge added to K(x,x) when callers have no
// better value.
const DefaultRegularization = 1e-9

func validateRegularization(reg float64) error {
	if reg < 0 || math.IsNaN(reg) || math.IsInf(reg, 0) {
		return fmt.Errorf("%w: got %v", ErrBadRegularization, reg)
	}

	return nil
}

// Model is a fitted kernel regressor: the kernel it was fitted with, the
// training inputs and θ = (K(x,x) + reg·I)⁻¹·fx. It is immutable and safe
// for concurrent use; later SetActive calls on the engine do not affect it.
type Model struct {
	kernel  kernel.Kernel
	x       [][]float64
	theta   *matrix.Dense
	reg     float64
	workers int
}

// Kernel returns the kernel the model was fitted with.
func (m *Model) Kernel() kernel.Kernel { return m.kernel }

// Regularization returns the reg used by Fit.
func (m *Model) Regularization() float64 { return m.reg }

// Theta returns a copy of the fitted coefficients, one row per training
// vector and one column per output.
func (m *Model) Theta() [][]float64 { return m.theta.ToRows() }

// Predict returns f(z) = K(z, x)·θ, one row per z vector.
// Errors: everything Gram reports, matrix errors from the product.
// Complexity: O(|z|·|x|·(cost(k) + cols(θ))).
func (m *Model) Predict(ctx context.Context, z [][]float64) (*matrix.Dense, error) {
	kzx, err := Gram(ctx, m.kernel, z, m.x, m.workers)
	if err != nil {
		return nil, engineErrorf("Predict", err)
	}
	out, err := matrix.Mul(kzx, m.theta)
	if err != nil {
		return nil, engineErrorf("Predict", err)
	}

	return out, nil
}

// Fit fits the active kernel to the samples (x[i], fx[i]).
//
// Stage 1 (Validate): reg finite and >= 0; fx non-empty and rectangular.
// Stage 2 (Prepare): snapshot the active kernel, build K(x,x).
// Stage 3 (Execute): θ = (K(x,x) + reg·I)⁻¹·fx.
//
// Errors: ErrBadRegularization, ErrNoActiveKernel, ErrSingular,
// matrix.ErrDimensionMismatch when len(fx) != len(x), plus Gram errors.
// Complexity: O(|x|²·cost(k) + |x|³).
func (e *Engine) Fit(ctx context.Context, x, fx [][]float64, reg float64) (*Model, error) {
	// Stage 1: Validate
	if err := validateRegularization(reg); err != nil {
		return nil, engineErrorf("Fit", err)
	}
	fxM, err := matrix.FromRows(fx)
	if err != nil {
		return nil, engineErrorf("Fit", err)
	}

	// Stage 2: Prepare
	k, err := e.snapshot("Fit")
	if err != nil {
		return nil, err
	}
	start := time.Now()
	kxx, err := Gram(ctx, k, x, x, e.workers)
	if err != nil {
		return nil, engineErrorf("Fit", err)
	}

	// Stage 3: Execute
	theta, err := solveRegularized(kxx, fxM, reg, e.logger)
	if err != nil {
		return nil, engineErrorf("Fit", err)
	}
	e.logger.Debug("Fit",
		zap.Int("samples", len(x)),
		zap.Int("outputs", fxM.Cols()),
		zap.Float64("reg", reg),
		zap.Duration("elapsed", time.Since(start)))

	xs := make([][]float64, len(x))
	for i, v := range x {
		xs[i] = append([]float64(nil), v...)
	}

	return &Model{kernel: k, x: xs, theta: theta, reg: reg, workers: e.workers}, nil
}

// KnmInv returns (K(x,x) + reg·I)⁻¹ for the active kernel.
// Errors: ErrBadRegularization, ErrNoActiveKernel, ErrSingular, Gram errors.
// Complexity: O(|x|²·cost(k) + |x|³).
func (e *Engine) KnmInv(ctx context.Context, x [][]float64, reg float64) (*matrix.Dense, error) {
	if err := validateRegularization(reg); err != nil {
		return nil, engineErrorf("KnmInv", err)
	}
	k, err := e.snapshot("KnmInv")
	if err != nil {
		return nil, err
	}
	kxx, err := Gram(ctx, k, x, x, e.workers)
	if err != nil {
		return nil, engineErrorf("KnmInv", err)
	}
	id, err := matrix.NewDense(len(x), len(x))
	if err != nil {
		return nil, engineErrorf("KnmInv", err)
	}
	for i := range x {
		_ = id.Set(i, i, 1) // in range by construction
	}
	inv, err := solveRegularized(kxx, id, reg, e.logger)
	if err != nil {
		return nil, engineErrorf("KnmInv", err)
	}

	return inv, nil
}
