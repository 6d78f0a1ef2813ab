// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/kernelab/kernel"
	"github.com/katalvlaran/kernelab/matrix"
	"go.uber.org/zap"
)

// Engine is the execution context for kernel evaluation: a registry of
// kernel factories plus the active kernel used by the matrix operators.
// It is safe for concurrent use.
type Engine struct {
	mu         sync.RWMutex
	active     kernel.Kernel
	activeName string

	registry *kernel.Registry
	workers  int
	logger   *zap.Logger
}

// New builds an Engine. By default it owns a fresh registry holding the
// built-in kernels, logs nowhere and uses GOMAXPROCS workers.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.registry == nil {
		o.registry = kernel.NewRegistry()
	}
	if o.builtins {
		if err := kernel.RegisterBuiltins(o.registry); err != nil {
			return nil, engineErrorf("New", err)
		}
	}

	return &Engine{
		registry: o.registry,
		workers:  o.workers,
		logger:   o.logger,
	}, nil
}

// Registry exposes the engine's factory registry.
func (e *Engine) Registry() *kernel.Registry { return e.registry }

// Workers returns the row-parallelism bound.
func (e *Engine) Workers() int { return e.workers }

// Register binds name to f in the engine's registry. An existing binding is
// replaced (last registration wins).
func (e *Engine) Register(name string, f kernel.Factory, opts ...kernel.RegOption) error {
	replaced, err := e.registry.Register(name, f, opts...)
	if err != nil {
		return engineErrorf("Register", err)
	}
	e.logger.Debug("kernel registered",
		zap.String("name", name),
		zap.Bool("replaced", replaced))

	return nil
}

// Create builds the kernel registered under name from cfg.
// Errors: kernel.ErrUnknownKernel, kernel.ErrBadConfig, factory errors.
func (e *Engine) Create(name string, cfg kernel.Config) (kernel.Kernel, error) {
	k, err := e.registry.Create(name, cfg)
	if err != nil {
		return nil, engineErrorf("Create", err)
	}

	return k, nil
}

// SetActive makes k the kernel used by Knm, KnmProduct and Dnm.
// It does not alter k itself; direct calls on k are unaffected.
func (e *Engine) SetActive(k kernel.Kernel) error {
	if k == nil {
		return engineErrorf("SetActive", ErrNilKernel)
	}
	e.setActive(k, "")
	e.logger.Debug("active kernel set", zap.String("type", fmt.Sprintf("%T", k)))

	return nil
}

// Activate creates the kernel registered under name and makes it active.
func (e *Engine) Activate(name string, cfg kernel.Config) (kernel.Kernel, error) {
	k, err := e.Create(name, cfg)
	if err != nil {
		return nil, err
	}
	e.setActive(k, name)
	e.logger.Debug("active kernel set", zap.String("name", name), zap.Any("config", cfg))

	return k, nil
}

func (e *Engine) setActive(k kernel.Kernel, name string) {
	e.mu.Lock()
	e.active, e.activeName = k, name
	e.mu.Unlock()
}

// Active returns the active kernel.
// Errors: ErrNoActiveKernel.
func (e *Engine) Active() (kernel.Kernel, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.active == nil {
		return nil, ErrNoActiveKernel
	}

	return e.active, nil
}

// ActiveName returns the registry name the active kernel was activated
// under, or "" when it was set directly with SetActive.
func (e *Engine) ActiveName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.activeName
}

// snapshot reads the active slot once for the duration of one operator call.
func (e *Engine) snapshot(op string) (kernel.Kernel, error) {
	k, err := e.Active()
	if err != nil {
		return nil, engineErrorf(op, err)
	}

	return k, nil
}

// Knm returns the |x|×|y| table of the active kernel: entry (i,j) is
// active.Evaluate(x[i], y[j]).
// Errors: ErrNoActiveKernel plus everything Gram reports.
func (e *Engine) Knm(ctx context.Context, x, y [][]float64) (*matrix.Dense, error) {
	k, err := e.snapshot("Knm")
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := Gram(ctx, k, x, y, e.workers)
	if err != nil {
		e.logger.Debug("Knm failed", zap.Error(err))
		return nil, engineErrorf("Knm", err)
	}
	e.logger.Debug("Knm",
		zap.Int("rows", out.Rows()),
		zap.Int("cols", out.Cols()),
		zap.Duration("elapsed", time.Since(start)))

	return out, nil
}

// KnmProduct returns K(x, y)·fy, the projection of function values fy
// (one row per y vector) through the active kernel.
// Errors: matrix.ErrDimensionMismatch when len(fy) != len(y), plus Knm errors.
// Complexity: O(|x|·|y|·(cost(k) + cols(fy))).
func (e *Engine) KnmProduct(ctx context.Context, x, y, fy [][]float64) (*matrix.Dense, error) {
	fyM, err := matrix.FromRows(fy)
	if err != nil {
		return nil, engineErrorf("KnmProduct", err)
	}
	k, err := e.Knm(ctx, x, y)
	if err != nil {
		return nil, engineErrorf("KnmProduct", err)
	}
	out, err := matrix.Mul(k, fyM)
	if err != nil {
		return nil, engineErrorf("KnmProduct", err)
	}

	return out, nil
}

// Dnm returns the kernel-induced distance table
//
//	d(i,j) = k(x[i],x[i]) + k(y[j],y[j]) - 2·k(x[i],y[j])
//
// using the active kernel. For a positive-definite kernel this is the
// squared distance between feature-space embeddings.
func (e *Engine) Dnm(ctx context.Context, x, y [][]float64) (*matrix.Dense, error) {
	k, err := e.snapshot("Dnm")
	if err != nil {
		return nil, err
	}
	kxy, err := Gram(ctx, k, x, y, e.workers)
	if err != nil {
		return nil, engineErrorf("Dnm", err)
	}
	kxx, err := diagonal(k, "x", x)
	if err != nil {
		return nil, engineErrorf("Dnm", err)
	}
	kyy, err := diagonal(k, "y", y)
	if err != nil {
		return nil, engineErrorf("Dnm", err)
	}

	var v float64
	for i := range x {
		for j := range y {
			v, _ = kxy.At(i, j) // in range by construction
			if err = kxy.Set(i, j, kxx[i]+kyy[j]-2*v); err != nil {
				return nil, engineErrorf("Dnm", err)
			}
		}
	}

	return kxy, nil
}
