// SPDX-License-Identifier: MIT

package engine

import (
	"runtime"

	"github.com/katalvlaran/kernelab/kernel"
	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	workers  int
	registry *kernel.Registry
	builtins bool
}

func defaultOptions() options {
	return options{
		logger:   zap.NewNop(),
		workers:  runtime.GOMAXPROCS(0),
		builtins: true,
	}
}

// WithLogger sets the engine logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers bounds the number of rows evaluated concurrently.
// n < 1 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithRegistry makes the engine use r instead of a fresh registry.
// Built-ins are still registered into r unless WithoutBuiltins is given.
func WithRegistry(r *kernel.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithoutBuiltins skips kernel.RegisterBuiltins at construction.
func WithoutBuiltins() Option {
	return func(o *options) { o.builtins = false }
}
