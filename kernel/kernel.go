// SPDX-License-Identifier: MIT

package kernel

// Kernel is a parameterized pairwise function between two vectors plus its
// gradient. Implementations must be safe for concurrent calls.
type Kernel interface {
	// Evaluate returns k(x, y).
	Evaluate(x, y []float64) (float64, error)

	// Gradient returns the kernel's gradient at (x, y).
	Gradient(x, y []float64) ([]float64, error)
}

// Factory builds a Kernel from a configuration record.
type Factory func(cfg Config) (Kernel, error)

// EvalFunc is the value half of a function-backed kernel.
type EvalFunc func(x, y []float64) (float64, error)

// GradFunc is the gradient half of a function-backed kernel.
type GradFunc func(x, y []float64) ([]float64, error)

// FuncKernel adapts a pair of plain functions to the Kernel interface.
// A nil gradient makes Gradient return ErrNoGradient.
type FuncKernel struct {
	eval EvalFunc
	grad GradFunc
}

var _ Kernel = (*FuncKernel)(nil)

// NewFunc wraps eval and grad. eval is required.
func NewFunc(eval EvalFunc, grad GradFunc) (*FuncKernel, error) {
	if eval == nil {
		return nil, ErrNilFunc
	}

	return &FuncKernel{eval: eval, grad: grad}, nil
}

// Evaluate calls the wrapped evaluation function.
func (f *FuncKernel) Evaluate(x, y []float64) (float64, error) {
	return f.eval(x, y)
}

// Gradient calls the wrapped gradient function, if any.
func (f *FuncKernel) Gradient(x, y []float64) ([]float64, error) {
	if f.grad == nil {
		return nil, ErrNoGradient
	}

	return f.grad(x, y)
}
