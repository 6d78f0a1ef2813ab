// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/kernelab/vector"

// QuadraticName is the registry name of the Quadratic kernel.
const QuadraticName = "my_kernel"

const quadraticDoc = "0.5*||b(x-y)||^2, gradient b*y"

// Quadratic is the bandwidth-scaled half squared distance:
//
//	k(x, y) = 0.5 · ||b·(x - y)||²
//
// Its gradient is defined independently as b·y (see Gradient).
type Quadratic struct {
	bandwidth float64
}

var _ Kernel = (*Quadratic)(nil)

// NewQuadratic builds a Quadratic from cfg. The bandwidth option defaults to
// DefaultBandwidth and may be given as a number or a numeric string.
func NewQuadratic(cfg Config) (*Quadratic, error) {
	b, err := cfg.Bandwidth()
	if err != nil {
		return nil, kernelErrorf("NewQuadratic", err)
	}

	return &Quadratic{bandwidth: b}, nil
}

// QuadraticFactory is NewQuadratic with the Factory signature.
func QuadraticFactory(cfg Config) (Kernel, error) {
	q, err := NewQuadratic(cfg)
	if err != nil {
		return nil, err
	}

	return q, nil
}

// RegisterQuadratic binds QuadraticName to QuadraticFactory in r.
func RegisterQuadratic(r *Registry) error {
	_, err := r.Register(QuadraticName, QuadraticFactory,
		WithDoc(quadraticDoc))

	return err
}

// Bandwidth returns the configured bandwidth.
func (q *Quadratic) Bandwidth() float64 { return q.bandwidth }

// Evaluate returns 0.5·n² where n = ||(x - y)·b||₂.
// Errors: vector.ErrDimensionMismatch when len(x) != len(y).
// Complexity: O(d).
func (q *Quadratic) Evaluate(x, y []float64) (float64, error) {
	d, err := vector.ScaledDiff(x, y, q.bandwidth)
	if err != nil {
		return 0, kernelErrorf("Quadratic.Evaluate", err)
	}
	n := vector.Norm(d)

	return 0.5 * n * n, nil
}

// Gradient returns y·b. It does not depend on x and is not the derivative
// of Evaluate.
// Errors: vector.ErrDimensionMismatch when len(x) != len(y).
func (q *Quadratic) Gradient(x, y []float64) ([]float64, error) {
	if err := vector.SameLen(x, y); err != nil {
		return nil, kernelErrorf("Quadratic.Gradient", err)
	}

	return vector.Scale(q.bandwidth, y), nil
}
