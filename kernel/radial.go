// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/kernelab/vector"
)

// Registry names of the built-in kernels besides QuadraticName.
const (
	GaussianName = "gaussian"
	LinearName   = "linear"
	MaternName   = "maternnorm"
	DTWName      = "dtw"
)

// Gaussian is k(x, y) = exp(-||b(x-y)||²).
type Gaussian struct{ bandwidth float64 }

// NewGaussian builds a Gaussian from cfg (option: bandwidth).
func NewGaussian(cfg Config) (*Gaussian, error) {
	b, err := cfg.Bandwidth()
	if err != nil {
		return nil, kernelErrorf("NewGaussian", err)
	}
	return &Gaussian{bandwidth: b}, nil
}

// Bandwidth returns the configured bandwidth.
func (g *Gaussian) Bandwidth() float64 { return g.bandwidth }

// Evaluate returns exp(-||b(x-y)||²).
func (g *Gaussian) Evaluate(x, y []float64) (float64, error) {
	d, err := vector.ScaledDiff(x, y, g.bandwidth)
	if err != nil {
		return 0, kernelErrorf("Gaussian.Evaluate", err)
	}
	n := vector.Norm(d)
	return math.Exp(-n * n), nil
}

// Gradient returns ∂k/∂x = -2b²(x-y)·k(x,y).
func (g *Gaussian) Gradient(x, y []float64) ([]float64, error) {
	k, err := g.Evaluate(x, y)
	if err != nil {
		return nil, kernelErrorf("Gaussian.Gradient", err)
	}
	d, _ := vector.Sub(x, y) // lengths already checked by Evaluate
	return vector.Scale(-2*g.bandwidth*g.bandwidth*k, d), nil
}

// Linear is k(x, y) = b²⟨x, y⟩, i.e. the dot product of the scaled inputs.
type Linear struct{ bandwidth float64 }

// NewLinear builds a Linear from cfg (option: bandwidth).
func NewLinear(cfg Config) (*Linear, error) {
	b, err := cfg.Bandwidth()
	if err != nil {
		return nil, kernelErrorf("NewLinear", err)
	}
	return &Linear{bandwidth: b}, nil
}

// Bandwidth returns the configured bandwidth.
func (l *Linear) Bandwidth() float64 { return l.bandwidth }

// Evaluate returns b²⟨x, y⟩.
func (l *Linear) Evaluate(x, y []float64) (float64, error) {
	v, err := vector.Dot(x, y)
	if err != nil {
		return 0, kernelErrorf("Linear.Evaluate", err)
	}
	return l.bandwidth * l.bandwidth * v, nil
}

// Gradient returns ∂k/∂x = b²·y.
func (l *Linear) Gradient(x, y []float64) ([]float64, error) {
	if err := vector.SameLen(x, y); err != nil {
		return nil, kernelErrorf("Linear.Gradient", err)
	}
	return vector.Scale(l.bandwidth*l.bandwidth, y), nil
}

// Matern is the Matérn ν=1/2 kernel on the scaled norm: k = exp(-||b(x-y)||).
type Matern struct{ bandwidth float64 }

// NewMatern builds a Matern from cfg (option: bandwidth).
func NewMatern(cfg Config) (*Matern, error) {
	b, err := cfg.Bandwidth()
	if err != nil {
		return nil, kernelErrorf("NewMatern", err)
	}
	return &Matern{bandwidth: b}, nil
}

// Bandwidth returns the configured bandwidth.
func (m *Matern) Bandwidth() float64 { return m.bandwidth }

// Evaluate returns exp(-||b(x-y)||).
func (m *Matern) Evaluate(x, y []float64) (float64, error) {
	d, err := vector.ScaledDiff(x, y, m.bandwidth)
	if err != nil {
		return 0, kernelErrorf("Matern.Evaluate", err)
	}
	return math.Exp(-vector.Norm(d)), nil
}

// Gradient returns ∂k/∂x = -b²(x-y)/r·k with r = ||b(x-y)||.
// At x == y the kernel is not differentiable; the zero vector is returned.
func (m *Matern) Gradient(x, y []float64) ([]float64, error) {
	d, err := vector.Sub(x, y)
	if err != nil {
		return nil, kernelErrorf("Matern.Gradient", err)
	}
	r := math.Abs(m.bandwidth) * vector.Norm(d)
	if r == 0 {
		return make([]float64, len(x)), nil
	}
	return vector.Scale(-m.bandwidth*m.bandwidth*math.Exp(-r)/r, d), nil
}
