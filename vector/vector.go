// SPDX-License-Identifier: MIT

// Package vector holds the small set of vector primitives kernels are built
// from. Arithmetic is delegated to gonum's floats package; this package adds
// the length checks gonum leaves to panics, so callers get sentinel errors.
package vector

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrDimensionMismatch indicates two vectors of different length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrEmpty indicates a zero-length vector where one element is required.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrNaNInf indicates a non-finite component.
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")
)

// vectorErrorf wraps an underlying error with the given operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SameLen returns ErrDimensionMismatch unless len(x) == len(y).
// Complexity: O(1).
func SameLen(x, y []float64) error {
	if len(x) != len(y) {
		return vectorErrorf("SameLen", fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(x), len(y)))
	}

	return nil
}

// Validate rejects empty vectors and non-finite components.
// Complexity: O(n).
func Validate(x []float64) error {
	if len(x) == 0 {
		return vectorErrorf("Validate", ErrEmpty)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return vectorErrorf("Validate", fmt.Errorf("%w at %d", ErrNaNInf, i))
		}
	}

	return nil
}

// Sub returns x - y in a new slice.
// Complexity: O(n).
func Sub(x, y []float64) ([]float64, error) {
	if err := SameLen(x, y); err != nil {
		return nil, vectorErrorf("Sub", err)
	}
	out := make([]float64, len(x))
	floats.SubTo(out, x, y)

	return out, nil
}

// Scale returns alpha*x in a new slice.
// Complexity: O(n).
func Scale(alpha float64, x []float64) []float64 {
	out := make([]float64, len(x))
	floats.ScaleTo(out, alpha, x)

	return out
}

// Dot returns the inner product ⟨x, y⟩.
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if err := SameLen(x, y); err != nil {
		return 0, vectorErrorf("Dot", err)
	}

	return floats.Dot(x, y), nil
}

// Norm returns the Euclidean norm ||x||₂.
// Complexity: O(n).
func Norm(x []float64) float64 {
	return floats.Norm(x, 2)
}

// ScaledDiff returns d = (x - y) * alpha, the building block of every
// bandwidth-parameterized kernel in this module.
// Complexity: O(n).
func ScaledDiff(x, y []float64, alpha float64) ([]float64, error) {
	d, err := Sub(x, y)
	if err != nil {
		return nil, vectorErrorf("ScaledDiff", err)
	}
	floats.Scale(alpha, d)

	return d, nil
}
