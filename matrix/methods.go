// SPDX-License-Identifier: MIT

// Package matrix provides universal operations on any Matrix implementation:
// currently matrix multiplication of Dense tables. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMul = "Mul"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): i-k-j loop over the flat buffers, skipping zero a(i,k).
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: accumulate row i of a·b as Σ_k a(i,k)·b(k,·)
	var av float64
	for i := 0; i < aRows; i++ {
		rowR := res.data[i*bCols : (i+1)*bCols]
		for k := 0; k < aCols; k++ {
			av = a.data[i*aCols+k]
			if av == 0 {
				continue
			}
			rowB := b.data[k*bCols : (k+1)*bCols]
			for j, bv := range rowB {
				rowR[j] += av * bv
			}
		}
	}
	if res.validateNaNInf {
		for _, v := range res.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opMul, ErrNaNInf)
			}
		}
	}

	return res, nil
}
