// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kernelab/matrix"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// toMat copies d into a gonum matrix.
func toMat(d *matrix.Dense) *mat.Dense {
	r, c := d.Shape()
	data := make([]float64, 0, r*c)
	for _, row := range d.ToRows() {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

// fromMat copies m back into a Dense, rejecting non-finite entries.
func fromMat(m *mat.Dense) (*matrix.Dense, error) {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}

	return matrix.FromRows(rows)
}

// solveRegularized returns (k + reg·I)⁻¹·rhs for square k.
//
// Stage 1 (Prepare): a = k + reg·I as a gonum matrix.
// Stage 2 (Cholesky): when a is symmetric and factorizes, solve with it.
// Stage 3 (LU): otherwise fall back to a general solve.
// Stage 4 (Finalize): ill-conditioned but finite results are kept and
// logged; exact singularity is ErrSingular.
//
// Complexity: O(n³ + n²·cols(rhs)).
func solveRegularized(k, rhs *matrix.Dense, reg float64, logger *zap.Logger) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(k); err != nil {
		return nil, err
	}
	if err := matrix.ValidateMulCompatible(k, rhs); err != nil {
		return nil, err
	}

	// Stage 1: Prepare
	n := k.Rows()
	a := toMat(k)
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+reg)
	}
	b := toMat(rhs)

	var (
		x      mat.Dense
		err    error
		solved bool
	)

	// Stage 2: Cholesky for symmetric positive definite systems
	if matrix.ValidateSymmetric(k, 0) == nil {
		var chol mat.Cholesky
		if chol.Factorize(mat.NewSymDense(n, a.RawMatrix().Data)) {
			err = chol.SolveTo(&x, b)
			solved = true
		}
	}

	// Stage 3: LU
	if !solved {
		err = x.Solve(a, b)
	}

	// Stage 4: Finalize
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		logger.Warn("ill-conditioned kernel system", zap.Float64("condition", float64(cond)))
	}
	out, err := fromMat(&x)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	return out, nil
}
