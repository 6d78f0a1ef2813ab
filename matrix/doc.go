// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major table used to hold kernel
// (Gram) matrices and the few linear-algebra primitives the engine needs.
//
// The matrix package provides:
//
//   - Dense: a flat row-major []float64 buffer with bounds-checked At/Set
//     and a finite-only numeric policy (NaN/±Inf are rejected by Set).
//   - FromRows / ToRows / Row: conversions between Dense and [][]float64
//     batches, the shape kernel callers usually hold.
//   - Mul: the product needed for K(X,Y)·fy.
//   - ValidateSymmetric and friends: centralized structural checks.
//
// All public functions return sentinel errors (see errors.go) instead of
// panicking; callers match them with errors.Is.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Mul: O(r*n*c).
package matrix
