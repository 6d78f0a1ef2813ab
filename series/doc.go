// SPDX-License-Identifier: MIT

// Package series generates deterministic 1-D signals (rectangular or
// triangular pulses, linear chirps) and cuts them into batches of sliding
// windows. The batches are the natural input of sequence kernels such as
// dtw and make reproducible fixtures for Gram-matrix tests and benchmarks.
//
// Model (sample i of n):
//
//	pulse     A·[frac(i·f0) < duty]
//	triangle  A·(1 − |2·frac(i·f0) − 1|)
//	chirp     A·sin(θᵢ), θᵢ₊₁ = θᵢ + 2π·(f0 + (f1−f0)·i/(n−1))
//
// followed by an optional linear trend (+trend·i) and Gaussian noise
// (+sigma·N(0,1), seeded). Same kind, size, seed and options always give the
// same samples.
//
// Complexity: Generate O(n); Windows O(count·length).
package series
