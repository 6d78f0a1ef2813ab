// SPDX-License-Identifier: MIT

// Package kernelab is a small toolkit for pairwise kernels: user-defined
// similarity functions k(x, y) over float64 vectors, a registry that builds
// them by name from loose configuration, and an engine that turns an active
// kernel into kernel (Gram) matrices.
//
// What is inside:
//
//   - kernel/  the Kernel interface, Config coercion, the named factory
//     Registry and the built-ins (my_kernel, gaussian, linear, maternnorm, dtw)
//   - engine/  Engine: registry + active kernel slot; Knm, KnmProduct, Dnm
//     built in parallel with errgroup and logged with zap
//   - matrix/  Dense row-major tables with checked access and Mul
//   - vector/  length-checked vector arithmetic on top of gonum/floats
//   - dtw/     Dynamic Time Warping distance behind the dtw kernel
//   - series/  deterministic pulse/triangle/chirp windows for fixtures
//   - config/  YAML configuration with KERNELAB_* overrides
//   - cmd/kernelab  the command-line front end (cobra)
//
// Quick start:
//
//	e, _ := engine.New()
//	_, _ = e.Activate("my_kernel", kernel.Config{"bandwidth": "2."})
//	K, _ := e.Knm(ctx, [][]float64{{1}, {0}}, [][]float64{{0}, {1}})
//	// K = [[2, 0], [0, 2]]
//
//	go get github.com/katalvlaran/kernelab
package kernelab
