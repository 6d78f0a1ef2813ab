// SPDX-License-Identifier: MIT

// Package kernel defines the pairwise kernel abstraction, the configuration
// record kernels are built from, and a named factory registry.
//
// A Kernel is anything exposing Evaluate(x, y) and Gradient(x, y) over
// float64 vectors. Concrete kernels are constructed from a Config (a loose
// string-keyed record, as read from YAML or CLI flags) by a Factory, and
// factories are discoverable by name through a Registry:
//
//	r := kernel.NewRegistry()
//	_ = kernel.RegisterQuadratic(r)                     // binds "my_kernel"
//	k, err := r.Create("my_kernel", kernel.Config{"bandwidth": "2."})
//	v, err := k.Evaluate([]float64{1, 0}, []float64{0, 0}) // 2.0
//
// Built-in kernels (see RegisterBuiltins):
//
//	my_kernel   0.5·||b(x-y)||²             gradient: b·y
//	gaussian    exp(-||b(x-y)||²)           gradient: -2b²(x-y)·k
//	linear      b²⟨x,y⟩                     gradient: b²·y
//	maternnorm  exp(-||b(x-y)||)            gradient: -b²(x-y)/r·k
//	dtw         exp(-b·DTW(x,y))            no gradient; unequal lengths allowed
//
// Gradients are part of each kernel's own definition. They are not derived
// from Evaluate, and my_kernel's b·y is deliberately not the derivative of
// its value.
//
// Kernels in this package are immutable after construction and safe for
// concurrent use. The Registry is guarded by a RWMutex.
package kernel
