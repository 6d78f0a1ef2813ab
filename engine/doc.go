// SPDX-License-Identifier: MIT

// Package engine evaluates kernel (Gram) matrices between batches of vectors.
//
// An Engine is an explicit execution context. It owns:
//
//   - a kernel.Registry (built-ins registered by default), and
//   - the "active kernel" slot read by Knm, KnmProduct and Dnm.
//
// Nothing here is process-global: two engines never see each other's
// registrations or active kernel, which keeps parallel tests independent.
//
// The active slot is read once per call. A SetActive racing with a running
// Knm affects the next call, never the table being built. A kernel's own
// methods never consult the slot; only the engine operators do:
//
//	eng, _ := engine.New()
//	k1, _ := eng.Create("my_kernel", kernel.Config{"bandwidth": 1})
//	k2, _ := eng.Create("my_kernel", kernel.Config{"bandwidth": 2})
//	_ = eng.SetActive(k2)
//	k1.Evaluate(x, y)              // still bandwidth 1
//	eng.Knm(ctx, X, Y)             // uses bandwidth 2
//
// Callers that do not want the slot at all use Gram, which takes the kernel
// as an argument.
//
// Fit and Model.Predict add kernel regression on top of the tables:
//
//	θ     = (K(x,x) + reg·I)⁻¹ · fx
//	f(z)  = K(z,x) · θ
//
// reg = 0 interpolates fx exactly at x when K(x,x) is invertible;
// DefaultRegularization is the usual choice. KnmInv returns the inverse
// itself. The linear algebra is done with gonum/mat (Cholesky when the
// regularized table is symmetric positive definite, LU otherwise).
//
// Rows of a table are evaluated in parallel (errgroup, bounded by the worker
// count) and the context is honoured between rows.
package engine
