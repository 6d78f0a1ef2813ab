// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// Distance computes the DTW distance between a and b.
// A nil opts means DefaultOptions().
//
// When a window is set and |len(a)-len(b)| exceeds it, no admissible
// alignment exists and the distance is +Inf (not an error).
//
// Errors:
//   - ErrEmptyInput: if either input is empty.
//   - ErrBadInput: if opts are out of range.
//
// Complexity: O(n·m) time, O(m) memory.
func Distance(a, b []float64, opts *Options) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < NoWindow {
		return 0, fmt.Errorf("%w: window %d", ErrBadInput, o.Window)
	}
	if math.IsNaN(o.SlopePenalty) || o.SlopePenalty < 0 {
		return 0, fmt.Errorf("%w: slope penalty %v", ErrBadInput, o.SlopePenalty)
	}

	// a band at least as wide as the longer input constrains nothing
	if o.Window >= max(n, m) {
		o.Window = NoWindow
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var lo, hi int
	for i := 1; i <= n; i++ {
		curr[0] = inf
		lo, hi = 1, m
		if o.Window != NoWindow {
			lo = max(1, i-o.Window)
			hi = min(m, i+o.Window)
		}
		// cells outside the band are unreachable
		for j := 1; j < lo; j++ {
			curr[j] = inf
		}
		for j := lo; j <= hi; j++ {
			best := min(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		for j := hi + 1; j <= m; j++ {
			curr[j] = inf
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}
