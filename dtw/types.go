// SPDX-License-Identifier: MIT

package dtw

import "errors"

// NoWindow disables the Sakoe–Chiba band.
const NoWindow = -1

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, negative or NaN penalty).
	ErrBadInput = errors.New("dtw: invalid options")
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window: maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     NoWindow (-1) means unconstrained.
//   - SlopePenalty: cost added to insertion/deletion steps (≥ 0).
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	dist, err := dtw.Distance(seqA, seqB, &opts)
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns an unconstrained, penalty-free configuration.
func DefaultOptions() Options {
	return Options{Window: NoWindow}
}
