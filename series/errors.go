// SPDX-License-Identifier: MIT

package series

import "errors"

var (
	// ErrUnknownKind indicates a Kind outside Pulse, Triangle and Chirp.
	ErrUnknownKind = errors.New("series: unknown signal kind")

	// ErrBadParams indicates an invalid size or signal parameter
	// (n < 1, A ≤ 0, f ≤ 0, duty ∉ [0,1], sigma < 0).
	ErrBadParams = errors.New("series: invalid parameters")
)
