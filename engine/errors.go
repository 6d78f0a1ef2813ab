// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoActiveKernel indicates an operator ran before any SetActive/Activate.
	ErrNoActiveKernel = errors.New("engine: no active kernel")

	// ErrNilKernel indicates a nil kernel passed to SetActive or Gram.
	ErrNilKernel = errors.New("engine: nil kernel")

	// ErrEmptyBatch indicates a batch with no vectors.
	ErrEmptyBatch = errors.New("engine: empty batch")

	// ErrBadRegularization indicates a negative or non-finite regularization.
	ErrBadRegularization = errors.New("engine: regularization must be finite and >= 0")

	// ErrSingular indicates K(x,x) + reg·I could not be inverted.
	ErrSingular = errors.New("engine: singular kernel matrix")
)

// engineErrorf wraps an underlying error with the given operation tag.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
