// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig indicates a configuration value that cannot be coerced
	// to the type an option requires (e.g. bandwidth "abc").
	ErrBadConfig = errors.New("kernel: invalid configuration value")

	// ErrUnknownKernel indicates a lookup for a name nothing was registered under.
	ErrUnknownKernel = errors.New("kernel: unknown kernel name")

	// ErrInvalidRegistration indicates an empty name or a nil factory.
	ErrInvalidRegistration = errors.New("kernel: invalid name or factory")

	// ErrNoGradient is returned by kernels that do not define a gradient.
	ErrNoGradient = errors.New("kernel: gradient not defined")

	// ErrNilFunc indicates a FuncKernel built without an evaluation function.
	ErrNilFunc = errors.New("kernel: nil evaluation function")
)

// kernelErrorf wraps an underlying error with the given tag.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
