// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig is returned when a loaded configuration fails Validate
// or an environment override cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid configuration")
