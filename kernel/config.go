// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Option keys understood by the built-in kernels.
const (
	OptBandwidth = "bandwidth"
	OptWindow    = "window"
	OptPenalty   = "penalty"
)

// DefaultBandwidth is used when a Config carries no bandwidth.
const DefaultBandwidth = 1.0

// Config is the configuration record a Factory receives. Values may be
// numbers or strings (as produced by YAML decoding or "key=value" flags);
// accessors coerce them and report ErrBadConfig when they cannot.
type Config map[string]any

// Float returns the option under key as float64, or def when absent (or nil).
// Numbers of any width and numeric strings are accepted; strings are trimmed
// first, so " 2. " is 2.0. Booleans and non-finite results are rejected.
func (c Config) Float(key string, def float64) (float64, error) {
	raw, ok := c[key]
	if !ok || raw == nil {
		return def, nil
	}

	v, err := toFloat(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%v: %v", ErrBadConfig, key, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrBadConfig, key)
	}

	return v, nil
}

// Int returns the option under key as int, or def when absent (or nil).
// Floats must be integral; strings are trimmed and parsed as integers.
func (c Config) Int(key string, def int) (int, error) {
	raw, ok := c[key]
	if !ok || raw == nil {
		return def, nil
	}

	f, err := toFloat(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%v: %v", ErrBadConfig, key, raw, err)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s=%v is not an integer", ErrBadConfig, key, raw)
	}
	if s, isStr := raw.(string); isStr {
		raw = strings.TrimSpace(s)
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%v: %v", ErrBadConfig, key, raw, err)
	}
	if float64(n) != f {
		return 0, fmt.Errorf("%w: %s=%v is ambiguous", ErrBadConfig, key, raw)
	}

	return n, nil
}

// toFloat coerces numbers and trimmed numeric strings; cast would read a
// bool as 0 or 1, which no kernel option means.
func toFloat(raw any) (float64, error) {
	switch t := raw.(type) {
	case bool:
		return 0, fmt.Errorf("unexpected type %T", raw)
	case string:
		return cast.ToFloat64E(strings.TrimSpace(t))
	default:
		return cast.ToFloat64E(raw)
	}
}

// Bandwidth is shorthand for Float(OptBandwidth, DefaultBandwidth).
func (c Config) Bandwidth() (float64, error) {
	return c.Float(OptBandwidth, DefaultBandwidth)
}

// ParseConfig builds a Config from "key=value" pairs, the form used by
// command-line flags. Values stay strings; accessors coerce them later.
func ParseConfig(pairs []string) (Config, error) {
	cfg := make(Config, len(pairs))
	for _, p := range pairs {
		key, val, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrBadConfig, p)
		}
		cfg[key] = strings.TrimSpace(val)
	}

	return cfg, nil
}
