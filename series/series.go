// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"
	"math/rand"
)

// Kind names a signal shape.
type Kind string

// Supported kinds.
const (
	Pulse    Kind = "pulse"
	Triangle Kind = "triangle"
	Chirp    Kind = "chirp"
)

// Kinds lists the supported kinds in a stable order.
func Kinds() []Kind { return []Kind{Pulse, Triangle, Chirp} }

const tau = 2 * math.Pi

// MaxSamples bounds the length of one generated signal.
const MaxSamples = 1 << 24

// Generate returns n samples of the given kind.
// Errors: ErrUnknownKind, ErrBadParams (including n > MaxSamples).
// Complexity: O(n) time and memory.
func Generate(kind Kind, n int, seed int64, opts ...Option) ([]float64, error) {
	if n < 1 || n > MaxSamples {
		return nil, fmt.Errorf("%w: n=%d", ErrBadParams, n)
	}
	p := newParams(opts...)
	if !p.valid() {
		return nil, fmt.Errorf("%w: %+v", ErrBadParams, p)
	}

	out := make([]float64, n)
	switch kind {
	case Pulse, Triangle:
		var frac float64
		for i := range out {
			frac = math.Mod(float64(i)*p.f0, 1)
			if kind == Triangle {
				out[i] = p.amp * (1 - math.Abs(2*frac-1))
			} else if frac < p.duty {
				out[i] = p.amp
			}
		}
	case Chirp:
		var theta, t float64
		for i := range out {
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			theta += tau * (p.f0 + (p.f1-p.f0)*t)
			out[i] = p.amp * math.Sin(theta)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	rng := p.rng
	if p.sigma > 0 && rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}
	for i := range out {
		out[i] += p.trend * float64(i)
		if p.sigma > 0 {
			out[i] += p.sigma * rng.NormFloat64()
		}
	}

	return out, nil
}

// Windows generates one signal long enough for count windows of length
// samples, each starting stride samples after the previous one, and returns
// the windows as independent copies.
// Errors: ErrBadParams for count, length or stride < 1 or a total length
// that overflows int, plus Generate errors.
// Complexity: O(count·length) time and memory.
func Windows(kind Kind, count, length, stride int, seed int64, opts ...Option) ([][]float64, error) {
	if count < 1 || length < 1 || stride < 1 || count-1 > (math.MaxInt-length)/stride {
		return nil, fmt.Errorf("%w: count=%d length=%d stride=%d", ErrBadParams, count, length, stride)
	}
	base, err := Generate(kind, length+(count-1)*stride, seed, opts...)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, count)
	for i := range out {
		start := i * stride
		out[i] = append([]float64(nil), base[start:start+length]...)
	}

	return out, nil
}
