// SPDX-License-Identifier: MIT

package series

import "math/rand"

// Defaults shared by all kinds.
const (
	DefaultAmplitude = 1.0
	DefaultFrequency = 0.125 // cycles/sample, period 8
	DefaultDuty      = 0.5
	DefaultSweepEnd  = 0.25 // chirp end frequency
)

// Option adjusts signal parameters.
type Option func(*params)

type params struct {
	amp   float64 // > 0
	f0    float64 // base or chirp start frequency, > 0
	f1    float64 // chirp end frequency, > 0
	duty  float64 // [0,1], pulse only
	trend float64 // any real
	sigma float64 // >= 0
	rng   *rand.Rand
}

func newParams(opts ...Option) params {
	p := params{
		amp:  DefaultAmplitude,
		f0:   DefaultFrequency,
		f1:   DefaultSweepEnd,
		duty: DefaultDuty,
	}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

func (p params) valid() bool {
	return p.amp > 0 && p.f0 > 0 && p.f1 > 0 &&
		p.duty >= 0 && p.duty <= 1 && p.sigma >= 0
}

// WithAmplitude sets A (> 0).
func WithAmplitude(a float64) Option { return func(p *params) { p.amp = a } }

// WithFrequency sets the base frequency, or the chirp start frequency (> 0).
func WithFrequency(f0 float64) Option { return func(p *params) { p.f0 = f0 } }

// WithSweepEnd sets the chirp end frequency (> 0).
func WithSweepEnd(f1 float64) Option { return func(p *params) { p.f1 = f1 } }

// WithDuty sets the rectangular pulse duty cycle in [0,1].
func WithDuty(d float64) Option { return func(p *params) { p.duty = d } }

// WithTrend adds trend·i to sample i.
func WithTrend(k float64) Option { return func(p *params) { p.trend = k } }

// WithNoise adds sigma·N(0,1) to every sample (sigma ≥ 0).
func WithNoise(sigma float64) Option { return func(p *params) { p.sigma = sigma } }

// WithRand shares r across calls instead of seeding a local source.
func WithRand(r *rand.Rand) Option { return func(p *params) { p.rng = r } }
