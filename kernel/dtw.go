// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/kernelab/dtw"
)

// DTW is k(x, y) = exp(-b·DTW(x, y)). Inputs may differ in length.
// Options: bandwidth, window (Sakoe–Chiba band, -1 = none), penalty.
type DTW struct {
	bandwidth float64
	opts      dtw.Options
}

// NewDTW builds a DTW kernel from cfg.
func NewDTW(cfg Config) (*DTW, error) {
	b, err := cfg.Bandwidth()
	if err != nil {
		return nil, kernelErrorf("NewDTW", err)
	}
	opts := dtw.DefaultOptions()
	if opts.Window, err = cfg.Int(OptWindow, dtw.NoWindow); err != nil {
		return nil, kernelErrorf("NewDTW", err)
	}
	if opts.SlopePenalty, err = cfg.Float(OptPenalty, 0); err != nil {
		return nil, kernelErrorf("NewDTW", err)
	}
	// validate options once, up front
	if _, err = dtw.Distance([]float64{0}, []float64{0}, &opts); err != nil {
		return nil, kernelErrorf("NewDTW", err)
	}

	return &DTW{bandwidth: b, opts: opts}, nil
}

// Bandwidth returns the configured bandwidth.
func (k *DTW) Bandwidth() float64 { return k.bandwidth }

// Evaluate returns exp(-b·d). An inadmissible alignment (d = +Inf under a
// window) yields 0 for b > 0.
func (k *DTW) Evaluate(x, y []float64) (float64, error) {
	d, err := dtw.Distance(x, y, &k.opts)
	if err != nil {
		return 0, kernelErrorf("DTW.Evaluate", err)
	}
	if math.IsInf(d, 1) {
		if k.bandwidth > 0 {
			return 0, nil
		}
		if k.bandwidth == 0 {
			return 1, nil
		}
	}

	return math.Exp(-k.bandwidth * d), nil
}

// Gradient is not defined for DTW.
func (k *DTW) Gradient(_, _ []float64) ([]float64, error) {
	return nil, kernelErrorf("DTW.Gradient", ErrNoGradient)
}
