package series_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kernelab/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Pulse(t *testing.T) {
	// f0 = 0.25: period 4, duty 0.5 → on, on, off, off
	got, err := series.Generate(series.Pulse, 8, 0, series.WithFrequency(0.25), series.WithAmplitude(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 0, 0, 2, 2, 0, 0}, got)
}

func TestGenerate_Triangle(t *testing.T) {
	got, err := series.Generate(series.Triangle, 5, 0, series.WithFrequency(0.25))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 0.5, 0}, got)
}

func TestGenerate_ChirpBounded(t *testing.T) {
	got, err := series.Generate(series.Chirp, 64, 0, series.WithAmplitude(3))
	require.NoError(t, err)
	require.Len(t, got, 64)
	for i, v := range got {
		assert.LessOrEqual(t, math.Abs(v), 3.0, "sample %d", i)
	}
}

func TestGenerate_TrendAndNoiseDeterministic(t *testing.T) {
	a, err := series.Generate(series.Chirp, 32, 7, series.WithNoise(0.1), series.WithTrend(0.5))
	require.NoError(t, err)
	b, err := series.Generate(series.Chirp, 32, 7, series.WithNoise(0.1), series.WithTrend(0.5))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := series.Generate(series.Chirp, 32, 8, series.WithNoise(0.1), series.WithTrend(0.5))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	// a shared source advances between calls
	r := rand.New(rand.NewSource(1))
	d, _ := series.Generate(series.Pulse, 4, 0, series.WithNoise(1), series.WithRand(r))
	e, _ := series.Generate(series.Pulse, 4, 0, series.WithNoise(1), series.WithRand(r))
	assert.NotEqual(t, d, e)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := series.Generate(series.Pulse, 0, 0)
	require.ErrorIs(t, err, series.ErrBadParams)

	_, err = series.Generate("saw", 4, 0)
	require.ErrorIs(t, err, series.ErrUnknownKind)

	for name, opt := range map[string]series.Option{
		"amplitude": series.WithAmplitude(0),
		"frequency": series.WithFrequency(-1),
		"sweep":     series.WithSweepEnd(0),
		"duty":      series.WithDuty(1.5),
		"noise":     series.WithNoise(-0.1),
	} {
		_, err = series.Generate(series.Chirp, 4, 0, opt)
		require.ErrorIs(t, err, series.ErrBadParams, name)
	}
}

func TestWindows(t *testing.T) {
	w, err := series.Windows(series.Triangle, 3, 4, 2, 0, series.WithFrequency(0.25))
	require.NoError(t, err)
	// base: 0 .5 1 .5 0 .5 1 .5
	assert.Equal(t, [][]float64{
		{0, 0.5, 1, 0.5},
		{1, 0.5, 0, 0.5},
		{0, 0.5, 1, 0.5},
	}, w)

	// windows do not alias each other
	w[0][0] = 42
	assert.Equal(t, 0.0, w[2][0])

	_, err = series.Windows(series.Pulse, 0, 4, 1, 0)
	require.ErrorIs(t, err, series.ErrBadParams)
}

// TestWindows_Oversized rejects layouts whose total length overflows int or
// exceeds MaxSamples instead of panicking on the slice bounds.
func TestWindows_Oversized(t *testing.T) {
	cases := []struct {
		name                  string
		count, length, stride int
	}{
		{"stride overflow", 5, 1, 1 << 62},
		{"length overflow", 2, math.MaxInt, 1},
		{"count overflow", math.MaxInt, 1, 2},
		{"too many samples", 2, series.MaxSamples, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := series.Windows(series.Pulse, tc.count, tc.length, tc.stride, 1)
			require.ErrorIs(t, err, series.ErrBadParams)
		})
	}

	_, err := series.Generate(series.Chirp, series.MaxSamples+1, 0)
	require.ErrorIs(t, err, series.ErrBadParams)
}
