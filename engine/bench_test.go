package engine_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kernelab/engine"
	"github.com/katalvlaran/kernelab/kernel"
	"github.com/katalvlaran/kernelab/matrix"
	"github.com/katalvlaran/kernelab/series"
)

var sinkM *matrix.Dense

func randBatch(n, dim int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	b := make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, dim)
		for j := range b[i] {
			b[i][j] = rng.NormFloat64()
		}
	}
	return b
}

func BenchmarkKnm(b *testing.B) {
	ctx := context.Background()
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			e, err := engine.New(engine.WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}
			if _, err = e.Activate(kernel.GaussianName, nil); err != nil {
				b.Fatal(err)
			}
			x := randBatch(256, 16, 1337)
			y := randBatch(256, 16, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := e.Knm(ctx, x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkKnm_DTW(b *testing.B) {
	ctx := context.Background()
	x, err := series.Windows(series.Chirp, 64, 32, 3, 1, series.WithNoise(0.05))
	if err != nil {
		b.Fatal(err)
	}
	e, err := engine.New()
	if err != nil {
		b.Fatal(err)
	}
	if _, err = e.Activate(kernel.DTWName, kernel.Config{"window": 4}); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := e.Knm(ctx, x, x)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
