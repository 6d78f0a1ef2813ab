package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/kernelab/config"
	"github.com/katalvlaran/kernelab/engine"
	"github.com/katalvlaran/kernelab/kernel"
	"github.com/katalvlaran/kernelab/matrix"
	"github.com/katalvlaran/kernelab/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes a fresh root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvKernel, "")
	t.Setenv(config.EnvWorkers, "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const data1D = `
x: [[1], [0], [3]]
y: [[0], [1]]
`

func TestKernelsCmd(t *testing.T) {
	out, err := run(t, "kernels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], kernel.DTWName))
	assert.Contains(t, out, kernel.QuadraticName)
	assert.Contains(t, out, kernel.MaternName)
}

func TestEvalCmd(t *testing.T) {
	// d = (0,2)·2, ||d||² = 16, k = 8; grad = y·2
	out, err := run(t, "eval", "-k", "my_kernel", "-p", "bandwidth=2.", "--x", "1,2", "--y", "1,0")
	require.NoError(t, err)
	assert.Equal(t, "k(x, y) = 8\ngrad = [2 0]\n", out)

	out, err = run(t, "eval", "-k", "dtw", "--x", "1,2,3", "--y", "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, "k(x, y) = 1\ngrad = n/a\n", out)
}

func TestEvalCmd_Errors(t *testing.T) {
	_, err := run(t, "eval", "-k", "nope", "--x", "1", "--y", "1")
	require.ErrorIs(t, err, kernel.ErrUnknownKernel)

	_, err = run(t, "eval", "-k", "my_kernel", "-p", "bandwidth", "--x", "1", "--y", "1")
	require.ErrorIs(t, err, kernel.ErrBadConfig)

	_, err = run(t, "eval", "-k", "linear", "--x", "1,2", "--y", "1")
	require.Error(t, err)

	_, err = run(t, "eval", "--x", "1")
	require.Error(t, err, "--y is required")
}

func TestGramCmd_Text(t *testing.T) {
	path := writeTemp(t, "data.yaml", data1D)

	out, err := run(t, "gram", "-k", "my_kernel", "-p", "bandwidth=2", "--workers", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "[2, 0]\n[0, 2]\n[18, 8]\n", out)
}

func TestGramCmd_YAML(t *testing.T) {
	path := writeTemp(t, "data.yaml", data1D)

	out, err := run(t, "gram", "-k", "my_kernel", "-o", "yaml", path)
	require.NoError(t, err)

	var got table
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	want := table{Rows: 3, Cols: 2, Values: [][]float64{{0.5, 0}, {0, 0.5}, {4.5, 2}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("gram -o yaml (-want +got):\n%s", diff)
	}
}

func TestGramCmd_Product(t *testing.T) {
	path := writeTemp(t, "data.yaml", data1D+"fy: [[1], [1]]\n")

	out, err := run(t, "gram", "-k", "my_kernel", "-p", "bandwidth=2", path)
	require.NoError(t, err)
	assert.Equal(t, "[2]\n[2]\n[26]\n", out)

	_, err = run(t, "gram", "--distance", path)
	require.ErrorIs(t, err, errDistanceWithFY)
}

func TestGramCmd_DistanceSymmetric(t *testing.T) {
	path := writeTemp(t, "data.yaml", "x: [[0], [1], [2.5]]\n")

	out, err := run(t, "gram", "-k", "gaussian", "--distance", "--symmetric-check", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "[0, "))
}

func TestGramCmd_SymmetricCheckFails(t *testing.T) {
	// K = [[2,2],[0,8]] for bandwidth 2
	path := writeTemp(t, "data.yaml", "x: [[1], [0]]\ny: [[0], [2]]\n")

	_, err := run(t, "gram", "-k", "my_kernel", "-p", "bandwidth=2", "--symmetric-check", path)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	path = writeTemp(t, "rect.yaml", data1D)
	_, err = run(t, "gram", "-k", "my_kernel", "--symmetric-check", path)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestGramCmd_ConfigFile(t *testing.T) {
	cfgPath := writeTemp(t, "kernelab.yaml", `
engine:
  workers: 1
kernel:
  name: my_kernel
  params:
    bandwidth: 2
`)
	path := writeTemp(t, "data.yaml", data1D)

	out, err := run(t, "gram", "-c", cfgPath, path)
	require.NoError(t, err)
	assert.Equal(t, "[2, 0]\n[0, 2]\n[18, 8]\n", out)

	// flags win over the file
	out, err = run(t, "gram", "-c", cfgPath, "-p", "bandwidth=1", path)
	require.NoError(t, err)
	assert.Equal(t, "[0.5, 0]\n[0, 0.5]\n[4.5, 2]\n", out)
}

func TestGramCmd_Errors(t *testing.T) {
	_, err := run(t, "gram", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeTemp(t, "data.yaml", data1D)
	_, err = run(t, "gram", "-o", "csv", path)
	require.Error(t, err)

	_, err = run(t, "gram", "--workers", "-3", path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	empty := writeTemp(t, "empty.yaml", "x: []\n")
	_, err = run(t, "gram", empty)
	require.Error(t, err)
}

// TestSeriesThenGram feeds generated windows into the dtw kernel. Windows
// one period apart are identical, so their kernel value is 1.
func TestSeriesThenGram(t *testing.T) {
	out, err := run(t, "series", "--kind", "triangle", "--freq", "0.25", "--count", "3", "--len", "4", "--stride", "2")
	require.NoError(t, err)

	var ds dataset
	require.NoError(t, yaml.Unmarshal([]byte(out), &ds))
	require.Len(t, ds.X, 3)
	assert.Equal(t, ds.X[0], ds.X[2])

	path := writeTemp(t, "windows.yaml", out)
	out, err = run(t, "gram", "-k", "dtw", "--symmetric-check", "-o", "yaml", path)
	require.NoError(t, err)

	var got table
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Equal(t, 3, got.Rows)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, got.Values[i][i])
	}
	assert.Equal(t, 1.0, got.Values[0][2])
	assert.Less(t, got.Values[0][1], 1.0)

	_, err = run(t, "series", "--kind", "saw")
	require.Error(t, err)
}

func TestPredictCmd(t *testing.T) {
	// my_kernel: θ = [4, 2]; f(2) = 2·4 + 0.5·2
	path := writeTemp(t, "samples.yaml", `
x: [[0], [1]]
fx: [[1], [2]]
z: [[0], [1], [2]]
`)
	out, err := run(t, "predict", "-k", "my_kernel", "--reg", "0", "-o", "yaml", path)
	require.NoError(t, err)

	var got table
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Equal(t, 3, got.Rows)
	for i, want := range []float64{1, 2, 9} {
		assert.InDelta(t, want, got.Values[i][0], 1e-12, "z[%d]", i)
	}

	_, err = run(t, "predict", "--reg", "-1", path)
	require.ErrorIs(t, err, engine.ErrBadRegularization)

	noFX := writeTemp(t, "nofx.yaml", "x: [[0], [1]]\n")
	_, err = run(t, "predict", noFX)
	require.ErrorIs(t, err, errNoFX)
}

// TestHugeIntegerFlags checks integer inputs at the int limit come back as
// errors or sane results, never a crash.
func TestHugeIntegerFlags(t *testing.T) {
	out, err := run(t, "eval", "-k", "dtw", "-p", "window=9223372036854775807", "--x", "1,2,3", "--y", "1,2,2,3")
	require.NoError(t, err)
	assert.Equal(t, "k(x, y) = 1\ngrad = n/a\n", out)

	_, err = run(t, "series", "--count", "5", "--stride", "4611686018427387904", "--len", "1")
	require.ErrorIs(t, err, series.ErrBadParams)
}
