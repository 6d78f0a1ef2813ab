package kernel_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/kernelab/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UnknownName(t *testing.T) {
	r := kernel.NewRegistry()

	_, err := r.Lookup("my_kernel")
	require.ErrorIs(t, err, kernel.ErrUnknownKernel)

	_, err = r.Create("my_kernel", nil)
	require.ErrorIs(t, err, kernel.ErrUnknownKernel)
	assert.False(t, r.Has("my_kernel"))
}

func TestRegistry_InvalidRegistration(t *testing.T) {
	r := kernel.NewRegistry()

	_, err := r.Register("  ", kernel.QuadraticFactory)
	require.ErrorIs(t, err, kernel.ErrInvalidRegistration)

	_, err = r.Register("x", nil)
	require.ErrorIs(t, err, kernel.ErrInvalidRegistration)
	assert.Equal(t, 0, r.Len())
}

// TestRegistry_OverwritePolicy documents last-registration-wins.
func TestRegistry_OverwritePolicy(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, kernel.RegisterQuadratic(r))

	lin := func(cfg kernel.Config) (kernel.Kernel, error) { return kernel.NewLinear(cfg) }
	replaced, err := r.Register(kernel.QuadraticName, lin, kernel.WithDoc("linear in disguise"))
	require.NoError(t, err)
	assert.True(t, replaced)

	k, err := r.Create(kernel.QuadraticName, nil)
	require.NoError(t, err)
	_, isLinear := k.(*kernel.Linear)
	assert.True(t, isLinear, "second registration must win")
	assert.Equal(t, "linear in disguise", r.Doc(kernel.QuadraticName))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_CreateWrapsFactoryError(t *testing.T) {
	r := kernel.NewRegistry()
	boom := errors.New("boom")
	_, err := r.Register("failing", func(kernel.Config) (kernel.Kernel, error) { return nil, boom })
	require.NoError(t, err)

	_, err = r.Create("failing", kernel.Config{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"failing"`)
}

func TestRegisterBuiltins_Names(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, kernel.RegisterBuiltins(r))

	assert.Equal(t, []string{"dtw", "gaussian", "linear", "maternnorm", "my_kernel"}, r.Names())
	for _, name := range r.Names() {
		assert.NotEmpty(t, r.Doc(name), name)
		_, err := r.Create(name, kernel.Config{"bandwidth": "0.5"})
		assert.NoError(t, err, name)
	}
}

// TestRegistry_Concurrent exercises the lock under parallel writers and readers.
func TestRegistry_Concurrent(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, kernel.RegisterBuiltins(r))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Register(fmt.Sprintf("k%d", i%4), kernel.QuadraticFactory)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = r.Create(kernel.GaussianName, nil)
			_ = r.Names()
		}()
	}
	wg.Wait()

	assert.Equal(t, 9, r.Len())
}
