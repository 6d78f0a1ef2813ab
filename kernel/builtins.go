// SPDX-License-Identifier: MIT

package kernel

// builtin pairs a registry name with its factory and doc line.
type builtin struct {
	name    string
	factory Factory
	doc     string
}

// adapt lifts a concrete constructor to a Factory without leaking a typed
// nil Kernel on error.
func adapt[K Kernel](ctor func(Config) (K, error)) Factory {
	return func(cfg Config) (Kernel, error) {
		k, err := ctor(cfg)
		if err != nil {
			return nil, err
		}
		return k, nil
	}
}

func builtins() []builtin {
	return []builtin{
		{QuadraticName, QuadraticFactory, quadraticDoc},
		{GaussianName, adapt(NewGaussian), "exp(-||b(x-y)||^2)"},
		{LinearName, adapt(NewLinear), "b^2 <x,y>"},
		{MaternName, adapt(NewMatern), "exp(-||b(x-y)||)"},
		{DTWName, adapt(NewDTW), "exp(-b*DTW(x,y)); options window, penalty"},
	}
}

// RegisterBuiltins binds every built-in kernel into r, replacing any earlier
// binding under the same names.
func RegisterBuiltins(r *Registry) error {
	for _, b := range builtins() {
		if _, err := r.Register(b.name, b.factory, WithDoc(b.doc)); err != nil {
			return err
		}
	}

	return nil
}
