// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// RegOption modifies per-entry registration parameters.
type RegOption func(*regOpts)

type regOpts struct {
	doc string
}

// WithDoc attaches a human-readable note to the entry.
func WithDoc(doc string) RegOption { return func(o *regOpts) { o.doc = doc } }

type entry struct {
	factory Factory
	doc     string
}

// Registry maps kernel names to factories. It is safe for concurrent use.
//
// Duplicate policy: registering an existing name replaces the previous
// factory (last registration wins). Register reports whether it did so.
// There is no removal.
type Registry struct {
	mu   sync.RWMutex
	data map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{data: make(map[string]entry)}
}

// normalize trims surrounding blanks; names stay case-sensitive.
func normalize(name string) string { return strings.TrimSpace(name) }

// Register binds name to f. It returns replaced=true when an earlier
// binding for the same name was overwritten.
// Errors: ErrInvalidRegistration for an empty name or nil factory.
func (r *Registry) Register(name string, f Factory, opts ...RegOption) (replaced bool, err error) {
	name = normalize(name)
	if name == "" || f == nil {
		return false, kernelErrorf("Register", ErrInvalidRegistration)
	}
	var o regOpts
	for _, fn := range opts {
		fn(&o)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced = r.data[name]
	r.data[name] = entry{factory: f, doc: o.doc}

	return replaced, nil
}

// Lookup returns the factory bound to name.
// Errors: ErrUnknownKernel.
func (r *Registry) Lookup(name string) (Factory, error) {
	name = normalize(name)
	r.mu.RLock()
	e, ok := r.data[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownKernel)
	}

	return e.factory, nil
}

// Create looks up name and invokes its factory with cfg.
// The factory runs outside the registry lock.
func (r *Registry) Create(name string, cfg Config) (Kernel, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Config{}
	}
	k, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("Create(%q): %w", normalize(name), err)
	}

	return k, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	_, ok := r.data[normalize(name)]
	r.mu.RUnlock()

	return ok
}

// Doc returns the note attached at registration ("" if none or unknown).
func (r *Registry) Doc(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.data[normalize(name)].doc
}

// Names returns all registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.data))
	for name := range r.data {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.data)
}
