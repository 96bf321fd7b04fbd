package noisegen

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownGenerator is returned by Lookup for unregistered names.
var ErrUnknownGenerator = errors.New("noisegen: unknown generator")

// Factory builds one generator instance.
type Factory func(opts ...Option) (Generator, error)

// Registry maps generator names to their factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given generator name. Registering an
// existing name silently replaces the earlier factory, so callers can
// override a built-in strategy.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("noisegen: empty generator name")
	}

	if factory == nil {
		return errors.New("noisegen: nil factory")
	}

	r.factories[name] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, factory Factory) {
	err := r.Register(name, factory)
	if err != nil {
		panic("noisegen registry: " + err.Error())
	}
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}

	return factory, nil
}

// Names returns the registered generator names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// DefaultRegistry returns a Registry pre-populated with all built-in
// generators.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("identity", func(_ ...Option) (Generator, error) {
		return NewIdentity(), nil
	})
	r.MustRegister("white", func(opts ...Option) (Generator, error) {
		return NewWhiteNoise(opts...), nil
	})
	r.MustRegister("environmental", func(opts ...Option) (Generator, error) {
		return NewEnvironmental(opts...), nil
	})
	r.MustRegister("echo", func(opts ...Option) (Generator, error) {
		return NewEcho(opts...), nil
	})

	return r
}
