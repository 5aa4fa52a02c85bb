package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownRenderer is returned by Get for unregistered names.
var ErrUnknownRenderer = errors.New("render: renderer not found")

// Factory builds a renderer. It runs at most once, on the first Get for its
// name, so renderers that bind to a terminal are only built when used.
type Factory func() (Renderer, error)

type entry struct {
	factory  Factory
	once     sync.Once
	renderer Renderer
	err      error
}

func (e *entry) build(name string) (Renderer, error) {
	e.once.Do(func() {
		e.renderer, e.err = e.factory()
		if e.err == nil && e.renderer == nil {
			e.err = fmt.Errorf("render: factory for %q returned no renderer", name)
		}
	})
	return e.renderer, e.err
}

// Registry maps renderer names to factories and rejects duplicates.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Register adds a lazily built renderer under name.
func (r *Registry) Register(name string, factory Factory) error {
	if r == nil {
		return errors.New("render: registry is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("render: renderer name is required")
	}
	if factory == nil {
		return fmt.Errorf("render: factory for %q is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.entries[name] = &entry{factory: factory}
	return nil
}

// Add registers an already built renderer under its Name().
func (r *Registry) Add(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	return r.Register(renderer.Name(), func() (Renderer, error) { return renderer, nil })
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// MustAdd panics on registration failure.
func (r *Registry) MustAdd(renderer Renderer) {
	if err := r.Add(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer registered under name, building it on first use.
// A failed build is remembered and returned on every later call.
func (r *Registry) Get(name string) (Renderer, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	return e.build(name)
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered. It never builds the renderer.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}
