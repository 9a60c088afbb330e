// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Factory opens a surface for the given options. Options are validated
// before the factory runs.
type Factory func(opts Options) (Surface, error)

// Backend describes a selectable surface implementation.
type Backend struct {
	// Name is the unique key used with OpenNamed and pxl.WithBackend.
	Name string

	// Priority orders automatic selection, higher first. Built-in values:
	// fbdev 50, terminal 20, image 10.
	Priority int

	// Open creates a surface.
	Open Factory

	// Probe reports whether the backend can work on this machine. It is
	// evaluated on every query; nil means always available.
	Probe func() bool
}

func (b Backend) available() bool {
	return b.Probe == nil || b.Probe()
}

// BackendInfo is a point-in-time view of a registered backend.
type BackendInfo struct {
	Name      string
	Priority  int
	Available bool
}

func (i BackendInfo) String() string {
	state := "unavailable"
	if i.Available {
		state = "available"
	}
	return fmt.Sprintf("%s (priority %d, %s)", i.Name, i.Priority, state)
}

// Registry holds backends by name. The zero value is ready to use and safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// Register adds b, replacing any backend with the same name. It returns
// ErrInvalidBackend if b has no name or no factory.
func (r *Registry) Register(b Backend) error {
	if b.Name == "" || b.Open == nil {
		return fmt.Errorf("%w: name %q", ErrInvalidBackend, b.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backends == nil {
		r.backends = make(map[string]Backend)
	}
	r.backends[b.Name] = b
	return nil
}

// Unregister removes the named backend and reports whether it existed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.backends[name]
	delete(r.backends, name)
	return ok
}

// Lookup returns the named backend.
func (r *Registry) Lookup(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

// Backends lists every backend in selection order: priority descending,
// then name.
func (r *Registry) Backends() []BackendInfo {
	ordered := r.ordered()
	infos := make([]BackendInfo, len(ordered))
	for i, b := range ordered {
		infos[i] = BackendInfo{Name: b.Name, Priority: b.Priority, Available: b.available()}
	}
	return infos
}

// Available returns the names of available backends in selection order.
func (r *Registry) Available() []string {
	var names []string
	for _, b := range r.ordered() {
		if b.available() {
			names = append(names, b.Name)
		}
	}
	return names
}

// OpenNamed opens a surface with the named backend.
func (r *Registry) OpenNamed(name string, opts Options) (Surface, error) {
	b, ok := r.Lookup(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return open(b, opts)
}

// Open tries every available backend in selection order and returns the
// first surface that opens together with its backend name. When all of
// them fail the error wraps ErrNoBackendAvailable and every failure.
func (r *Registry) Open(opts Options) (Surface, string, error) {
	if err := ValidateSize(opts.Width, opts.Height); err != nil {
		return nil, "", err
	}
	var errs []error
	for _, b := range r.ordered() {
		if !b.available() {
			continue
		}
		s, err := open(b, opts)
		if err == nil {
			return s, b.Name, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, "", ErrNoBackendAvailable
	}
	return nil, "", fmt.Errorf("%w: %w", ErrNoBackendAvailable, errors.Join(errs...))
}

func open(b Backend, opts Options) (Surface, error) {
	if err := ValidateSize(opts.Width, opts.Height); err != nil {
		return nil, err
	}
	s, err := b.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("surface: backend %s: %w", b.Name, err)
	}
	return s, nil
}

// ordered snapshots the backends in selection order.
func (r *Registry) ordered() []Backend {
	r.mu.RLock()
	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return list
}

// defaultRegistry backs the package-level functions. Backend packages add
// themselves to it from init, so a blank import makes them selectable.
var defaultRegistry Registry

// Register adds b to the default registry.
func Register(b Backend) error { return defaultRegistry.Register(b) }

// MustRegister is Register for init functions; it panics on an invalid
// backend.
func MustRegister(b Backend) {
	if err := Register(b); err != nil {
		panic(err)
	}
}

// Unregister removes a backend from the default registry.
func Unregister(name string) bool { return defaultRegistry.Unregister(name) }

// Lookup returns a backend from the default registry.
func Lookup(name string) (Backend, bool) { return defaultRegistry.Lookup(name) }

// Backends lists the default registry in selection order.
func Backends() []BackendInfo { return defaultRegistry.Backends() }

// Available lists available backend names of the default registry.
func Available() []string { return defaultRegistry.Available() }

// Open opens the best available backend of the default registry.
func Open(opts Options) (Surface, string, error) { return defaultRegistry.Open(opts) }

// OpenNamed opens a named backend of the default registry.
func OpenNamed(name string, opts Options) (Surface, error) {
	return defaultRegistry.OpenNamed(name, opts)
}

var (
	// ErrNoBackendAvailable is returned by Open when no backend could
	// provide a surface.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrInvalidBackend is returned by Register for an unnamed backend or
	// one without a factory.
	ErrInvalidBackend = errors.New("surface: invalid backend")
)

// BackendNotFoundError reports an unregistered backend name.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError reports a registered backend whose probe failed.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	MustRegister(Backend{
		Name:     ImageBackend,
		Priority: 10,
		Open: func(opts Options) (Surface, error) {
			return NewImageSurface(opts.Width, opts.Height), nil
		},
	})
}
