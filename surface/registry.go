// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new Surface with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Surface, error)

// registryEntry represents a registered surface backend.
type registryEntry struct {
	name     string
	priority int
	factory  Factory
	// available reports if the backend is usable on this system.
	available func() bool
}

// Standard priorities. GPU backends register high so auto-selection
// prefers them when available.
const (
	// PriorityGPU is the standard priority for GPU backends.
	PriorityGPU = 100

	// PrioritySoftware is the standard priority for software backends.
	PrioritySoftware = 10
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*registryEntry)
)

// Register adds a surface backend to the registry.
//
// name is the unique backend identifier (e.g. "wgpu", "image");
// priority determines auto-selection order (higher wins); factory
// creates instances; available reports whether the backend can be used
// on this system (nil means always available). Registering a name that
// already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}
	registry[name] = &registryEntry{
		name:      name,
		priority:  priority,
		factory:   factory,
		available: available,
	}
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// Available returns the names of all available backends sorted by
// priority, highest first.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name, e := range registry {
		if e.available() {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return registry[names[i]].priority > registry[names[j]].priority
	})
	return names
}

// New creates a surface using the best available backend.
// Backends are tried in priority order; the first successful factory
// wins. Returns ErrNoBackendAvailable if nothing is registered or
// every factory fails.
func New(opts Options) (Surface, error) {
	var lastErr error
	for _, name := range Available() {
		s, err := NewByName(name, opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewByName creates a surface using a specific named backend.
func NewByName(name string, opts Options) (Surface, error) {
	registryMu.RLock()
	entry, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.factory(opts)
}

// ErrNoBackendAvailable is returned when no surface backends are
// registered or available on the current system.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in ImageSurface backend.
func init() {
	Register(BackendImage, PrioritySoftware, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
}
