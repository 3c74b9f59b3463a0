// Copyright 2026 The qdgfx Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"sort"
	"sync"

	"github.com/qdgfx/qd"
)

// RegistryEntry represents a registered driver backend.
type RegistryEntry struct {
	// Name is the unique identifier for this driver.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: GPU drivers
	//   - 10: pure software drivers
	Priority int

	// Factory creates driver instances.
	Factory DriverFactory

	// Available reports if the driver is usable on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered drivers.
//
// The registry enables out-of-tree drivers to register themselves
// without requiring changes to the core library.
//
// Example registration:
//
//	func init() {
//	    backend.Register("gpu", 100, gpuFactory, gpuAvailable)
//	}
//
// Example usage:
//
//	d, err := backend.NewByName("gpu", 800, 600)
//	// or auto-select the best available:
//	d, err := backend.New(800, 600)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a driver to the global registry.
//
// If available is nil, the driver is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory DriverFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a driver from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered driver names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available drivers sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific driver.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// New creates a driver using the best available backend.
// Returns an error if no drivers are available.
func New(width, height int) (qd.Driver, error) {
	return globalRegistry.New(width, height)
}

// NewByName creates a driver using a specific named backend.
func NewByName(name string, width, height int) (qd.Driver, error) {
	return globalRegistry.NewByName(name, width, height)
}

// Register adds a driver to this registry.
func (r *Registry) Register(name string, priority int, factory DriverFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a driver from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered driver names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available drivers sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific driver.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// New creates a driver using the best available backend.
func (r *Registry) New(width, height int) (qd.Driver, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoDriverAvailable
	}

	// Try each available driver in priority order
	var lastErr error
	for _, name := range available {
		d, err := r.NewByName(name, width, height)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoDriverAvailable
}

// NewByName creates a driver using a specific backend.
func (r *Registry) NewByName(name string, width, height int) (qd.Driver, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &DriverNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &DriverUnavailableError{Name: name}
	}

	return entry.Factory(width, height)
}

// sortedNames returns driver names sorted by priority (highest first).
// If onlyAvailable is true, filters to available drivers only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoDriverAvailable is returned when no drivers are registered
	// or available on the current system.
	ErrNoDriverAvailable = errors.New("backend: no driver available")
)

// DriverNotFoundError indicates a named driver is not registered.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "backend: driver not found: " + e.Name
}

// DriverUnavailableError indicates a driver exists but is not available.
type DriverUnavailableError struct {
	Name string
}

func (e *DriverUnavailableError) Error() string {
	return "backend: driver unavailable: " + e.Name
}
