package window

import (
	"errors"
	"sort"
	"sync"
)

// ProviderFactory creates a window from options.
type ProviderFactory func(opts Options) (Window, error)

// providerEntry represents a registered window provider.
type providerEntry struct {
	name      string
	priority  int
	factory   ProviderFactory
	available func() bool
}

// globalRegistry holds the registered providers.
var globalRegistry = &registry{}

type registry struct {
	mu      sync.RWMutex
	entries map[string]*providerEntry
}

// Register adds a window provider. Higher priority is preferred;
// nil available means always available. Registering an existing name
// replaces the previous entry.
func Register(name string, priority int, factory ProviderFactory, available func() bool) {
	globalRegistry.register(name, priority, factory, available)
}

// Unregister removes a provider.
func Unregister(name string) {
	globalRegistry.unregister(name)
}

// Providers returns the names of available providers sorted by
// priority (highest first).
func Providers() []string {
	return globalRegistry.availableNames()
}

func (r *registry) register(name string, priority int, factory ProviderFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*providerEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &providerEntry{
		name:      name,
		priority:  priority,
		factory:   factory,
		available: available,
	}
}

func (r *registry) unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

func (r *registry) availableNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name, e := range r.entries {
		if e.available() {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return r.entries[names[i]].priority > r.entries[names[j]].priority
	})
	return names
}

// Open creates a window using the highest-priority available
// provider, falling back down the list when a factory fails.
func (r *registry) Open(opts Options) (Window, error) {
	names := r.availableNames()
	if len(names) == 0 {
		return nil, ErrNoProviderAvailable
	}

	var lastErr error
	for _, name := range names {
		w, err := r.OpenByName(name, opts)
		if err == nil {
			return w, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// OpenByName creates a window using a specific provider.
func (r *registry) OpenByName(name string, opts Options) (Window, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &ProviderNotFoundError{Name: name}
	}
	if !entry.available() {
		return nil, &ProviderUnavailableError{Name: name}
	}
	return entry.factory(opts)
}

// Errors.
var (
	// ErrNoProviderAvailable is returned when no window providers are
	// registered or available.
	ErrNoProviderAvailable = errors.New("window: no provider available")

	// ErrCreateFailed is returned when the underlying windowing system
	// rejects window creation.
	ErrCreateFailed = errors.New("window: create failed")
)

// ProviderNotFoundError indicates a named provider is not registered.
type ProviderNotFoundError struct {
	Name string
}

func (e *ProviderNotFoundError) Error() string {
	return "window: provider not found: " + e.Name
}

// ProviderUnavailableError indicates a provider exists but cannot run
// on this system.
type ProviderUnavailableError struct {
	Name string
}

func (e *ProviderUnavailableError) Error() string {
	return "window: provider unavailable: " + e.Name
}
