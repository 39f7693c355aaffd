/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory creates a judge for a registered name. It receives the model name
// the caller asked for, which may be empty.
type Factory func(model string) (Interface, error)

// Registry manages named judge factories so callers can install custom
// judges (stubs, proxies, alternative providers) alongside the built-in
// model-prefix dispatch.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty judge registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register installs a factory under a name. Names are case-insensitive.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("judge %q already registered", name)
	}
	r.factories[key] = factory
	return nil
}

// Get retrieves a registered factory by name.
func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[strings.ToLower(name)]
	if !exists {
		return nil, fmt.Errorf("no judge registered as %q", name)
	}
	return factory, nil
}

// Remove deletes a registered factory. It reports whether the name existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	_, exists := r.factories[key]
	delete(r.factories, key)
	return exists
}

// Lookup resolves a model name against the registered names, treating each
// registered name as a case-insensitive prefix of the model. The longest
// match wins, so a registry holding "acme" and "acme-pro" routes
// "acme-pro-2" to the latter.
func (r *Registry) Lookup(model string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := strings.ToLower(model)
	var best string
	var factory Factory
	for name, f := range r.factories {
		if strings.HasPrefix(key, name) && len(name) > len(best) {
			best = name
			factory = f
		}
	}
	return factory, factory != nil
}

// Names returns the registered judge names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is consulted by New before the built-in model-prefix
// dispatch, so a registered judge takes over any model name it prefixes.
var DefaultRegistry = NewRegistry()

// Register installs a factory in the default registry.
func Register(name string, factory Factory) error {
	return DefaultRegistry.Register(name, factory)
}
