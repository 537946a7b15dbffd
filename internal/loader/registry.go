// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"slices"
	"sync"

	"github.com/MKhiriev/get-webpack-config/models"
)

// Registry maps config names to the Go functions producing them.
// A registered name takes precedence over a template file of the same name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]models.ConfigFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]models.ConfigFunc)}
}

// Register makes fn the producer for name, replacing any earlier one.
// It panics if name is empty or fn is nil.
func (r *Registry) Register(name string, fn models.ConfigFunc) {
	if name == "" {
		panic("loader: Register called with an empty name")
	}
	if fn == nil {
		panic("loader: Register called with a nil ConfigFunc for " + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// Unregister removes name. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// Lookup returns the producer registered for name.
func (r *Registry) Lookup(name string) (models.ConfigFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.factories[name]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
