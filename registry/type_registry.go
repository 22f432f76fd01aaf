/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"sync"

	"github.com/suparena/geostore/errors"
)

// Domain names one independent lookup table.
type Domain string

const (
	DomainGeometry Domain = "geometry"
	DomainMap      Domain = "map"
	DomainStore    Domain = "store"
	DomainField    Domain = "field"
)

// Prefix is the namespace used when building implementation identifiers.
func (d Domain) Prefix() string {
	switch d {
	case DomainGeometry:
		return "Geometries"
	case DomainMap:
		return "Maps"
	case DomainStore:
		return "Stores"
	case DomainField:
		return "Fields"
	}
	return ClassName(string(d))
}

// Entry is one registered implementation.
type Entry[T any] struct {
	// Key is the short type string, e.g. "coordinates".
	Key string
	// Label is the human readable name, e.g. "Coordinates".
	Label string
	// Name is the implementation identifier derived from Key, e.g. "Geometries.Coordinates".
	Name  string
	Value T
}

// Registry maps type keys of one domain to implementations of T.
// It is populated during bootstrap; later calls only read it.
type Registry[T any] struct {
	mu      sync.RWMutex
	domain  Domain
	entries map[string]Entry[T]
	names   map[string]string
}

// New creates an empty registry for the given domain.
func New[T any](domain Domain) *Registry[T] {
	return &Registry[T]{
		domain:  domain,
		entries: make(map[string]Entry[T]),
		names:   make(map[string]string),
	}
}

// Domain returns the domain this registry serves.
func (r *Registry[T]) Domain() Domain {
	return r.domain
}

// Register inserts or overwrites the implementation for key. The last
// registration for a key wins. A key whose identifier already belongs to
// another key is rejected with ErrAlreadyExists.
func (r *Registry[T]) Register(key, label string, value T) error {
	if key == "" {
		return errors.NewValidationError("key", "registry key must not be empty")
	}
	name := Identifier(r.domain.Prefix(), key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.names[name]; ok && owner != key {
		return errors.NewAlreadyExistsError(string(r.domain), name)
	}
	r.entries[key] = Entry[T]{Key: key, Label: label, Name: name, Value: value}
	r.names[name] = key
	return nil
}

// Resolve returns the implementation registered under key. The match is exact
// and case-sensitive.
func (r *Registry[T]) Resolve(key string) (T, bool) {
	e, ok := r.Entry(key)
	return e.Value, ok
}

// Entry returns the full entry registered under key.
func (r *Registry[T]) Entry(key string) (Entry[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	return e, ok
}

// Lookup resolves an implementation by identifier instead of key.
func (r *Registry[T]) Lookup(name string) (Entry[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.names[name]
	if !ok {
		return Entry[T]{}, false
	}
	e, ok := r.entries[key]
	return e, ok
}

// Remove deletes the entry for key and reports whether one existed.
func (r *Registry[T]) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return false
	}
	delete(r.entries, key)
	if r.names[e.Name] == key {
		delete(r.names, e.Name)
	}
	return true
}

// Keys returns the registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Labels returns key → label for every entry.
func (r *Registry[T]) Labels() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make(map[string]string, len(r.entries))
	for k, e := range r.entries {
		labels[k] = e.Label
	}
	return labels
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
