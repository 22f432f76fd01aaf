/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package hooks provides extension points evaluated synchronously in
// registration order. Each hook receives the value produced by the previous
// one, so the last mutation wins.
package hooks

import "sync"

// Filter is an ordered chain of functions transforming a value of type V,
// given call arguments A. The zero value is an empty chain.
type Filter[V, A any] struct {
	mu  sync.RWMutex
	fns []func(V, A) V
}

// Add appends fn to the chain.
func (f *Filter[V, A]) Add(fn func(V, A) V) {
	if fn == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fns = append(f.fns, fn)
}

// Apply runs the chain over v. A nil filter returns v unchanged.
func (f *Filter[V, A]) Apply(v V, args A) V {
	if f == nil {
		return v
	}
	f.mu.RLock()
	fns := f.fns
	f.mu.RUnlock()

	for _, fn := range fns {
		v = fn(v, args)
	}
	return v
}

// Len returns the number of registered functions.
func (f *Filter[V, A]) Len() int {
	if f == nil {
		return 0
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.fns)
}

// ClassArgs describe the entity whose implementation identifier is being resolved.
type ClassArgs struct {
	// Type is the resolved type key; empty when none could be determined.
	Type string
	// ContentType is the post type of the linked content record.
	ContentType string
	ID          int64
}

// TitleArgs describe the entity whose title is being rendered.
type TitleArgs struct {
	ID   int64
	Type string
}

// Hooks groups the extension points consulted by the factories and entities.
type Hooks struct {
	// GeometryClass may replace the identifier a geometry factory resolves.
	GeometryClass Filter[string, ClassArgs]
	// MapClass may replace the identifier a map factory resolves.
	MapClass Filter[string, ClassArgs]
	// Title filters entity titles taken from the linked content record.
	Title Filter[string, TitleArgs]
}

// New returns an empty set of hooks.
func New() *Hooks {
	return &Hooks{}
}
