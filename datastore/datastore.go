/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"slices"

	"github.com/suparena/geostore/storagemodels"
)

// Store is the CRUD contract every geometry storage backend implements.
//
// A store invoked for a geometry type outside Supports returns a falsy result
// and a nil error without touching its backend. Errors are reserved for
// backend failures.
type Store interface {
	// Type is the registry key of the store, e.g. "local".
	Type() string
	// Label is the human readable store name.
	Label() string
	// Version is the backend adapter version.
	Version() string
	// Supports lists the geometry types the store can persist.
	Supports() []string

	// Save inserts a new record. The payload carries the geometry id.
	Save(ctx context.Context, geometryType string, data storagemodels.Payload) (bool, error)
	// Get returns the records matching ids; storagemodels.AllIDs selects all.
	Get(ctx context.Context, geometryType string, ids ...int64) ([]storagemodels.Record, error)
	// Update replaces the record of id.
	Update(ctx context.Context, geometryType string, id int64, data storagemodels.Payload) (bool, error)
	// Delete removes the records matching ids and reports whether any existed.
	Delete(ctx context.Context, geometryType string, ids ...int64) (bool, error)
}

// DescriptorStore persists the descriptor row kept for every geometry.
type DescriptorStore interface {
	// Descriptor returns the descriptor of a geometry, or nil when none exists.
	Descriptor(ctx context.Context, geoID int64) (*storagemodels.Descriptor, error)
	// PutDescriptor inserts a descriptor; an existing one is kept.
	PutDescriptor(ctx context.Context, d storagemodels.Descriptor) (bool, error)
	// UpdateDescriptor inserts or replaces a descriptor.
	UpdateDescriptor(ctx context.Context, d storagemodels.Descriptor) (bool, error)
	// DeleteDescriptor removes a descriptor.
	DeleteDescriptor(ctx context.Context, geoID int64) (bool, error)
}

// StoreTyper is implemented by anything that knows which store type holds it,
// typically a geometry.
type StoreTyper interface {
	StoreType() string
}

// Supports reports whether s can persist geometryType.
func Supports(s Store, geometryType string) bool {
	if s == nil || geometryType == "" {
		return false
	}
	return slices.Contains(s.Supports(), geometryType)
}

// SupportedGeometries returns type → label for the geometry types s supports
// among the registered ones. Types the store lists but nobody registered are
// left out.
func SupportedGeometries(s Store, registered map[string]string) map[string]string {
	if s == nil {
		return nil
	}
	out := make(map[string]string)
	for _, t := range s.Supports() {
		if label, ok := registered[t]; ok {
			out[t] = label
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
