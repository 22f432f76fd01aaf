/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Store for testing
package mock

import (
	"context"
	"maps"
	"slices"
	"sort"
	"strconv"
	"sync"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/storagemodels"
)

// Call records one invocation of the mock.
type Call struct {
	Op           string
	GeometryType string
	IDs          []int64
}

// Store is a recording in-memory datastore.Store. Records keep every payload
// field plus "id".
type Store struct {
	mu        sync.RWMutex
	storeType string
	supports  []string
	data      map[string]map[int64]storagemodels.Record
	calls     []Call
	saveErr   error
	getErr    error
	updateErr error
	deleteErr error
}

// New creates a mock store of type storeType. Without explicit supports it
// handles "coordinates".
func New(storeType string, supports ...string) *Store {
	if len(supports) == 0 {
		supports = []string{"coordinates"}
	}
	return &Store{
		storeType: storeType,
		supports:  supports,
		data:      make(map[string]map[int64]storagemodels.Record),
	}
}

// WithSaveError makes Save operations return an error
func (m *Store) WithSaveError(err error) *Store {
	m.saveErr = err
	return m
}

// WithGetError makes Get operations return an error
func (m *Store) WithGetError(err error) *Store {
	m.getErr = err
	return m
}

// WithUpdateError makes Update operations return an error
func (m *Store) WithUpdateError(err error) *Store {
	m.updateErr = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *Store) WithDeleteError(err error) *Store {
	m.deleteErr = err
	return m
}

func (m *Store) Type() string       { return m.storeType }
func (m *Store) Label() string      { return "Memory (" + m.storeType + ")" }
func (m *Store) Version() string    { return "mock" }
func (m *Store) Supports() []string { return slices.Clone(m.supports) }

// Save inserts the payload under its geo_id.
func (m *Store) Save(ctx context.Context, geometryType string, data storagemodels.Payload) (bool, error) {
	id, _ := data.Int(storagemodels.KeyGeoID)
	m.record("save", geometryType, id)
	if m.saveErr != nil {
		return false, m.saveErr
	}
	if !m.supported(geometryType) || id <= 0 {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[geometryType][id]; exists {
		return false, errors.NewAlreadyExistsError(geometryType, strconv.FormatInt(id, 10))
	}
	m.put(geometryType, id, data)
	return true, nil
}

// Get returns the records for ids; storagemodels.AllIDs returns all of them
// ordered by id.
func (m *Store) Get(ctx context.Context, geometryType string, ids ...int64) ([]storagemodels.Record, error) {
	m.record("get", geometryType, ids...)
	if m.getErr != nil {
		return nil, m.getErr
	}
	if !m.supported(geometryType) {
		return nil, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	rows := m.data[geometryType]
	if slices.Contains(ids, storagemodels.AllIDs) {
		ids = slices.Collect(maps.Keys(rows))
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	var out []storagemodels.Record
	for _, id := range ids {
		if r, ok := rows[id]; ok {
			out = append(out, maps.Clone(r))
		}
	}
	return out, nil
}

// Update replaces the record of id.
func (m *Store) Update(ctx context.Context, geometryType string, id int64, data storagemodels.Payload) (bool, error) {
	m.record("update", geometryType, id)
	if m.updateErr != nil {
		return false, m.updateErr
	}
	if !m.supported(geometryType) || id <= 0 {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(geometryType, id, data)
	return true, nil
}

// Delete removes the records for ids.
func (m *Store) Delete(ctx context.Context, geometryType string, ids ...int64) (bool, error) {
	m.record("delete", geometryType, ids...)
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	if !m.supported(geometryType) {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := false
	for _, id := range ids {
		if id == storagemodels.AllIDs {
			removed = removed || len(m.data[geometryType]) > 0
			delete(m.data, geometryType)
			continue
		}
		if _, ok := m.data[geometryType][id]; ok {
			delete(m.data[geometryType], id)
			removed = true
		}
	}
	return removed, nil
}

// Helper methods for testing

// Calls returns a copy of every recorded invocation.
func (m *Store) Calls() []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.calls)
}

// Count returns the number of stored records of a geometry type.
func (m *Store) Count(geometryType string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data[geometryType])
}

// Clear removes all data and recorded calls.
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]map[int64]storagemodels.Record)
	m.calls = nil
}

func (m *Store) supported(geometryType string) bool {
	return slices.Contains(m.supports, geometryType)
}

func (m *Store) record(op, geometryType string, ids ...int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Op: op, GeometryType: geometryType, IDs: slices.Clone(ids)})
}

// put must be called with m.mu held.
func (m *Store) put(geometryType string, id int64, data storagemodels.Payload) {
	if m.data[geometryType] == nil {
		m.data[geometryType] = make(map[int64]storagemodels.Record)
	}
	r := storagemodels.Record(maps.Clone(data))
	delete(r, storagemodels.KeyGeoID)
	r[storagemodels.KeyID] = id
	m.data[geometryType][id] = r
}
