/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memhost provides an in-memory content host for tests and for
// embedding GeoStore without an external content system.
package memhost

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/registry"
	"github.com/suparena/geostore/storagemodels"
)

// DefaultTerms are the taxonomy terms every new host starts with.
var DefaultTerms = map[string][]string{
	host.TaxonomyGeoType: {"coordinates"},
	host.TaxonomyMapType: {"google"},
}

// Host implements every host contract plus the descriptor store in memory.
type Host struct {
	mu            sync.RWMutex
	posts         map[int64]host.Post
	terms         map[string]map[string]host.Term // taxonomy -> slug -> term
	assigned      map[int64]map[string][]string   // post -> taxonomy -> slugs
	meta          map[int64]map[string]string
	relationships []storagemodels.Relationship
	descriptors   map[int64]storagemodels.Descriptor
	defaultStores map[string]string
	mapKeys       map[string]string
	nextTermID    int64
	metaErr       error
}

// New creates a host seeded with DefaultTerms.
func New() *Host {
	h := &Host{
		posts:         make(map[int64]host.Post),
		terms:         make(map[string]map[string]host.Term),
		assigned:      make(map[int64]map[string][]string),
		meta:          make(map[int64]map[string]string),
		descriptors:   make(map[int64]storagemodels.Descriptor),
		defaultStores: make(map[string]string),
		mapKeys:       make(map[string]string),
	}
	for taxonomy, names := range DefaultTerms {
		for _, name := range names {
			h.ensureTerm(taxonomy, name)
		}
	}
	return h
}

// WithDefaultStore configures the store type used by a geometry type.
func (h *Host) WithDefaultStore(geometryType, storeType string) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defaultStores[geometryType] = storeType
	return h
}

// WithMapAPIKey configures the API key of a map provider.
func (h *Host) WithMapAPIKey(mapType, key string) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mapKeys[mapType] = key
	return h
}

// WithMetaError makes metadata reads fail with err.
func (h *Host) WithMetaError(err error) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.metaErr = err
	return h
}

// AddPost stores or replaces a content record.
func (h *Host) AddPost(p host.Post) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.posts[p.ID] = p
	return h
}

// AssignTerm attaches a term to a post, creating the term when the taxonomy
// does not know it yet.
func (h *Host) AssignTerm(postID int64, taxonomy, name string) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	t := h.ensureTerm(taxonomy, name)
	if h.assigned[postID] == nil {
		h.assigned[postID] = make(map[string][]string)
	}
	h.assigned[postID][taxonomy] = append(h.assigned[postID][taxonomy], t.Slug)
	return h
}

// Relate records a relationship between a geometry and an object.
func (h *Host) Relate(geoID, objectID int64, objectType string) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.relationships = append(h.relationships, storagemodels.Relationship{
		GeoID:      geoID,
		ObjectID:   objectID,
		ObjectType: objectType,
	})
	return h
}

// TaxonomyTerms lists the terms a taxonomy knows, sorted by slug.
func (h *Host) TaxonomyTerms(taxonomy string) []host.Term {
	h.mu.RLock()
	defer h.mu.RUnlock()
	terms := make([]host.Term, 0, len(h.terms[taxonomy]))
	for _, t := range h.terms[taxonomy] {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Slug < terms[j].Slug })
	return terms
}

// Post implements host.ContentProvider.
func (h *Host) Post(ctx context.Context, id int64) (*host.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Terms implements host.Classifier, returning terms in assignment order.
func (h *Host) Terms(ctx context.Context, id int64, taxonomy string) ([]host.Term, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	slugs := h.assigned[id][taxonomy]
	terms := make([]host.Term, 0, len(slugs))
	for _, s := range slugs {
		terms = append(terms, h.terms[taxonomy][s])
	}
	return terms, nil
}

// Meta implements host.MetaStore.
func (h *Host) Meta(ctx context.Context, id int64, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.metaErr != nil {
		return "", false, h.metaErr
	}
	v, ok := h.meta[id][key]
	return v, ok, nil
}

// SetMeta implements host.MetaStore.
func (h *Host) SetMeta(ctx context.Context, id int64, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.meta[id] == nil {
		h.meta[id] = make(map[string]string)
	}
	h.meta[id][key] = value
	return nil
}

// Relationships implements host.RelationshipStore.
func (h *Host) Relationships(ctx context.Context, geoID int64) ([]storagemodels.Relationship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []storagemodels.Relationship
	for _, r := range h.relationships {
		if r.GeoID == geoID {
			out = append(out, r)
		}
	}
	return out, nil
}

// DefaultStore implements host.Options.
func (h *Host) DefaultStore(geometryType string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.defaultStores[geometryType]
}

// MapAPIKey implements host.Options.
func (h *Host) MapAPIKey(mapType string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.mapKeys[mapType]
}

// Descriptor implements datastore.DescriptorStore.
func (h *Host) Descriptor(ctx context.Context, geoID int64) (*storagemodels.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	d, ok := h.descriptors[geoID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// PutDescriptor implements datastore.DescriptorStore. An existing descriptor
// for the same geometry is left untouched.
func (h *Host) PutDescriptor(ctx context.Context, d storagemodels.Descriptor) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.descriptors[d.GeoID]; ok {
		return false, nil
	}
	h.descriptors[d.GeoID] = d
	return true, nil
}

// UpdateDescriptor implements datastore.DescriptorStore.
func (h *Host) UpdateDescriptor(ctx context.Context, d storagemodels.Descriptor) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.descriptors[d.GeoID] = d
	return true, nil
}

// DeleteDescriptor implements datastore.DescriptorStore.
func (h *Host) DeleteDescriptor(ctx context.Context, geoID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.descriptors[geoID]; !ok {
		return false, nil
	}
	delete(h.descriptors, geoID)
	return true, nil
}

// ensureTerm must be called with h.mu held.
func (h *Host) ensureTerm(taxonomy, name string) host.Term {
	slug := registry.Slug(name)
	if h.terms[taxonomy] == nil {
		h.terms[taxonomy] = make(map[string]host.Term)
	}
	if t, ok := h.terms[taxonomy][slug]; ok {
		return t
	}
	h.nextTermID++
	t := host.Term{ID: h.nextTermID, Name: name, Slug: slug, Taxonomy: taxonomy}
	h.terms[taxonomy][slug] = t
	return t
}

func (h *Host) String() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return fmt.Sprintf("memhost(%d posts)", len(h.posts))
}
