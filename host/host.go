/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package host

import (
	"context"
	"time"

	"github.com/suparena/geostore/storagemodels"
)

// Post types used by the content host for geo entities.
const (
	PostTypeGeo = "geo"
	PostTypeMap = "map"
)

// Taxonomies classifying geo entities by type.
const (
	TaxonomyGeoType = "geo_type"
	TaxonomyMapType = "map_type"
)

// Post is a content record of the host.
type Post struct {
	ID       int64
	PostType string
	// Type is a type key already stored on the record, if any.
	Type     string
	Title    string
	Status   string
	Date     time.Time
	Modified time.Time
}

// Term is a classification term attached to a post.
type Term struct {
	ID       int64
	Name     string
	Slug     string
	Taxonomy string
}

// ContentProvider fetches content records. A missing record is (nil, nil).
type ContentProvider interface {
	Post(ctx context.Context, id int64) (*Post, error)
}

// Classifier returns the terms of a taxonomy attached to a post.
type Classifier interface {
	Terms(ctx context.Context, id int64, taxonomy string) ([]Term, error)
}

// MetaStore is the per-id key/value metadata store.
type MetaStore interface {
	Meta(ctx context.Context, id int64, key string) (string, bool, error)
	SetMeta(ctx context.Context, id int64, key, value string) error
}

// RelationshipStore lists the objects related to a geometry.
type RelationshipStore interface {
	Relationships(ctx context.Context, geoID int64) ([]storagemodels.Relationship, error)
}

// Options exposes the configured defaults entities fall back to.
type Options interface {
	// DefaultStore is the store type configured for a geometry type.
	DefaultStore(geometryType string) string
	// MapAPIKey is the provider API key configured for a map type.
	MapAPIKey(mapType string) string
}

type currentKey struct{}

// WithCurrentPost returns a context carrying post as the ambient current item.
func WithCurrentPost(ctx context.Context, post *Post) context.Context {
	return context.WithValue(ctx, currentKey{}, post)
}

// CurrentPost returns the ambient current item, if any.
func CurrentPost(ctx context.Context) (*Post, bool) {
	p, ok := ctx.Value(currentKey{}).(*Post)
	return p, ok && p != nil
}
