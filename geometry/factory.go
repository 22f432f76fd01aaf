/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geometry

import (
	"context"

	"github.com/suparena/geostore/datastore"
	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/hooks"
	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/registry"
)

// Factory resolves content references to geometries.
type Factory struct {
	env      *Env
	types    *registry.Registry[Constructor]
	resolver host.Resolver
}

// NewFactory returns a factory with an empty geometry registry.
func NewFactory(env *Env) *Factory {
	if env == nil {
		env = &Env{}
	}
	return &Factory{
		env:      env,
		types:    registry.New[Constructor](registry.DomainGeometry),
		resolver: host.Resolver{Content: env.Content, Classifier: env.Classifier},
	}
}

// Register adds a geometry type. The last registration for a type wins.
func (f *Factory) Register(geometryType, label string, ctor Constructor) error {
	if ctor == nil {
		return errors.NewValidationError("constructor", "geometry constructor must not be nil")
	}
	return f.types.Register(geometryType, label, ctor)
}

// Registry exposes the underlying geometry registry.
func (f *Factory) Registry() *registry.Registry[Constructor] {
	return f.types
}

// Types returns geometry type → label.
func (f *Factory) Types() map[string]string {
	return f.types.Labels()
}

// Env returns the collaborators geometries are built with.
func (f *Factory) Env() *Env {
	return f.env
}

type options struct {
	typ       string
	store     datastore.Store
	storeType string
}

// Option customises a single Geometry call.
type Option func(*options)

// WithType forces the geometry type instead of deriving it from the record.
func WithType(t string) Option {
	return func(o *options) { o.typ = t }
}

// WithStore makes the geometry use s.
func WithStore(s datastore.Store) Option {
	return func(o *options) { o.store = s }
}

// WithStoreType makes the geometry use a new store of the given type.
func WithStoreType(t string) Option {
	return func(o *options) { o.storeType = t }
}

// Geometry builds the geometry ref points to. A reference without a content
// record returns ErrNotFound; a type without registered implementation
// returns ErrUnresolved.
func (f *Factory) Geometry(ctx context.Context, ref host.Ref, opts ...Option) (Geometry, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	post, err := f.resolver.ResolvePost(ctx, ref)
	if err != nil {
		return nil, err
	}
	typ, err := f.resolver.ResolveType(ctx, post, o.typ, host.TaxonomyGeoType)
	if err != nil {
		return nil, err
	}

	name := registry.Identifier(registry.DomainGeometry.Prefix(), typ)
	if f.env.Hooks != nil {
		name = f.env.Hooks.GeometryClass.Apply(name, hooks.ClassArgs{Type: typ, ContentType: post.PostType, ID: post.ID})
	}
	entry, ok := f.types.Lookup(name)
	if !ok {
		f.env.logger().Debugw("Geometry type not resolved", "id", post.ID, "geo_type", typ, "identifier", name)
		return nil, errors.NewUnresolvedError(string(registry.DomainGeometry), typ)
	}

	store := o.store
	if store == nil && o.storeType != "" && f.env.Stores != nil {
		if store, err = f.env.Stores.Get(o.storeType); err != nil {
			return nil, err
		}
	}
	return entry.Value(ctx, f.env, post, Args{Type: entry.Key, Store: store})
}
