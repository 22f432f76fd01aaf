/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geomap

import (
	"context"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/hooks"
	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/registry"
)

// Factory resolves content references to maps.
type Factory struct {
	env      *Env
	types    *registry.Registry[Constructor]
	resolver host.Resolver
}

// NewFactory returns a factory with an empty map registry.
func NewFactory(env *Env) *Factory {
	if env == nil {
		env = &Env{}
	}
	return &Factory{
		env:      env,
		types:    registry.New[Constructor](registry.DomainMap),
		resolver: host.Resolver{Content: env.Content, Classifier: env.Classifier},
	}
}

// Register adds a map type.
func (f *Factory) Register(mapType, label string, ctor Constructor) error {
	if ctor == nil {
		return errors.NewValidationError("constructor", "map constructor must not be nil")
	}
	return f.types.Register(mapType, label, ctor)
}

// Registry exposes the underlying map registry.
func (f *Factory) Registry() *registry.Registry[Constructor] {
	return f.types
}

// Types returns map type → label.
func (f *Factory) Types() map[string]string {
	return f.types.Labels()
}

// Map builds the map ref points to, typed explicitly by mapType when not
// empty, otherwise from the record or its map_type term.
func (f *Factory) Map(ctx context.Context, ref host.Ref, mapType string) (Map, error) {
	post, err := f.resolver.ResolvePost(ctx, ref)
	if err != nil {
		return nil, err
	}
	typ, err := f.resolver.ResolveType(ctx, post, mapType, host.TaxonomyMapType)
	if err != nil {
		return nil, err
	}

	name := registry.Identifier(registry.DomainMap.Prefix(), typ)
	if f.env.Hooks != nil {
		name = f.env.Hooks.MapClass.Apply(name, hooks.ClassArgs{Type: typ, ContentType: post.PostType, ID: post.ID})
	}
	entry, ok := f.types.Lookup(name)
	if !ok {
		f.env.logger().Debugw("Map type not resolved", "id", post.ID, "map_type", typ, "identifier", name)
		return nil, errors.NewUnresolvedError(string(registry.DomainMap), typ)
	}
	return entry.Value(ctx, f.env, post, Args{Type: entry.Key})
}
