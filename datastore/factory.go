/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"go.uber.org/zap"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/logger"
	"github.com/suparena/geostore/registry"
)

// Constructor builds a fresh Store instance.
type Constructor func() (Store, error)

// Factory resolves store types to Store instances through the store registry.
type Factory struct {
	types  *registry.Registry[Constructor]
	logger *zap.SugaredLogger
}

// NewFactory creates a factory with an empty store registry.
func NewFactory(l *zap.SugaredLogger) *Factory {
	return &Factory{
		types:  registry.New[Constructor](registry.DomainStore),
		logger: logger.Or(l),
	}
}

// Register adds a store type. The last registration for a type wins.
func (f *Factory) Register(storeType, label string, ctor Constructor) error {
	if ctor == nil {
		return errors.NewValidationError("constructor", "store constructor must not be nil")
	}
	return f.types.Register(storeType, label, ctor)
}

// Registry exposes the underlying store registry.
func (f *Factory) Registry() *registry.Registry[Constructor] {
	return f.types
}

// Types returns store type → label.
func (f *Factory) Types() map[string]string {
	return f.types.Labels()
}

// Get instantiates the store registered under storeType.
func (f *Factory) Get(storeType string) (Store, error) {
	if storeType == "" {
		return nil, errors.NewUnresolvedError(string(registry.DomainStore), "")
	}
	entry, ok := f.types.Lookup(registry.Identifier(registry.DomainStore.Prefix(), storeType))
	if !ok {
		f.logger.Debugw("Store type not registered", "store_type", storeType)
		return nil, errors.NewUnresolvedError(string(registry.DomainStore), storeType)
	}
	s, err := entry.Value()
	if err != nil {
		return nil, errors.Wrapf(err, "construct store %q", storeType)
	}
	if s == nil {
		return nil, errors.NewUnresolvedError(string(registry.DomainStore), storeType)
	}
	return s, nil
}

// FromStore instantiates a new store of the same type as s.
func (f *Factory) FromStore(s Store) (Store, error) {
	if s == nil {
		return nil, errors.NewUnresolvedError(string(registry.DomainStore), "")
	}
	return f.Get(s.Type())
}

// FromGeometry instantiates the store a geometry reports it is held in.
func (f *Factory) FromGeometry(g StoreTyper) (Store, error) {
	if g == nil {
		return nil, errors.NewUnresolvedError(string(registry.DomainStore), "")
	}
	return f.Get(g.StoreType())
}
