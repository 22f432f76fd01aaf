/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geostore

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/geostore/datastore"
	"github.com/suparena/geostore/datastore/ddb"
	"github.com/suparena/geostore/datastore/sqlstore"
	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/field"
	"github.com/suparena/geostore/geomap"
	"github.com/suparena/geostore/geometry"
	"github.com/suparena/geostore/hooks"
	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/logger"
	"github.com/suparena/geostore/settings"
)

// Host is the minimal content host a Bench needs. Hosts that also
// implement host.RelationshipStore, host.Options or
// datastore.DescriptorStore are used for those too, unless an option
// supplies another implementation.
type Host interface {
	host.ContentProvider
	host.Classifier
	host.MetaStore
}

// Bench owns the registries, factories and hooks of one GeoStore instance.
type Bench struct {
	Geometries *geometry.Factory
	Maps       *geomap.Factory
	Stores     *datastore.Factory
	Fields     *field.Factory
	Hooks      *hooks.Hooks

	logger *zap.SugaredLogger
}

type config struct {
	options       host.Options
	descriptors   datastore.DescriptorStore
	relationships host.RelationshipStore
	logger        *zap.SugaredLogger
	stores        []storeRegistration
}

type storeRegistration struct {
	storeType string
	label     string
	ctor      datastore.Constructor
}

// Option configures a Bench.
type Option func(*config)

// WithOptions sets the configured defaults, typically a *settings.Config.
func WithOptions(o host.Options) Option {
	return func(c *config) { c.options = o }
}

// WithDescriptors sets the descriptor store.
func WithDescriptors(d datastore.DescriptorStore) Option {
	return func(c *config) { c.descriptors = d }
}

// WithRelationships sets the relationship store.
func WithRelationships(r host.RelationshipStore) Option {
	return func(c *config) { c.relationships = r }
}

// WithLogger sets the logger of the bench and everything it builds.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) { c.logger = l }
}

// WithStore registers an additional store type.
func WithStore(storeType, label string, ctor datastore.Constructor) Option {
	return func(c *config) {
		c.stores = append(c.stores, storeRegistration{storeType, label, ctor})
	}
}

// WithSQLStore registers s as the "local" store and uses it for descriptors
// and relationships.
func WithSQLStore(s *sqlstore.Store) Option {
	return func(c *config) {
		c.stores = append(c.stores, storeRegistration{sqlstore.StoreType, sqlstore.Label, func() (datastore.Store, error) { return s, nil }})
		c.descriptors = s
		c.relationships = s
	}
}

// WithDynamoDB registers s as the "dynamodb" store.
func WithDynamoDB(s *ddb.Store) Option {
	return WithStore(ddb.StoreType, ddb.Label, func() (datastore.Store, error) { return s, nil })
}

// New builds a Bench over h with the built-in coordinates geometry and
// Google map registered.
func New(h Host, opts ...Option) (*Bench, error) {
	if h == nil {
		return nil, errors.NewValidationError("host", "a content host is required")
	}
	var c config
	if o, ok := h.(host.Options); ok {
		c.options = o
	}
	if d, ok := h.(datastore.DescriptorStore); ok {
		c.descriptors = d
	}
	if r, ok := h.(host.RelationshipStore); ok {
		c.relationships = r
	}
	for _, opt := range opts {
		opt(&c)
	}
	l := logger.Or(c.logger)

	b := &Bench{
		Stores: datastore.NewFactory(l),
		Fields: field.NewFactory(),
		Hooks:  hooks.New(),
		logger: l,
	}
	for _, s := range c.stores {
		if err := b.Stores.Register(s.storeType, s.label, s.ctor); err != nil {
			return nil, errors.Wrapf(err, "register store %q", s.storeType)
		}
	}

	b.Geometries = geometry.NewFactory(&geometry.Env{
		Content:       h,
		Classifier:    h,
		Meta:          h,
		Relationships: c.relationships,
		Descriptors:   c.descriptors,
		Options:       c.options,
		Stores:        b.Stores,
		Hooks:         b.Hooks,
		Logger:        l,
	})
	if err := b.Geometries.Register(geometry.TypeCoordinates, "Coordinates", geometry.NewCoordinates); err != nil {
		return nil, err
	}

	b.Maps = geomap.NewFactory(&geomap.Env{
		Content:    h,
		Classifier: h,
		Meta:       h,
		Options:    c.options,
		Hooks:      b.Hooks,
		Logger:     l,
	})
	if err := b.Maps.Register(geomap.TypeGoogle, "Google Maps", geomap.NewGoogle); err != nil {
		return nil, err
	}

	l.Debugw("Bench ready",
		"geometry_types", b.Geometries.Registry().Keys(),
		"map_types", b.Maps.Registry().Keys(),
		"store_types", b.Stores.Registry().Keys(),
	)
	return b, nil
}

// Geometry builds the geometry ref points to.
func (b *Bench) Geometry(ctx context.Context, ref host.Ref, opts ...geometry.Option) (geometry.Geometry, error) {
	return b.Geometries.Geometry(ctx, ref, opts...)
}

// Map builds the map ref points to.
func (b *Bench) Map(ctx context.Context, ref host.Ref, mapType string) (geomap.Map, error) {
	return b.Maps.Map(ctx, ref, mapType)
}

// Store instantiates the store registered under storeType.
func (b *Bench) Store(storeType string) (datastore.Store, error) {
	return b.Stores.Get(storeType)
}

// Support selectors of WhichSupports.
const (
	SupportStores     = "stores"
	SupportGeometries = "geometries"
)

// WhichSupports cross-references registered geometries and stores.
// SupportStores returns geometry type → store type → store label;
// SupportGeometries returns store type → geometry type → geometry label.
// It returns nil when nothing matches.
func (b *Bench) WhichSupports(what string) (map[string]map[string]string, error) {
	if what != SupportStores && what != SupportGeometries {
		return nil, errors.NewValidationError("what", `must be "stores" or "geometries"`)
	}

	geometries := b.Geometries.Types()
	out := make(map[string]map[string]string)
	for storeType, storeLabel := range b.Stores.Types() {
		s, err := b.Stores.Get(storeType)
		if err != nil {
			b.logger.Warnw("Skipping store", "store_type", storeType, "error", err)
			continue
		}
		for geometryType, geometryLabel := range datastore.SupportedGeometries(s, geometries) {
			if what == SupportStores {
				if out[geometryType] == nil {
					out[geometryType] = make(map[string]string)
				}
				out[geometryType][storeType] = storeLabel
				continue
			}
			if out[storeType] == nil {
				out[storeType] = make(map[string]string)
			}
			out[storeType][geometryType] = geometryLabel
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Pages returns the settings pages for the registered types, with
// defaultStore preselected for every geometry.
func (b *Bench) Pages(defaultStore string) []settings.Page {
	return []settings.Page{
		settings.GeneralPage(),
		settings.GeometriesPage(b.Geometries.Types(), b.Stores.Types(), defaultStore),
		settings.ProvidersPage(b.Maps.Types()),
	}
}
