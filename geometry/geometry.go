/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geometry

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/geostore/datastore"
	"github.com/suparena/geostore/hooks"
	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/logger"
	"github.com/suparena/geostore/storagemodels"
)

// State tracks what is known about the stored record of a geometry.
type State int

const (
	// Unbound geometries have no id.
	Unbound State = iota
	// Bound geometries have an id but no known record.
	Bound
	// Persisted geometries were loaded from or written to their store.
	Persisted
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	case Persisted:
		return "persisted"
	}
	return "unknown"
}

// Geometry is a geographic entity attached to a content record.
type Geometry interface {
	host.Entity

	Type() string
	// Title is the content record title passed through the title hook.
	Title() string

	Attribute(ctx context.Context, name string) (string, bool)
	HasAttribute(ctx context.Context, name string) bool
	SetAttribute(ctx context.Context, name, value string) error

	// Store is the resolved storage adapter, nil when none resolved.
	Store() datastore.Store
	StoreType() string
	State() State

	// Load refreshes the entity from its stored record.
	Load(ctx context.Context) error
	Get(ctx context.Context) (storagemodels.Record, error)
	Save(ctx context.Context, data storagemodels.Payload) (bool, error)
	Update(ctx context.Context, data storagemodels.Payload) (bool, error)
	Delete(ctx context.Context) (bool, error)
	// Connected groups related object ids by object type.
	Connected(ctx context.Context) (map[string][]int64, error)
}

// Env carries the collaborators geometries are built with. Nil members
// disable the feature that needs them.
type Env struct {
	Content       host.ContentProvider
	Classifier    host.Classifier
	Meta          host.MetaStore
	Relationships host.RelationshipStore
	Descriptors   datastore.DescriptorStore
	Options       host.Options
	Stores        *datastore.Factory
	Hooks         *hooks.Hooks
	Logger        *zap.SugaredLogger
}

func (e *Env) logger() *zap.SugaredLogger {
	if e == nil {
		return logger.Logger
	}
	return logger.Or(e.Logger)
}

// Args are the construction arguments handed to a Constructor.
type Args struct {
	// Type is the registry key the geometry is built as.
	Type string
	// Store, when set, is used instead of resolving one.
	Store datastore.Store
}

// Constructor builds a geometry for post. A nil post builds an unbound geometry.
type Constructor func(ctx context.Context, env *Env, post *host.Post, args Args) (Geometry, error)
