/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geometry

import (
	"context"
	"maps"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/geostore/datastore"
	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/hooks"
	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/storagemodels"
)

// Base implements the parts of Geometry shared by every geometry type.
// Concrete geometries embed a *Base.
type Base struct {
	env   *Env
	id    int64
	typ   string
	post  *host.Post
	store datastore.Store
	state State
	attrs *host.Attributes
}

// NewBase binds a geometry of type typ to post and resolves its store:
// the explicit store, then the store named by its descriptor, then the
// default store configured for typ. An unresolvable store leaves the
// geometry without one.
func NewBase(ctx context.Context, env *Env, post *host.Post, args Args) (*Base, error) {
	if env == nil {
		env = &Env{}
	}
	b := &Base{env: env, typ: args.Type, post: post, state: Unbound}
	if post != nil && post.ID > 0 {
		b.id = post.ID
		b.state = Bound
	}
	b.attrs = host.NewAttributes(env.Meta, b.id, env.logger())

	if b.id > 0 {
		store, err := b.resolveStore(ctx, args.Store)
		if err != nil {
			return nil, err
		}
		b.store = store
	}
	return b, nil
}

func (b *Base) resolveStore(ctx context.Context, explicit datastore.Store) (datastore.Store, error) {
	if explicit != nil {
		return explicit, nil
	}

	storeType := ""
	if b.env.Descriptors != nil {
		d, err := b.env.Descriptors.Descriptor(ctx, b.id)
		if err != nil {
			return nil, errors.Wrapf(err, "read descriptor of %d", b.id)
		}
		if d != nil {
			storeType = d.Store
		}
	}
	if storeType == "" && b.env.Options != nil {
		storeType = b.env.Options.DefaultStore(b.typ)
	}
	if storeType == "" || b.env.Stores == nil {
		return nil, nil
	}

	store, err := b.env.Stores.Get(storeType)
	if errors.IsUnresolved(err) {
		b.env.logger().Warnw("Geometry store not registered", "geo_id", b.id, "geo_type", b.typ, "store_type", storeType)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (b *Base) ID() int64              { return b.id }
func (b *Base) Type() string           { return b.typ }
func (b *Base) Post() *host.Post       { return b.post }
func (b *Base) Store() datastore.Store { return b.store }
func (b *Base) State() State           { return b.state }

// StoreType returns the type of the resolved store, or "".
func (b *Base) StoreType() string {
	if b.store == nil {
		return ""
	}
	return b.store.Type()
}

func (b *Base) Title() string {
	if b.post == nil {
		return ""
	}
	if b.env.Hooks == nil {
		return b.post.Title
	}
	return b.env.Hooks.Title.Apply(b.post.Title, hooks.TitleArgs{ID: b.id, Type: b.typ})
}

func (b *Base) Attribute(ctx context.Context, name string) (string, bool) {
	return b.attrs.Get(ctx, name)
}

func (b *Base) HasAttribute(ctx context.Context, name string) bool {
	return b.attrs.Has(ctx, name)
}

func (b *Base) SetAttribute(ctx context.Context, name, value string) error {
	return b.attrs.Set(ctx, name, value)
}

// persistable reports whether writes may reach the store: the geometry is
// bound and its store supports the geometry type.
func (b *Base) persistable() bool {
	return b.id > 0 && b.typ != "" && b.post != nil && datastore.Supports(b.store, b.typ)
}

// Load fetches the stored record and updates the state.
func (b *Base) Load(ctx context.Context) error {
	_, err := b.Get(ctx)
	return err
}

// Get returns the stored record of the geometry, or nil when there is none.
func (b *Base) Get(ctx context.Context) (storagemodels.Record, error) {
	if b.id <= 0 || b.typ == "" || b.store == nil {
		return nil, nil
	}
	records, err := b.store.Get(ctx, b.typ, b.id)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s %d", b.typ, b.id)
	}
	if len(records) == 0 {
		return nil, nil
	}
	b.state = Persisted
	return records[0], nil
}

// Save inserts data into the store and writes the descriptor once the store
// accepted it. geo_id is taken from the geometry when data does not carry it.
func (b *Base) Save(ctx context.Context, data storagemodels.Payload) (bool, error) {
	if !b.persistable() {
		return false, nil
	}
	data = maps.Clone(data)
	if data == nil {
		data = storagemodels.Payload{}
	}
	if !data.Has(storagemodels.KeyGeoID) {
		data[storagemodels.KeyGeoID] = b.id
	}

	ok, err := b.store.Save(ctx, b.typ, data)
	if err != nil {
		return false, errors.Wrapf(err, "save %s %d", b.typ, b.id)
	}
	if !ok {
		return false, nil
	}
	b.state = Persisted
	if b.env.Descriptors != nil {
		if _, err := b.env.Descriptors.PutDescriptor(ctx, b.descriptor()); err != nil {
			return true, errors.Wrapf(err, "write descriptor of %d", b.id)
		}
	}
	b.env.logger().Debugw("Geometry saved", "geo_id", b.id, "geo_type", b.typ, "store_type", b.store.Type())
	return true, nil
}

// Update replaces the stored record, then the descriptor.
func (b *Base) Update(ctx context.Context, data storagemodels.Payload) (bool, error) {
	if !b.persistable() {
		return false, nil
	}
	ok, err := b.store.Update(ctx, b.typ, b.id, data)
	if err != nil {
		return false, errors.Wrapf(err, "update %s %d", b.typ, b.id)
	}
	if !ok {
		return false, nil
	}
	b.state = Persisted
	if b.env.Descriptors != nil {
		if _, err := b.env.Descriptors.UpdateDescriptor(ctx, b.descriptor()); err != nil {
			return true, errors.Wrapf(err, "update descriptor of %d", b.id)
		}
	}
	return true, nil
}

// Delete removes the descriptor and the stored record. The id stays set.
func (b *Base) Delete(ctx context.Context) (bool, error) {
	if !b.persistable() {
		return false, nil
	}
	if b.env.Descriptors != nil {
		if _, err := b.env.Descriptors.DeleteDescriptor(ctx, b.id); err != nil {
			return false, errors.Wrapf(err, "delete descriptor of %d", b.id)
		}
	}
	ok, err := b.store.Delete(ctx, b.typ, b.id)
	if err != nil {
		return false, errors.Wrapf(err, "delete %s %d", b.typ, b.id)
	}
	b.state = Bound
	return ok, nil
}

// Connected groups the ids of related objects by object type.
func (b *Base) Connected(ctx context.Context) (map[string][]int64, error) {
	out := make(map[string][]int64)
	if b.id <= 0 || b.env.Relationships == nil {
		return out, nil
	}
	rels, err := b.env.Relationships.Relationships(ctx, b.id)
	if err != nil {
		return nil, errors.Wrapf(err, "relationships of %d", b.id)
	}
	for _, r := range rels {
		out[r.ObjectType] = append(out[r.ObjectType], r.ObjectID)
	}
	return out, nil
}

func (b *Base) descriptor() storagemodels.Descriptor {
	return storagemodels.Descriptor{
		GeoID:        b.id,
		GeoType:      b.typ,
		Store:        b.store.Type(),
		Status:       b.post.Status,
		DateCreated:  strfmt.DateTime(b.post.Date),
		DateModified: strfmt.DateTime(b.post.Modified),
	}
}
