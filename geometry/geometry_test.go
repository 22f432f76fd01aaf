/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geometry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/suparena/geostore/datastore"
	"github.com/suparena/geostore/datastore/mock"
	"github.com/suparena/geostore/datastore/sqlstore"
	"github.com/suparena/geostore/datastore/testmodels"
	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/geometry"
	"github.com/suparena/geostore/hooks"
	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/host/memhost"
	"github.com/suparena/geostore/registry"
	"github.com/suparena/geostore/storagemodels"
)

type fixture struct {
	host    *memhost.Host
	store   *mock.Store
	env     *geometry.Env
	factory *geometry.Factory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zaptest.NewLogger(t).Sugar()

	h := memhost.New().WithDefaultStore(geometry.TypeCoordinates, "memory")
	store := mock.New("memory")
	stores := datastore.NewFactory(log)
	require.NoError(t, stores.Register("memory", "Memory", func() (datastore.Store, error) { return store, nil }))

	env := &geometry.Env{
		Content:       h,
		Classifier:    h,
		Meta:          h,
		Relationships: h,
		Descriptors:   h,
		Options:       h,
		Stores:        stores,
		Hooks:         hooks.New(),
		Logger:        log,
	}
	f := geometry.NewFactory(env)
	require.NoError(t, f.Register(geometry.TypeCoordinates, "Coordinates", geometry.NewCoordinates))
	return &fixture{host: h, store: store, env: env, factory: f}
}

// addGeo adds a geo post classified by a geo_type term.
func (fx *fixture) addGeo(id int64, term string) {
	fx.host.AddPost(testmodels.GeoPost(id, "Place"))
	if term != "" {
		fx.host.AssignTerm(id, host.TaxonomyGeoType, term)
	}
}

func TestFactoryTypeResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("from taxonomy term", func(t *testing.T) {
		fx := newFixture(t)
		fx.addGeo(1, "Coordinates")

		g, err := fx.factory.Geometry(ctx, host.ByID(1))
		require.NoError(t, err)
		assert.Equal(t, geometry.TypeCoordinates, g.Type())
		assert.Equal(t, int64(1), g.ID())
		assert.IsType(t, &geometry.Coordinates{}, g)
	})

	t.Run("stored type wins over term", func(t *testing.T) {
		fx := newFixture(t)
		p := testmodels.GeoPost(2, "Place")
		p.Type = geometry.TypeCoordinates
		fx.host.AddPost(p).AssignTerm(2, host.TaxonomyGeoType, "polygon")

		g, err := fx.factory.Geometry(ctx, host.ByID(2))
		require.NoError(t, err)
		assert.Equal(t, geometry.TypeCoordinates, g.Type())
	})

	t.Run("explicit type wins", func(t *testing.T) {
		fx := newFixture(t)
		fx.addGeo(3, "coordinates")

		_, err := fx.factory.Geometry(ctx, host.ByID(3), geometry.WithType("polygon"))
		assert.True(t, errors.IsUnresolved(err))
	})

	t.Run("unregistered type", func(t *testing.T) {
		fx := newFixture(t)
		fx.addGeo(4, "polygon")

		_, err := fx.factory.Geometry(ctx, host.ByID(4))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnresolved)
		var ue *errors.UnresolvedError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "polygon", ue.Type)
	})

	t.Run("no type at all", func(t *testing.T) {
		fx := newFixture(t)
		fx.addGeo(5, "")

		_, err := fx.factory.Geometry(ctx, host.ByID(5))
		assert.True(t, errors.IsUnresolved(err))
	})
}

func TestFactoryReferences(t *testing.T) {
	fx := newFixture(t)
	fx.addGeo(10, "coordinates")

	t.Run("ambient current item", func(t *testing.T) {
		p, err := fx.host.Post(context.Background(), 10)
		require.NoError(t, err)
		ctx := host.WithCurrentPost(context.Background(), p)

		g, err := fx.factory.Geometry(ctx, host.Ambient())
		require.NoError(t, err)
		assert.Equal(t, int64(10), g.ID())
	})

	t.Run("no ambient item", func(t *testing.T) {
		_, err := fx.factory.Geometry(context.Background(), host.Ambient())
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := fx.factory.Geometry(context.Background(), host.ByID(999))
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("existing entity", func(t *testing.T) {
		g, err := fx.factory.Geometry(context.Background(), host.ByID(10))
		require.NoError(t, err)
		again, err := fx.factory.Geometry(context.Background(), host.ByEntity(g))
		require.NoError(t, err)
		assert.Equal(t, g.ID(), again.ID())
	})

	t.Run("post reference", func(t *testing.T) {
		p := testmodels.GeoPost(11, "Loose")
		p.Type = geometry.TypeCoordinates
		g, err := fx.factory.Geometry(context.Background(), host.ByPost(&p))
		require.NoError(t, err)
		assert.Equal(t, int64(11), g.ID())
	})
}

func TestClassHookRedirect(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	fx.addGeo(20, "coordinates")

	require.NoError(t, fx.factory.Register("pin", "Pin", geometry.NewCoordinates))
	fx.env.Hooks.GeometryClass.Add(func(name string, args hooks.ClassArgs) string {
		if args.Type == geometry.TypeCoordinates && args.ContentType == host.PostTypeGeo {
			return registry.Identifier(registry.DomainGeometry.Prefix(), "pin")
		}
		return name
	})

	g, err := fx.factory.Geometry(ctx, host.ByID(20))
	require.NoError(t, err)
	assert.Equal(t, "pin", g.Type())
}

func TestUnboundGeometryMakesNoStorageCall(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	g, err := geometry.NewCoordinates(ctx, fx.env, nil, geometry.Args{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), g.ID())
	assert.Equal(t, geometry.Unbound, g.State())
	assert.Nil(t, g.Store())

	ok, err := g.Save(ctx, testmodels.Coordinates(0, 1, 2))
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = g.Update(ctx, testmodels.Coordinates(0, 1, 2))
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = g.Delete(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Empty(t, fx.store.Calls())
}

func TestGeometryWithoutStore(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	fx.host.WithDefaultStore(geometry.TypeCoordinates, "")
	fx.addGeo(30, "coordinates")

	g, err := fx.factory.Geometry(ctx, host.ByID(30))
	require.NoError(t, err)
	assert.Nil(t, g.Store())
	assert.Equal(t, "", g.StoreType())

	r, err := g.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, r)

	ok, err := g.Save(ctx, testmodels.Coordinates(30, 1, 2))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, fx.store.Calls())
}

func TestCoordinatesLifecycle(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	fx.addGeo(42, "coordinates")

	g, err := fx.factory.Geometry(ctx, host.ByID(42))
	require.NoError(t, err)
	c := g.(*geometry.Coordinates)
	assert.Equal(t, geometry.Bound, c.State())
	assert.Equal(t, "memory", c.StoreType())

	ok, err := c.Save(ctx, point(45.5, -73.6))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, geometry.Persisted, c.State())
	assert.Equal(t, 45.5, c.Lat)

	d, err := fx.host.Descriptor(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, testmodels.Descriptor(42, "coordinates", "memory"), *d)

	reloaded, err := fx.factory.Geometry(ctx, host.ByID(42))
	require.NoError(t, err)
	rc := reloaded.(*geometry.Coordinates)
	assert.Equal(t, 45.5, rc.Lat)
	assert.Equal(t, -73.6, rc.Lng)
	assert.Equal(t, geometry.Persisted, rc.State())

	ok, err = rc.Update(ctx, rc.Payload(1.5, 2.5))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2.5, rc.Lng)

	ok, err = rc.Delete(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), rc.ID())
	assert.Equal(t, geometry.Bound, rc.State())

	d, err = fx.host.Descriptor(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, d)

	ok, err = rc.Delete(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRejectedWritesLeaveNoDescriptor(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	local, err := sqlstore.Open(ctx, ":memory:", zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })
	fx.env.Descriptors = local

	require.NoError(t, fx.factory.Register("polygon", "Polygon", func(ctx context.Context, env *geometry.Env, post *host.Post, args geometry.Args) (geometry.Geometry, error) {
		return geometry.NewBase(ctx, env, post, args)
	}))

	t.Run("unsupported type", func(t *testing.T) {
		fx.addGeo(9, "polygon")
		g, err := fx.factory.Geometry(ctx, host.ByID(9), geometry.WithStore(local))
		require.NoError(t, err)
		assert.Equal(t, "polygon", g.Type())

		ok, err := g.Save(ctx, point(1, 2))
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = g.Update(ctx, point(1, 2))
		require.NoError(t, err)
		assert.False(t, ok)

		d, err := local.Descriptor(ctx, 9)
		require.NoError(t, err)
		assert.Nil(t, d)
		assert.Equal(t, geometry.Bound, g.State())
	})

	t.Run("unsupported type makes no store call", func(t *testing.T) {
		fx.addGeo(11, "polygon")
		g, err := fx.factory.Geometry(ctx, host.ByID(11), geometry.WithStore(fx.store))
		require.NoError(t, err)

		ok, err := g.Save(ctx, point(1, 2))
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = g.Delete(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, fx.store.Calls())
	})

	t.Run("incomplete payload", func(t *testing.T) {
		fx.addGeo(10, "coordinates")
		g, err := fx.factory.Geometry(ctx, host.ByID(10), geometry.WithStore(local))
		require.NoError(t, err)

		ok, err := g.Save(ctx, storagemodels.Payload{storagemodels.KeyLat: 1.0})
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = g.Update(ctx, storagemodels.Payload{storagemodels.KeyLng: 2.0})
		require.NoError(t, err)
		assert.False(t, ok)

		d, err := local.Descriptor(ctx, 10)
		require.NoError(t, err)
		assert.Nil(t, d)
		assert.Equal(t, geometry.Bound, g.State())
	})

	t.Run("accepted save writes descriptor", func(t *testing.T) {
		fx.addGeo(12, "coordinates")
		g, err := fx.factory.Geometry(ctx, host.ByID(12), geometry.WithStore(local))
		require.NoError(t, err)

		ok, err := g.Save(ctx, point(45.5, -73.6))
		require.NoError(t, err)
		require.True(t, ok)

		d, err := local.Descriptor(ctx, 12)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, "coordinates", d.GeoType)
		assert.Equal(t, sqlstore.StoreType, d.Store)
	})
}

// point is a payload without geo_id; Save fills it in.
func point(lat, lng float64) storagemodels.Payload {
	return storagemodels.Payload{storagemodels.KeyLat: lat, storagemodels.KeyLng: lng}
}

func TestStoreResolution(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	other := mock.New("other")
	require.NoError(t, fx.env.Stores.Register("other", "Other", func() (datastore.Store, error) { return other, nil }))

	t.Run("descriptor store", func(t *testing.T) {
		fx.addGeo(50, "coordinates")
		_, err := fx.host.PutDescriptor(ctx, testmodels.Descriptor(50, "coordinates", "other"))
		require.NoError(t, err)

		g, err := fx.factory.Geometry(ctx, host.ByID(50))
		require.NoError(t, err)
		assert.Equal(t, "other", g.StoreType())
	})

	t.Run("explicit store", func(t *testing.T) {
		fx.addGeo(51, "coordinates")
		explicit := mock.New("explicit")
		g, err := fx.factory.Geometry(ctx, host.ByID(51), geometry.WithStore(explicit))
		require.NoError(t, err)
		assert.Same(t, explicit, g.Store())

		g, err = fx.factory.Geometry(ctx, host.ByID(51), geometry.WithStoreType("other"))
		require.NoError(t, err)
		assert.Equal(t, "other", g.StoreType())

		_, err = fx.factory.Geometry(ctx, host.ByID(51), geometry.WithStoreType("nope"))
		assert.True(t, errors.IsUnresolved(err))
	})

	t.Run("unregistered default store", func(t *testing.T) {
		fx.host.WithDefaultStore("coordinates", "nope")
		fx.addGeo(52, "coordinates")
		g, err := fx.factory.Geometry(ctx, host.ByID(52))
		require.NoError(t, err)
		assert.Nil(t, g.Store())
	})
}

func TestAttributesAndTitle(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	fx.addGeo(60, "coordinates")
	require.NoError(t, fx.host.SetMeta(ctx, 60, "_color", "red"))

	g, err := fx.factory.Geometry(ctx, host.ByID(60))
	require.NoError(t, err)

	v, ok := g.Attribute(ctx, "color")
	assert.True(t, ok)
	assert.Equal(t, "red", v)

	require.NoError(t, fx.host.SetMeta(ctx, 60, "_color", "blue"))
	v, _ = g.Attribute(ctx, "color")
	assert.Equal(t, "red", v, "attributes are cached per instance")

	assert.False(t, g.HasAttribute(ctx, "size"))
	require.NoError(t, g.SetAttribute(ctx, "size", "large"))
	assert.True(t, g.HasAttribute(ctx, "size"))

	fx.env.Hooks.Title.Add(func(title string, args hooks.TitleArgs) string {
		return title + " (" + args.Type + ")"
	})
	assert.Equal(t, "Place (coordinates)", g.Title())

	t.Run("metadata failure yields empty", func(t *testing.T) {
		fx.host.WithMetaError(errors.New("meta down"))
		fresh, err := fx.factory.Geometry(ctx, host.ByID(60))
		require.NoError(t, err)
		v, ok := fresh.Attribute(ctx, "color")
		assert.False(t, ok)
		assert.Empty(t, v)
	})
}

func TestConnected(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	fx.addGeo(70, "coordinates")
	fx.host.Relate(70, 1, "post").Relate(70, 2, "post").Relate(70, 9, "page").Relate(71, 5, "post")

	g, err := fx.factory.Geometry(ctx, host.ByID(70))
	require.NoError(t, err)
	connected, err := g.Connected(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]int64{"post": {1, 2}, "page": {9}}, connected)

	fx.addGeo(72, "coordinates")
	g, err = fx.factory.Geometry(ctx, host.ByID(72))
	require.NoError(t, err)
	connected, err = g.Connected(ctx)
	require.NoError(t, err)
	assert.Empty(t, connected)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unbound", geometry.Unbound.String())
	assert.Equal(t, "persisted", geometry.Persisted.String())
}
