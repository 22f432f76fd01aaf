/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package host_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/host/memhost"
)

type stubEntity struct {
	id   int64
	post *host.Post
}

func (s stubEntity) ID() int64        { return s.id }
func (s stubEntity) Post() *host.Post { return s.post }

func newResolver() (host.Resolver, *memhost.Host) {
	h := memhost.New().
		AddPost(host.Post{ID: 7, PostType: host.PostTypeGeo, Title: "Montréal"}).
		AddPost(host.Post{ID: 8, PostType: host.PostTypeGeo, Type: "coordinates"})
	return host.Resolver{Content: h, Classifier: h}, h
}

func TestResolvePost(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver()

	p, err := r.ResolvePost(ctx, host.ByID(7))
	require.NoError(t, err)
	assert.Equal(t, "Montréal", p.Title)

	p, err = r.ResolvePost(ctx, host.ByEntity(stubEntity{id: 8}))
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.ID)

	own := &host.Post{ID: 99}
	p, err = r.ResolvePost(ctx, host.ByPost(own))
	require.NoError(t, err)
	assert.Same(t, own, p)

	_, err = r.ResolvePost(ctx, host.ByID(404))
	assert.True(t, errors.IsNotFound(err))

	_, err = r.ResolvePost(ctx, host.ByID(0))
	assert.True(t, errors.IsNotFound(err))

	_, err = r.ResolvePost(ctx, host.ByPost(nil))
	assert.True(t, errors.IsNotFound(err))
}

func TestResolvePostAmbient(t *testing.T) {
	r, _ := newResolver()

	_, err := r.ResolvePost(context.Background(), host.Ambient())
	assert.True(t, errors.IsNotFound(err))

	current := &host.Post{ID: 7}
	ctx := host.WithCurrentPost(context.Background(), current)
	p, err := r.ResolvePost(ctx, host.Ambient())
	require.NoError(t, err)
	assert.Same(t, current, p)
}

func TestResolveTypePrecedence(t *testing.T) {
	ctx := context.Background()
	r, h := newResolver()
	h.AssignTerm(7, host.TaxonomyGeoType, "Géo Tag")
	h.AssignTerm(8, host.TaxonomyGeoType, "Polygon")

	stored, _ := r.ResolvePost(ctx, host.ByID(8))
	derived, _ := r.ResolvePost(ctx, host.ByID(7))

	typ, err := r.ResolveType(ctx, stored, "line", host.TaxonomyGeoType)
	require.NoError(t, err)
	assert.Equal(t, "line", typ, "explicit type wins")

	typ, err = r.ResolveType(ctx, stored, "", host.TaxonomyGeoType)
	require.NoError(t, err)
	assert.Equal(t, "coordinates", typ, "stored type beats classification")

	typ, err = r.ResolveType(ctx, derived, "", host.TaxonomyGeoType)
	require.NoError(t, err)
	assert.Equal(t, "geo-tag", typ, "classification term is slugged")

	typ, err = r.ResolveType(ctx, derived, "", host.TaxonomyMapType)
	require.NoError(t, err)
	assert.Equal(t, "", typ)
}

func TestRefBind(t *testing.T) {
	p := &host.Post{ID: 3}

	id, post := host.ByID(5).Bind(context.Background())
	assert.Equal(t, int64(5), id)
	assert.Nil(t, post)

	id, post = host.ByID(-1).Bind(context.Background())
	assert.Equal(t, int64(0), id)
	assert.Nil(t, post)

	id, post = host.ByPost(p).Bind(context.Background())
	assert.Equal(t, int64(3), id)
	assert.Same(t, p, post)

	id, post = host.ByEntity(stubEntity{id: 4, post: p}).Bind(context.Background())
	assert.Equal(t, int64(4), id)
	assert.Same(t, p, post)

	id, _ = host.Ambient().Bind(context.Background())
	assert.Equal(t, int64(0), id)

	id, post = host.Ambient().Bind(host.WithCurrentPost(context.Background(), p))
	assert.Equal(t, int64(3), id)
	assert.Same(t, p, post)
}

func TestRefString(t *testing.T) {
	assert.Equal(t, "current", host.Ambient().String())
	assert.Equal(t, "id:7", host.ByID(7).String())
	assert.Equal(t, "post:nil", host.ByPost(nil).String())
	assert.True(t, host.Ambient().IsAmbient())
	assert.False(t, host.ByID(1).IsAmbient())
}
