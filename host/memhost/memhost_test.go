/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memhost

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/storagemodels"
)

func TestDefaultTerms(t *testing.T) {
	h := New()
	geo := h.TaxonomyTerms(host.TaxonomyGeoType)
	require.Len(t, geo, 1)
	assert.Equal(t, "coordinates", geo[0].Slug)

	maps := h.TaxonomyTerms(host.TaxonomyMapType)
	require.Len(t, maps, 1)
	assert.Equal(t, "google", maps[0].Slug)
}

func TestAssignTermReusesExisting(t *testing.T) {
	ctx := context.Background()
	h := New().AssignTerm(1, host.TaxonomyGeoType, "Coordinates")

	terms, err := h.Terms(ctx, 1, host.TaxonomyGeoType)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "coordinates", terms[0].Slug)
	assert.Len(t, h.TaxonomyTerms(host.TaxonomyGeoType), 1)

	terms, err = h.Terms(ctx, 2, host.TaxonomyGeoType)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestMeta(t *testing.T) {
	ctx := context.Background()
	h := New()

	_, ok, err := h.Meta(ctx, 1, "_zoom")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, h.SetMeta(ctx, 1, "_zoom", "12"))
	v, ok, err := h.Meta(ctx, 1, "_zoom")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", v)

	boom := errors.New("boom")
	h.WithMetaError(boom)
	_, _, err = h.Meta(ctx, 1, "_zoom")
	assert.ErrorIs(t, err, boom)
}

func TestDescriptors(t *testing.T) {
	ctx := context.Background()
	h := New()
	d := storagemodels.Descriptor{GeoID: 7, GeoType: "coordinates", Store: "local"}

	ok, err := h.PutDescriptor(ctx, d)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.PutDescriptor(ctx, d)
	require.NoError(t, err)
	assert.False(t, ok, "insert does not overwrite")

	d.Status = "publish"
	ok, err = h.UpdateDescriptor(ctx, d)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := h.Descriptor(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "publish", got.Status)

	ok, err = h.DeleteDescriptor(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = h.DeleteDescriptor(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err = h.Descriptor(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOptionsAndRelationships(t *testing.T) {
	ctx := context.Background()
	h := New().
		WithDefaultStore("coordinates", "local").
		WithMapAPIKey("google", "key-123").
		Relate(7, 10, "post").
		Relate(8, 11, "post")

	assert.Equal(t, "local", h.DefaultStore("coordinates"))
	assert.Equal(t, "", h.DefaultStore("polygon"))
	assert.Equal(t, "key-123", h.MapAPIKey("google"))

	rels, err := h.Relationships(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []storagemodels.Relationship{{GeoID: 7, ObjectID: 10, ObjectType: "post"}}, rels)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Post(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
