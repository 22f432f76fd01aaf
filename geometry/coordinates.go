/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geometry

import (
	"context"

	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/storagemodels"
)

// TypeCoordinates is the registry key of point geometries.
const TypeCoordinates = "coordinates"

// Coordinates is a single latitude/longitude point.
type Coordinates struct {
	*Base
	Lat float64
	Lng float64
}

// NewCoordinates builds a coordinates geometry and loads its point from the
// store when the geometry is bound.
func NewCoordinates(ctx context.Context, env *Env, post *host.Post, args Args) (Geometry, error) {
	if args.Type == "" {
		args.Type = TypeCoordinates
	}
	base, err := NewBase(ctx, env, post, args)
	if err != nil {
		return nil, err
	}
	c := &Coordinates{Base: base}
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads lat and lng from the stored record.
func (c *Coordinates) Load(ctx context.Context) error {
	r, err := c.Get(ctx)
	if err != nil || r == nil {
		return err
	}
	c.Lat, _ = r.Float(storagemodels.KeyLat)
	c.Lng, _ = r.Float(storagemodels.KeyLng)
	return nil
}

// Payload builds the store payload for a point of this geometry.
func (c *Coordinates) Payload(lat, lng float64) storagemodels.Payload {
	return storagemodels.Payload{
		storagemodels.KeyGeoID: c.ID(),
		storagemodels.KeyLat:   lat,
		storagemodels.KeyLng:   lng,
	}
}

// Save inserts the point and keeps Lat and Lng in sync on success.
func (c *Coordinates) Save(ctx context.Context, data storagemodels.Payload) (bool, error) {
	ok, err := c.Base.Save(ctx, data)
	if ok {
		c.setPoint(data)
	}
	return ok, err
}

// Update replaces the point and keeps Lat and Lng in sync on success.
func (c *Coordinates) Update(ctx context.Context, data storagemodels.Payload) (bool, error) {
	ok, err := c.Base.Update(ctx, data)
	if ok {
		c.setPoint(data)
	}
	return ok, err
}

func (c *Coordinates) setPoint(data storagemodels.Payload) {
	if lat, ok := data.Float(storagemodels.KeyLat); ok {
		c.Lat = lat
	}
	if lng, ok := data.Float(storagemodels.KeyLng); ok {
		c.Lng = lng
	}
}
