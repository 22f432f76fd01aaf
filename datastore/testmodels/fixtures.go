/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds fixtures shared by the store and entity tests.
package testmodels

import (
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/storagemodels"
)

// Created is the creation time of every fixture post.
var Created = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

// Modified is the last modification time of every fixture post.
var Modified = Created.Add(90 * time.Minute)

// GeoPost returns a published geo content record.
func GeoPost(id int64, title string) host.Post {
	return host.Post{
		ID:       id,
		PostType: host.PostTypeGeo,
		Title:    title,
		Status:   "publish",
		Date:     Created,
		Modified: Modified,
	}
}

// MapPost returns a published map content record.
func MapPost(id int64, title string) host.Post {
	p := GeoPost(id, title)
	p.PostType = host.PostTypeMap
	return p
}

// Descriptor returns the descriptor written for a fixture post.
func Descriptor(id int64, geoType, store string) storagemodels.Descriptor {
	return storagemodels.Descriptor{
		GeoID:        id,
		GeoType:      geoType,
		Store:        store,
		Status:       "publish",
		DateCreated:  strfmt.DateTime(Created),
		DateModified: strfmt.DateTime(Modified),
	}
}

// Coordinates returns a coordinates payload.
func Coordinates(id int64, lat, lng float64) storagemodels.Payload {
	return storagemodels.Payload{
		storagemodels.KeyGeoID: id,
		storagemodels.KeyLat:   lat,
		storagemodels.KeyLng:   lng,
	}
}
