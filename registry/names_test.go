/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassName(t *testing.T) {
	tests := map[string]string{
		"coordinates":  "Coordinates",
		"geo-tag":      "Geo_Tag",
		"multi-line-x": "Multi_Line_X",
		"wordPress":    "WordPress",
	}
	for in, want := range tests {
		assert.Equal(t, want, ClassName(in), in)
	}
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "Geometries.Geo_Tag", Identifier("Geometries", "geo-tag"))
	assert.Equal(t, "Maps.Google", Identifier("Maps", "google"))
	assert.Equal(t, "", Identifier("Maps", ""))
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Coordinates":      "coordinates",
		"Géo Tag":          "geo-tag",
		"  Google  Maps! ": "google-maps",
		"multi_line":       "multi_line",
		"Polygon--Shape":   "polygon-shape",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}
