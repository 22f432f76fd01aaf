/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package hooks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterOrder(t *testing.T) {
	var f Filter[string, ClassArgs]
	f.Add(func(v string, _ ClassArgs) string { return v + ".a" })
	f.Add(nil)
	f.Add(func(v string, a ClassArgs) string { return v + "." + a.Type })

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, "x.a.coordinates", f.Apply("x", ClassArgs{Type: "coordinates"}))
}

func TestFilterLastMutationWins(t *testing.T) {
	h := New()
	h.GeometryClass.Add(func(string, ClassArgs) string { return "Geometries.First" })
	h.GeometryClass.Add(func(string, ClassArgs) string { return "Geometries.Second" })

	assert.Equal(t, "Geometries.Second", h.GeometryClass.Apply("Geometries.Coordinates", ClassArgs{}))
}

func TestNilFilter(t *testing.T) {
	var f *Filter[string, TitleArgs]
	assert.Equal(t, "Home", f.Apply("Home", TitleArgs{}))
	assert.Equal(t, 0, f.Len())
}

func TestTitleFilter(t *testing.T) {
	h := New()
	h.Title.Add(func(v string, a TitleArgs) string {
		if a.Type == "coordinates" {
			return strings.ToUpper(v)
		}
		return v
	})
	assert.Equal(t, "PIN", h.Title.Apply("pin", TitleArgs{ID: 1, Type: "coordinates"}))
	assert.Equal(t, "pin", h.Title.Apply("pin", TitleArgs{ID: 1, Type: "google"}))
}
