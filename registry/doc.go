/*
Package registry maps short type keys to implementations for GeoStore.

Each domain (geometry types, map providers, stores, settings fields) owns one
Registry. Entries are registered at bootstrap, built-ins first and extensions
after, and looked up by key or by implementation identifier:

	geometries := registry.New[geometry.Constructor](registry.DomainGeometry)
	geometries.Register("coordinates", "Coordinates", geometry.NewCoordinates)

	ctor, ok := geometries.Resolve("coordinates")
	entry, ok := geometries.Lookup("Geometries.Coordinates")

Identifiers are derived from keys: "geo-tag" becomes "Geometries.Geo_Tag".
Classification terms are normalised into keys with Slug.

Index Map Registry:
Associates geometry types with DynamoDB key templates:

	registry.RegisterIndexMap("coordinates", map[string]string{
	    "PK":  "GEO#{ID}",
	    "SK":  "COORDINATES",
	    "PK1": "GEOTYPE#{EntityType}",
	    "SK1": "GEO#{ID}",
	})
*/
package registry
