/*
Package geostore is a persistence layer for geo-tagged content.

Geographic entities (geometries such as "coordinates", map providers such as
"google") are attached to records of an external content host. Type names
resolve to implementations through registries, and entities delegate their
CRUD to pluggable storage adapters.

Key Features:
  - Per-domain registries for geometries, maps, stores and settings fields
  - Extension hooks redirecting type resolution and filtering titles
  - SQLite reference store with descriptor and relationship tables
  - DynamoDB store on a single-table layout
  - Semantic error types for not-found and unresolved lookups
  - In-memory host and recording store for testing

Basic Usage:

	db, _ := sqlstore.Open(ctx, "geostore.db", logger.Logger)
	cfg, _ := settings.Load(settings.LoadOptions{File: "geostore.yaml"})

	bench, _ := geostore.New(contentHost,
	    geostore.WithSQLStore(db),
	    geostore.WithOptions(cfg),
	)

	g, err := bench.Geometry(ctx, host.ByID(42))
	if errors.IsUnresolved(err) {
	    // the record has no registered geometry type
	}
	c := g.(*geometry.Coordinates)
	ok, err := c.Save(ctx, c.Payload(45.5, -73.6))
*/
package geostore
