/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package geometry defines geographic entities and the factory building them.

A geometry is bound to a content record of the host. Its type is taken from
an explicit option, the type stored on the record, or the first geo_type
term, and is resolved to a Constructor through the geometry registry:

	f := geometry.NewFactory(env)
	_ = f.Register(geometry.TypeCoordinates, "Coordinates", geometry.NewCoordinates)

	g, err := f.Geometry(ctx, host.ByID(42))
	if errors.IsUnresolved(err) {
	    // no implementation for the record's type
	}
	ok, err := g.Save(ctx, g.(*geometry.Coordinates).Payload(45.5, -73.6))

Writes reach the store only when the geometry has an id, a type, a content
record and a store; otherwise they report false without error.
*/
package geometry
