/*
Package host defines the contracts GeoStore expects from the content system it
is embedded in: content records, classification terms, per-id metadata,
relationships and configured options.

References to entities are loosely typed. A Ref is a numeric id, a loaded
post, an existing entity, or the ambient current item carried by the context:

	ctx = host.WithCurrentPost(ctx, post)
	g, err := bench.Geometry(ctx, host.Ambient())

The Resolver holds the lookup steps shared by the geometry and map factories.
*/
package host
