/*
Package errors provides semantic error types for GeoStore.

Factories and stores express "nothing there" as values the caller checks.
Lookup misses come back as ErrNotFound or ErrUnresolved, backend failures are
wrapped with context, and duplicates match ErrAlreadyExists:

	g, err := bench.Geometry(ctx, host.ByID(7))
	if errors.IsUnresolved(err) {
	    // no implementation registered for the geometry type
	}

Construction and wrapping (New, Wrap, Wrapf, WithHint) are re-exported from
github.com/cockroachdb/errors so wrapped errors carry stack traces. The typed
errors implement Is so they keep matching their sentinel through any number of
Wrap calls.
*/
package errors
