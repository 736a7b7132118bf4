// Package city provides the immutable City value, Euclidean distance, and a
// precomputed distance table shared by the genetic-algorithm engine.
//
// A City is a plain value: a 2D coordinate plus an optional label. Once a
// city list is handed to the engine, every city is identified by its index in
// that list. The index is the stable key used for permutation membership
// checks, so two coincident cities remain distinct.
//
// Distances are symmetric and Euclidean:
//
//	d(a, b) = sqrt((a.X-b.X)² + (a.Y-b.Y)²)
//
// Matrix precomputes all n² distances once per instance so that route length
// evaluation in the hot loop is a flat slice lookup.
//
// Errors (sentinel):
//
//	– ErrTooFewCities      if fewer than 3 cities are supplied (a tour is undefined).
//	– ErrInvalidCoordinate if a coordinate is NaN or ±Inf.
package city
