package city

import "errors"

// Sentinel errors returned by validation helpers.
var (
	// ErrTooFewCities indicates that fewer than MinCities cities were supplied.
	ErrTooFewCities = errors.New("city: at least 3 cities are required")

	// ErrInvalidCoordinate indicates a NaN or ±Inf coordinate.
	ErrInvalidCoordinate = errors.New("city: coordinate must be finite")
)

// MinCities is the smallest instance for which a closed tour is defined.
const MinCities = 3

// City is an immutable point in the plane with an optional human-readable label.
// Copies are independent; there are no mutating methods.
type City struct {
	X     float64 // horizontal coordinate
	Y     float64 // vertical coordinate
	Label string  // display name, may be empty
}
