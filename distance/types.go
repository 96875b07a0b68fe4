package distance

import "errors"

// Location is an opaque location identifier, in practice a city or
// regency name taken from the distance table.
type Location = string

// Sentinel errors for table and graph construction.
var (
	// ErrEmptyTable is returned when a table would have no rows or no columns.
	ErrEmptyTable = errors.New("distance: table has no rows or columns")

	// ErrEmptyLocation is returned for an empty location name.
	ErrEmptyLocation = errors.New("distance: empty location name")

	// ErrDuplicateLocation is returned when a location name appears twice
	// where names must be unique.
	ErrDuplicateLocation = errors.New("distance: duplicate location")

	// ErrUnknownLocation is returned when a row or column is not in the table.
	ErrUnknownLocation = errors.New("distance: unknown location")

	// ErrNegativeDistance is returned when a negative distance is recorded.
	ErrNegativeDistance = errors.New("distance: negative distance")

	// ErrMalformedTable is returned when CSV input is not a distance table.
	ErrMalformedTable = errors.New("distance: malformed table")
)
