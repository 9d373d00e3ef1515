package catalog

import "errors"

var (
	// ErrLocationRequired is returned when a product listing omits the
	// delivery area it should be scoped to.
	ErrLocationRequired = errors.New("location is required")

	// ErrLocationNotFound is returned when the referenced delivery area
	// does not exist or is inactive.
	ErrLocationNotFound = errors.New("location not found")

	// ErrOutOfDeliveryArea is returned when no delivery area covers the
	// queried coordinates.
	ErrOutOfDeliveryArea = errors.New("no delivery area covers this point")

	// ErrInvalidCoordinates is returned when latitude or longitude is
	// outside the valid range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
