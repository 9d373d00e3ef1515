package cart

import "errors"

var (
	// ErrCartNotFound is returned when no cart exists for the user at the
	// given location.
	ErrCartNotFound = errors.New("cart not found")

	// ErrInvalidItem is returned when a cart line has a missing product or
	// a non-positive quantity.
	ErrInvalidItem = errors.New("cart item must have a product and a positive quantity")

	// ErrLocationRequired is returned when the cart slot is not scoped to
	// a delivery area.
	ErrLocationRequired = errors.New("location is required")
)
