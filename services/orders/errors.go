package orders

import "errors"

var (
	// ErrOrderNotFound is returned when no order exists with the given ID.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNotOrderOwner is returned when a customer requests an order that
	// belongs to someone else.
	ErrNotOrderOwner = errors.New("order belongs to another user")

	// ErrEmptyOrder is returned when checkout is attempted with no lines.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrLocationRequired is returned when checkout omits the delivery area.
	ErrLocationRequired = errors.New("location is required")

	// ErrInvalidQuantity is returned when an order line has a non-positive
	// quantity.
	ErrInvalidQuantity = errors.New("item quantity must be positive")

	// ErrUnknownProduct is returned when an order line references a product
	// not in the catalog.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrInsufficientStock is returned by fulfillment when a location can
	// no longer cover an order line.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidStatus is returned when a status update names a value
	// outside the closed progression.
	ErrInvalidStatus = errors.New("invalid order status")
)
