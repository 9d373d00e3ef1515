package constants

// Redis key formats
const (
	// Catalog
	KeyLocationsGeo = "locations:geo" // GEO set of all delivery areas

	// Cart
	KeyCart = "cart:%s:%d" // Format: cart:{user_id}:{location_id}
)
