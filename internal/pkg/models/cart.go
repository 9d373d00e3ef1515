package models

import "time"

// CartItem is one line of a server-held cart.
type CartItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the single mutable cart slot for a user at one delivery location.
// Writes replace the slot wholesale; there is no per-line merge.
type Cart struct {
	UserID     string     `json:"user_id"`
	LocationID int        `json:"location_id"`
	Items      []CartItem `json:"items"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
