package models

import "time"

// Location represents a delivery area served by the storefront.
type Location struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PostalCode  string    `json:"postal_code" db:"postal_code"`
	DeliveryFee float64   `json:"delivery_fee" db:"delivery_fee"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NearestLocation is a delivery area annotated with its distance from the
// queried point and the geohash cell it falls in.
type NearestLocation struct {
	Location
	DistanceKm float64 `json:"distance_km"`
	Geohash    string  `json:"geohash"`
}

// Category groups products for browsing.
type Category struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	ImageURL     string    `json:"image_url,omitempty" db:"image_url"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Product is a catalog entry. StockQuantity is the stock at the location the
// product list was queried for, not a global figure.
type Product struct {
	ID            int       `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description,omitempty" db:"description"`
	Price         float64   `json:"price" db:"price"`
	ImageURL      string    `json:"image_url,omitempty" db:"image_url"`
	CategoryID    int       `json:"category_id" db:"category_id"`
	CategoryName  string    `json:"category_name,omitempty" db:"category_name"`
	IsAvailable   bool      `json:"is_available" db:"is_available"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ProductFilter narrows a product listing. LocationID is mandatory; the rest
// are optional.
type ProductFilter struct {
	LocationID int
	CategoryID int
	Query      string
}
