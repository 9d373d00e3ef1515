package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/catalog"
)

const locationColumns = `id, name, postal_code, delivery_fee, latitude, longitude, is_active, created_at`

// GetActiveLocations returns every delivery area currently open for orders.
func (r *CatalogRepo) GetActiveLocations(ctx context.Context) ([]models.Location, error) {
	query := fmt.Sprintf(`SELECT %s FROM locations WHERE is_active = true ORDER BY name`, locationColumns)

	var locations []models.Location
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// GetLocationByID returns a single active delivery area.
func (r *CatalogRepo) GetLocationByID(ctx context.Context, id int) (*models.Location, error) {
	query := fmt.Sprintf(`SELECT %s FROM locations WHERE id = $1 AND is_active = true`, locationColumns)

	var location models.Location
	err := r.db.GetContext(ctx, &location, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, catalog.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}

// GetCategories returns all categories in display order.
func (r *CatalogRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, image_url, display_order, created_at
		FROM categories
		ORDER BY display_order, name`

	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetProducts lists available products with positive stock at the filter's
// location, optionally narrowed by category and a name search.
func (r *CatalogRepo) GetProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, error) {
	query := `SELECT p.id, p.name, p.description, p.price, p.image_url,
			p.category_id, c.name AS category_name, p.is_available,
			i.quantity AS stock_quantity, p.created_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN inventory i ON i.product_id = p.id AND i.location_id = $1
		WHERE p.is_available = true AND i.quantity > 0`
	args := []interface{}{filter.LocationID}

	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(" AND p.name ILIKE $%d", len(args))
	}
	query += " ORDER BY c.display_order, p.name"

	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
