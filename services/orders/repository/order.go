package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/orders"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const orderColumns = `id, user_id, location_id, total_amount, delivery_fee, status, created_at, updated_at`

// CreateOrder writes the order header, every line, and the optional note in
// a single transaction so a failed insert never leaves a partial order.
// Order rows live behind row-level security the app role cannot satisfy, so
// this runs on the privileged handle; the usecase owns the ownership checks.
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order, notes string) error {
	tx, err := r.privileged.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, location_id, total_amount, delivery_fee, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID, order.UserID, order.LocationID, order.TotalAmount,
		order.DeliveryFee, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, quantity, price)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, order.ID, item.ProductID, item.Quantity, item.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if notes != "" {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_notes (order_id, notes) VALUES ($1, $2)`,
			order.ID, notes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order notes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

// GetOrderByID loads an order with its lines.
func (r *OrderRepo) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	var order models.Order
	err := r.privileged.GetContext(ctx, &order, query, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, orders.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	err = r.privileged.SelectContext(ctx, &order.Items,
		`SELECT id, order_id, product_id, quantity, price FROM order_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return &order, nil
}

// ListOrdersByUser returns the user's orders, newest first, without lines.
func (r *OrderRepo) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, orderColumns)

	var result []models.Order
	if err := r.privileged.SelectContext(ctx, &result, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return result, nil
}

// UpdateOrderStatus advances an order. Backs the staff status route; the
// fulfillment claim goes through FulfillOrder instead.
func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	result, err := r.privileged.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return orders.ErrOrderNotFound
	}
	return nil
}

// GetLocationDeliveryFee returns the delivery fee for an active location.
func (r *OrderRepo) GetLocationDeliveryFee(ctx context.Context, locationID int) (float64, error) {
	var fee float64
	err := r.db.GetContext(ctx, &fee,
		`SELECT delivery_fee FROM locations WHERE id = $1 AND is_active = true`,
		locationID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, orders.ErrLocationRequired
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get delivery fee: %w", err)
	}
	return fee, nil
}

// GetProductPrices returns current catalog prices keyed by product ID.
func (r *OrderRepo) GetProductPrices(ctx context.Context, productIDs []int) (map[int]float64, error) {
	query, args, err := sqlx.In(`SELECT id, price FROM products WHERE id IN (?)`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build price query: %w", err)
	}

	rows := []struct {
		ID    int     `db:"id"`
		Price float64 `db:"price"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get product prices: %w", err)
	}

	prices := make(map[int]float64, len(rows))
	for _, row := range rows {
		prices[row.ID] = row.Price
	}
	return prices, nil
}

// FulfillOrder claims a new order and reserves stock for every line in a
// single privileged transaction. The claim only matches status new, so a
// redelivered event finds nothing to claim and the stock is never reserved
// twice; a failed reservation rolls the claim back and the retry starts
// clean. Returns false when the order was already claimed or is unknown.
func (r *OrderRepo) FulfillOrder(ctx context.Context, orderID uuid.UUID, locationID int, items []models.OrderItemInput) (bool, error) {
	tx, err := r.privileged.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin fulfillment transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		models.OrderStatusProcessing, orderID, models.OrderStatusNew,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	for _, item := range items {
		// the guard keeps stock from going negative under concurrent claims
		result, err := tx.ExecContext(ctx,
			`UPDATE inventory SET quantity = quantity - $1
			 WHERE location_id = $2 AND product_id = $3 AND quantity >= $1`,
			item.Quantity, locationID, item.ProductID,
		)
		if err != nil {
			return false, fmt.Errorf("failed to decrement stock: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("failed to read decrement result: %w", err)
		}
		if affected == 0 {
			return false, orders.ErrInsufficientStock
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit fulfillment: %w", err)
	}
	return true, nil
}
