// Package postgres implements a PostgreSQL order repository.
package postgres

import (
	"context"
	"database/sql"

	"storeflow/pkg/order"
)

// Repository persists orders and their lines in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the order row and all of its line rows in one
// transaction. Line position preserves the processing order.
func (r *Repository) Create(ctx context.Context, o order.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO orders (id,user_id,total_price,created_at) VALUES ($1,$2,$3,$4)",
		o.ID, o.UserID, o.TotalPrice, o.CreatedAt); err != nil {
		return err
	}
	for i, l := range o.Lines {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id,position,product_id,quantity,unit_price) VALUES ($1,$2,$3,$4,$5)",
			o.ID, i, l.ProductID, l.Quantity, l.UnitPrice); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get retrieves an order and its lines by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	var o order.Order
	err := r.db.QueryRowContext(ctx,
		"SELECT id,user_id,total_price,created_at FROM orders WHERE id=$1", id).
		Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, err
	}
	o.Lines, err = r.lines(ctx, o.ID)
	return o, err
}

// List fetches all orders in creation order.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	return r.query(ctx,
		"SELECT id,user_id,total_price,created_at FROM orders ORDER BY created_at")
}

// ListByUser fetches the given user's orders in creation order.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return r.query(ctx,
		"SELECT id,user_id,total_price,created_at FROM orders WHERE user_id=$1 ORDER BY created_at",
		userID)
}

func (r *Repository) query(ctx context.Context, q string, args ...any) ([]order.Order, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := make([]order.Order, 0)
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Lines, err = r.lines(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *Repository) lines(ctx context.Context, orderID string) ([]order.Line, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT product_id,quantity,unit_price FROM order_items WHERE order_id=$1 ORDER BY position",
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lines []order.Line
	for rows.Next() {
		var l order.Line
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
