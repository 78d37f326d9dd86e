// Package postgres implements a PostgreSQL product repository.
package postgres

import (
	"context"
	"database/sql"

	"storeflow/pkg/catalog"
)

// Repository persists products in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save upserts the product.
func (r *Repository) Save(ctx context.Context, p catalog.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id,name,price,stock) VALUES ($1,$2,$3,$4)
		 ON CONFLICT (id) DO UPDATE SET name=$2, price=$3, stock=$4`,
		p.ID, p.Name, p.Price, p.Stock)
	return err
}

// Get retrieves a product by ID.
func (r *Repository) Get(ctx context.Context, id string) (catalog.Product, error) {
	var p catalog.Product
	err := r.db.QueryRowContext(ctx,
		"SELECT id,name,price,stock FROM products WHERE id=$1", id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if err == sql.ErrNoRows {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, err
}

// List fetches all products in creation order.
func (r *Repository) List(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,name,price,stock FROM products ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Delete removes a product by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
