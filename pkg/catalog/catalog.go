// Package catalog defines products and their persistence contract.
package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Product is an item offered for sale. Stock is the available-to-sell
// count and is decremented at order-creation time.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// Repository defines behavior for persisting products. Save upserts:
// it creates the product if absent and replaces it otherwise.
type Repository interface {
	Save(ctx context.Context, p Product) error
	Get(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id string) error
}

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")
