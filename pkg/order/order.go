// Package order defines customer orders and their persistence contract.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Line records one product's quantity within an order. UnitPrice is a
// snapshot of the product price at order time, so later catalog price
// changes do not alter historical order value.
type Line struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order represents a customer purchase order. Lines keep the order the
// cart lines were processed in. TotalPrice equals the sum of
// UnitPrice*Quantity over all lines.
type Order struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Lines      []Line          `json:"lines"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Repository defines behavior for persisting orders. Create stores the
// order together with all of its lines in a single step.
type Repository interface {
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")
