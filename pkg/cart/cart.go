// Package cart defines the per-session staging list of requested items.
package cart

import "context"

// Line is a requested (product, quantity) pair. It is not validated
// against stock until checkout.
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Store holds one ordered line list per session. Carts are ephemeral:
// they live only for the session and are never part of an order record.
type Store interface {
	// Items returns the session's lines, empty when no cart exists.
	Items(ctx context.Context, session string) ([]Line, error)
	// Add appends the line, or increments the quantity of an existing
	// line for the same product.
	Add(ctx context.Context, session string, l Line) error
	// Remove drops all lines for the product.
	Remove(ctx context.Context, session, productID string) error
	// Clear discards the session's cart.
	Clear(ctx context.Context, session string) error
}
