// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"sync"

	"storeflow/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
// List and ListByUser return orders in creation order.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]order.Order
	ids    []string
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{orders: make(map[string]order.Order)}
}

// Create stores the order with its lines.
func (r *Repository) Create(ctx context.Context, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		r.ids = append(r.ids, o.ID)
	}
	r.orders[o.ID] = clone(o)
	return nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return clone(o), nil
}

// List returns all orders in creation order.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, clone(r.orders[id]))
	}
	return out, nil
}

// ListByUser returns the given user's orders in creation order. A user
// with no orders gets an empty slice, not an error.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, 0)
	for _, id := range r.ids {
		if o := r.orders[id]; o.UserID == userID {
			out = append(out, clone(o))
		}
	}
	return out, nil
}

// clone copies the order so callers cannot mutate stored line slices.
func clone(o order.Order) order.Order {
	lines := make([]order.Line, len(o.Lines))
	copy(lines, o.Lines)
	o.Lines = lines
	return o
}
