// Package memory implements an in-memory product repository.
package memory

import (
	"context"
	"sync"

	"storeflow/pkg/catalog"
)

// Repository provides an in-memory implementation of catalog.Repository.
// List returns products in insertion order.
type Repository struct {
	mu       sync.RWMutex
	products map[string]catalog.Product
	ids      []string
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{products: make(map[string]catalog.Product)}
}

// Save creates or replaces the product.
func (r *Repository) Save(ctx context.Context, p catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		r.ids = append(r.ids, p.ID)
	}
	r.products[p.ID] = p
	return nil
}

// Get retrieves a product by ID.
func (r *Repository) Get(ctx context.Context, id string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

// List returns all products in the order they were first saved.
func (r *Repository) List(ctx context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, 0, len(r.products))
	for _, id := range r.ids {
		out = append(out, r.products[id])
	}
	return out, nil
}

// Delete removes a product by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.products, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}
