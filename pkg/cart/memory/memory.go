// Package memory implements an in-memory cart store.
package memory

import (
	"context"
	"sync"

	"storeflow/pkg/cart"
)

// Store provides an in-memory implementation of cart.Store.
type Store struct {
	mu    sync.Mutex
	carts map[string][]cart.Line
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{carts: make(map[string][]cart.Line)}
}

// Items returns the session's lines, empty when no cart exists.
func (s *Store) Items(ctx context.Context, session string) ([]cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cart.Line, len(s.carts[session]))
	copy(out, s.carts[session])
	return out, nil
}

// Add appends the line or increments an existing line's quantity.
func (s *Store) Add(ctx context.Context, session string, l cart.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[session]
	for i := range lines {
		if lines[i].ProductID == l.ProductID {
			lines[i].Quantity += l.Quantity
			s.carts[session] = lines
			return nil
		}
	}
	s.carts[session] = append(lines, l)
	return nil
}

// Remove drops all lines for the product.
func (s *Store) Remove(ctx context.Context, session, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[session]
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	s.carts[session] = kept
	return nil
}

// Clear discards the session's cart.
func (s *Store) Clear(ctx context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
	return nil
}
