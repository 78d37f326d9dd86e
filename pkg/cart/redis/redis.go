// Package redis implements a Redis-backed cart store. Each session's
// cart is one JSON-encoded line list with a TTL, alongside the session
// keys in the same Redis.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"storeflow/pkg/cart"
)

// Store provides a Redis implementation of cart.Store.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Redis store. Carts expire after ttl of inactivity.
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(session string) string { return "cart:" + session }

// Items returns the session's lines, empty when no cart exists.
func (s *Store) Items(ctx context.Context, session string) ([]cart.Line, error) {
	raw, err := s.client.Get(ctx, key(session)).Bytes()
	if err == redis.Nil {
		return []cart.Line{}, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Add appends the line or increments an existing line's quantity.
// Carts are session-scoped, so the read-modify-write here is not
// racing other sessions.
func (s *Store) Add(ctx context.Context, session string, l cart.Line) error {
	lines, err := s.Items(ctx, session)
	if err != nil {
		return err
	}
	found := false
	for i := range lines {
		if lines[i].ProductID == l.ProductID {
			lines[i].Quantity += l.Quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, l)
	}
	return s.write(ctx, session, lines)
}

// Remove drops all lines for the product.
func (s *Store) Remove(ctx context.Context, session, productID string) error {
	lines, err := s.Items(ctx, session)
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return s.Clear(ctx, session)
	}
	return s.write(ctx, session, kept)
}

// Clear discards the session's cart.
func (s *Store) Clear(ctx context.Context, session string) error {
	return s.client.Del(ctx, key(session)).Err()
}

func (s *Store) write(ctx context.Context, session string, lines []cart.Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(session), raw, s.ttl).Err()
}
