// Package memory implements an in-memory user repository.
package memory

import (
	"context"
	"sync"

	"storeflow/pkg/user"
)

// Repository provides an in-memory implementation of user.Repository.
type Repository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{users: make(map[string]user.User)}
}

// Save creates or replaces the user.
func (r *Repository) Save(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

// Get retrieves a user by ID.
func (r *Repository) Get(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

// GetByUsername retrieves a user by username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
