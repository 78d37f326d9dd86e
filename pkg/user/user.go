// Package user defines store accounts and their persistence contract.
package user

import (
	"context"
	"errors"
)

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Repository defines behavior for reading users.
type Repository interface {
	Get(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Save(ctx context.Context, u User) error
}

// ErrNotFound indicates the requested user does not exist.
var ErrNotFound = errors.New("user not found")
