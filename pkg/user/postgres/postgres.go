// Package postgres implements a PostgreSQL user repository.
package postgres

import (
	"context"
	"database/sql"

	"storeflow/pkg/user"
)

// Repository persists users in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save upserts the user.
func (r *Repository) Save(ctx context.Context, u user.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id,username,password) VALUES ($1,$2,$3)
		 ON CONFLICT (id) DO UPDATE SET username=$2, password=$3`,
		u.ID, u.Username, u.Password)
	return err
}

// Get retrieves a user by ID.
func (r *Repository) Get(ctx context.Context, id string) (user.User, error) {
	var u user.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id,username,password FROM users WHERE id=$1", id).
		Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

// GetByUsername retrieves a user by username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id,username,password FROM users WHERE username=$1", username).
		Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}
