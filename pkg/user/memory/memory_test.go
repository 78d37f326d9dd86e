package memory

import (
	"context"
	"testing"

	"storeflow/pkg/user"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	u := user.User{ID: "1", Username: "alice", Password: "secret"}
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("expected alice, got %s", got.Username)
	}
	got, err = repo.GetByUsername(ctx, "alice")
	if err != nil || got.ID != "1" {
		t.Fatalf("get by username: %v id=%s", err, got.ID)
	}
	if _, err := repo.Get(ctx, "2"); err != user.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByUsername(ctx, "bob"); err != user.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
