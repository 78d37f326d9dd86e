package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"storeflow/pkg/catalog"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	p := catalog.Product{ID: "1", Name: "Widget", Price: decimal.NewFromFloat(9.99), Stock: 4}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Widget" || got.Stock != 4 {
		t.Fatalf("unexpected product: %+v", got)
	}
	p.Stock = 2
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save update: %v", err)
	}
	got, _ = repo.Get(ctx, "1")
	if got.Stock != 2 {
		t.Fatalf("expected stock 2, got %d", got.Stock)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "1"); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "1"); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := New()
	for _, id := range []string{"c", "a", "b"} {
		if err := repo.Save(ctx, catalog.Product{ID: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"c", "a", "b"}
	for i, p := range list {
		if p.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], p.ID)
		}
	}
}
