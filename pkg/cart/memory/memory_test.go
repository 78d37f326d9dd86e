package memory

import (
	"context"
	"testing"

	"storeflow/pkg/cart"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	items, err := s.Items(ctx, "s1")
	if err != nil || len(items) != 0 {
		t.Fatalf("empty cart: %v len=%d", err, len(items))
	}

	if err := s.Add(ctx, "s1", cart.Line{ProductID: "p1", Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, "s1", cart.Line{ProductID: "p2", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, "s1", cart.Line{ProductID: "p1", Quantity: 3}); err != nil {
		t.Fatalf("add increment: %v", err)
	}

	items, _ = s.Items(ctx, "s1")
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != "p1" || items[0].Quantity != 5 {
		t.Fatalf("expected p1 qty 5, got %+v", items[0])
	}

	// Carts are scoped per session.
	other, _ := s.Items(ctx, "s2")
	if len(other) != 0 {
		t.Fatalf("expected empty cart for other session, got %d", len(other))
	}

	if err := s.Remove(ctx, "s1", "p1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items, _ = s.Items(ctx, "s1")
	if len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("expected only p2, got %+v", items)
	}

	if err := s.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, _ = s.Items(ctx, "s1")
	if len(items) != 0 {
		t.Fatalf("expected cleared cart, got %+v", items)
	}
}
