package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"storeflow/pkg/order"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	o := order.Order{
		ID:     "1",
		UserID: "u1",
		Lines: []order.Line{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromFloat(100)},
		},
		TotalPrice: decimal.NewFromFloat(200),
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Lines) != 1 || got.Lines[0].ProductID != "p1" {
		t.Fatalf("unexpected lines: %+v", got.Lines)
	}
	if !got.TotalPrice.Equal(decimal.NewFromFloat(200)) {
		t.Fatalf("unexpected total: %s", got.TotalPrice)
	}
	if _, err := repo.Get(ctx, "missing"); err != order.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := New()
	for _, id := range []string{"3", "1", "2"} {
		if err := repo.Create(ctx, order.Order{ID: id, UserID: "u1"}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 3 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	want := []string{"3", "1", "2"}
	for i, o := range list {
		if o.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], o.ID)
		}
	}
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	repo := New()
	repo.Create(ctx, order.Order{ID: "1", UserID: "u1"})
	repo.Create(ctx, order.Order{ID: "2", UserID: "u2"})
	repo.Create(ctx, order.Order{ID: "3", UserID: "u1"})

	list, err := repo.ListByUser(ctx, "u1")
	if err != nil || len(list) != 2 {
		t.Fatalf("list by user: %v len=%d", err, len(list))
	}
	if list[0].ID != "1" || list[1].ID != "3" {
		t.Fatalf("unexpected order: %s, %s", list[0].ID, list[1].ID)
	}

	empty, err := repo.ListByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("list by unknown user: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := New()
	repo.Create(ctx, order.Order{ID: "1", UserID: "u1", Lines: []order.Line{{ProductID: "p1", Quantity: 1}}})

	got, _ := repo.Get(ctx, "1")
	got.Lines[0].Quantity = 99

	again, _ := repo.Get(ctx, "1")
	if again.Lines[0].Quantity != 1 {
		t.Fatalf("stored order mutated: %+v", again.Lines)
	}
}
