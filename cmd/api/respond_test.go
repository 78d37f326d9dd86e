package main

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"storeflow/pkg/catalog"
	"storeflow/pkg/checkout"
	"storeflow/pkg/order"
	"storeflow/pkg/user"
)

func TestStatusFromError(t *testing.T) {
	t.Run("checkout not found -> 404", func(t *testing.T) {
		err := fmt.Errorf("user u1: %w", checkout.ErrNotFound)
		if got := statusFromError(err); got != http.StatusNotFound {
			t.Fatalf("got %d", got)
		}
	})

	t.Run("store not found sentinels -> 404", func(t *testing.T) {
		for _, err := range []error{catalog.ErrNotFound, user.ErrNotFound, order.ErrNotFound} {
			if got := statusFromError(err); got != http.StatusNotFound {
				t.Fatalf("%v: got %d", err, got)
			}
		}
	})

	t.Run("insufficient stock -> 400", func(t *testing.T) {
		err := fmt.Errorf("product p1: %w", checkout.ErrInsufficientStock)
		if got := statusFromError(err); got != http.StatusBadRequest {
			t.Fatalf("got %d", got)
		}
	})

	t.Run("anything else -> 500", func(t *testing.T) {
		if got := statusFromError(errors.New("boom")); got != http.StatusInternalServerError {
			t.Fatalf("got %d", got)
		}
	})
}
