package main

import (
	"encoding/json"
	"net/http"

	"storeflow/pkg/cart"
	"storeflow/pkg/otel"
)

// addCartItemHandler stages a product in the session cart.
// @Summary Add item to cart
// @Accept json
// @Param line body cart.Line true "Cart line"
// @Success 200
// @Security ApiKeyAuth
// @Router /cart/add [post]
func addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addCartItemHandler")
	defer span.End()

	var l cart.Line
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil || l.ProductID == "" {
		http.Error(w, "invalid cart line", http.StatusBadRequest)
		return
	}
	// The product must exist to be staged; stock is checked at checkout.
	if _, err := products.Get(ctx, l.ProductID); err != nil {
		respondError(ctx, w, err)
		return
	}
	if err := cartStore.Add(ctx, sessionID(r), l); err != nil {
		respondError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// viewCartHandler returns the session cart priced against the catalog.
// @Summary View cart
// @Produce json
// @Success 200 {object} checkout.Quote
// @Security ApiKeyAuth
// @Router /cart [get]
func viewCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "viewCartHandler")
	defer span.End()

	lines, err := cartStore.Items(ctx, sessionID(r))
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	quote, err := svc.Quote(ctx, lines)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// removeCartItemHandler drops a product from the session cart.
// @Summary Remove item from cart
// @Param productId query string true "Product ID"
// @Success 200
// @Security ApiKeyAuth
// @Router /cart/remove [delete]
func removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "removeCartItemHandler")
	defer span.End()

	productID := r.URL.Query().Get("productId")
	if productID == "" {
		http.Error(w, "productId required", http.StatusBadRequest)
		return
	}
	if err := cartStore.Remove(ctx, sessionID(r), productID); err != nil {
		respondError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
