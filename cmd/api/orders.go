package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"storeflow/pkg/cart"
	"storeflow/pkg/otel"
)

// createOrderHandler places an order for the session user. Lines come
// from the request body when given, otherwise from the session cart,
// which is cleared on success.
// @Summary Create order
// @Accept json
// @Produce json
// @Param lines body []cart.Line false "Cart lines"
// @Success 201 {object} order.Order
// @Security ApiKeyAuth
// @Router /orders [post]
func createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var lines []cart.Line
	if err := json.NewDecoder(r.Body).Decode(&lines); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	fromCart := false
	if len(lines) == 0 {
		var err error
		if lines, err = cartStore.Items(ctx, sessionID(r)); err != nil {
			respondError(ctx, w, err)
			return
		}
		fromCart = true
	}

	o, err := svc.CreateOrder(ctx, sessionUser(r), lines)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	// The order row is already persisted here; a declined payment still
	// reports the placement as failed.
	if !payments.Process(ctx, o) {
		http.Error(w, "payment processing failed", http.StatusInternalServerError)
		return
	}
	if fromCart {
		if err := cartStore.Clear(ctx, sessionID(r)); err != nil {
			respondError(ctx, w, err)
			return
		}
	}
	respondJSON(w, http.StatusCreated, o)
}

// getOrderHandler retrieves an order by ID.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Security ApiKeyAuth
// @Router /orders/{id} [get]
func getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	o, err := svc.GetOrder(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// listOrdersHandler lists orders, optionally for one user.
// @Summary List orders
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {array} order.Order
// @Security ApiKeyAuth
// @Router /orders [get]
func listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	var (
		list any
		err  error
	)
	if userID := r.URL.Query().Get("userId"); userID != "" {
		list, err = svc.UserOrders(ctx, userID)
	} else {
		list, err = svc.Orders(ctx)
	}
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
