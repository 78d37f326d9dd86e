package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"storeflow/pkg/catalog"
	"storeflow/pkg/checkout"
	"storeflow/pkg/logger"
	"storeflow/pkg/order"
	"storeflow/pkg/otel"
	"storeflow/pkg/user"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps the three error kinds onto status codes: a missing
// user/product/order is 404, insufficient stock is 400, anything else
// is a 500 and gets logged.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Log.Error("request failed",
			zap.Error(err),
			zap.String("trace_id", otel.GetTraceID(ctx)),
		)
	}
	http.Error(w, err.Error(), status)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, checkout.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, order.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, checkout.ErrInsufficientStock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
