package main

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"storeflow/pkg/catalog"
	"storeflow/pkg/otel"
)

// listProductsHandler lists the catalog.
// @Summary List products
// @Produce json
// @Success 200 {array} catalog.Product
// @Router /products [get]
func listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	list, err := products.List(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// getProductHandler retrieves a product by ID.
// @Summary Get product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} catalog.Product
// @Router /products/{id} [get]
func getProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getProductHandler")
	defer span.End()

	p, err := products.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// addProductHandler creates or updates a catalog product.
// @Summary Add product
// @Accept json
// @Produce json
// @Param product body catalog.Product true "Product"
// @Success 201 {object} catalog.Product
// @Security ApiKeyAuth
// @Router /admin/products [post]
func addProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addProductHandler")
	defer span.End()

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if p.Name == "" || p.Price.IsNegative() || p.Stock < 0 {
		http.Error(w, "invalid product", http.StatusBadRequest)
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := products.Save(ctx, p); err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// deleteProductHandler removes a product.
// @Summary Delete product
// @Param id path string true "Product ID"
// @Success 204
// @Security ApiKeyAuth
// @Router /admin/products/{id} [delete]
func deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteProductHandler")
	defer span.End()

	if err := products.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		respondError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
