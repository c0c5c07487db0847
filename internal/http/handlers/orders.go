package handlers

import (
	"net/http"

	"summerfest/backend/internal/models"
	"summerfest/backend/internal/sales"
)

type ordersResponse struct {
	Orders []models.OrderRecord `json:"orders"`
}

// ListOrders serves the attendee listing. Unlike /api/metrics, provider
// failures here are surfaced to the caller.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, partial, err := h.sales.FetchOrders(r.Context())
	if err != nil {
		h.loggerForRequest(r).Error("orders fetch failed", "error", err)
		writeError(w, upstreamErrorStatus(err), err.Error())
		return
	}
	if partial {
		h.loggerForRequest(r).Warn("orders listing incomplete", "orders", len(orders))
	}
	writeJSON(w, http.StatusOK, ordersResponse{Orders: sales.FormatOrders(orders)})
}
