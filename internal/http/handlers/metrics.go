package handlers

import "net/http"

// GetMetrics serves the dashboard snapshot. The sales service degrades to
// mock data internally, so this endpoint never surfaces provider failures.
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := h.sales.Metrics(r.Context())
	writeJSON(w, http.StatusOK, metrics)
}
