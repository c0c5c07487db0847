package handlers

import "net/http"

// RawEvent is a debug passthrough of the provider's event resource with
// ticket classes expanded. The response is archived for later inspection.
func (h *Handler) RawEvent(w http.ResponseWriter, r *http.Request) {
	raw, err := h.events.GetEvent(r.Context(), h.cfg.Eventbrite.EventID)
	if err != nil {
		h.loggerForRequest(r).Error("raw event fetch failed", "error", err)
		writeError(w, upstreamErrorStatus(err), err.Error())
		return
	}

	h.snapshots.Save(r.Context(), raw)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
