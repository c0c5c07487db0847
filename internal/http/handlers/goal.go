package handlers

import (
	"encoding/json"
	"net/http"
)

type goalRequest struct {
	Goal float64 `json:"goal" validate:"gte=0"`
}

func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]float64{"goal": h.goals.Read(r.Context())})
}

// SetGoal overwrites the fundraising goal. Persistence is fire-and-forget:
// a failed write is logged and the request still succeeds.
func (h *Handler) SetGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "goal must be a non-negative number")
		return
	}

	if err := h.goals.Write(r.Context(), req.Goal); err != nil {
		h.loggerForRequest(r).Warn("goal write failed", "goal", req.Goal, "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]float64{"goal": req.Goal})
}
