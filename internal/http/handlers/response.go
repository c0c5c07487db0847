package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"summerfest/backend/internal/integrations/eventbrite"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// upstreamErrorStatus maps provider failures onto response codes: a non-200
// from the provider is a bad gateway, everything else is internal.
func upstreamErrorStatus(err error) int {
	var apiErr *eventbrite.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
