package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"summerfest/backend/internal/config"
	"summerfest/backend/internal/goal"
	"summerfest/backend/internal/integrations"
	"summerfest/backend/internal/sales"
)

// EventSource fetches the raw provider event resource.
type EventSource interface {
	GetEvent(ctx context.Context, eventID string) (json.RawMessage, error)
}

type Handler struct {
	goals     goal.Store
	sales     *sales.Service
	events    EventSource
	snapshots *integrations.SnapshotArchiver
	cfg       *config.Config
	logger    *slog.Logger
	validator *validator.Validate
}

func New(goals goal.Store, salesSvc *sales.Service, events EventSource, snapshots *integrations.SnapshotArchiver, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		goals:     goals,
		sales:     salesSvc,
		events:    events,
		snapshots: snapshots,
		cfg:       cfg,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) loggerForRequest(r *http.Request) *slog.Logger {
	logger := h.logger
	if logger == nil {
		return slog.Default()
	}
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	return logger
}

// Root is the liveness endpoint.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Summerfest Event Dashboard API"})
}
