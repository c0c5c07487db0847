package sales

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"summerfest/backend/internal/goal"
	"summerfest/backend/internal/integrations/eventbrite"
	"summerfest/backend/internal/models"
)

// API is the slice of the provider client the sales pipeline consumes.
type API interface {
	ListTicketClasses(ctx context.Context, eventID string) ([]eventbrite.TicketClass, error)
	ListOrders(ctx context.Context, eventID string) (orders []eventbrite.Order, partial bool, err error)
}

// Service assembles dashboard metrics from the provider and the goal store.
type Service struct {
	api     API
	goals   goal.Store
	eventID string
	logger  *slog.Logger
}

func NewService(api API, goals goal.Store, eventID string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: api, goals: goals, eventID: eventID, logger: logger}
}

// FetchOrders returns the event's orders. Missing provider credentials
// substitute a fixed two-order mock list instead of failing, so local
// development works without an account. partial=true means pagination
// stopped early and the result undercounts.
func (s *Service) FetchOrders(ctx context.Context) (orders []eventbrite.Order, partial bool, err error) {
	orders, partial, err = s.api.ListOrders(ctx, s.eventID)
	if errors.Is(err, eventbrite.ErrMissingCredentials) {
		s.logger.Warn("eventbrite credentials missing, serving mock orders")
		return mockOrders(), false, nil
	}
	return orders, partial, err
}

// Metrics computes the dashboard snapshot. If the live pipeline fails at any
// stage the whole result is replaced by the static mock snapshot — never a
// mix of live and mock figures — and Degraded is set so callers can tell.
func (s *Service) Metrics(ctx context.Context) models.EventMetrics {
	gross, net, types, err := s.live(ctx)
	degraded := false
	if err != nil {
		s.logger.Warn("live metrics failed, serving mock snapshot", "error", err)
		gross, net, types = mockSnapshot()
		degraded = true
	}

	goalValue := s.goals.Read(ctx)
	var pct float64
	if goalValue > 0 {
		pct = gross.Div(decimal.NewFromFloat(goalValue)).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return models.EventMetrics{
		TotalGross:     gross.InexactFloat64(),
		TotalNet:       net.InexactFloat64(),
		TicketTypes:    types,
		GoalPercentage: pct,
		Degraded:       degraded,
	}
}

// live runs the full pipeline: ticket-class breakdown (descriptive) and
// order aggregation (authoritative totals).
func (s *Service) live(ctx context.Context) (gross, net decimal.Decimal, types []models.TicketType, err error) {
	classes, err := s.api.ListTicketClasses(ctx, s.eventID)
	if err != nil {
		return decimal.Zero, decimal.Zero, nil, err
	}

	orders, partial, err := s.FetchOrders(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, nil, err
	}
	if partial {
		s.logger.Warn("order listing incomplete, totals may undercount", "orders", len(orders))
	}

	totals := AggregateOrders(orders)
	return totals.Gross, totals.Net(), EnrichTicketClasses(classes), nil
}
