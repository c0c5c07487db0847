package sales

import (
	"github.com/shopspring/decimal"

	"summerfest/backend/internal/integrations/eventbrite"
)

const (
	statusCancelled = "cancelled"
	statusRefunded  = "refunded"
)

// OrderTotals are the order-derived revenue figures. They are the
// authoritative totals: order costs reflect the amounts actually paid,
// including variable donation amounts the ticket-class listing cannot see.
type OrderTotals struct {
	Gross decimal.Decimal
	Fees  decimal.Decimal
}

// Net is gross revenue minus provider fees.
func (t OrderTotals) Net() decimal.Decimal {
	return t.Gross.Sub(t.Fees)
}

// ValidOrders drops cancelled and refunded orders. Everything downstream
// (totals, attendee listing) only ever sees valid orders.
func ValidOrders(orders []eventbrite.Order) []eventbrite.Order {
	valid := make([]eventbrite.Order, 0, len(orders))
	for _, order := range orders {
		switch order.Status {
		case statusCancelled, statusRefunded:
			continue
		}
		valid = append(valid, order)
	}
	return valid
}

// AggregateOrders sums gross revenue and provider fees across valid orders.
// Minor-unit values are converted through decimal arithmetic so hundreds of
// orders accumulate without binary rounding drift. Missing cost fields count
// as zero.
func AggregateOrders(orders []eventbrite.Order) OrderTotals {
	totals := OrderTotals{Gross: decimal.Zero, Fees: decimal.Zero}
	for _, order := range ValidOrders(orders) {
		totals.Gross = totals.Gross.Add(order.Costs.Gross.Major())
		totals.Fees = totals.Fees.Add(order.Costs.EventbriteFee.Major())
	}
	return totals
}
