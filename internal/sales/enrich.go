package sales

import (
	"github.com/shopspring/decimal"

	"summerfest/backend/internal/integrations/eventbrite"
	"summerfest/backend/internal/models"
)

// EnrichTicketClasses computes per-ticket-type revenue. Order is preserved
// as received from the provider. The figures are descriptive only; the
// order-derived totals stay authoritative.
func EnrichTicketClasses(classes []eventbrite.TicketClass) []models.TicketType {
	types := make([]models.TicketType, 0, len(classes))
	for _, tc := range classes {
		cost, fee := effectiveCostFee(tc)
		price := cost.Major()
		feeAmount := fee.Major()
		sold := decimal.NewFromInt(int64(tc.QuantitySold))

		gross := price.Mul(sold)
		net := price.Sub(feeAmount).Mul(sold)

		types = append(types, models.TicketType{
			Name:              tc.Name,
			QuantitySold:      tc.QuantitySold,
			QuantityTotal:     tc.QuantityTotal,
			QuantityAvailable: tc.QuantityAvailable,
			Cost:              price.InexactFloat64(),
			Fee:               feeAmount.InexactFloat64(),
			GrossRevenue:      gross.InexactFloat64(),
			NetRevenue:        net.InexactFloat64(),
			Status:            tc.Status,
			OnSaleStatus:      tc.OnSaleStatus,
		})
	}
	return types
}

// effectiveCostFee applies the donation override: donation classes report
// the amount actually paid in actual_cost/actual_fee, falling back to the
// nominal listed price when those are absent.
func effectiveCostFee(tc eventbrite.TicketClass) (*eventbrite.Money, *eventbrite.Money) {
	cost, fee := tc.Cost, tc.Fee
	if tc.Donation {
		if tc.ActualCost != nil {
			cost = tc.ActualCost
		}
		if tc.ActualFee != nil {
			fee = tc.ActualFee
		}
	}
	return cost, fee
}
