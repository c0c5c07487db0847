package sales

import (
	"github.com/shopspring/decimal"

	"summerfest/backend/internal/integrations/eventbrite"
	"summerfest/backend/internal/models"
)

// mockOrders stands in for the provider's orders endpoint when credentials
// are absent, so the dashboard works in local development.
func mockOrders() []eventbrite.Order {
	return []eventbrite.Order{
		{
			Status: "completed",
			Attendees: []eventbrite.Attendee{
				{
					Profile:     &eventbrite.AttendeeProfile{Name: "John Doe"},
					TicketClass: &eventbrite.AttendeeTicketClass{Name: "Regular Admission"},
				},
			},
			Costs: eventbrite.OrderCosts{
				Gross:         &eventbrite.Money{Value: 7500},
				EventbriteFee: &eventbrite.Money{Value: 1000},
			},
		},
		{
			Status: "completed",
			Attendees: []eventbrite.Attendee{
				{
					Profile:     &eventbrite.AttendeeProfile{Name: "Jane Smith"},
					TicketClass: &eventbrite.AttendeeTicketClass{Name: "VIP"},
				},
			},
			Costs: eventbrite.OrderCosts{
				Gross:         &eventbrite.Money{Value: 15000},
				EventbriteFee: &eventbrite.Money{Value: 2000},
			},
		},
	}
}

type mockTicketClass struct {
	name string
	sold int
	cost int64 // major units
}

var mockTicketClasses = []mockTicketClass{
	{name: "Early Bird", sold: 150, cost: 50},
	{name: "Regular Admission", sold: 300, cost: 75},
	{name: "VIP", sold: 50, cost: 150},
	{name: "Student", sold: 100, cost: 25},
}

// mockSnapshot is the static fallback served when the live computation fails
// at any stage. The substitution is total: no live figures are mixed in.
func mockSnapshot() (gross, net decimal.Decimal, types []models.TicketType) {
	gross = decimal.NewFromInt(75000)
	net = decimal.NewFromInt(65000)

	types = make([]models.TicketType, 0, len(mockTicketClasses))
	for _, tc := range mockTicketClasses {
		revenue := decimal.NewFromInt(tc.cost).Mul(decimal.NewFromInt(int64(tc.sold)))
		types = append(types, models.TicketType{
			Name:              tc.name,
			QuantitySold:      tc.sold,
			QuantityTotal:     tc.sold,
			QuantityAvailable: 0,
			Cost:              float64(tc.cost),
			Fee:               0,
			GrossRevenue:      revenue.InexactFloat64(),
			NetRevenue:        revenue.InexactFloat64(),
			Status:            "active",
			OnSaleStatus:      "on_sale",
		})
	}
	return gross, net, types
}
