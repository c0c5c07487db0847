package eventbrite

import "github.com/shopspring/decimal"

// Money is the provider's monetary shape: Value carries minor units (cents),
// MajorValue a decimal string, depending on the endpoint.
type Money struct {
	Currency   string `json:"currency"`
	Value      int64  `json:"value"`
	MajorValue string `json:"major_value"`
}

// Major converts minor units to major units exactly. Nil means the provider
// omitted the field, which counts as zero.
func (m *Money) Major() decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	return decimal.New(m.Value, -2)
}

// TicketClass is one ticket tier as returned by /events/{id}/ticket_classes/.
// Donation classes carry the amount actually paid in ActualCost/ActualFee;
// Cost/Fee hold the nominal listed price.
type TicketClass struct {
	Name              string `json:"name"`
	QuantitySold      int    `json:"quantity_sold"`
	QuantityTotal     int    `json:"quantity_total"`
	QuantityAvailable int    `json:"quantity_available"`
	Cost              *Money `json:"cost"`
	Fee               *Money `json:"fee"`
	Donation          bool   `json:"donation"`
	ActualCost        *Money `json:"actual_cost"`
	ActualFee         *Money `json:"actual_fee"`
	Status            string `json:"status"`
	OnSaleStatus      string `json:"on_sale_status"`
}

// Order is one purchase, possibly covering several attendees.
type Order struct {
	Status    string     `json:"status"`
	Costs     OrderCosts `json:"costs"`
	Attendees []Attendee `json:"attendees"`
}

type OrderCosts struct {
	Gross         *Money `json:"gross"`
	EventbriteFee *Money `json:"eventbrite_fee"`
}

type Attendee struct {
	Profile     *AttendeeProfile     `json:"profile"`
	TicketClass *AttendeeTicketClass `json:"ticket_class"`
}

type AttendeeProfile struct {
	Name string `json:"name"`
}

type AttendeeTicketClass struct {
	Name string `json:"name"`
}

type Pagination struct {
	PageNumber   int  `json:"page_number"`
	PageCount    int  `json:"page_count"`
	HasMoreItems bool `json:"has_more_items"`
}
