package models

// EventMetrics is the dashboard payload for /api/metrics. Degraded reports
// that the mock snapshot was substituted for live provider data.
type EventMetrics struct {
	TotalGross     float64      `json:"total_gross"`
	TotalNet       float64      `json:"total_net"`
	TicketTypes    []TicketType `json:"ticket_types"`
	GoalPercentage float64      `json:"goal_percentage"`
	Degraded       bool         `json:"degraded"`
}

// TicketType is the per-ticket-class revenue breakdown. Monetary fields are
// major units at display precision; the exact arithmetic happens upstream.
type TicketType struct {
	Name              string  `json:"name"`
	QuantitySold      int     `json:"quantity_sold"`
	QuantityTotal     int     `json:"quantity_total"`
	QuantityAvailable int     `json:"quantity_available"`
	Cost              float64 `json:"cost"`
	Fee               float64 `json:"fee"`
	GrossRevenue      float64 `json:"gross_revenue"`
	NetRevenue        float64 `json:"net_revenue"`
	Status            string  `json:"status"`
	OnSaleStatus      string  `json:"on_sale_status"`
}

// OrderRecord is one attendee row in the orders listing.
type OrderRecord struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	TicketType string  `json:"ticket_type"`
	Price      float64 `json:"price"`
}
