package sales

import (
	"summerfest/backend/internal/integrations/eventbrite"
	"summerfest/backend/internal/models"
)

const unknownLabel = "Unknown"

// FormatOrders expands valid orders into one listing row per attendee. An
// order with N attendees yields N records, each with quantity 1.
func FormatOrders(orders []eventbrite.Order) []models.OrderRecord {
	records := make([]models.OrderRecord, 0, len(orders))
	for _, order := range ValidOrders(orders) {
		price := order.Costs.Gross.Major().InexactFloat64()
		for _, attendee := range order.Attendees {
			name := unknownLabel
			if attendee.Profile != nil && attendee.Profile.Name != "" {
				name = attendee.Profile.Name
			}
			ticketType := unknownLabel
			if attendee.TicketClass != nil && attendee.TicketClass.Name != "" {
				ticketType = attendee.TicketClass.Name
			}
			records = append(records, models.OrderRecord{
				Name:       name,
				Quantity:   1,
				TicketType: ticketType,
				Price:      price,
			})
		}
	}
	return records
}
