package sales

import (
	"testing"

	"summerfest/backend/internal/integrations/eventbrite"
)

// TestFormatOrdersOneRecordPerAttendee verifies an order with two attendees
// yields exactly two records, each with quantity 1.
func TestFormatOrdersOneRecordPerAttendee(t *testing.T) {
	orders := []eventbrite.Order{
		{
			Status: "completed",
			Costs:  eventbrite.OrderCosts{Gross: &eventbrite.Money{Value: 7500}},
			Attendees: []eventbrite.Attendee{
				{
					Profile:     &eventbrite.AttendeeProfile{Name: "John Doe"},
					TicketClass: &eventbrite.AttendeeTicketClass{Name: "Regular Admission"},
				},
				{
					Profile:     &eventbrite.AttendeeProfile{Name: "Jane Smith"},
					TicketClass: &eventbrite.AttendeeTicketClass{Name: "VIP"},
				},
			},
		},
	}

	records := FormatOrders(orders)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, rec := range records {
		if rec.Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", rec.Quantity)
		}
		if rec.Price != 75 {
			t.Fatalf("expected price 75, got %v", rec.Price)
		}
	}
	if records[0].Name != "John Doe" || records[1].Name != "Jane Smith" {
		t.Fatalf("unexpected names: %q, %q", records[0].Name, records[1].Name)
	}
	if records[1].TicketType != "VIP" {
		t.Fatalf("expected ticket type VIP, got %q", records[1].TicketType)
	}
}

// TestFormatOrdersDefaults verifies missing profile, ticket class and costs
// fall back to "Unknown" and zero.
func TestFormatOrdersDefaults(t *testing.T) {
	orders := []eventbrite.Order{
		{
			Status:    "completed",
			Attendees: []eventbrite.Attendee{{}},
		},
	}

	records := FormatOrders(orders)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.Name != "Unknown" || rec.TicketType != "Unknown" {
		t.Fatalf("expected Unknown defaults, got %+v", rec)
	}
	if rec.Price != 0 {
		t.Fatalf("expected price 0, got %v", rec.Price)
	}
}

// TestFormatOrdersSkipsInvalidOrders verifies attendees of cancelled and
// refunded orders never reach the listing.
func TestFormatOrdersSkipsInvalidOrders(t *testing.T) {
	orders := []eventbrite.Order{
		{
			Status:    "refunded",
			Attendees: []eventbrite.Attendee{{Profile: &eventbrite.AttendeeProfile{Name: "Ghost"}}},
		},
		{
			Status:    "cancelled",
			Attendees: []eventbrite.Attendee{{Profile: &eventbrite.AttendeeProfile{Name: "Gone"}}},
		},
		{
			Status:    "completed",
			Attendees: []eventbrite.Attendee{{Profile: &eventbrite.AttendeeProfile{Name: "Here"}}},
		},
	}

	records := FormatOrders(orders)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "Here" {
		t.Fatalf("expected Here, got %q", records[0].Name)
	}
}
