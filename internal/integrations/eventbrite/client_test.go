package eventbrite

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		BaseURL:           srv.URL,
		APIKey:            "key",
		OAuthToken:        "token",
		RequestsPerSecond: 1000,
	}, srv.Client(), nil)
	return client, srv
}

// TestListOrdersPaginates verifies sequential page fetching with attendees
// expanded, terminated by has_more_items=false.
func TestListOrdersPaginates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Fatalf("unexpected auth header: %s", got)
		}
		if r.URL.Path != "/events/evt1/orders/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("expand"); got != "attendees" {
			t.Fatalf("expected expand=attendees, got %q", got)
		}
		switch r.URL.Query().Get("page") {
		case "1":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"orders":     []map[string]interface{}{{"status": "completed"}, {"status": "placed"}},
				"pagination": map[string]interface{}{"page_number": 1, "has_more_items": true},
			})
		case "2":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"orders":     []map[string]interface{}{{"status": "refunded"}},
				"pagination": map[string]interface{}{"page_number": 2, "has_more_items": false},
			})
		default:
			t.Fatalf("unexpected page: %s", r.URL.Query().Get("page"))
		}
	})

	orders, partial, err := client.ListOrders(context.Background(), "evt1")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if partial {
		t.Fatalf("expected complete listing")
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
}

// TestListOrdersPartialOnMidPaginationFailure verifies a failing later page
// returns the pages already fetched, flagged partial, with no error.
func TestListOrdersPartialOnMidPaginationFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"orders":     []map[string]interface{}{{"status": "completed"}},
				"pagination": map[string]interface{}{"page_number": 1, "has_more_items": true},
			})
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	orders, partial, err := client.ListOrders(context.Background(), "evt1")
	if err != nil {
		t.Fatalf("expected partial tolerance, got error: %v", err)
	}
	if !partial {
		t.Fatalf("expected partial flag")
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order from first page, got %d", len(orders))
	}
}

// TestListOrdersFirstPageFailureIsError verifies a failure before any page
// arrives is a real error, not an empty partial success.
func TestListOrdersFirstPageFailureIsError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "NOT FOUND", http.StatusNotFound)
	})

	_, _, err := client.ListOrders(context.Background(), "evt1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "NOT FOUND") {
		t.Fatalf("expected upstream body in error, got %q", apiErr.Error())
	}
}

// TestListOrdersMissingCredentials verifies no network call is attempted
// without credentials.
func TestListOrdersMissingCredentials(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:0"}, nil, nil)
	_, _, err := client.ListOrders(context.Background(), "evt1")
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

// TestListTicketClasses verifies decoding of the ticket_classes envelope.
func TestListTicketClasses(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/evt1/ticket_classes/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ticket_classes": []map[string]interface{}{
				{
					"name":          "VIP",
					"quantity_sold": 5,
					"donation":      true,
					"cost":          map[string]interface{}{"value": 15000, "major_value": "150.00"},
					"actual_cost":   map[string]interface{}{"value": 1250},
				},
			},
		})
	})

	classes, err := client.ListTicketClasses(context.Background(), "evt1")
	if err != nil {
		t.Fatalf("list ticket classes: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(classes))
	}
	tc := classes[0]
	if tc.Name != "VIP" || tc.QuantitySold != 5 || !tc.Donation {
		t.Fatalf("unexpected class: %+v", tc)
	}
	if tc.Cost == nil || tc.Cost.Value != 15000 {
		t.Fatalf("unexpected cost: %+v", tc.Cost)
	}
	if tc.ActualCost == nil || tc.ActualCost.Major().String() != "12.5" {
		t.Fatalf("unexpected actual cost: %+v", tc.ActualCost)
	}
}

// TestListTicketClassesRejectsMissingField verifies a well-formed response
// without ticket_classes is an explicit error, never a silent empty list.
func TestListTicketClassesRejectsMissingField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"unexpected": true})
	})

	_, err := client.ListTicketClasses(context.Background(), "evt1")
	if err == nil || !strings.Contains(err.Error(), "ticket_classes") {
		t.Fatalf("expected missing field error, got %v", err)
	}
}

// TestGetEventPassthrough verifies the raw body comes back unmodified with
// ticket classes expanded, and non-object payloads are rejected.
func TestGetEventPassthrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("expand"); got != "ticket_classes" {
			t.Fatalf("expected expand=ticket_classes, got %q", got)
		}
		_, _ = w.Write([]byte(`{"id":"evt1","name":{"text":"Summerfest"}}`))
	})

	raw, err := client.GetEvent(context.Background(), "evt1")
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if !strings.Contains(string(raw), "Summerfest") {
		t.Fatalf("unexpected raw body: %s", raw)
	}
}

func TestGetEventRejectsNonObject(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1,2,3]`))
	})

	if _, err := client.GetEvent(context.Background(), "evt1"); err == nil {
		t.Fatalf("expected decode error for non-object payload")
	}
}
