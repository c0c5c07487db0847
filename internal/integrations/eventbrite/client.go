package eventbrite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.eventbriteapi.com/v3"

// ErrMissingCredentials is returned when the API key or OAuth token is absent.
var ErrMissingCredentials = errors.New("eventbrite credentials not configured")

// APIError is a non-200 provider response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eventbrite api status %d: %s", e.StatusCode, e.Body)
}

type Config struct {
	BaseURL    string
	APIKey     string
	OAuthToken string
	// RequestsPerSecond paces calls against the provider; zero means the
	// default of 5 rps.
	RequestsPerSecond float64
}

type Client struct {
	baseURL    string
	apiKey     string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		token:      strings.TrimSpace(cfg.OAuthToken),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// HasCredentials reports whether both the API key and OAuth token are set.
func (c *Client) HasCredentials() bool {
	return c.apiKey != "" && c.token != ""
}

// GetEvent fetches the raw event resource with ticket classes expanded. The
// body is returned unparsed for the debug passthrough endpoint.
func (c *Client) GetEvent(ctx context.Context, eventID string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("expand", "ticket_classes")
	body, err := c.get(ctx, fmt.Sprintf("/events/%s/", url.PathEscape(eventID)), query)
	if err != nil {
		return nil, err
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("decode event response: %w", err)
	}
	return body, nil
}

// ListTicketClasses fetches the ticket classes for an event. A response
// without a ticket_classes field is rejected.
func (c *Client) ListTicketClasses(ctx context.Context, eventID string) ([]TicketClass, error) {
	body, err := c.get(ctx, fmt.Sprintf("/events/%s/ticket_classes/", url.PathEscape(eventID)), nil)
	if err != nil {
		return nil, err
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode ticket classes response: %w", err)
	}
	raw, ok := payload["ticket_classes"]
	if !ok {
		return nil, fmt.Errorf("ticket classes response missing ticket_classes field")
	}
	var classes []TicketClass
	if err := json.Unmarshal(raw, &classes); err != nil {
		return nil, fmt.Errorf("decode ticket classes: %w", err)
	}
	return classes, nil
}

type ordersPage struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// ListOrders walks the orders endpoint page by page with attendees expanded.
// Pagination is page-number based, so fetches are strictly sequential. A
// failure after the first page returns the pages fetched so far with
// partial=true instead of an error; a first-page failure is an error.
func (c *Client) ListOrders(ctx context.Context, eventID string) (orders []Order, partial bool, err error) {
	if !c.HasCredentials() {
		return nil, false, ErrMissingCredentials
	}

	path := fmt.Sprintf("/events/%s/orders/", url.PathEscape(eventID))
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("expand", "attendees")

		body, err := c.get(ctx, path, query)
		if err != nil {
			if page == 1 {
				return nil, false, err
			}
			c.logger.Warn("orders pagination aborted", "page", page, "error", err)
			return orders, true, nil
		}

		var resp ordersPage
		if err := json.Unmarshal(body, &resp); err != nil {
			if page == 1 {
				return nil, false, fmt.Errorf("decode orders response: %w", err)
			}
			c.logger.Warn("orders pagination aborted", "page", page, "error", err)
			return orders, true, nil
		}

		orders = append(orders, resp.Orders...)
		if !resp.Pagination.HasMoreItems {
			return orders, false, nil
		}
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingCredentials
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}
