// Package cardissuer proxies the card-issuing provider's REST API. Responses
// are passed through verbatim so the caller can forward upstream status and
// body to its own clients.
package cardissuer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://app.leadingcards.media/v1"

// metaEndpoints maps the short meta resource names to upstream paths.
var metaEndpoints = map[string]string{
	"bins":         "cards/bins",
	"billing":      "billing_addresses",
	"tags":         "tags",
	"transactions": "transactions",
	"teams":        "teams",
}

// Response carries an upstream reply for verbatim forwarding.
type Response struct {
	Status int
	Body   []byte
}

// Client talks to the card-issuing API with a team-scoped token.
type Client struct {
	token      string
	teamUUID   string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a card-issuer client. teamUUID may be empty; when set it
// is injected into card listing and creation calls.
func NewClient(token, teamUUID string) *Client {
	return &Client{
		token:      token,
		teamUUID:   teamUUID,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL creates a client against a non-default API endpoint.
func NewClientWithBaseURL(token, teamUUID, baseURL string) *Client {
	c := NewClient(token, teamUUID)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// ListCards fetches cards, scoped to the configured team.
func (c *Client) ListCards(ctx context.Context, query url.Values) (*Response, error) {
	if query == nil {
		query = url.Values{}
	}
	if c.teamUUID != "" {
		query.Set("team_uuid", c.teamUUID)
	}
	return c.do(ctx, http.MethodGet, "/cards/?"+query.Encode(), nil)
}

// CreateCard issues a new card. The configured team uuid is injected into
// the payload.
func (c *Client) CreateCard(ctx context.Context, payload map[string]any) (*Response, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	if c.teamUUID != "" {
		payload["team_uuid"] = c.teamUUID
	}
	return c.do(ctx, http.MethodPost, "/cards/", payload)
}

// CardAction blocks or activates a card.
func (c *Client) CardAction(ctx context.Context, cardUUID, action string) (*Response, error) {
	if action != "block" && action != "activate" {
		return nil, fmt.Errorf("unsupported card action %q", action)
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/cards/%s/%s/", cardUUID, action), nil)
}

// ChangeLimit updates a card's spend limit.
func (c *Client) ChangeLimit(ctx context.Context, cardUUID string, payload map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/cards/%s/change_limit/", cardUUID), payload)
}

// Meta fetches one of the supporting resources (bins, billing, tags,
// transactions, teams).
func (c *Client) Meta(ctx context.Context, resource string, query url.Values) (*Response, error) {
	endpoint, ok := metaEndpoints[resource]
	if !ok {
		return nil, fmt.Errorf("unknown meta resource %q", resource)
	}
	path := "/" + endpoint + "/"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// CreateBillingAddress adds a billing address for card issuance.
func (c *Client) CreateBillingAddress(ctx context.Context, payload map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/billing_addresses/", payload)
}

func (c *Client) do(ctx context.Context, method, path string, payload map[string]any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("card issuer request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading card issuer response: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: data}, nil
}
