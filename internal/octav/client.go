package octav

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chainfolio/taxport/pkg/ratelimiter"
)

const DefaultBaseURL = "https://api.octav.fi/v1"

// Client is a thin typed wrapper over the Octav REST API. All state a call
// needs (key, addresses, filters) is passed explicitly; the client itself only
// holds transport configuration.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	rateLimiter *ratelimiter.RateLimiter
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

func WithRateLimiter(rl *ratelimiter.RateLimiter) ClientOption {
	return func(c *Client) { c.rateLimiter = rl }
}

func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and returns the raw response body. Non-2xx statuses
// come back as the typed errors in errors.go.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body any) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	reqURL := c.baseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	slog.Debug("HTTP request completed", "url", reqURL, "status", resp.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, data)
	}
	return data, nil
}

// TransactionsQuery selects a page of the transaction history.
type TransactionsQuery struct {
	Addresses []string
	Chain     string
	Type      string
	StartDate string
	EndDate   string
	Offset    int
	Limit     int
}

func (q TransactionsQuery) values() url.Values {
	params := url.Values{}
	for _, addr := range q.Addresses {
		params.Add("addresses", addr)
	}
	if q.Chain != "" {
		params.Set("chain", q.Chain)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.StartDate != "" {
		params.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("endDate", q.EndDate)
	}
	params.Set("offset", strconv.Itoa(q.Offset))
	params.Set("limit", strconv.Itoa(q.Limit))
	return params
}

// GetTransactions fetches one page. Each call costs one credit regardless of
// how many transactions the page contains.
func (c *Client) GetTransactions(ctx context.Context, q TransactionsQuery) (*TransactionsResponse, error) {
	data, err := c.do(ctx, http.MethodGet, "/transactions", q.values(), nil)
	if err != nil {
		return nil, err
	}
	var resp TransactionsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal transactions response: %w", err)
	}
	return &resp, nil
}

// GetCredits returns the remaining credit balance. The endpoint responds with
// a bare number, not a JSON object.
func (c *Client) GetCredits(ctx context.Context) (float64, error) {
	data, err := c.do(ctx, http.MethodGet, "/credits", nil, nil)
	if err != nil {
		return 0, err
	}
	raw := strings.TrimSpace(string(data))
	credits, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &APIError{Message: fmt.Sprintf("unexpected credits response: %s", raw)}
	}
	return credits, nil
}

// GetStatus reports sync state for each address.
func (c *Client) GetStatus(ctx context.Context, addresses []string) ([]StatusEntry, error) {
	params := url.Values{}
	for _, addr := range addresses {
		params.Add("addresses", addr)
	}
	data, err := c.do(ctx, http.MethodGet, "/status", params, nil)
	if err != nil {
		return nil, err
	}
	var entries []StatusEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal status response: %w", err)
	}
	return entries, nil
}

// GetPortfolio returns the portfolio summary for each address.
func (c *Client) GetPortfolio(ctx context.Context, addresses []string) ([]PortfolioEntry, error) {
	params := url.Values{}
	for _, addr := range addresses {
		params.Add("addresses", addr)
	}
	data, err := c.do(ctx, http.MethodGet, "/portfolio", params, nil)
	if err != nil {
		return nil, err
	}
	var entries []PortfolioEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal portfolio response: %w", err)
	}
	return entries, nil
}

// SyncTransactions asks the API to index new history for the addresses. The
// response body is a quoted status string.
func (c *Client) SyncTransactions(ctx context.Context, addresses []string) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/sync-transactions", nil, map[string][]string{"addresses": addresses})
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(string(data)), `"`), nil
}
