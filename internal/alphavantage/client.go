package alphavantage

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Alpha Vantage endpoint root.
const DefaultBaseURL = "https://www.alphavantage.co"

// requestTimeout bounds every upstream call. There are no retries.
const requestTimeout = 30 * time.Second

// Upstream function identifiers, one per tool.
const (
	FuncGlobalQuote     = "GLOBAL_QUOTE"
	FuncTimeSeriesDaily = "TIME_SERIES_DAILY"
	FuncIncomeStatement = "INCOME_STATEMENT"
	FuncBalanceSheet    = "BALANCE_SHEET"
	FuncCashFlow        = "CASH_FLOW"
	FuncOverview        = "OVERVIEW"
	FuncNewsSentiment   = "NEWS_SENTIMENT"
	FuncEarnings        = "EARNINGS"
)

// Client issues queries against the Alpha Vantage API. It holds no
// mutable state, so concurrent queries need no coordination.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Option adjusts client construction.
type Option func(*Client)

// WithBaseURL overrides the upstream endpoint root.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(base, "/") }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New builds a client around the API key. The key is attached to every
// outbound request and never logged.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query runs one GET against the query endpoint and normalizes the
// outcome. params carries the operation-specific arguments; function and
// apikey are appended here. url.Values encoding sorts keys, so the built
// URL is deterministic for any given argument bag.
func (c *Client) Query(ctx context.Context, function string, params url.Values) Envelope {
	if params == nil {
		params = url.Values{}
	}
	params.Set("function", function)
	params.Set("apikey", c.apiKey)

	reqURL := c.baseURL + "/query?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Failure("Request failed: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Failure("Request timed out")
		}
		return Failure("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Failure("HTTP error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return Failure("Request timed out")
		}
		return Failure("Request failed: %v", err)
	}
	return normalize(body)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
