package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client handles calls to an Alephium node and the price feed
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	priceURL   string
	logger     zerolog.Logger
}

const (
	// MaxResponseSize caps how much of a response body is read.
	MaxResponseSize = 4 << 20
	// MaxErrorBodySize caps the raw body kept on an *Error.
	MaxErrorBodySize = 1024
)

var errResponseTooLarge = fmt.Errorf("response body exceeds %d bytes", MaxResponseSize)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sends requests through a copy of httpClient, so its
// transport is shared but its settings are never modified. Nil is ignored.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient == nil {
			return
		}
		cp := *httpClient
		c.httpClient = &cp
	}
}

// WithTimeout sets the per-request timeout. Zero or negative keeps the default.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithPriceURL overrides the price feed base URL.
func WithPriceURL(priceURL string) ClientOption {
	return func(c *Client) {
		c.priceURL = strings.TrimRight(priceURL, "/")
	}
}

// NewClient creates a new API client for the node at baseURL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		priceURL: DefaultPriceURL,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}

	return c
}

// BaseURL returns the node URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON sends one request and returns the body of a 2xx response.
// payload may be nil for requests without a body.
func (c *Client) doJSON(ctx context.Context, op, method, url string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("op", op).Str("method", method).Str("url", url).Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(transportError(op, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, c.fail(transportError(op, err))
	}
	tooLarge := len(body) > MaxResponseSize
	if tooLarge {
		body = body[:MaxResponseSize]
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rejected := &Error{
			Op:         op,
			Kind:       KindRejected,
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}
		var nodeErr nodeErrorResponse
		if !tooLarge && json.Unmarshal(body, &nodeErr) == nil {
			rejected.Detail = nodeErr.Detail
		}
		return nil, c.fail(rejected)
	}

	if tooLarge {
		return nil, c.fail(parseError(op, body, errResponseTooLarge))
	}

	return body, nil
}

func truncateBody(body []byte) string {
	if len(body) > MaxErrorBodySize {
		return string(body[:MaxErrorBodySize])
	}
	return string(body)
}

// fail logs the diagnostic line for a failed call and hands the error back.
func (c *Client) fail(apiErr *Error) error {
	event := c.logger.Error().
		Str("op", apiErr.Op).
		Stringer("kind", apiErr.Kind)
	if apiErr.StatusCode != 0 {
		event = event.Int("status", apiErr.StatusCode)
	}
	if apiErr.Err != nil {
		event = event.Err(apiErr.Err)
	}
	event.Msg("node request failed")
	return apiErr
}
