// Package api is the remote data client for the pipeline service's GraphQL
// endpoint, plus typed request builders and a Service that maps responses
// onto models and errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Client executes read and write operations against the remote API.
// A returned error means the call itself failed; server-side failures come
// back as a Response whose Errors list is non-empty.
type Client interface {
	Query(ctx context.Context, req Request) (*Response, error)
	Mutate(ctx context.Context, req Request) (*Response, error)
}

// ClientConfig holds configuration for creating an HTTPClient.
type ClientConfig struct {
	// Endpoint is the GraphQL URL, e.g. "https://data.example.com/graphql/api".
	Endpoint string
	// Token is sent verbatim as the Authorization header, scheme included
	// (e.g. "Bearer abc"), when set.
	Token string
	// Timeout bounds each request. Zero keeps the HTTP client's own timeout.
	Timeout time.Duration
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger receives one debug entry per operation.
	Logger zerolog.Logger
}

// HTTPClient is a Client that POSTs GraphQL envelopes over HTTP.
type HTTPClient struct {
	endpoint   string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ Client = (*HTTPClient)(nil)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 8 << 20

// NewHTTPClient creates a client for the given endpoint.
func NewHTTPClient(config ClientConfig) (*HTTPClient, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("api: Endpoint is required")
	}
	u, err := url.Parse(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("api: invalid Endpoint %q: %w", config.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api: Endpoint %q must be http or https", config.Endpoint)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		endpoint:   config.Endpoint,
		token:      config.Token,
		timeout:    config.Timeout,
		httpClient: httpClient,
		logger:     config.Logger,
	}, nil
}

// Query runs a read operation.
func (c *HTTPClient) Query(ctx context.Context, req Request) (*Response, error) {
	return c.do(ctx, "query", req)
}

// Mutate runs a write operation.
func (c *HTTPClient) Mutate(ctx context.Context, req Request) (*Response, error) {
	return c.do(ctx, "mutation", req)
}

func (c *HTTPClient) do(ctx context.Context, kind string, req Request) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("api: failed to encode %s: %w", req.OperationName, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("api: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", c.token)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("api: %s %s failed: %w", kind, req.OperationName, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("api: failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("kind", kind).
		Str("operation", req.OperationName).
		Int("status", httpResp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("graphql call")

	var resp Response
	decodeErr := json.Unmarshal(body, &resp)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		// GraphQL servers often pair a 4xx/5xx with a regular errors list.
		if decodeErr == nil && len(resp.Errors) > 0 {
			return &resp, nil
		}
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Body: string(body)}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("api: failed to decode response: %w", decodeErr)
	}
	return &resp, nil
}
