// Package api wraps the booking backend's REST surface behind a small
// client that normalizes every call into a Response envelope. Transport
// failures never surface as Go errors to callers; they come back as an
// error-shaped envelope so call sites handle one shape only.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Response is the normalized result of every backend call.
type Response struct {
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Status  int             `json:"status"`
	Success bool            `json:"success"`
}

// Decode unmarshals the envelope payload into v. Calling Decode on a
// failed envelope returns the envelope error.
func (r Response) Decode(v any) error {
	if !r.Success {
		if r.Error != "" {
			return fmt.Errorf("backend error (status %d): %s", r.Status, r.Error)
		}
		return fmt.Errorf("backend error (status %d)", r.Status)
	}
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// Client issues JSON requests against a base path. No retries, no
// backoff, no internal timeout: cancellation belongs to the caller's
// context.
type Client struct {
	baseURL string
	http    *http.Client
	headers map[string]string
	log     zerolog.Logger
}

// Option tweaks a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers[key] = value }
}

// WithLogger enables request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		headers: map[string]string{},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches endpoint. The endpoint may carry its own query string.
func (c *Client) Get(ctx context.Context, endpoint string) Response {
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

// Post sends body as JSON to endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, body any) Response {
	return c.do(ctx, http.MethodPost, endpoint, body)
}

// Put sends body as JSON to endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, body any) Response {
	return c.do(ctx, http.MethodPut, endpoint, body)
}

// Delete issues a DELETE against endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string) Response {
	return c.do(ctx, http.MethodDelete, endpoint, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any) Response {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return failure(http.StatusInternalServerError, fmt.Sprintf("encode request: %v", err))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return failure(http.StatusInternalServerError, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("method", method).Str("url", url).Err(err).Msg("transport failure")
		return failure(http.StatusInternalServerError, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(http.StatusInternalServerError, err.Error())
	}

	c.log.Debug().Str("method", method).Str("url", url).Int("status", resp.StatusCode).Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{
			Status:  resp.StatusCode,
			Success: false,
			Error:   errorMessage(raw, resp.StatusCode),
		}
	}

	return Response{
		Data:    json.RawMessage(raw),
		Status:  resp.StatusCode,
		Success: true,
	}
}

// errorMessage pulls the human message out of an error body. Backends
// here answer either {"message": ...} or {"error": ...}.
func errorMessage(body []byte, status int) string {
	if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	if msg := gjson.GetBytes(body, "error"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return http.StatusText(status)
}

func failure(status int, msg string) Response {
	return Response{Status: status, Success: false, Error: msg}
}
