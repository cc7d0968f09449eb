// Package supabase is the adapter for the hosted backend: auth, a
// PostgREST table surface and file storage. The wire protocol belongs to
// the platform, not to us; this package only shapes requests and decodes
// responses.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Config configures the adapter. ProjectURL and AnonKey are required;
// the client refuses to construct without them.
type Config struct {
	ProjectURL string
	AnonKey    string
	// JWTSecret enables local verification of session tokens. Optional;
	// without it token checks fall back to the auth REST endpoint.
	JWTSecret string
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	// AllowedHosts restricts outgoing requests. Empty means "derive
	// from ProjectURL".
	AllowedHosts []string
}

// Client talks to one Supabase project.
type Client struct {
	baseURL   string
	anonKey   string
	jwtSecret string
	http      *http.Client
	allowed   map[string]struct{}
}

// New builds a client. Missing URL or key is a construction-time error.
func New(cfg Config) (*Client, error) {
	if cfg.ProjectURL == "" {
		return nil, fmt.Errorf("supabase: project URL is required")
	}
	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("supabase: anon key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	allowed := make(map[string]struct{})
	if len(cfg.AllowedHosts) == 0 {
		if u, err := url.Parse(cfg.ProjectURL); err == nil && u.Hostname() != "" {
			allowed[u.Hostname()] = struct{}{}
		}
	} else {
		for _, h := range cfg.AllowedHosts {
			if h != "" {
				allowed[h] = struct{}{}
			}
		}
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.ProjectURL, "/"),
		anonKey:   cfg.AnonKey,
		jwtSecret: cfg.JWTSecret,
		http:      httpClient,
		allowed:   allowed,
	}, nil
}

// request performs one call with the project api key attached. bearer
// overrides the Authorization token (user session); empty means anon.
func (c *Client) request(ctx context.Context, method, rawURL string, headers map[string]string, body io.Reader, bearer string) (*http.Response, error) {
	if err := c.ensureAllowed(rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}
	return c.http.Do(req)
}

// requestJSON performs a call with a JSON body and decodes a JSON reply
// into dest when dest is non-nil.
func (c *Client) requestJSON(ctx context.Context, method, rawURL string, headers map[string]string, payload, dest any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}
	if headers == nil {
		headers = map[string]string{}
	}
	if payload != nil {
		headers["Content-Type"] = "application/json"
	}

	resp, err := c.request(ctx, method, rawURL, headers, body, bearerFrom(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, raw)
	}
	if dest == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func (c *Client) ensureAllowed(rawURL string) error {
	if len(c.allowed) == 0 {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("supabase: invalid url: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("supabase: invalid url host")
	}
	if _, ok := c.allowed[host]; !ok {
		return fmt.Errorf("supabase: host not allowed: %s", host)
	}
	return nil
}

// Error is a failed platform call.
type Error struct {
	Status  int
	Message string
}

func (e Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("supabase: status %d", e.Status)
}

func apiError(status int, body []byte) error {
	var shaped struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.Unmarshal(body, &shaped)
	msg := shaped.Message
	if msg == "" {
		msg = shaped.Msg
	}
	if msg == "" {
		msg = shaped.ErrorDescription
	}
	return Error{Status: status, Message: msg}
}

type ctxKey string

const bearerKey ctxKey = "supabase_bearer"

// WithBearer returns a context whose requests run under the given user
// session token instead of the anon key. Row-level security on the
// platform keys off this.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey, token)
}

func bearerFrom(ctx context.Context) string {
	if v, ok := ctx.Value(bearerKey).(string); ok {
		return v
	}
	return ""
}
