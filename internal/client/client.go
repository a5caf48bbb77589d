// Package client is the typed Go SDK for the store administration API.
// It carries the session token, decodes the standard response envelope
// and reacts to authentication failures by clearing the session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

const apiPrefix = "/api/v1"

// APIError is an error response from the server
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Client talks to the store API. Requests are sent as-is: no retries,
// no deduplication, and timeouts are whatever the http.Client does.
type Client struct {
	baseURL           string
	httpc             *http.Client
	session           *SessionStore
	onUnauthenticated func()
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithOnUnauthenticated sets the hook invoked after the session is
// cleared because the server rejected the credentials
func WithOnUnauthenticated(fn func()) Option {
	return func(c *Client) {
		c.onUnauthenticated = fn
	}
}

// New creates a Client against the given base URL, e.g. "http://localhost:5001"
func New(baseURL string, session *SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session store the client authenticates from
func (c *Client) Session() *SessionStore {
	return c.session
}

// envelope mirrors the server's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do sends one request and decodes the envelope's data into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if isJSON(resp.Header.Get("Content-Type")) {
		// A decode failure on a JSON response still falls through to
		// the status handling below with the raw body as the message.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if len(env.Data) > 0 {
			return json.Unmarshal(env.Data, out)
		}
		if len(raw) > 0 {
			return json.Unmarshal(raw, out)
		}
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode}
	if env.Error != nil && env.Error.Message != "" {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	} else if len(raw) > 0 {
		apiErr.Message = strings.TrimSpace(string(raw))
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized || strings.Contains(strings.ToLower(apiErr.Message), "jwt") {
		c.session.Clear()
		if c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
	}

	return apiErr
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
