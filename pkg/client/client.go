// Package client is a typed HTTP client for the property catalog API. Reads
// are cached per request path and mutations coarsely invalidate the affected
// resource prefix, mirroring the web frontend's query layer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Client struct {
	baseURL string
	http    *http.Client
	cache   *queryCache
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		cache:   newQueryCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError carries the HTTP status and the {message} body of a failed call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// get serves from cache when possible and caches successful responses.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if data, ok := c.cache.get(path); ok {
		return json.Unmarshal(data, out)
	}

	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	c.cache.set(path, data)
	return json.Unmarshal(data, out)
}

// send issues a mutation. Callers invalidate the cache prefixes they touch.
func (c *Client) send(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	data, err := c.doBody(ctx, method, path, body, in != nil)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	return c.doBody(ctx, method, path, body, false)
}

func (c *Client) doBody(ctx context.Context, method, path string, body io.Reader, hasJSON bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), body)
	if err != nil {
		return nil, err
	}
	if hasJSON {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	return data, nil
}

func newAPIError(status int, body []byte) *APIError {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Message == "" {
		parsed.Message = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: parsed.Message}
}
