package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/depscan/pkg/observability"
)

// Client is the HTTP transport shared by the registry clients. Every lookup
// is one GET request: responses are not cached and failures are not retried.
//
// A Client is safe for concurrent use.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client whose requests time out after timeout and carry
// headers. A nil headers map is allowed.
func NewClient(timeout time.Duration, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(timeout),
		headers: headers,
	}
}

// Get fetches url with the client's headers and decodes the JSON body into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	req, err := c.newRequest(ctx, url)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// do sends req, reports it to the HTTP hooks and maps the status code.
// On success the caller owns the response body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	method, host, path := req.Method, req.URL.Host, req.URL.Path

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	hooks.OnResponse(ctx, method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
