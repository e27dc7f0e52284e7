// Package listingsapi is the HTTP client for the listings REST API.
package listingsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"realty_listings/internal/adapters/observability"
)

const service = "listings"

var ErrNotFound = errors.New("listingsapi: not found")

// StatusError is a non-2xx response. Message is the server's {"error": ...} text when present.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("listingsapi: status %d", e.Status)
	}
	return fmt.Sprintf("listingsapi: status %d: %s", e.Status, e.Message)
}

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New returns a client for the API rooted at base. rps throttles outgoing requests.
func New(base string, rps int) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid listings API base URL %q", base)
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ListProperties fetches GET /api/properties with params as the query string.
func (c *Client) ListProperties(ctx context.Context, params url.Values) ([]map[string]any, error) {
	u := c.base + "/api/properties"
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	var out []map[string]any
	if err := c.get(ctx, "list", u, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []map[string]any{}
	}
	return out, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "get", c.base+"/api/properties/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// get performs one rate-limited GET and decodes the JSON body into out. Failures are
// returned as-is; the caller decides whether to try again.
func (c *Client) get(ctx context.Context, endpoint, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "realty-listings/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Message: errorMessage(b)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} from b, falling back to the raw text.
func errorMessage(b []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(b, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(b))
}
