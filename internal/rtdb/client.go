// Package rtdb is a small client for a Firebase-style realtime JSON database
// accessed over its REST interface. Every node is addressed as
// {baseURL}/{collection}/{id}.json.
package rtdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotFound is returned by Get when the node holds no value.
var ErrNotFound = errors.New("node not found")

// RejectedError is returned when the store answers with anything other than
// 200 OK. The request reached the store; it refused it.
type RejectedError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s %s rejected: %d %s; body: %s",
		e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Client talks to one database instance.
type Client struct {
	baseURL   string
	authToken string
	http      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAuthToken appends ?auth=<token> to every request.
func WithAuthToken(token string) Option {
	return func(c *Client) { c.authToken = token }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the database rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the database root the client writes to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Put replaces the value at collection/id with v.
func (c *Client) Put(ctx context.Context, collection, id string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}
	_, err = c.do(ctx, http.MethodPut, body, collection, id)
	return err
}

// Get decodes the value at collection/id into v. It returns ErrNotFound if
// the node is empty.
func (c *Client) Get(ctx context.Context, collection, id string, v any) error {
	raw, err := c.do(ctx, http.MethodGet, nil, collection, id)
	if err != nil {
		return err
	}
	if isNull(raw) {
		return fmt.Errorf("get %s/%s: %w", collection, id, ErrNotFound)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return nil
}

// GetAll returns every record in collection keyed by id. An empty collection
// yields an empty map.
func (c *Client) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodGet, nil, collection)
	if err != nil {
		return nil, err
	}
	records := make(map[string]json.RawMessage)
	if isNull(raw) {
		return records, nil
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return records, nil
}

// Delete removes the value at collection/id.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	_, err := c.do(ctx, http.MethodDelete, nil, collection, id)
	return err
}

func (c *Client) do(ctx context.Context, method string, body []byte, segments ...string) ([]byte, error) {
	path := nodePath(segments...)

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RejectedError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}
	return respBody, nil
}

func (c *Client) url(path string) string {
	u := c.baseURL + path
	if c.authToken != "" {
		u += "?auth=" + url.QueryEscape(c.authToken)
	}
	return u
}

// nodePath builds "/a/b.json" from path segments.
func nodePath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/") + ".json"
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
