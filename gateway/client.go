// Package gateway talks to the Sharthi backend. There is one base Client
// that owns auth, correlation and error decoding, and one thin client per
// backend area on top of it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v3"
)

// APIError is the single error type raised for every failed request:
// non-2xx responses, transport failures and undecodable bodies all surface
// through it. Message is safe to show to the user as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unauthorized reports whether the server rejected the bearer token.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// TokenSource yields the current bearer token, or an empty string when
// signed out. An empty token omits the Authorization header entirely; an
// empty bearer value is never sent.
type TokenSource func() string

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithTokenSource(token TokenSource) Option {
	return func(c *Client) { c.token = token }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      func() string { return "" },
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs one request/response cycle. body may be nil, a *multipartBody,
// or any JSON-encodable value; out may be nil when the response body is not
// needed.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	contentType := ""

	switch b := body.(type) {
	case nil:
	case *multipartBody:
		// the multipart writer already set the boundary in its own
		// content type
		reqBody = b.buf
		contentType = b.contentType
	default:
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("could not encode request: %v", err)}
		}
		reqBody = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("could not build request: %v", err)}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Correlation-ID", shortuuid.New())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "network error, please try again"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "network error, please try again"}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "unexpected response from server"}
	}

	return nil
}

func unmarshalOrAPIError(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Message: "unexpected response from server"}
	}
	return nil
}

// errorMessage digs a human-readable message out of an error body. The
// backend is inconsistent about the field name (FastAPI uses "detail", other
// revisions used "message" or "error"); a malformed or non-JSON body falls
// back to the HTTP status text.
func errorMessage(statusCode int, raw []byte) string {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(raw, &body); err == nil {
		for _, msg := range []string{body.Detail, body.Message, body.Error} {
			if msg != "" {
				return msg
			}
		}
	}

	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", statusCode)
}
