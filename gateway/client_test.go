package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsBearerAndCorrelation(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(func() string { return "tok-123" }))

	require.NoError(t, client.get(context.Background(), "/events", nil))

	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.NotEmpty(t, got.Get("Correlation-ID"))
}

func TestClientOmitsAuthorizationWhenSignedOut(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	require.NoError(t, client.get(context.Background(), "/events", nil))

	_, present := got["Authorization"]
	assert.False(t, present)
}

func TestClientSetsJSONContentType(t *testing.T) {
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	require.NoError(t, client.post(context.Background(), "/auth/login", map[string]string{"email": "a@b.c"}, nil))

	assert.Equal(t, "application/json", contentType)
}

func TestClientDecodesErrorBodies(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "fastapi detail", status: 400, body: `{"detail":"Stall sold out"}`, message: "Stall sold out"},
		{name: "message field", status: 404, body: `{"message":"Event not found"}`, message: "Event not found"},
		{name: "error field", status: 500, body: `{"error":"boom"}`, message: "boom"},
		{name: "malformed body", status: 502, body: `<html>bad gateway</html>`, message: "Bad Gateway"},
		{name: "empty object", status: 403, body: `{}`, message: "Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewClient(server.URL).get(context.Background(), "/x", nil)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := NewClient(server.URL).get(context.Background(), "/x", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "network error, please try again", apiErr.Message)
	assert.Zero(t, apiErr.StatusCode)
}

func TestClientUndecodableSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	var out map[string]any
	err := NewClient(server.URL).get(context.Background(), "/x", &out)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unexpected response from server", apiErr.Message)
}

func TestAPIErrorUnauthorized(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 401}).Unauthorized())
	assert.True(t, (&APIError{StatusCode: 403}).Unauthorized())
	assert.False(t, (&APIError{StatusCode: 400}).Unauthorized())

	err := error(&APIError{StatusCode: 401, Message: "Unauthorized"})
	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
}
