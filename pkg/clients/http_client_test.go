package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Token-Check", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("Accept", "application/json")

	statusCode, body, respHeaders, err := NewHTTPClient().Get(context.Background(), server.URL, headers)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.JSONEq(t, `{"valid":true}`, string(body))
	assert.Equal(t, "application/json", respHeaders.Get("X-Token-Check"))
}

func TestHTTPClient_GetTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, _, _, err := NewHTTPClientWithTimeout(20*time.Millisecond).Get(context.Background(), server.URL, http.Header{})

	assert.Error(t, err)
}

type stubClient struct {
	HTTPClientI
	status int
}

func (s *stubClient) Get(context.Context, string, http.Header) (int, []byte, http.Header, error) {
	return s.status, nil, nil, nil
}

func TestHTTPClient_SetClient(t *testing.T) {
	client := NewHTTPClient()
	client.SetClient(&stubClient{status: http.StatusTeapot})

	statusCode, _, _, err := client.Get(context.Background(), "http://example.invalid", nil)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, statusCode)
}

func TestHTTPClient_GetCanceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, _, err := NewHTTPClient().Get(ctx, server.URL, http.Header{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), DefaultTimeout)
}
