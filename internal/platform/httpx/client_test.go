// Copyright (c) 2026 OWH Studio. All rights reserved.

package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestClient(t *testing.T, handler http.Handler, cfg Config) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg.BaseURL = server.URL
	return New(cfg, testLogger()), server
}

func TestClientGetDecodesJSON(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/films", r.URL.Path)
		assert.Equal(t, "documentare", r.URL.Query().Get("category"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Patria"}`))
	}), Config{Timeout: time.Second, Retries: 1})

	var out struct {
		Title string `json:"title"`
	}
	params := url.Values{}
	params.Set("category", "documentare")

	err := client.Get(context.Background(), "/films", params, &out)
	require.NoError(t, err)
	assert.Equal(t, "Patria", out.Title)
}

func TestClientRecoversAfterTransientTimeouts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			// Stall past the per-attempt deadline on the first two attempts.
			time.Sleep(200 * time.Millisecond)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}), Config{Timeout: 50 * time.Millisecond, Retries: 3})

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.Get(context.Background(), "/flaky", nil, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientTimeoutErrorCode(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}), Config{Timeout: 30 * time.Millisecond, Retries: 2})

	err := client.Get(context.Background(), "/slow", nil, nil)
	require.Error(t, err)

	var transportErr *Error
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, CodeTimeout, transportErr.Code)
}

func TestClientNetworkErrorCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := New(Config{BaseURL: baseURL, Timeout: time.Second, Retries: 1}, testLogger())

	err := client.Get(context.Background(), "/unreachable", nil, nil)
	require.Error(t, err)

	var transportErr *Error
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, CodeNetwork, transportErr.Code)
}

func TestClientPassesThroughStructuredUpstreamError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"INVALID_SLUG","message":"slug is taken"}`))
	}), Config{Timeout: time.Second, Retries: 1})

	err := client.Get(context.Background(), "/films", nil, nil)
	require.Error(t, err)

	var transportErr *Error
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "INVALID_SLUG", transportErr.Code)
	assert.Equal(t, "slug is taken", transportErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, transportErr.Status)
}

func TestClientUnknownErrorForUnstructuredFailure(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), Config{Timeout: time.Second, Retries: 1})

	err := client.Get(context.Background(), "/films", nil, nil)
	require.Error(t, err)

	var transportErr *Error
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, CodeUnknown, transportErr.Code)
	assert.Equal(t, http.StatusInternalServerError, transportErr.Status)
}

func TestClientStopsRetryingOnCallerCancel(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
	}), Config{Timeout: 5 * time.Second, Retries: 5})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.Get(ctx, "/slow", nil, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientPostSendsJSONBody(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"42"}`))
	}), Config{Timeout: time.Second, Retries: 1})

	var out struct {
		ID string `json:"id"`
	}
	err := client.Post(context.Background(), "/rental-requests", map[string]string{"name": "Ana"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "42", out.ID)
}

func TestClientGetBytesReturnsRawBody(t *testing.T) {
	t.Parallel()

	raw := `/*O_o*/` + "\n" + `google.visualization.Query.setResponse({"table":{}});`
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(raw))
	}), Config{Timeout: time.Second, Retries: 1})

	body, err := client.GetBytes(context.Background(), "/gviz/tq", nil)
	require.NoError(t, err)
	assert.Equal(t, raw, string(body))
}

func TestBackoffDelayCaps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2*time.Second, backoffDelay(1))
	assert.Equal(t, 4*time.Second, backoffDelay(2))
	assert.Equal(t, 5*time.Second, backoffDelay(3))
	assert.Equal(t, 5*time.Second, backoffDelay(10))
}
