// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package httpx is the generic networked-resource fetcher used by every source
adapter that talks to an HTTP API.

Architecture:

  - One [Client] instance per upstream source, constructed with its own base
    URL, timeout, and retry budget, and injected into the adapter. There are
    no shared client singletons.
  - Every attempt is bounded by the configured timeout; transport failures
    (timeout, network error, non-2xx status) are retried with capped
    exponential backoff, transparently to the caller.
  - Errors are normalized to an [*Error] with a machine-readable code:
    TIMEOUT, NETWORK_ERROR, or the passthrough code of a structured upstream
    error body.

Application-level errors delivered inside a successful (2xx) response body are
the caller's concern; this layer neither inspects nor retries them. Caching is
likewise out of scope here — it belongs to the resolution layer.
*/
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error codes for transport-level failures.
const (
	CodeTimeout = "TIMEOUT"
	CodeNetwork = "NETWORK_ERROR"
	CodeUnknown = "UNKNOWN_ERROR"
)

// Error is the normalized `{code, message}` shape every transport failure
// collapses into, regardless of underlying cause.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Status is the HTTP status of the final attempt, 0 when the request
	// never produced a response.
	Status int `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// backoff caps for the retry schedule: min(1s·2^attempt, 5s).
const (
	backoffBase = 1 * time.Second
	backoffCap  = 5 * time.Second
)

// Config holds the per-source settings for a [Client].
type Config struct {
	// BaseURL is the root the endpoint paths are joined onto.
	BaseURL string
	// Timeout bounds every individual attempt.
	Timeout time.Duration
	// Retries is the total number of attempts (not additional retries).
	Retries int
}

// Client is a generic JSON-over-HTTP fetcher with timeout and retry/backoff.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
	retries int
	logger  *slog.Logger
}

// New constructs a [Client] for one upstream source.
func New(cfg Config, logger *slog.Logger) *Client {
	retries := cfg.Retries
	if retries < 1 {
		retries = 1
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		// The per-attempt deadline is enforced through the request context,
		// so the embedded client carries no timeout of its own.
		httpc:   &http.Client{},
		timeout: timeout,
		retries: retries,
		logger:  logger,
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// GetBytes issues a GET request and returns the raw response body. It exists
// for upstream formats that are not plain JSON (the spreadsheet query
// endpoint wraps its JSON in a non-JSON prefix/suffix).
func (c *Client) GetBytes(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := c.do(ctx, http.MethodPost, endpoint, nil, payload)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := c.do(ctx, http.MethodPut, endpoint, nil, payload)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Delete issues a DELETE request, discarding any response body.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

// do runs the attempt loop. Each attempt gets its own deadline-bound context;
// cancelling one attempt never touches sibling requests issued elsewhere.
func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, error) {
	target, err := c.buildURL(endpoint, params)
	if err != nil {
		return nil, &Error{Code: CodeUnknown, Message: err.Error()}
	}

	var encoded []byte
	if payload != nil {
		encoded, err = json.Marshal(payload)
		if err != nil {
			return nil, &Error{Code: CodeUnknown, Message: "encode request body: " + err.Error()}
		}
	}

	var lastErr *Error
	for attempt := 1; attempt <= c.retries; attempt++ {
		body, attemptErr := c.attempt(ctx, method, target, encoded)
		if attemptErr == nil {
			return body, nil
		}
		lastErr = attemptErr

		// The caller going away is not a transport flake; stop immediately.
		if ctx.Err() != nil {
			break
		}

		if attempt < c.retries {
			c.logger.DebugContext(ctx, "transport_retry",
				slog.String("url", target),
				slog.Int("attempt", attempt),
				slog.String("code", lastErr.Code),
			)
			if err := sleep(ctx, backoffDelay(attempt)); err != nil {
				break
			}
		}
	}

	return nil, lastErr
}

// attempt performs one bounded request.
func (c *Client) attempt(ctx context.Context, method, target string, body []byte) ([]byte, *Error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(attemptCtx, method, target, reader)
	if err != nil {
		return nil, &Error{Code: CodeUnknown, Message: err.Error()}
	}
	request.Header.Set("Accept", "application/json, text/plain")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpc.Do(request)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, &Error{Code: CodeTimeout, Message: "request timeout"}
		}
		return nil, &Error{Code: CodeNetwork, Message: err.Error()}
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, &Error{Code: CodeTimeout, Message: "request timeout"}
		}
		return nil, &Error{Code: CodeNetwork, Message: err.Error()}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, apiError(response.StatusCode, payload)
	}

	return payload, nil
}

// buildURL joins the base URL with the endpoint path and appends query
// parameters; slice values serialize as repeated keys.
func (c *Client) buildURL(endpoint string, params url.Values) (string, error) {
	full := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	parsed, err := url.Parse(full)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	if len(params) > 0 {
		merged := parsed.Query()
		for key, values := range params {
			for _, value := range values {
				merged.Add(key, value)
			}
		}
		parsed.RawQuery = merged.Encode()
	}

	return parsed.String(), nil
}

// apiError converts a non-2xx response into a normalized error, passing
// through a structured `{code, message}` body when the upstream sent one.
func apiError(status int, body []byte) *Error {
	parsed := &Error{}
	if err := json.Unmarshal(body, parsed); err == nil && parsed.Code != "" && parsed.Message != "" {
		parsed.Status = status
		return parsed
	}

	return &Error{
		Code:    CodeUnknown,
		Message: http.StatusText(status),
		Status:  status,
	}
}

// backoffDelay computes min(backoffBase·2^attempt, backoffCap).
func backoffDelay(attempt int) time.Duration {
	delay := backoffBase << attempt
	if delay > backoffCap || delay <= 0 {
		delay = backoffCap
	}
	return delay
}

// sleep waits for the given duration unless the context is cancelled first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decode unmarshals a response body, tolerating callers that ignore the payload.
func decode(body []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Code: CodeUnknown, Message: "decode response: " + err.Error()}
	}
	return nil
}
