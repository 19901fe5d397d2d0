// Package httpclient is the outbound HTTP client shared by the SMS and sheet
// adapters: request logging plus bounded retries of transient failures.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 200 * time.Millisecond
	maxErrorBody       = 4 << 10
)

// StatusError is returned for responses with status >= 400.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Retryable reports whether the status is worth another attempt.
func (e *StatusError) Retryable() bool {
	switch e.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// LoggingRoundTripper logs every request and its outcome.
type LoggingRoundTripper struct {
	Proxied http.RoundTripper
	Logger  *zap.Logger
}

func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// URL paths may carry account identifiers but never credentials, which
	// travel in headers.
	lrt.Logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		lrt.Logger.Warn("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	lrt.Logger.Debug("HTTP request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// Client wraps http.Client with retries. The per-attempt timeout is the
// http.Client timeout; the caller's context bounds the whole call.
type Client struct {
	http        *http.Client
	maxAttempts int
	backoff     time.Duration
}

func New(timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		http: &http.Client{
			Transport: &LoggingRoundTripper{
				Proxied: http.DefaultTransport,
				Logger:  logger.With(zap.String("component", "httpclient")),
			},
			Timeout: timeout,
		},
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
}

// WithRetry returns a copy using the given attempt count (at least 1) and
// initial backoff, which doubles after every failed attempt.
func (c *Client) WithRetry(maxAttempts int, backoff time.Duration) *Client {
	clone := *c
	clone.maxAttempts = max(maxAttempts, 1)
	clone.backoff = backoff
	return &clone
}

// Do sends the request built by makeReq, rebuilding it for every attempt so
// bodies can be replayed. Network errors, 429 and 5xx responses are retried.
// On success the caller owns the response body.
func (c *Client) Do(ctx context.Context, makeReq func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	backoff := c.backoff
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq(ctx)
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == c.maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	return resp, nil
}

func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
