// Package httpclient is the JSON-over-HTTP client every upstream adapter uses.
// It forwards the inbound request id, traces each call, and returns failures as
// categorized upstream errors.
package httpclient

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

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/akerstrom/insurance-platform-showcase/internal/platform/metrics"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
)

const (
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 1 << 20

	tracerName = "github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
)

// Client wraps *http.Client for one named upstream.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Name    string

	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithMetrics records call latency by outcome.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTransport replaces the round tripper, mostly for tests.
func WithTransport(tr http.RoundTripper) Option {
	return func(c *Client) { c.HTTP.Transport = tr }
}

// New builds a client for the upstream at baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func New(name, baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL = strings.TrimSpace(baseURL)
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url for %s: %w", name, err)
	}
	c := &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
		Name:    name,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetJSON issues GET BaseURL+path and decodes a 2xx body into out. Every
// failure is an *upstream.Error: transport problems are timeout or
// unavailable, non-2xx statuses follow upstream.FromStatus, and undecodable
// bodies are bad_data.
func (c *Client) GetJSON(ctx context.Context, path string, out any) (err error) {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	ctx, span := c.tracer.Start(ctx, "GET "+c.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("upstream.name", c.Name),
			attribute.String("url.path", path),
		),
	)
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = string(upstream.GetCategory(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		c.metrics.ObserveUpstream(c.Name, outcome, time.Since(start))
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return upstream.NewError(upstream.ErrorInternal, c.Name, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		req.Header.Set(middleware.RequestIDHeader, reqID)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return upstream.FromTransport(c.Name, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return upstream.FromTransport(c.Name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return upstream.FromStatus(c.Name, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return upstream.NewError(upstream.ErrorBadData, c.Name, "decode response", err)
	}
	return nil
}

// PathSegment escapes a caller-supplied key for use as one path segment.
func PathSegment(s string) string {
	return url.PathEscape(s)
}
