// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package soar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/tracing"
	"github.com/tombee/soarmcp/pkg/httpclient"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the SOAR server root, e.g. https://soar.example.com.
	BaseURL string

	// AppKey is sent in the AppKey header when non-empty.
	AppKey string

	// CAFile is an optional PEM bundle added to the system trust store.
	CAFile string

	// Timeout bounds each request. Default: 30s.
	Timeout time.Duration

	// UserAgent overrides the default User-Agent.
	UserAgent string

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics may be nil.
	Metrics *tracing.Metrics

	// Tracer defaults to the global tracer provider.
	Tracer trace.Tracer
}

// Client talks to the SOAR REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	cfg     Config
	logger  *slog.Logger
	tracer  trace.Tracer

	mu     sync.Mutex
	http   *http.Client
	closed bool
}

// New creates a Client. No connection is made until the first request.
func New(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid SOAR base URL %q", cfg.BaseURL)
	}

	defaults := httpclient.DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer("github.com/tombee/soarmcp/internal/soar")
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cfg:     cfg,
		logger:  log.WithComponent(logger, "soar"),
		tracer:  tracer,
	}, nil
}

// BaseURL returns the server root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, params)
}

// Post sends a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, endpoint string, body any, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, endpoint, body, params)
}

// Patch sends a PATCH request with body encoded as JSON.
func (c *Client) Patch(ctx context.Context, endpoint string, body any, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, endpoint, body, params)
}

// Close releases idle connections. It is idempotent; requests made after
// Close fail with ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

// httpClient returns the shared *http.Client, creating it on first use.
func (c *Client) httpClient() (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if c.http == nil {
		hc, err := httpclient.New(httpclient.Config{
			Timeout:   c.cfg.Timeout,
			UserAgent: c.cfg.UserAgent,
			CAFile:    c.cfg.CAFile,
			Logger:    c.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating HTTP client: %w", err)
		}
		c.http = hc
	}
	return c.http, nil
}

func (c *Client) requestURL(endpoint string, params url.Values) string {
	u := c.baseURL + endpoint
	if len(params) == 0 {
		return u
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return u + sep + params.Encode()
}

// do performs one request. It returns (nil, nil) for HTTP error statuses
// and unusable bodies, a classified *Error for trust and connectivity
// failures and ctx.Err() when the caller gave up.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, params url.Values) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "soar."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("soar.endpoint", endpoint),
		),
	)
	defer span.End()

	hc, err := c.httpClient()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.logger.WarnContext(ctx, "failed to encode request body", "method", method, "endpoint", endpoint, log.Error(err))
			span.SetStatus(codes.Error, "encode request body")
			return nil, nil
		}
		reader = bytes.NewReader(payload)
		log.Trace(ctx, c.logger, "request body", slog.String("endpoint", endpoint), slog.String("body", string(payload)))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(endpoint, params), reader)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to build request", "method", method, "endpoint", endpoint, log.Error(err))
		span.SetStatus(codes.Error, "build request")
		return nil, nil
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.AppKey != "" {
		req.Header.Set("AppKey", c.cfg.AppKey)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		span.RecordError(err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			span.SetStatus(codes.Error, ctxErr.Error())
			return nil, ctxErr
		}
		if se := classify(err, c.baseURL); se != nil {
			c.cfg.Metrics.RecordTransportError(ctx, method, string(se.Kind))
			c.logger.ErrorContext(ctx, "SOAR request failed",
				"method", method,
				"endpoint", endpoint,
				log.KindKey, string(se.Kind),
				log.Error(err),
			)
			span.SetStatus(codes.Error, se.Message)
			return nil, se
		}
		c.logger.WarnContext(ctx, "SOAR request failed", "method", method, "endpoint", endpoint, log.Error(err))
		span.SetStatus(codes.Error, err.Error())
		return nil, nil
	}
	defer resp.Body.Close()

	c.cfg.Metrics.RecordHTTPRequest(ctx, method, resp.StatusCode, time.Since(start))
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		c.logger.WarnContext(ctx, "SOAR returned an error status",
			"method", method,
			"endpoint", endpoint,
			"status", resp.StatusCode,
		)
		span.SetStatus(codes.Error, resp.Status)
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.WarnContext(ctx, "failed to read SOAR response", "method", method, "endpoint", endpoint, log.Error(err))
		span.SetStatus(codes.Error, "read response")
		return nil, nil
	}
	log.Trace(ctx, c.logger, "response body", slog.String("endpoint", endpoint), slog.String("body", string(data)))

	if len(bytes.TrimSpace(data)) == 0 {
		c.logger.DebugContext(ctx, "SOAR returned an empty body", "method", method, "endpoint", endpoint)
		return nil, nil
	}
	if !json.Valid(data) {
		c.logger.WarnContext(ctx, "SOAR returned a non-JSON body", "method", method, "endpoint", endpoint)
		span.SetStatus(codes.Error, "non-JSON body")
		return nil, nil
	}

	return json.RawMessage(data), nil
}
