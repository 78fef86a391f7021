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

package tracing

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded by soar-mcp. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Counters
	toolCalls       metric.Int64Counter
	httpRequests    metric.Int64Counter
	transportErrors metric.Int64Counter

	// Histograms
	toolDuration metric.Float64Histogram
	httpDuration metric.Float64Histogram

	activeCalls metric.Int64UpDownCounter
}

// NewMetrics creates the instruments on the given meter provider.
func NewMetrics(meterProvider metric.MeterProvider) (*Metrics, error) {
	meter := meterProvider.Meter("github.com/tombee/soarmcp")

	m := &Metrics{}
	var err error

	m.toolCalls, err = meter.Int64Counter(
		"soar_mcp_tool_calls_total",
		metric.WithDescription("Total number of MCP tool calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	m.httpRequests, err = meter.Int64Counter(
		"soar_mcp_http_requests_total",
		metric.WithDescription("Total number of requests sent to the SOAR API"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	m.transportErrors, err = meter.Int64Counter(
		"soar_mcp_transport_errors_total",
		metric.WithDescription("SOAR requests that failed before an HTTP response, by error kind"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	m.toolDuration, err = meter.Float64Histogram(
		"soar_mcp_tool_duration_seconds",
		metric.WithDescription("Duration of MCP tool calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m.httpDuration, err = meter.Float64Histogram(
		"soar_mcp_http_request_duration_seconds",
		metric.WithDescription("Duration of SOAR API requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m.activeCalls, err = meter.Int64UpDownCounter(
		"soar_mcp_tool_calls_active",
		metric.WithDescription("Number of tool calls currently in flight"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// ToolCallStarted marks a tool call as in flight.
func (m *Metrics) ToolCallStarted(ctx context.Context) {
	if m == nil {
		return
	}
	m.activeCalls.Add(ctx, 1)
}

// RecordToolCall records a finished tool call.
func (m *Metrics) RecordToolCall(ctx context.Context, tool string, failed bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if failed {
		status = "failed"
	}
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("status", status),
	)
	m.activeCalls.Add(ctx, -1)
	m.toolCalls.Add(ctx, 1, attrs)
	m.toolDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordHTTPRequest records a SOAR request that received a response.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("code", strconv.Itoa(status)),
	)
	m.httpRequests.Add(ctx, 1, attrs)
	m.httpDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordTransportError records a SOAR request that failed with a classified error.
func (m *Metrics) RecordTransportError(ctx context.Context, method, kind string) {
	if m == nil {
		return
	}
	m.transportErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("kind", kind),
	))
}
