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

/*
Package tracing provides traces, metrics and correlation IDs for soar-mcp.

Traces are produced with OpenTelemetry. One span is opened per tool call and
one client span per SOAR request. Metrics are recorded with the OpenTelemetry
metric API and exposed in Prometheus format on an optional HTTP listener.

# Quick Start

	provider, err := tracing.NewProvider(ctx, tracing.Config{
	    ServiceName:    "soar-mcp",
	    ServiceVersion: "1.0.0",
	    Exporter:       tracing.ExporterOTLP,
	    Endpoint:       "localhost:4317",
	    Insecure:       true,
	})
	if err != nil {
	    return err
	}
	defer provider.Shutdown(context.Background())

	http.Handle("/metrics", provider.MetricsHandler())

# Exporters

  - none: spans are created but dropped (default)
  - console: spans are written to stderr; stdout is reserved for MCP
  - otlp: OTLP over gRPC
  - otlp-http: OTLP over HTTP

# Correlation IDs

Every tool call gets a correlation ID that is attached to its context, logged,
and sent upstream in the X-Correlation-ID header.
*/
package tracing
