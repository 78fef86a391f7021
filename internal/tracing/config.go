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
	"fmt"
	"io"
)

// Exporter names accepted in Config.Exporter.
const (
	ExporterNone     = "none"
	ExporterConsole  = "console"
	ExporterOTLP     = "otlp"
	ExporterOTLPHTTP = "otlp-http"
)

// Config holds observability configuration.
type Config struct {
	// ServiceName identifies this service in traces.
	ServiceName string

	// ServiceVersion is the application version.
	ServiceVersion string

	// Exporter selects where spans go: none, console, otlp or otlp-http.
	Exporter string

	// Endpoint is the OTLP collector address (host:port for gRPC, host[:port] for HTTP).
	Endpoint string

	// Insecure disables TLS towards the collector.
	Insecure bool

	// Headers are sent with every OTLP export request.
	Headers map[string]string

	// ConsoleWriter receives console spans. Defaults to os.Stderr.
	ConsoleWriter io.Writer
}

// Validate checks the exporter selection.
func (c Config) Validate() error {
	switch c.Exporter {
	case "", ExporterNone, ExporterConsole:
		return nil
	case ExporterOTLP, ExporterOTLPHTTP:
		if c.Endpoint == "" {
			return fmt.Errorf("exporter %q requires an endpoint", c.Exporter)
		}
		return nil
	default:
		return fmt.Errorf("unknown trace exporter %q (must be none, console, otlp, or otlp-http)", c.Exporter)
	}
}
