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

// Package server hosts the SOAR tools over the MCP stdio transport.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/tracing"
)

// Server wraps the MCP server and the per-call instrumentation.
type Server struct {
	mcpServer *server.MCPServer
	name      string
	version   string
	logger    *slog.Logger
	metrics   *tracing.Metrics
	tracer    trace.Tracer
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	// Name is the server name (default: "soar-mcp").
	Name string

	// Version is the build version.
	Version string

	// Logger receives server logs. It must not write to stdout.
	Logger *slog.Logger

	// Metrics records tool call counts and latency. Optional.
	Metrics *tracing.Metrics

	// Tracer creates one span per tool call. Defaults to the global tracer.
	Tracer trace.Tracer
}

// NewServer creates a new MCP server instance with no tools.
func NewServer(config ServerConfig) *Server {
	if config.Name == "" {
		config.Name = "soar-mcp"
	}
	if config.Version == "" {
		config.Version = "dev"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Tracer == nil {
		config.Tracer = otel.Tracer("github.com/tombee/soarmcp/internal/mcp/server")
	}

	s := &Server{
		name:    config.Name,
		version: config.Version,
		logger:  log.WithComponent(config.Logger, "mcp"),
		metrics: config.Metrics,
		tracer:  config.Tracer,
	}
	s.mcpServer = server.NewMCPServer(config.Name, config.Version,
		server.WithToolCapabilities(false),
		// Outermost, so recovered panics are logged as failed calls.
		server.WithToolHandlerMiddleware(s.instrument),
		server.WithRecovery(),
	)
	return s
}

// AddTool registers a tool. Every handler runs behind the server's
// logging, metrics and tracing middleware.
func (s *Server) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, handler)
}

// MCPServer exposes the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Run serves the MCP protocol on stdin/stdout until ctx is cancelled or
// stdin is closed.
func (s *Server) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	s.logger.Info("Starting SOAR MCP server", slog.String("version", s.version))

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	err := stdio.Listen(ctx, stdin, stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server error: %w", err)
	}

	s.logger.Info("Shutting down SOAR MCP server")
	return nil
}

// instrument gives every tool call a request ID, a span, metrics and a
// pair of log lines.
func (s *Server) instrument(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := tracing.NewCorrelationID()
		ctx = tracing.ToContext(ctx, id)
		call := log.ToolCall{Tool: request.Params.Name, CorrelationID: id.String()}

		ctx, span := s.tracer.Start(ctx, "mcp.tool_call", trace.WithAttributes(
			attribute.String("mcp.tool", call.Tool),
			attribute.String("request_id", call.CorrelationID),
		))
		defer span.End()

		log.LogToolCall(ctx, s.logger, call)
		s.metrics.ToolCallStarted(ctx)
		start := time.Now()

		result, err := next(ctx, request)

		outcome := log.ToolOutcome{Duration: time.Since(start)}
		switch {
		case err != nil:
			outcome.Failed, outcome.Message = true, err.Error()
		default:
			outcome.Failed, outcome.Message = failureOf(result)
		}
		if outcome.Failed {
			span.SetStatus(codes.Error, outcome.Message)
		}

		s.metrics.RecordToolCall(ctx, call.Tool, outcome.Failed, outcome.Duration)
		log.LogToolResult(ctx, s.logger, call, outcome)
		return result, err
	}
}

type failedResult struct {
	Status  string `json:"Status"`
	Message string `json:"Message"`
}

// failureOf reports whether a tool result is a {"Status":"Failed"} body
// or an MCP error result.
func failureOf(result *mcp.CallToolResult) (bool, string) {
	if result == nil {
		return true, "no result"
	}
	var text string
	if len(result.Content) > 0 {
		if tc, ok := mcp.AsTextContent(result.Content[0]); ok {
			text = tc.Text
		}
	}
	if result.IsError {
		return true, text
	}

	var f failedResult
	if err := json.Unmarshal([]byte(text), &f); err == nil && f.Status == "Failed" {
		return true, f.Message
	}
	return false, ""
}
