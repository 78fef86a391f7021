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

package log

import (
	"context"
	"log/slog"
	"time"
)

// ToolCall describes one MCP tool invocation for logging purposes.
type ToolCall struct {
	// Tool is the MCP tool name.
	Tool string

	// CorrelationID ties the call to upstream requests and spans.
	CorrelationID string
}

// ToolOutcome describes how a tool call ended.
type ToolOutcome struct {
	// Failed is true for {"Status":"Failed"} results and handler errors.
	Failed bool

	// Message is the failure message, if any.
	Message string

	// Duration is how long the call took.
	Duration time.Duration
}

// LogToolCall logs an incoming tool call at debug level.
func LogToolCall(ctx context.Context, logger *slog.Logger, call ToolCall) {
	logger.DebugContext(ctx, "tool call received",
		"event", "tool_call",
		ToolKey, call.Tool,
		RequestIDKey, call.CorrelationID,
	)
}

// LogToolResult logs a completed tool call. Failures are logged at warn:
// they are reported to the caller, not fatal to the process.
func LogToolResult(ctx context.Context, logger *slog.Logger, call ToolCall, outcome ToolOutcome) {
	attrs := []any{
		"event", "tool_result",
		ToolKey, call.Tool,
		RequestIDKey, call.CorrelationID,
		DurationKey, outcome.Duration.Milliseconds(),
	}

	if outcome.Failed {
		if outcome.Message != "" {
			attrs = append(attrs, "message", outcome.Message)
		}
		logger.Log(ctx, slog.LevelWarn, "tool call failed", attrs...)
		return
	}

	logger.Log(ctx, slog.LevelInfo, "tool call completed", attrs...)
}
