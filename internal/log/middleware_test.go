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
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestLogToolCall(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "debug", Format: FormatJSON, Output: &buf})

	LogToolCall(context.Background(), logger, ToolCall{Tool: "shodan_ping", CorrelationID: "c-1"})

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["event"] != "tool_call" || entries[0][ToolKey] != "shodan_ping" || entries[0][RequestIDKey] != "c-1" {
		t.Errorf("unexpected entry: %v", entries[0])
	}
}

func TestLogToolResult(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})
	call := ToolCall{Tool: "get_case", CorrelationID: "c-2"}

	LogToolResult(context.Background(), logger, call, ToolOutcome{Duration: 1500 * time.Millisecond})
	LogToolResult(context.Background(), logger, call, ToolOutcome{Failed: true, Message: "No active instance found."})

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0]["level"] != "INFO" || entries[0][DurationKey] != float64(1500) {
		t.Errorf("unexpected success entry: %v", entries[0])
	}
	if entries[1]["level"] != "WARN" || entries[1]["message"] != "No active instance found." {
		t.Errorf("unexpected failure entry: %v", entries[1])
	}
}

func TestLogToolCall_FilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})

	LogToolCall(context.Background(), logger, ToolCall{Tool: "x"})
	if buf.Len() != 0 {
		t.Errorf("expected debug record to be filtered, got %s", buf.String())
	}
}
