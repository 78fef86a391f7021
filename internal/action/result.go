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

package action

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome of a tool call: either the upstream JSON or a
// failure message.
type Result struct {
	payload json.RawMessage
	message string
	failed  bool
}

// Ok wraps an upstream JSON payload.
func Ok(payload json.RawMessage) Result {
	return Result{payload: payload}
}

// Failed reports a failure with a message for the caller.
func Failed(message string) Result {
	return Result{message: message, failed: true}
}

// Failedf is Failed with formatting.
func Failedf(format string, args ...any) Result {
	return Failed(fmt.Sprintf(format, args...))
}

// IsFailed reports whether r is a failure.
func (r Result) IsFailed() bool {
	return r.failed
}

// Message returns the failure message, or "" for Ok results.
func (r Result) Message() string {
	return r.message
}

// Payload returns the upstream JSON, or nil for failures.
func (r Result) Payload() json.RawMessage {
	return r.payload
}

type failure struct {
	Status  string `json:"Status"`
	Message string `json:"Message"`
}

// MarshalJSON renders failures as {"Status":"Failed","Message":...} and
// Ok results as the payload itself.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.failed {
		return json.Marshal(failure{Status: "Failed", Message: r.message})
	}
	if len(r.payload) == 0 {
		return []byte("null"), nil
	}
	return r.payload, nil
}

// Text is the tool output for r.
func (r Result) Text() string {
	data, err := r.MarshalJSON()
	if err != nil {
		return fmt.Sprintf(`{"Status":"Failed","Message":%q}`, err.Error())
	}
	return string(data)
}
