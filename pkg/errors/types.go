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

package errors

import (
	"fmt"
)

// ValidationError reports tool arguments or flag values that were rejected
// before any request reached SOAR.
type ValidationError struct {
	// Field is the argument name, if the failure is specific to one.
	Field string

	// Message is the human-readable error description.
	Message string

	// Hint provides actionable guidance for fixing the input.
	Hint string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) IsUserVisible() bool { return true }
func (e *ValidationError) UserMessage() string { return e.Error() }
func (e *ValidationError) Suggestion() string  { return e.Hint }
func (e *ValidationError) ErrorType() string   { return "validation" }

// NotFoundError reports a resource that does not exist, such as an unknown
// integration name or tool.
type NotFoundError struct {
	// Resource is the type of resource ("integration", "tool", "instance").
	Resource string

	// ID is the identifier that was not found.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) ErrorType() string { return "not_found" }

// ConfigError represents configuration problems: a missing SOAR URL, an
// unreadable CA bundle or a malformed config file.
type ConfigError struct {
	// Key is the configuration key that has the problem ("soar.url").
	Key string

	// Reason explains what's wrong with the configuration.
	Reason string

	// Hint tells the operator how to fix it.
	Hint string

	// Cause is the underlying error (file read error, parse error).
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config error at %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("config error: %s", e.Reason)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

func (e *ConfigError) IsUserVisible() bool { return true }
func (e *ConfigError) UserMessage() string { return e.Error() }
func (e *ConfigError) Suggestion() string  { return e.Hint }
func (e *ConfigError) ErrorType() string   { return "config" }
