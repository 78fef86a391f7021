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

// Package errors holds the error types shared by the soar-mcp command line
// and server: configuration problems, invalid tool input and lookups that
// came back empty.
package errors

// UserVisibleError is implemented by errors that carry a message and
// remediation hint fit for an operator's terminal.
// The CLI prints UserMessage and Suggestion instead of the raw chain.
type UserVisibleError interface {
	error

	// IsUserVisible returns true if this error should be shown to users.
	IsUserVisible() bool

	// UserMessage returns a short description without transport detail.
	UserMessage() string

	// Suggestion returns actionable guidance, or "" when there is none.
	Suggestion() string
}

// ErrorClassifier is implemented by errors that can be grouped for
// metrics and logs.
type ErrorClassifier interface {
	error

	// ErrorType returns a stable category label such as "config",
	// "validation" or "connection".
	ErrorType() string
}
