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

package shared

import (
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/tombee/soarmcp/pkg/errors"
)

// Process exit codes.
const (
	ExitSuccess         = 0
	ExitFailure         = 1
	ExitConfigError     = 2
	ExitConnectionError = 3
	ExitCredentials     = 4
)

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch pkgerrors.TypeOf(err) {
	case "config", "validation":
		return ExitConfigError
	case "certificate", "tls", "connection":
		return ExitConnectionError
	case "credentials":
		return ExitCredentials
	default:
		return ExitFailure
	}
}

// HandleExitError prints err with any suggestion and exits with the
// matching code.
func HandleExitError(err error) {
	if err == nil {
		return
	}
	os.Exit(ReportError(os.Stderr, err))
}

// ReportError writes err and its suggestion to w and returns the exit code.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}

	if msg := err.Error(); msg != "" {
		fmt.Fprintln(w, RenderError("Error: "+msg))
	}
	printUserVisibleSuggestion(w, err)

	return ExitCode(err)
}

// printUserVisibleSuggestion prints the suggestion of the first
// user-visible error in the chain.
func printUserVisibleSuggestion(w io.Writer, err error) {
	uv, ok := pkgerrors.AsUserVisible(err)
	if !ok {
		return
	}
	if suggestion := uv.Suggestion(); suggestion != "" {
		fmt.Fprintf(w, "\nSuggestion: %s\n", suggestion)
	}
}
