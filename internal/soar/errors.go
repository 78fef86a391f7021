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

package soar

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a transport failure.
type Kind string

const (
	// KindCertificate means the server certificate could not be verified.
	KindCertificate Kind = "certificate"
	// KindTLS is any other TLS handshake or record failure.
	KindTLS Kind = "tls"
	// KindConnection means the server could not be reached.
	KindConnection Kind = "connection"
)

// ErrClosed is returned by requests made after Close.
var ErrClosed = errors.New("soar: client is closed")

// Error is a classified transport failure. It carries a message and a
// remedy the operator can act on.
type Error struct {
	Kind        Kind
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsUserVisible implements pkg/errors.UserVisibleError.
func (e *Error) IsUserVisible() bool { return true }

// UserMessage implements pkg/errors.UserVisibleError.
func (e *Error) UserMessage() string { return e.Message }

// Suggestion implements pkg/errors.UserVisibleError. Each remedy goes on
// its own line.
func (e *Error) Suggestion() string {
	return strings.Join(e.Suggestions, "\n")
}

// ErrorType implements pkg/errors.ErrorClassifier.
func (e *Error) ErrorType() string { return string(e.Kind) }

// IsKind reports whether err's tree holds an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}

func newCertificateError(cause error) *Error {
	return &Error{
		Kind:    KindCertificate,
		Message: "SSL certificate verification failed when connecting to SOAR",
		Suggestions: []string{
			"The SOAR server certificate is not trusted by this machine.",
			"Refresh the operating system trust store, or",
			"set SOAR_CA_FILE to a PEM bundle containing the issuing CA, then restart the MCP server.",
		},
		Cause: cause,
	}
}

func newTLSError(cause error) *Error {
	return &Error{
		Kind:    KindTLS,
		Message: fmt.Sprintf("An SSL/TLS error occurred when connecting to SOAR: %v", cause),
		Suggestions: []string{
			"Verify that SOAR_URL is correct and the server's SSL certificate is valid.",
		},
		Cause: cause,
	}
}

func newConnectionError(baseURL string, cause error) *Error {
	return &Error{
		Kind:    KindConnection,
		Message: fmt.Sprintf("Failed to connect to SOAR at '%s'", baseURL),
		Suggestions: []string{
			"1. SOAR_URL is set correctly.",
			"2. The SOAR server is reachable from your network.",
			"3. Any required VPN or proxy is active.",
		},
		Cause: cause,
	}
}
