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
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// maxChainDepth bounds the walk over pathological error trees.
const maxChainDepth = 64

// classify maps a request failure to a classified *Error, or nil when the
// failure is not a trust or connectivity problem. Certificate checks run
// first: a certificate failure is also a TLS failure and usually arrives
// wrapped in a *net.OpError.
func classify(err error, baseURL string) *Error {
	switch {
	case err == nil:
		return nil
	case anyInChain(err, isCertificateFailure):
		return newCertificateError(err)
	case anyInChain(err, isTLSFailure):
		return newTLSError(err)
	case anyInChain(err, isConnectionFailure):
		return newConnectionError(baseURL, err)
	default:
		return nil
	}
}

// anyInChain walks err depth-first through Unwrap() error and
// Unwrap() []error and reports whether match holds for any node.
func anyInChain(err error, match func(error) bool) bool {
	return walk(err, match, 0)
}

func walk(err error, match func(error) bool, depth int) bool {
	if err == nil || depth > maxChainDepth {
		return false
	}
	if match(err) {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return walk(u.Unwrap(), match, depth+1)
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if walk(inner, match, depth+1) {
				return true
			}
		}
	}
	return false
}

func isCertificateFailure(err error) bool {
	switch err.(type) {
	case *tls.CertificateVerificationError,
		x509.UnknownAuthorityError, *x509.UnknownAuthorityError,
		x509.CertificateInvalidError, *x509.CertificateInvalidError,
		x509.HostnameError, *x509.HostnameError,
		x509.SystemRootsError, *x509.SystemRootsError:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "certificate verify failed") ||
		strings.Contains(msg, "certificate_verify_failed")
}

func isTLSFailure(err error) bool {
	switch err.(type) {
	case tls.RecordHeaderError, *tls.RecordHeaderError,
		tls.AlertError, *tls.ECHRejectionError:
		return true
	}
	// An https URL pointing at a plain HTTP listener.
	if err == http.ErrSchemeMismatch {
		return true
	}
	return strings.HasPrefix(err.Error(), "tls:")
}

func isConnectionFailure(err error) bool {
	switch err.(type) {
	case *net.OpError, *net.DNSError:
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.EHOSTUNREACH, syscall.ENETUNREACH,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
