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

package httpclient

import (
	"net/url"
	"strings"
)

// sensitiveParams are matched case-insensitively as substrings of query
// parameter names.
var sensitiveParams = []string{
	"token",
	"password",
	"auth",
	"secret",
	"key",
	"credential",
}

// publicParams are never redacted even though they match a sensitive
// substring. SOAR list endpoints paginate with pageToken.
var publicParams = map[string]bool{
	"pagetoken": true,
}

// sanitizeURL removes credentials and sensitive query values from a URL
// before it is logged.
func sanitizeURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	q := u.Query()
	for param := range q {
		if isSensitiveParam(param) {
			q.Set(param, "[REDACTED]")
		}
	}

	safe := *u
	safe.User = nil
	safe.RawQuery = q.Encode()
	return safe.String()
}

// isSensitiveParam reports whether a parameter name looks like it carries a secret.
func isSensitiveParam(param string) bool {
	lower := strings.ToLower(param)
	if publicParams[lower] {
		return false
	}
	for _, sensitive := range sensitiveParams {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}
