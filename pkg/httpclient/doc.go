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

// Package httpclient builds the pooled HTTP client used to talk to the
// SOAR REST API.
//
// The client includes:
//   - TLS 1.2 minimum, TLS 1.3 preferred, with an optional extra CA bundle
//   - Connection pooling shared by every in-flight request
//   - Request logging with sanitized URLs and durations
//   - User-Agent and correlation ID headers
//
// Create a client with default settings:
//
//	cfg := httpclient.DefaultConfig()
//	cfg.CAFile = "/etc/ssl/soar-ca.pem"
//	client, err := httpclient.New(cfg)
//	if err != nil {
//	    return err
//	}
//
// The client never retries. A failed request is reported once to the
// caller, which decides what to do with it.
package httpclient
