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

package tracing

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// CorrelationID identifies one tool call across logs, spans and upstream requests.
type CorrelationID string

type correlationKeyType struct{}

var correlationKey = correlationKeyType{}

// HeaderCorrelationID is the header used to send correlation IDs upstream.
const HeaderCorrelationID = "X-Correlation-ID"

// NewCorrelationID generates a new unique correlation ID.
func NewCorrelationID() CorrelationID {
	return CorrelationID(uuid.New().String())
}

// String returns the string representation of the correlation ID.
func (c CorrelationID) String() string {
	return string(c)
}

// IsValid reports whether the correlation ID is a well-formed UUID.
func (c CorrelationID) IsValid() bool {
	_, err := uuid.Parse(string(c))
	return err == nil
}

// ToContext adds the correlation ID to the context.
func ToContext(ctx context.Context, id CorrelationID) context.Context {
	return context.WithValue(ctx, correlationKey, id)
}

// FromContextOrEmpty retrieves the correlation ID from the context.
// Returns an empty ID if none is set.
func FromContextOrEmpty(ctx context.Context) CorrelationID {
	if id, ok := ctx.Value(correlationKey).(CorrelationID); ok {
		return id
	}
	return ""
}

// InjectIntoRequest adds the context's correlation ID to the request headers.
func InjectIntoRequest(ctx context.Context, req *http.Request) {
	if id := FromContextOrEmpty(ctx); id != "" {
		req.Header.Set(HeaderCorrelationID, id.String())
	}
}
