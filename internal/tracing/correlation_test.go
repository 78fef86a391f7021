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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	id := NewCorrelationID()
	assert.True(t, id.IsValid())
	assert.False(t, CorrelationID("not-a-uuid").IsValid())

	ctx := ToContext(context.Background(), id)
	assert.Equal(t, id, FromContextOrEmpty(ctx))
	assert.Equal(t, CorrelationID(""), FromContextOrEmpty(context.Background()))
}

func TestInjectIntoRequest(t *testing.T) {
	id := NewCorrelationID()

	req, _ := http.NewRequest("GET", "https://soar.example.com", nil)
	InjectIntoRequest(ToContext(context.Background(), id), req)
	assert.Equal(t, id.String(), req.Header.Get(HeaderCorrelationID))

	bare, _ := http.NewRequest("GET", "https://soar.example.com", nil)
	InjectIntoRequest(context.Background(), bare)
	assert.Empty(t, bare.Header.Get(HeaderCorrelationID))
}
