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

package binding

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/soarmcp/internal/soar"
	soarerrors "github.com/tombee/soarmcp/pkg/errors"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func scopesServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, soar.PathGetScopes, r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("AppKey"))
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestBind_Scopes(t *testing.T) {
	server := scopesServer(t, http.StatusOK, `["Only Entities","All entities"]`)

	bc, err := Bind(context.Background(), soar.Config{BaseURL: server.URL, AppKey: "key"}, quiet())
	require.NoError(t, err)
	defer bc.Close()

	assert.Equal(t, []string{"All entities", "Only Entities"}, bc.Scopes.Sorted())
	assert.True(t, bc.Scopes.Contains("All entities"))
	assert.NotNil(t, bc.Client)
}

func TestBind_CredentialsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"bad key"}`},
		{name: "empty list", status: http.StatusOK, body: `[]`},
		{name: "not a list", status: http.StatusOK, body: `{"scopes":["All entities"]}`},
		{name: "null", status: http.StatusOK, body: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := scopesServer(t, tt.status, tt.body)

			bc, err := Bind(context.Background(), soar.Config{BaseURL: server.URL, AppKey: "key"}, quiet())
			assert.Nil(t, bc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCredentials))

			uv, ok := soarerrors.AsUserVisible(err)
			require.True(t, ok)
			assert.Contains(t, uv.Suggestion(), "SOAR_URL")
			assert.Contains(t, uv.Suggestion(), "SOAR_APP_KEY")
		})
	}
}

func TestBind_ConnectionErrorPropagates(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	bc, err := Bind(context.Background(), soar.Config{BaseURL: "http://" + addr}, quiet())
	assert.Nil(t, bc)
	require.Error(t, err)
	assert.True(t, soar.IsKind(err, soar.KindConnection))
	assert.False(t, errors.Is(err, ErrCredentials))
}

func TestBind_CertificateErrorPropagates(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	_, err := Bind(context.Background(), soar.Config{BaseURL: server.URL}, quiet())
	require.Error(t, err)
	assert.True(t, soar.IsKind(err, soar.KindCertificate))
}

func TestBind_InvalidURL(t *testing.T) {
	_, err := Bind(context.Background(), soar.Config{BaseURL: "not a url"}, quiet())
	assert.Error(t, err)
}

func TestContext_Close(t *testing.T) {
	var nilCtx *Context
	assert.NoError(t, nilCtx.Close())

	partial := &Context{}
	assert.NoError(t, partial.Close())

	server := scopesServer(t, http.StatusOK, `["All entities"]`)
	bc, err := Bind(context.Background(), soar.Config{BaseURL: server.URL, AppKey: "key"}, quiet())
	require.NoError(t, err)

	assert.NoError(t, bc.Close())
	assert.NoError(t, bc.Close())

	_, err = bc.Client.Get(context.Background(), soar.PathGetScopes, nil)
	assert.ErrorIs(t, err, soar.ErrClosed)
}
