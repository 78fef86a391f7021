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

// Package binding performs the startup handshake with SOAR.
//
// Bind builds the transport client and fetches the scopes the server
// accepts. The resulting Context is immutable and is handed to every
// component that talks to SOAR. If the handshake fails the process must
// not serve traffic.
package binding

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/soar"
	"github.com/tombee/soarmcp/internal/tracing"
)

// ErrCredentials is returned when SOAR answered but did not yield a usable
// scope list, which almost always means a wrong URL or app key.
var ErrCredentials = errors.New("failed to fetch valid scopes from SOAR")

// credentialsHint is the remedy printed alongside ErrCredentials.
const credentialsHint = "Check the SOAR credentials:\n  1. SOAR_URL is set and correct.\n  2. SOAR_APP_KEY is set and valid."

// credentialsError decorates ErrCredentials for CLI output.
type credentialsError struct{}

func (credentialsError) Error() string       { return ErrCredentials.Error() }
func (credentialsError) Unwrap() error       { return ErrCredentials }
func (credentialsError) IsUserVisible() bool { return true }
func (credentialsError) UserMessage() string { return ErrCredentials.Error() }
func (credentialsError) Suggestion() string  { return credentialsHint }
func (credentialsError) ErrorType() string   { return "credentials" }

// Options tune Bind beyond the connection settings.
type Options struct {
	Logger  *slog.Logger
	Metrics *tracing.Metrics
}

// Option configures Options.
type Option func(*Options)

// WithLogger sets the logger used by the client and the handshake.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithMetrics records transport metrics on m.
func WithMetrics(m *tracing.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Context is the bound connection: the shared client and the scope set.
// Both are fixed for the process lifetime.
type Context struct {
	Client *soar.Client
	Scopes soar.ScopeSet

	closeOnce sync.Once
	closeErr  error
}

// Bind connects to SOAR and fetches the scope set.
//
// Classified transport failures (*soar.Error) are returned unchanged.
// An absent, malformed or empty scope list yields an error matching
// ErrCredentials.
func Bind(ctx context.Context, cfg soar.Config, opts ...Option) (*Context, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	logger := log.WithComponent(o.Logger, "binding")

	if cfg.Logger == nil {
		cfg.Logger = o.Logger
	}
	if cfg.Metrics == nil {
		cfg.Metrics = o.Metrics
	}

	client, err := soar.New(cfg)
	if err != nil {
		return nil, err
	}

	scopes, err := fetchScopes(ctx, client)
	if err != nil {
		_ = client.Close()
		logger.ErrorContext(ctx, "failed to fetch scopes", log.Error(err))
		return nil, err
	}

	logger.InfoContext(ctx, "connected to SOAR",
		"url", client.BaseURL(),
		"app_key", log.SanitizeAPIKey(cfg.AppKey),
		"scopes", scopes.Len(),
	)
	return &Context{Client: client, Scopes: scopes}, nil
}

func fetchScopes(ctx context.Context, client *soar.Client) (soar.ScopeSet, error) {
	raw, err := client.Get(ctx, soar.PathGetScopes, nil)
	if err != nil {
		return soar.ScopeSet{}, err
	}
	if raw == nil {
		return soar.ScopeSet{}, credentialsError{}
	}

	var scopes []string
	if err := json.Unmarshal(raw, &scopes); err != nil || len(scopes) == 0 {
		return soar.ScopeSet{}, credentialsError{}
	}
	return soar.NewScopeSet(scopes), nil
}

// Close releases the client. It runs at most once and is safe on a nil
// or partially built Context.
func (c *Context) Close() error {
	if c == nil {
		return nil
	}
	c.closeOnce.Do(func() {
		if c.Client != nil {
			c.closeErr = c.Client.Close()
		}
	})
	return c.closeErr
}
