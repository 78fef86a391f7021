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

package action

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"runtime/debug"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tombee/soarmcp/internal/binding"
	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/soar"
)

// errNoResult stands in for an absent upstream response.
var errNoResult = errors.New("SOAR returned no result")

// Client is the part of the SOAR client the dispatcher needs.
type Client interface {
	Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, body any, params url.Values) (json.RawMessage, error)
}

// Call is one vendor action invocation.
type Call struct {
	// Provider is the SOAR integration identifier, e.g. "Shodan".
	Provider string
	// Action is the vendor action name, e.g. "Get Ip Info".
	Action string

	CaseID                string
	AlertGroupIdentifiers []string
	TargetEntities        []soar.TargetEntity
	// Scope is nil when the caller omitted it, which selects
	// soar.DefaultScope.
	Scope *string

	// Params is keyed by the SOAR parameter name. Nil values are omitted
	// from the request.
	Params map[string]any
}

// Dispatcher executes calls against SOAR.
type Dispatcher struct {
	client Client
	scopes soar.ScopeSet
	logger *slog.Logger
	tracer trace.Tracer
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithTracer sets the tracer used for dispatch spans.
func WithTracer(tracer trace.Tracer) DispatcherOption {
	return func(d *Dispatcher) { d.tracer = tracer }
}

// NewDispatcher creates a Dispatcher that validates scopes against scopes.
func NewDispatcher(client Client, scopes soar.ScopeSet, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		client: client,
		scopes: scopes,
		logger: slog.Default(),
		tracer: otel.Tracer("github.com/tombee/soarmcp/internal/action"),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = log.WithComponent(d.logger, "dispatch")
	return d
}

// FromBinding creates a Dispatcher over a bound SOAR connection.
func FromBinding(bc *binding.Context, opts ...DispatcherOption) *Dispatcher {
	return NewDispatcher(bc.Client, bc.Scopes, opts...)
}

// Execute runs call and never panics. Scope resolution happens before any
// request, so an invalid scope costs no network I/O.
func (d *Dispatcher) Execute(ctx context.Context, call Call) (res Result) {
	logger := d.logger.With(log.ProviderKey, call.Provider, log.ActionKey, call.Action, log.CaseIDKey, call.CaseID)

	ctx, span := d.tracer.Start(ctx, "action.execute", trace.WithAttributes(
		attribute.String("soar.provider", call.Provider),
		attribute.String("soar.action", call.Action),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "action panicked", "panic", r, "stack", string(debug.Stack()))
			res = Failedf("Unexpected error: %v", r)
		}
		if res.IsFailed() {
			span.SetStatus(codes.Error, res.Message())
		}
	}()

	resolution, err := Resolve(call.TargetEntities, call.Scope, d.scopes)
	if err != nil {
		logger.InfoContext(ctx, "rejected scope", log.Error(err))
		return Failed(err.Error())
	}

	instance, failure, ok := d.lookupInstance(ctx, logger, call.Provider)
	if !ok {
		return failure
	}

	req, err := newRequest(call, resolution, instance)
	if err != nil {
		return Failedf("Error executing action: %v", err)
	}

	body, err := d.client.Post(ctx, soar.PathExecuteManualAction, req, nil)
	if err == nil && body == nil {
		err = errNoResult
	}
	if err != nil {
		logger.WarnContext(ctx, "action dispatch failed", log.Error(err))
		return Failedf("Error executing action: %v", err)
	}

	logger.DebugContext(ctx, "action dispatched", "instance", instance)
	return Ok(body)
}

type instanceList struct {
	Instances []struct {
		Identifier string `json:"identifier"`
	} `json:"integration_instances"`
}

// lookupInstance fetches the provider's first integration instance. It is
// not cached: instances can be added or removed while serving.
func (d *Dispatcher) lookupInstance(ctx context.Context, logger *slog.Logger, provider string) (string, Result, bool) {
	raw, err := d.client.Get(ctx, soar.IntegrationInstancesPath(provider), url.Values{"$select": {"identifier"}})
	if err == nil && raw == nil {
		err = errNoResult
	}

	var list instanceList
	if err == nil {
		if uerr := json.Unmarshal(raw, &list); uerr != nil {
			err = fmt.Errorf("decoding instance list: %w", uerr)
		}
	}
	if err != nil {
		logger.WarnContext(ctx, "instance lookup failed", log.Error(err))
		return "", Failedf("Error fetching instance: %v", err), false
	}

	if len(list.Instances) == 0 {
		logger.WarnContext(ctx, "no active integration instance")
		return "", Failed("No active instance found."), false
	}
	if list.Instances[0].Identifier == "" {
		return "", Failed("Instance found but identifier is missing."), false
	}
	return list.Instances[0].Identifier, Result{}, true
}
