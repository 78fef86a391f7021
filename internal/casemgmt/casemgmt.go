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

// Package casemgmt registers the built-in case, alert and entity tools.
// These are always available and do not go through the integration
// registry or the action dispatcher.
package casemgmt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/log"
	soarerrors "github.com/tombee/soarmcp/pkg/errors"
)

// Client is the subset of the SOAR transport used by the case tools.
type Client interface {
	Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, body any, params url.Values) (json.RawMessage, error)
	Patch(ctx context.Context, endpoint string, body any, params url.Values) (json.RawMessage, error)
}

// runFunc performs one tool call against SOAR. A nil payload with a nil
// error means SOAR returned nothing usable.
type runFunc func(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error)

type tool struct {
	name        string
	description string
	properties  map[string]any
	required    []string
	run         runFunc
}

// Register adds every case-management tool to r.
func Register(r *action.Registrar, client Client, logger *slog.Logger) error {
	if client == nil {
		return fmt.Errorf("case management requires a SOAR client")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = log.WithComponent(logger, "casemgmt")

	for _, t := range catalogue() {
		schema, err := action.NewSchema(t.name, t.properties, t.required)
		if err != nil {
			return err
		}
		mt := mcp.Tool{
			Name:        t.name,
			Description: t.description,
			InputSchema: schema.InputSchema(),
		}
		if err := r.AddTool(mt, handler(t, schema, client, logger)); err != nil {
			return err
		}
	}
	return nil
}

// Names lists the case-management tools in registration order.
func Names() []string {
	tools := catalogue()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.name
	}
	return names
}

func catalogue() []tool {
	var out []tool
	out = append(out, caseTools()...)
	out = append(out, alertTools()...)
	out = append(out, entityTools()...)
	return out
}

func handler(t tool, schema *action.Schema, client Client, logger *slog.Logger) server.ToolHandlerFunc {
	logger = logger.With(log.ToolKey, t.name)

	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		start := time.Now()
		defer func() {
			if p := recover(); p != nil {
				logger.Error("tool panicked", "panic", p)
				result, err = action.ToolResult(action.Failedf("Unexpected error: %v", p)), nil
			}
		}()

		args, err := schema.Check(request.GetArguments())
		if err != nil {
			return action.ToolResult(action.InvalidArguments(err)), nil
		}

		res := outcome(t.name, func() (json.RawMessage, error) {
			return t.run(ctx, client, args)
		})
		if res.IsFailed() {
			logger.Warn("case tool failed", "message", res.Message(), log.DurationKey, time.Since(start).Milliseconds())
		} else {
			logger.Debug("case tool succeeded", log.DurationKey, time.Since(start).Milliseconds())
		}
		return action.ToolResult(res), nil
	}
}

func outcome(name string, call func() (json.RawMessage, error)) action.Result {
	payload, err := call()
	if err != nil {
		var ve *soarerrors.ValidationError
		if soarerrors.As(err, &ve) {
			return action.InvalidArguments(err)
		}
		return action.Failed(err.Error())
	}
	if len(payload) == 0 {
		return action.Failedf("No result returned from SOAR for %s.", name)
	}
	return action.Ok(payload)
}

// decode copies checked arguments into a typed struct.
func decode(args map[string]any, into any) error {
	if err := action.Decode(args, into); err != nil {
		return &soarerrors.ValidationError{Message: err.Error()}
	}
	return nil
}

// pageParams carries an optional page token.
func pageParams(token *string, base url.Values) url.Values {
	if token == nil || *token == "" {
		return base
	}
	params := url.Values{}
	for k, v := range base {
		params[k] = v
	}
	params.Set("pageToken", *token)
	return params
}

const (
	argCaseID        = "case_id"
	argNextPageToken = "next_page_token"
)

func caseIDProp() map[string]any {
	return action.StringProp("The ID of the case.")
}

func pageTokenProp() map[string]any {
	return action.StringProp("The nextPageToken to fetch the next page of results.")
}
