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
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/soar"
)

// Host accepts tool registrations. *server.MCPServer satisfies it.
type Host interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

// Registrar adds tools to a Host and refuses duplicate tool names.
type Registrar struct {
	host       Host
	dispatcher *Dispatcher
	logger     *slog.Logger

	mu    sync.Mutex
	tools map[string]struct{}
}

// NewRegistrar creates a Registrar. Vendor action tools run through d.
func NewRegistrar(host Host, d *Dispatcher, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registrar{
		host:       host,
		dispatcher: d,
		logger:     logger,
		tools:      make(map[string]struct{}),
	}
}

// Tools returns the registered tool names in sorted order.
func (r *Registrar) Tools() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddTool registers a single tool. It fails if the name is taken.
func (r *Registrar) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.tools[tool.Name]; taken {
		return fmt.Errorf("tool %q is already registered", tool.Name)
	}
	r.tools[tool.Name] = struct{}{}
	r.host.AddTool(tool, handler)
	return nil
}

type actionTool struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// Register adds one tool per action in m. All schemas are compiled and
// all names checked before the first tool is added, so a module is either
// registered completely or not at all.
func (r *Registrar) Register(m Module) error {
	if m.Provider == "" {
		return fmt.Errorf("module has no provider")
	}

	built := make([]actionTool, 0, len(m.Actions))
	seen := make(map[string]struct{}, len(m.Actions))
	for _, def := range m.Actions {
		name := m.ToolName(def)
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%s: duplicate tool %q", m.Provider, name)
		}
		seen[name] = struct{}{}

		t, err := r.buildTool(m, def)
		if err != nil {
			return err
		}
		built = append(built, t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range built {
		if _, taken := r.tools[t.tool.Name]; taken {
			return fmt.Errorf("%s: tool %q is already registered", m.Provider, t.tool.Name)
		}
	}
	for _, t := range built {
		r.tools[t.tool.Name] = struct{}{}
		r.host.AddTool(t.tool, t.handler)
	}

	r.logger.Debug("registered integration", log.ProviderKey, m.Provider, "tools", len(built))
	return nil
}

func (r *Registrar) buildTool(m Module, def Definition) (actionTool, error) {
	name := m.ToolName(def)

	properties := map[string]any{
		ArgCaseID:                StringProp("The ID of the case."),
		ArgAlertGroupIdentifiers: StringArrayProp("Identifiers for the alert groups."),
	}
	required := []string{ArgCaseID, ArgAlertGroupIdentifiers}

	argToParam := make(map[string]Param, len(def.Params))
	for _, p := range def.Params {
		arg := p.ArgName()
		if arg == "" {
			return actionTool{}, fmt.Errorf("%s: parameter %q has an empty argument name", name, p.Name)
		}
		if _, clash := properties[arg]; clash {
			return actionTool{}, fmt.Errorf("%s: parameter %q collides with argument %q", name, p.Name, arg)
		}
		properties[arg] = paramProp(p)
		if p.Required {
			required = append(required, arg)
		}
		argToParam[arg] = p
	}

	if _, clash := properties[ArgTargetEntities]; clash {
		return actionTool{}, fmt.Errorf("%s: parameter collides with argument %q", name, ArgTargetEntities)
	}
	if _, clash := properties[ArgScope]; clash {
		return actionTool{}, fmt.Errorf("%s: parameter collides with argument %q", name, ArgScope)
	}
	properties[ArgTargetEntities] = targetEntitiesProp()
	properties[ArgScope] = scopeProp()

	schema, err := NewSchema(name, properties, required)
	if err != nil {
		return actionTool{}, err
	}

	description := def.Description
	if description == "" {
		description = m.ScriptName(def)
	}

	return actionTool{
		tool: mcp.Tool{
			Name:        name,
			Description: description,
			InputSchema: schema.InputSchema(),
		},
		handler: r.actionHandler(m.Provider, def.Name, schema, argToParam),
	}, nil
}

type standardArgs struct {
	CaseID                string              `json:"case_id"`
	AlertGroupIdentifiers []string            `json:"alert_group_identifiers"`
	TargetEntities        []soar.TargetEntity `json:"target_entities"`
	Scope                 *string             `json:"scope"`
}

func (r *Registrar) actionHandler(provider, action string, schema *Schema, argToParam map[string]Param) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := schema.Check(request.GetArguments())
		if err != nil {
			return ToolResult(InvalidArguments(err)), nil
		}

		var std standardArgs
		if err := Decode(args, &std); err != nil {
			return ToolResult(InvalidArguments(err)), nil
		}

		params := make(map[string]any, len(argToParam))
		for arg, p := range argToParam {
			if v, ok := args[arg]; ok && v != nil {
				params[p.Name] = v
			}
		}

		res := r.dispatcher.Execute(ctx, Call{
			Provider:              provider,
			Action:                action,
			CaseID:                std.CaseID,
			AlertGroupIdentifiers: std.AlertGroupIdentifiers,
			TargetEntities:        std.TargetEntities,
			Scope:                 std.Scope,
			Params:                params,
		})
		return ToolResult(res), nil
	}
}

// ToolResult renders a Result as MCP tool output. Failures are ordinary
// text results so clients see the same JSON shape either way.
func ToolResult(res Result) *mcp.CallToolResult {
	return mcp.NewToolResultText(res.Text())
}
