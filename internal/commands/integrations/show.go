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

package integrations

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/commands/shared"
	"github.com/tombee/soarmcp/internal/integration"
	"github.com/tombee/soarmcp/internal/naming"
	soarerrors "github.com/tombee/soarmcp/pkg/errors"
)

// ToolDetail describes the MCP tool generated for one action.
type ToolDetail struct {
	Tool        string        `json:"tool"`
	Action      string        `json:"action"`
	Description string        `json:"description,omitempty"`
	Arguments   []ArgumentRow `json:"arguments,omitempty"`
}

// ArgumentRow is one vendor argument of a tool.
type ArgumentRow struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// NewShowCommand creates the integrations show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the tools of one integration",
		Long: `Show the MCP tools an integration registers and their vendor arguments.

Every tool also takes case_id, alert_group_identifiers, target_entities
and scope. The name is matched the same way as --integrations.

Examples:
  soar-mcp integrations show shodan
  soar-mcp integrations show SpyCloud --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := findModule(integration.BuiltinModules, args[0])
			if err != nil {
				return err
			}
			tools := describe(m)
			out := cmd.OutOrStdout()
			if shared.GetJSON() {
				return shared.EmitJSON(out, struct {
					shared.JSONResponse
					Key      string       `json:"key"`
					Provider string       `json:"provider"`
					Tools    []ToolDetail `json:"tools"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "integrations show", Success: true},
					Key:          m.Key(),
					Provider:     m.Provider,
					Tools:        tools,
				})
			}
			return writeDetail(out, m, tools)
		},
	}
}

func findModule(modules []action.Module, name string) (action.Module, error) {
	key := naming.Normalize(name)
	for _, m := range modules {
		if m.Key() == key {
			return m, nil
		}
	}
	return action.Module{}, &soarerrors.NotFoundError{Resource: "integration", ID: name}
}

func describe(m action.Module) []ToolDetail {
	tools := make([]ToolDetail, 0, len(m.Actions))
	for _, def := range m.Actions {
		t := ToolDetail{Tool: m.ToolName(def), Action: def.Name, Description: def.Description}
		for _, p := range def.Params {
			t.Arguments = append(t.Arguments, ArgumentRow{Name: p.ArgName(), Type: string(p.Type), Required: p.Required})
		}
		tools = append(tools, t)
	}
	return tools
}

func writeDetail(w io.Writer, m action.Module, tools []ToolDetail) error {
	fmt.Fprintf(w, "%s\n", shared.Header.Render(fmt.Sprintf("%s (%s)", m.Provider, m.Key())))
	for _, t := range tools {
		fmt.Fprintf(w, "\n%s\n", t.Tool)
		for _, a := range t.Arguments {
			req := ""
			if a.Required {
				req = " (required)"
			}
			fmt.Fprintf(w, "  %s: %s%s\n", a.Name, a.Type, req)
		}
	}
	_, err := fmt.Fprintf(w, "\n%s\n", shared.Muted.Render(fmt.Sprintf("%d tools", len(tools))))
	return err
}

func completeKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := make([]string, 0, len(integration.BuiltinModules))
	for _, m := range integration.BuiltinModules {
		keys = append(keys, m.Key()+"\t"+m.Provider)
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
