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

// Package integrations implements the integrations command.
package integrations

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/commands/shared"
	"github.com/tombee/soarmcp/internal/integration"
)

// NewCommand creates the integrations command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrations",
		Short: "Inspect the built-in integration catalogue",
	}
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewShowCommand())
	return cmd
}

// Entry describes one catalogued integration.
type Entry struct {
	Key      string   `json:"key"`
	Provider string   `json:"provider"`
	Actions  int      `json:"actions"`
	Tools    []string `json:"tools"`
}

// NewListCommand creates the integrations list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List integrations",
		Long: `List the integrations compiled into soar-mcp.

The key column is the name accepted by --integrations. No SOAR connection
is made.

Examples:
  soar-mcp integrations list
  soar-mcp integrations list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := Catalogue(integration.BuiltinModules)
			out := cmd.OutOrStdout()
			if shared.GetJSON() {
				return shared.EmitJSON(out, struct {
					shared.JSONResponse
					Integrations []Entry `json:"integrations"`
				}{
					JSONResponse: shared.JSONResponse{Version: "1.0", Command: "integrations list", Success: true},
					Integrations: entries,
				})
			}
			return writeTable(out, entries)
		},
	}
}

// Catalogue describes modules sorted by key.
func Catalogue(modules []action.Module) []Entry {
	entries := make([]Entry, 0, len(modules))
	for _, m := range modules {
		e := Entry{Key: m.Key(), Provider: m.Provider, Actions: len(m.Actions)}
		for _, def := range m.Actions {
			e.Tools = append(e.Tools, m.ToolName(def))
		}
		sort.Strings(e.Tools)
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

func writeTable(out io.Writer, entries []Entry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tPROVIDER\tACTIONS")
	total := 0
	for _, e := range entries {
		total += e.Actions
		fmt.Fprintf(w, "%s\t%s\t%d\n", e.Key, e.Provider, e.Actions)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d integrations, %d actions. Enable with --integrations %s", len(entries), total, exampleList(entries))
	_, err := fmt.Fprintln(out, "\n"+shared.Muted.Render(summary))
	return err
}

func exampleList(entries []Entry) string {
	var keys []string
	for i := 0; i < len(entries) && i < 2; i++ {
		keys = append(keys, entries[i].Key)
	}
	return strings.Join(keys, ",")
}
