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

package completion

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/integration"
)

// SafeCompletionWrapper wraps a completion function with panic recovery.
// Returns empty completion list on panic or error.
func SafeCompletionWrapper(fn func() ([]string, cobra.ShellCompDirective)) (results []string, directive cobra.ShellCompDirective) {
	results = []string{}
	directive = cobra.ShellCompDirectiveNoFileComp

	defer func() {
		if r := recover(); r != nil {
			results = []string{}
			directive = cobra.ShellCompDirectiveNoFileComp
		}
	}()

	results, directive = fn()
	if results == nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	return results, directive
}

// CompleteLogLevels provides completion for --log-level flag values.
func CompleteLogLevels(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
		levels := []string{
			"trace\tEvery request and response",
			"debug\tDiagnostic detail",
			"info\tStartup and tool calls",
			"warn\tRecoverable problems",
			"error\tFailures only",
		}
		return levels, cobra.ShellCompDirectiveNoFileComp
	})
}

// CompleteIntegrations provides completion for the comma-separated
// --integrations value. Only the element after the last comma is
// completed, and names already listed are not offered again.
func CompleteIntegrations(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
		return integrationCandidates(integration.BuiltinModules, toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})
}

func integrationCandidates(modules []action.Module, toComplete string) []string {
	prefix, partial := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, partial = toComplete[:i+1], toComplete[i+1:]
	}

	chosen := map[string]bool{}
	for _, name := range integration.ParseAllowList(prefix) {
		chosen[name] = true
	}

	var out []string
	for _, m := range modules {
		key := m.Key()
		if chosen[key] || !strings.HasPrefix(key, strings.ToLower(partial)) {
			continue
		}
		out = append(out, fmt.Sprintf("%s%s\t%s (%d actions)", prefix, key, m.Provider, len(m.Actions)))
	}
	return out
}
