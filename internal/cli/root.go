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

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tombee/soarmcp/internal/commands/serve"
	"github.com/tombee/soarmcp/internal/commands/shared"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for soar-mcp. Without a
// subcommand it behaves like serve and accepts the serve flags.
func NewRootCommand() *cobra.Command {
	serveFlags := &serve.Flags{}

	cmd := &cobra.Command{
		Use:   "soar-mcp",
		Short: "soar-mcp - MCP gateway for the SOAR platform",
		Long: `soar-mcp exposes SOAR case management and integration actions as
MCP tools over stdio.

Case management tools are always registered. Integration tools are
registered only for the integrations named in --integrations.

Run 'soar-mcp integrations list' to see the available integrations.
Run 'soar-mcp secrets set' to store the app key in the system keychain.`,
		Args:          cobra.NoArgs,
		RunE:          serve.RunE(serveFlags),
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	serve.AddFlags(cmd, serveFlags)

	json, config := shared.RegisterFlagPointers()
	cmd.PersistentFlags().BoolVar(json, "json", false, "Output in JSON format")
	cmd.PersistentFlags().StringVar(config, "config", "", "Path to config file (default: ~/.config/soar-mcp/config.yaml)")

	cmd.SetHelpCommand(NewHelpCommand(cmd))

	return cmd
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return shared.GetVersion()
}

// HandleExitError handles exit errors with proper exit codes
func HandleExitError(err error) {
	shared.HandleExitError(err)
}
