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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tombee/soarmcp/internal/commands/shared"
)

// CommandMetadata describes one command in help --json output.
type CommandMetadata struct {
	Name        string         `json:"name"`
	Short       string         `json:"short"`
	Long        string         `json:"long,omitempty"`
	Usage       string         `json:"usage"`
	Group       string         `json:"group,omitempty"`
	Flags       []FlagMetadata `json:"flags,omitempty"`
	Subcommands []string       `json:"subcommands,omitempty"`
}

// FlagMetadata describes one flag.
type FlagMetadata struct {
	Name      string `json:"name"`
	Shorthand string `json:"shorthand,omitempty"`
	Usage     string `json:"usage"`
	Default   string `json:"default,omitempty"`
	Required  bool   `json:"required"`
}

// HelpResponse is the JSON response for the help command. Exactly one of
// Commands and Command is set.
type HelpResponse struct {
	shared.JSONResponse
	Commands    []CommandMetadata `json:"commands,omitempty"`
	Command     *CommandMetadata  `json:"command,omitempty"`
	GlobalFlags []FlagMetadata    `json:"global_flags,omitempty"`
}

// NewHelpCommand replaces cobra's help command with one that also speaks JSON.
func NewHelpCommand(rootCmd *cobra.Command) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Long: `Help provides detailed information about commands and their usage.

Run 'soar-mcp help <command>' for a specific command.
Use --json to get machine-readable output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := rootCmd
			if len(args) > 0 {
				found, _, err := rootCmd.Find(args)
				if err != nil {
					return fmt.Errorf("command %q not found", args[0])
				}
				target = found
			}

			if !shared.GetJSON() && !jsonOutput {
				return target.Help()
			}

			resp := HelpResponse{
				JSONResponse: shared.JSONResponse{Version: "1.0", Command: "help", Success: true},
				GlobalFlags:  flagMetadata(rootCmd.PersistentFlags()),
			}
			if target == rootCmd {
				resp.Commands = []CommandMetadata{}
				for _, c := range rootCmd.Commands() {
					if !c.Hidden {
						resp.Commands = append(resp.Commands, extractCommandMetadata(c))
					}
				}
			} else {
				metadata := extractCommandMetadata(target)
				resp.JSONResponse.Command = "help " + target.Name()
				resp.Command = &metadata
			}
			return shared.EmitJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// extractCommandMetadata reports local flags only; persistent flags are
// reported once as global flags.
func extractCommandMetadata(cmd *cobra.Command) CommandMetadata {
	metadata := CommandMetadata{
		Name:  cmd.Name(),
		Short: cmd.Short,
		Long:  cmd.Long,
		Usage: cmd.UseLine(),
		Group: cmd.Annotations["group"],
		Flags: flagMetadata(cmd.LocalNonPersistentFlags()),
	}
	for _, sub := range cmd.Commands() {
		if !sub.Hidden {
			metadata.Subcommands = append(metadata.Subcommands, sub.Name())
		}
	}
	return metadata
}

func flagMetadata(fs *pflag.FlagSet) []FlagMetadata {
	var flags []FlagMetadata
	fs.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		_, required := flag.Annotations[cobra.BashCompOneRequiredFlag]
		flags = append(flags, FlagMetadata{
			Name:      flag.Name,
			Shorthand: flag.Shorthand,
			Usage:     flag.Usage,
			Default:   flag.DefValue,
			Required:  required,
		})
	})
	return flags
}
