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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHelpTree() *cobra.Command {
	rootCmd := &cobra.Command{Use: "test", Short: "Test command"}
	rootCmd.PersistentFlags().String("config", "", "Config file")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample subcommand",
		Long:  "This is a sample subcommand for testing",
		Annotations: map[string]string{
			"group": "testing",
		},
		Run: func(*cobra.Command, []string) {},
	}
	sampleCmd.Flags().String("flag", "", "A sample flag")
	rootCmd.AddCommand(sampleCmd)

	rootCmd.SetHelpCommand(NewHelpCommand(rootCmd))
	return rootCmd
}

func runHelp(t *testing.T, rootCmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestHelpCommandJSON_AllCommands(t *testing.T) {
	out := runHelp(t, newHelpTree(), "--json")

	var resp HelpResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "1.0", resp.Version)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Command)
	require.NotEmpty(t, resp.Commands)

	var names []string
	for _, c := range resp.Commands {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "sample")

	require.Len(t, resp.GlobalFlags, 1)
	assert.Equal(t, "config", resp.GlobalFlags[0].Name)
}

func TestHelpCommandJSON_SingleCommand(t *testing.T) {
	out := runHelp(t, newHelpTree(), "sample", "--json")

	var resp HelpResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Command)
	assert.Empty(t, resp.Commands)
	assert.Equal(t, "sample", resp.Command.Name)
	assert.Equal(t, "help sample", resp.JSONResponse.Command)
	assert.Equal(t, "testing", resp.Command.Group)
	assert.Equal(t, "This is a sample subcommand for testing", resp.Command.Long)

	var flagNames []string
	for _, f := range resp.Command.Flags {
		flagNames = append(flagNames, f.Name)
	}
	assert.Contains(t, flagNames, "flag")
	assert.NotContains(t, flagNames, "config")
}

func TestHelpCommand_UnknownCommand(t *testing.T) {
	rootCmd := newHelpTree()
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"help", "nope", "--json"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestHelpCommandHumanOutput(t *testing.T) {
	out := runHelp(t, newHelpTree())
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "expected human output, got JSON")
	assert.Contains(t, out, "sample")
}

func TestExtractCommandMetadata(t *testing.T) {
	cmd := &cobra.Command{
		Use:   "testcmd",
		Short: "Test command",
		Long:  "This is a longer description",
		Annotations: map[string]string{
			"group": "testing",
		},
	}
	cmd.Flags().String("flag", "default", "A test flag")
	cmd.Flags().Bool("bool-flag", false, "A boolean flag")
	cmd.Flags().String("needed", "", "A required flag")
	require.NoError(t, cmd.MarkFlagRequired("needed"))

	metadata := extractCommandMetadata(cmd)

	assert.Equal(t, "testcmd", metadata.Name)
	assert.Equal(t, "Test command", metadata.Short)
	assert.Equal(t, "This is a longer description", metadata.Long)
	assert.Equal(t, "testing", metadata.Group)
	assert.Empty(t, metadata.Subcommands)
	require.Len(t, metadata.Flags, 3)

	required := map[string]bool{}
	for _, f := range metadata.Flags {
		required[f.Name] = f.Required
	}
	assert.True(t, required["needed"])
	assert.False(t, required["flag"])
}

func TestFlagMetadata_SkipsHidden(t *testing.T) {
	rootCmd := &cobra.Command{Use: "test"}
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("config", "", "Config file")
	rootCmd.PersistentFlags().String("internal", "", "Not shown")
	require.NoError(t, rootCmd.PersistentFlags().MarkHidden("internal"))

	flags := flagMetadata(rootCmd.PersistentFlags())
	require.Len(t, flags, 2)

	usage := map[string]string{}
	for _, f := range flags {
		usage[f.Name] = f.Usage
	}
	assert.Equal(t, "Output in JSON format", usage["json"])
	assert.Equal(t, "Config file", usage["config"])
}
