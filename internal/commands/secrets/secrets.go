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

// Package secrets implements the secrets command, which manages the SOAR
// app key stored in the OS keychain.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tombee/soarmcp/internal/commands/shared"
	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/secrets"
)

// NewCommand creates the secrets command.
func NewCommand() *cobra.Command {
	return newCommand(func() secrets.SecretBackend { return secrets.NewKeychainBackend() })
}

func newCommand(backend func() secrets.SecretBackend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Manage the SOAR app key in the system keychain",
		Long: `Manage the SOAR app key in the system keychain.

The keychain is consulted only when neither SOAR_APP_KEY nor soar.app_key
in the config file is set.

Examples:
  soar-mcp secrets set
  echo "$KEY" | soar-mcp secrets set
  soar-mcp secrets status
  soar-mcp secrets delete`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set",
		Short: "Store the app key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := readSecretValue(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to read app key: %w", err)
			}
			if value == "" {
				return errors.New("app key cannot be empty")
			}
			if err := backend().Set(ctxOf(cmd), secrets.AppKeyItem, value); err != nil {
				return keychainError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), shared.RenderOK("App key stored in the system keychain"))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether an app key is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := backend().Get(ctxOf(cmd), secrets.AppKeyItem)
			out := cmd.OutOrStdout()
			switch {
			case err == nil:
				fmt.Fprintln(out, shared.RenderOK("App key stored: "+log.SanitizeAPIKey(value)))
			case errors.Is(err, secrets.ErrSecretNotFound):
				fmt.Fprintln(out, shared.RenderWarn("No app key stored"))
			default:
				return keychainError(err)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Remove the stored app key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := backend().Delete(ctxOf(cmd), secrets.AppKeyItem)
			if err != nil && !errors.Is(err, secrets.ErrSecretNotFound) {
				return keychainError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), shared.RenderOK("App key removed"))
			return nil
		},
	})

	return cmd
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func keychainError(err error) error {
	if errors.Is(err, secrets.ErrBackendUnavailable) {
		return fmt.Errorf("keychain unavailable: %w\n\nSet SOAR_APP_KEY in the environment instead", err)
	}
	return fmt.Errorf("keychain error: %w", err)
}

// readSecretValue reads from a pipe, or prompts with hidden input when
// stdin is a terminal.
func readSecretValue(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Enter SOAR app key (hidden): ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
