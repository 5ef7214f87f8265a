/*
 * Copyright 2026 The Draftable Compare API Go Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package context

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/draftable/compare-api-go/cmd/draftable/config"
)

// ErrAccountRequired is returned when a context is set without an account.
var ErrAccountRequired = errors.New("--account is required")

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME",
		Short: "Save the given account as a named context and make it current",
		Long: `Save the given account as a named context and make it current.

The settings are taken from the global flags. When --token is omitted and the
standard input is a terminal, the token is prompted for.`,
		Example: "  draftable context set cloud-testing -a F91n2k-test",
		Args:    cobra.ExactArgs(1),
		PreRunE: config.PreloadLocal,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Flags.Account == "" {
				return ErrAccountRequired
			}

			token := config.Flags.Token
			if token == "" {
				prompted, err := readToken(cmd)
				if err != nil {
					return err
				}
				token = prompted
			}

			conf, err := config.Load()
			if err != nil {
				return err
			}

			conf.Set(args[0], &config.Context{
				Account:  config.Flags.Account,
				Token:    token,
				BaseURL:  config.Flags.BaseURL,
				Insecure: config.Flags.Insecure,
			})
			if err := config.Save(conf); err != nil {
				return err
			}

			cmd.Printf("Context %s saved and set as current.\n", args[0])
			return nil
		},
	}
}

func readToken(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", config.ErrMissingCredentials
	}

	cmd.Print("Token: ")
	token, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	trimmed := strings.TrimSpace(string(token))
	if trimmed == "" {
		return "", config.ErrMissingCredentials
	}
	return trimmed, nil
}

func init() {
	SubCmd.AddCommand(newSetCmd())
}
