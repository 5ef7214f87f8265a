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

// Package main is the entry point of the draftable CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/cmd/draftable/config"
	drcontext "github.com/draftable/compare-api-go/cmd/draftable/context"
	"github.com/draftable/compare-api-go/cmd/draftable/export"
	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "draftable",
	Short: "Create and manage Draftable comparisons on the command line",
	Long: `Create and manage Draftable comparisons on the command line.

Both the account id and the auth token must be set. They are read from the
DR_ACCOUNT and DR_TOKEN environment variables, from a named context saved with
"draftable context set" (selected with --env or DR_ENV, or the current context),
or from the --account and --token flags, which override everything else.

The base URL is only needed for self-hosted deployments. It is read from
DR_BASE_URL, from the context, or from --base-url.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Run executes CLI.
func Run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(ctx, rootCmd.ErrOrStderr(), err)
		return 1
	}

	return 0
}

// printError writes err to w with the field or HTTP status it carries.
func printError(ctx context.Context, w io.Writer, err error) {
	info := errors.ErrorInfoOf(err)
	fmt.Fprintf(w, "Error: %s\n", info.Message)
	if info.Field != "" {
		fmt.Fprintf(w, "Field: %s\n", info.Field)
	}
	if info.HTTPStatus != 0 {
		fmt.Fprintf(w, "HTTP status: %d\n", info.HTTPStatus)
	}
	if errors.IsServerError(err) {
		fmt.Fprintln(w, "Check the base URL and the network connection, then try again.")
	}

	logging.From(ctx).Debugw(
		"command failed",
		"status", info.StatusString,
		"code", info.Code,
		"client_error", errors.IsClientError(err),
	)
}

func init() {
	rootCmd.AddCommand(drcontext.SubCmd)
	rootCmd.AddCommand(export.SubCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&config.Flags.Account, "account", "a", "", "Account id, see https://api.draftable.com/account/credentials")
	flags.StringVarP(&config.Flags.Token, "token", "t", "", "Auth token of the account")
	flags.StringVarP(&config.Flags.BaseURL, "base-url", "b", "", "Base URL of a self-hosted deployment")
	flags.StringVarP(&config.EnvName, "env", "e", "", "Name of the context to use")
	flags.BoolVarP(
		&config.Flags.Insecure,
		"unverified-ssl",
		"S",
		false,
		"Skip TLS certificate verification, e.g. for self-signed certificates",
	)
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringP("output", "o", "", "One of 'yaml' or 'json'")

	if err := viper.BindPFlag("log-level", flags.Lookup("log-level")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("output", flags.Lookup("output")); err != nil {
		panic(err)
	}
}
