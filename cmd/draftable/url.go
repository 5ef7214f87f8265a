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

package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/internal/cli"
)

var (
	urlWait        bool
	signedWait     bool
	signedValidity int
)

func newURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "url ID...",
		Aliases: []string{"public", "public-url", "public_url"},
		Short:   "Print the public viewer URL of comparisons",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := config.NewClient()
			if err != nil {
				return err
			}

			urls := make([]string, 0, len(args))
			for _, id := range args {
				u, err := api.Comparisons.PublicViewerURL(id, urlWait)
				if err != nil {
					return err
				}
				urls = append(urls, u)
			}
			return printURLs(cmd, urls)
		},
	}
}

func newSignedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "signed ID...",
		Aliases: []string{"signed-url", "signed_url"},
		Short:   "Print a signed viewer URL of comparisons",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := config.NewClient()
			if err != nil {
				return err
			}

			validUntil := types.DeadlineIn(time.Duration(signedValidity) * time.Minute)
			urls := make([]string, 0, len(args))
			for _, id := range args {
				u, err := api.Comparisons.SignedViewerURL(id, validUntil, signedWait)
				if err != nil {
					return err
				}
				urls = append(urls, u)
			}
			return printURLs(cmd, urls)
		},
	}
}

func printURLs(cmd *cobra.Command, urls []string) error {
	return cli.Print(cmd.OutOrStdout(), viper.GetString("output"), urls, func() string {
		return strings.Join(urls, "\n")
	})
}

func init() {
	urlCmd := newURLCmd()
	urlCmd.Flags().BoolVarP(&urlWait, "wait", "w", false, "Make the viewer wait until the comparison is ready")
	rootCmd.AddCommand(urlCmd)

	signedCmd := newSignedCmd()
	signedCmd.Flags().IntVarP(&signedValidity, "expiry-mins", "m", 30, "Number of minutes the URL is valid")
	signedCmd.Flags().BoolVarP(&signedWait, "wait", "w", false, "Make the viewer wait until the comparison is ready")
	rootCmd.AddCommand(signedCmd)
}
