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
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/client"
	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/internal/cli"
)

var (
	public     bool
	identifier string
	expiryMins int
	leftType   string
	rightType  string
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create LEFT RIGHT",
		Aliases: []string{"new", "post", "add"},
		Short:   "Create a new comparison of two files or URLs",
		Example: `  draftable create ./left.pdf ./right.pdf
  draftable create -p -m 15 ./left.pdf ./right.pdf
  draftable create --left-type=pdf --right-type=rtf ./left-file ./right-file`,
		Args:    cobra.ExactArgs(2),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := client.MakeSide(args[0], leftType, "")
			if err != nil {
				return fmt.Errorf("left: %w; you may need to specify the file type with --left-type", err)
			}
			defer func() { _ = left.Close() }()

			right, err := client.MakeSide(args[1], rightType, "")
			if err != nil {
				return fmt.Errorf("right: %w; you may need to specify the file type with --right-type", err)
			}
			defer func() { _ = right.Close() }()

			api, err := config.NewClient()
			if err != nil {
				return err
			}

			opts := []client.CreateOption{client.WithPublic(public)}
			if cmd.Flags().Changed("identifier") {
				opts = append(opts, client.WithComparisonIdentifier(identifier))
			}
			if cmd.Flags().Changed("expiry-mins") {
				opts = append(opts, client.WithExpires(types.DeadlineIn(time.Duration(expiryMins)*time.Minute)))
			}

			comparison, err := api.Comparisons.Create(config.CommandContext(cmd), left, right, opts...)
			if err != nil {
				return err
			}

			view, err := newComparisonView(api, comparison)
			if err != nil {
				return err
			}
			return cli.Print(cmd.OutOrStdout(), viper.GetString("output"), view, func() string {
				return renderComparison(view)
			})
		},
	}
}

func init() {
	cmd := newCreateCmd()
	cmd.Flags().BoolVarP(&public, "public", "p", false, "Mark the comparison public")
	cmd.Flags().StringVarP(&identifier, "identifier", "i", "", "Identifier of the comparison, generated when omitted")
	cmd.Flags().IntVarP(&expiryMins, "expiry-mins", "m", 0, "Number of minutes until the comparison expires")
	cmd.Flags().StringVar(&leftType, "left-type", "guess", "File type of the left file, e.g. 'pdf' or 'docx'")
	cmd.Flags().StringVar(&rightType, "right-type", "guess", "File type of the right file")
	rootCmd.AddCommand(cmd)
}
