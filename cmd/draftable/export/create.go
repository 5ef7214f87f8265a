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

package export

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/internal/cli"
)

var (
	kind         string
	coverPage    bool
	wait         bool
	pollInterval time.Duration
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create COMPARISON_ID",
		Short:   "Export a comparison",
		Example: "  draftable export create PCiIEXzW --kind combined --wait",
		Args:    cobra.ExactArgs(1),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := config.NewClient()
			if err != nil {
				return err
			}

			ctx := config.CommandContext(cmd)
			export, err := api.Exports.Create(
				ctx,
				types.ComparisonID(args[0]),
				types.ExportKind(kind),
				coverPage,
			)
			if err != nil {
				return err
			}

			if wait && !export.Ready {
				err := cli.Poll(ctx, pollInterval, func(ctx context.Context) (bool, error) {
					fetched, err := api.Exports.Get(ctx, export.Identifier)
					if err != nil {
						return false, err
					}
					export = fetched
					return fetched.Ready, nil
				})
				if err != nil {
					return err
				}
			}

			return cli.Print(cmd.OutOrStdout(), viper.GetString("output"), export, func() string {
				return renderExport(export)
			})
		},
	}
}

func init() {
	cmd := newCreateCmd()
	cmd.Flags().StringVar(
		&kind,
		"kind",
		string(types.DefaultExportKind),
		"One of 'single_page', 'combined', 'left' or 'right'",
	)
	cmd.Flags().BoolVar(&coverPage, "cover-page", false, "Include a cover page")
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait until the export is ready")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", cli.DefaultPollInterval, "Interval between checks with --wait")
	SubCmd.AddCommand(cmd)
}
