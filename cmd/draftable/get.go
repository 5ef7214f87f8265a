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
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/client"
	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/internal/cli"
	"github.com/draftable/compare-api-go/pkg/errors"
)

var (
	wait         bool
	pollInterval time.Duration
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get ID...",
		Short:   "Show one or more comparisons with their viewer URLs",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := config.NewClient()
			if err != nil {
				return err
			}

			views := make([]*comparisonView, len(args))
			g, ctx := errgroup.WithContext(config.CommandContext(cmd))
			for i, id := range args {
				i, id := i, id
				g.Go(func() error {
					comparison, err := getComparison(ctx, api, id, wait)
					if errors.IsNotFound(err) {
						return nil
					}
					if err != nil {
						return fmt.Errorf("get %s: %w", id, err)
					}

					views[i], err = newComparisonView(api, comparison)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			found := make([]*comparisonView, 0, len(views))
			for i, view := range views {
				if view == nil {
					cmd.PrintErrf("Comparison not found with identifier: %s\n", args[i])
					continue
				}
				found = append(found, view)
			}

			return cli.Print(cmd.OutOrStdout(), viper.GetString("output"), found, func() string {
				return renderComparisonViews(found)
			})
		},
	}
}

// getComparison fetches the comparison. With wait, it polls until the
// comparison is ready.
func getComparison(ctx context.Context, api *client.Client, id string, wait bool) (*types.Comparison, error) {
	var comparison *types.Comparison
	err := cli.Poll(ctx, pollInterval, func(ctx context.Context) (bool, error) {
		fetched, err := api.Comparisons.Get(ctx, id)
		if err != nil {
			return false, err
		}
		comparison = fetched
		return !wait || fetched.Ready, nil
	})
	if err != nil {
		return nil, err
	}
	return comparison, nil
}

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait until the comparisons are ready")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", cli.DefaultPollInterval, "Interval between checks with --wait")
	rootCmd.AddCommand(cmd)
}
