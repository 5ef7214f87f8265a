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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/pkg/errors"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID...",
		Aliases: []string{"del", "rm"},
		Short:   "Delete one or more comparisons",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := config.NewClient()
			if err != nil {
				return err
			}

			missing := make([]bool, len(args))
			g, ctx := errgroup.WithContext(config.CommandContext(cmd))
			for i, id := range args {
				i, id := i, id
				g.Go(func() error {
					err := api.Comparisons.Delete(ctx, id)
					if errors.IsNotFound(err) {
						missing[i] = true
						return nil
					}
					if err != nil {
						return fmt.Errorf("delete %s: %w", id, err)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for i, id := range args {
				if missing[i] {
					cmd.PrintErrf("Comparison not found with identifier: %s\n", id)
					continue
				}
				cmd.Printf("Deleted %s\n", id)
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}
