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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/internal/cli"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get ID",
		Short:   "Show an export",
		Args:    cobra.ExactArgs(1),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := config.NewClient()
			if err != nil {
				return err
			}

			export, err := api.Exports.Get(config.CommandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return cli.Print(cmd.OutOrStdout(), viper.GetString("output"), export, func() string {
				return renderExport(export)
			})
		},
	}
}

func init() {
	SubCmd.AddCommand(newGetCmd())
}
