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
	"runtime"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/client"
	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/internal/cli"
	"github.com/draftable/compare-api-go/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the version number of the draftable CLI",
		Args:    cobra.NoArgs,
		PreRunE: config.PreloadLocal,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := types.VersionInfo{
				ClientVersion: &types.VersionDetail{
					Version:   version.Version,
					GitCommit: version.GitCommit,
					GoVersion: runtime.Version(),
					BuildDate: version.BuildDate,
				},
				BaseURL: baseURL(),
			}

			return cli.Print(cmd.OutOrStdout(), viper.GetString("output"), versionInfo, func() string {
				detail := versionInfo.ClientVersion
				tw := cli.NewTable(nil)
				tw.AppendRow(table.Row{"Draftable CLI:", detail.Version})
				tw.AppendRow(table.Row{"Git Commit:", detail.GitCommit})
				tw.AppendRow(table.Row{"Go:", detail.GoVersion})
				tw.AppendRow(table.Row{"Build Date:", detail.BuildDate})
				tw.AppendRow(table.Row{"API:", versionInfo.BaseURL})
				return tw.Render()
			})
		},
	}
}

// baseURL returns the base URL commands would use, without requiring
// credentials.
func baseURL() string {
	if config.Flags.BaseURL != "" {
		return config.Flags.BaseURL
	}
	if env := config.FromEnv(); env.BaseURL != "" {
		return env.BaseURL
	}
	return client.DefaultBaseURL
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
