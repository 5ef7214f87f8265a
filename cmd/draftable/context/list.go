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
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/client"
	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/internal/cli"
)

// Info is a context as listed.
type Info struct {
	Current  string `json:"current" yaml:"current"`
	Name     string `json:"name" yaml:"name"`
	Account  string `json:"account" yaml:"account"`
	BaseURL  string `json:"base_url" yaml:"base_url"`
	Insecure bool   `json:"insecure" yaml:"insecure"`
	Token    string `json:"token" yaml:"token"`
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Short:   "List all contexts from configuration",
		Args:    cobra.NoArgs,
		PreRunE: config.PreloadLocal,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(conf.Contexts))
			for name := range conf.Contexts {
				names = append(names, name)
			}
			sort.Strings(names)

			contexts := make([]Info, 0, len(names))
			for _, name := range names {
				ctx := conf.Contexts[name]

				current := ""
				if name == conf.Current {
					current = "*"
				}
				baseURL := ctx.BaseURL
				if baseURL == "" {
					baseURL = client.DefaultBaseURL
				}

				contexts = append(contexts, Info{
					Current:  current,
					Name:     name,
					Account:  ctx.Account,
					BaseURL:  baseURL,
					Insecure: ctx.Insecure,
					Token:    cli.EllipsisToken(ctx.Token),
				})
			}

			return cli.Print(cmd.OutOrStdout(), viper.GetString("output"), contexts, func() string {
				tw := cli.NewTable(table.Row{"CURRENT", "NAME", "ACCOUNT", "BASE URL", "INSECURE", "TOKEN"})
				for _, ctx := range contexts {
					tw.AppendRow(table.Row{ctx.Current, ctx.Name, ctx.Account, ctx.BaseURL, ctx.Insecure, ctx.Token})
				}
				return tw.Render()
			})
		},
	}
}

func init() {
	SubCmd.AddCommand(newListCmd())
}
