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
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/client"
	"github.com/draftable/compare-api-go/cmd/draftable/config"
	"github.com/draftable/compare-api-go/internal/cli"
)

func newChangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "changes FILE",
		Short:   "Summarize a saved change details report, '-' reads standard input",
		Args:    cobra.ExactArgs(1),
		PreRunE: config.PreloadLocal,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(filepath.Clean(args[0]))
				if err != nil {
					return fmt.Errorf("open change details: %w", err)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			details, err := client.ParseChangeDetails(r)
			if err != nil {
				return err
			}

			return cli.Print(cmd.OutOrStdout(), viper.GetString("output"), details, func() string {
				return renderChangeDetails(details)
			})
		},
	}
}

func renderChangeDetails(details *types.ChangeDetails) string {
	counts := details.CountByKind()
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	tw := cli.NewTable(table.Row{"KIND", "CHANGES"})
	for _, kind := range kinds {
		tw.AppendRow(table.Row{kind, humanize.Comma(int64(counts[kind]))})
	}
	tw.AppendFooter(table.Row{"TOTAL", humanize.Comma(int64(len(details.Changes)))})

	rendered := tw.Render()
	if summary := details.Summary; summary != nil {
		left := documentWords(summary.LeftDocumentSummary)
		right := documentWords(summary.RightDocumentSummary)
		rendered += fmt.Sprintf("\n\nleft: %s words, right: %s words", left, right)
	}
	return rendered
}

func documentWords(summary *types.DocumentSummary) string {
	if summary == nil || summary.WordCount == nil {
		return "-"
	}
	return humanize.Comma(int64(*summary.WordCount))
}

func init() {
	rootCmd.AddCommand(newChangesCmd())
}
