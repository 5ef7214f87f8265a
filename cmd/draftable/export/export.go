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

// Package export provides the commands that render finished comparisons into
// downloadable documents.
package export

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/internal/cli"
)

var (
	// SubCmd represents the export command.
	SubCmd = &cobra.Command{
		Use:   "export",
		Short: "Create and inspect exports of comparisons",
	}
)

func status(export *types.Export) string {
	switch {
	case !export.Ready:
		return "pending"
	case export.HasFailed():
		return "failed"
	default:
		return "ready"
	}
}

func renderExport(export *types.Export) string {
	tw := cli.NewTable(table.Row{"EXPORT", export.Identifier})
	tw.AppendRow(table.Row{"comparison", export.Comparison})
	tw.AppendRow(table.Row{"kind", export.Kind})
	tw.AppendRow(table.Row{"status", status(export)})
	if export.ErrorMessage != "" {
		tw.AppendRow(table.Row{"error", export.ErrorMessage})
	}
	if export.URL != "" {
		tw.AppendRow(table.Row{"url", export.URL})
	}
	return tw.Render()
}
