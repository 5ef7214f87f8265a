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
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/client"
	"github.com/draftable/compare-api-go/internal/cli"
)

// comparisonView is a comparison together with its viewer URLs.
type comparisonView struct {
	Comparison       *types.Comparison `json:"comparison" yaml:"comparison"`
	PublicURL        string            `json:"public_url" yaml:"public_url"`
	SignedURL        string            `json:"signed_url" yaml:"signed_url"`
	SignedURLExpires time.Time         `json:"signed_url_expires" yaml:"signed_url_expires"`
}

func newComparisonView(api *client.Client, comparison *types.Comparison) (*comparisonView, error) {
	publicURL, err := api.Comparisons.PublicViewerURL(comparison.Identifier, false)
	if err != nil {
		return nil, err
	}

	expires := time.Now().Add(client.DefaultSignedURLValidity).UTC()
	signedURL, err := api.Comparisons.SignedViewerURL(comparison.Identifier, types.DeadlineAt(expires), false)
	if err != nil {
		return nil, err
	}

	return &comparisonView{
		Comparison:       comparison,
		PublicURL:        publicURL,
		SignedURL:        signedURL,
		SignedURLExpires: expires,
	}, nil
}

func status(comparison *types.Comparison) string {
	switch {
	case !comparison.Ready:
		return "pending"
	case comparison.HasFailed():
		return "failed"
	default:
		return "ready"
	}
}

func renderComparison(view *comparisonView) string {
	comparison := view.Comparison

	tw := cli.NewTable(table.Row{"COMPARISON", comparison.Identifier})
	tw.AppendRow(table.Row{"status", status(comparison)})
	if comparison.ErrorMessage != "" {
		tw.AppendRow(table.Row{"error", comparison.ErrorMessage})
	}
	tw.AppendRow(table.Row{"public", comparison.Public})
	tw.AppendRow(table.Row{"created", cli.HumanTime(&comparison.CreationTime)})
	tw.AppendRow(table.Row{"ready", cli.HumanTime(comparison.ReadyTime)})
	tw.AppendRow(table.Row{"expires", cli.HumanTime(comparison.ExpiryTime)})
	tw.AppendRow(table.Row{"left", comparison.Left.String()})
	tw.AppendRow(table.Row{"right", comparison.Right.String()})
	tw.AppendRow(table.Row{"public url", view.PublicURL})
	tw.AppendRow(table.Row{"signed url", view.SignedURL})
	tw.AppendRow(table.Row{"signed url expires", cli.HumanTime(&view.SignedURLExpires)})
	return tw.Render()
}

func renderComparisonViews(views []*comparisonView) string {
	rendered := make([]string, 0, len(views))
	for _, view := range views {
		rendered = append(rendered, renderComparison(view))
	}
	return strings.Join(rendered, "\n\n")
}

func renderComparisons(accountID string, comparisons []*types.Comparison) string {
	tw := cli.NewTable(table.Row{"IDENTIFIER", "STATUS", "PUBLIC", "LEFT", "RIGHT", "CREATED", "EXPIRES"})
	for _, comparison := range comparisons {
		tw.AppendRow(table.Row{
			comparison.Identifier,
			status(comparison),
			comparison.Public,
			comparison.Left.String(),
			comparison.Right.String(),
			cli.HumanTime(&comparison.CreationTime),
			cli.HumanTime(comparison.ExpiryTime),
		})
	}
	return fmt.Sprintf("Account %s has %d comparison(s):\n%s", accountID, len(comparisons), tw.Render())
}
