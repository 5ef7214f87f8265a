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

// Package cli provides helpers shared by the commands of the CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// NewTable returns a table writer without borders or separators. A nil header
// leaves the table without one.
func NewTable(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	if len(header) > 0 {
		tw.AppendHeader(header)
	}
	return tw
}

// Print writes v to w in the given output format. The empty format writes the
// result of render instead.
func Print(w io.Writer, output string, v any, render func() string) error {
	switch output {
	case "":
		_, err := fmt.Fprintln(w, render())
		return err
	case "json":
		marshalled, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(marshalled))
		return err
	case "yaml":
		marshalled, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		_, err = fmt.Fprint(w, string(marshalled))
		return err
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

// HumanTime returns the time relative to now, e.g. "3 minutes ago". A nil time
// is rendered as "-".
func HumanTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return humanize.Time(*t)
}

// EllipsisToken shortens a secret so that it can be shown.
func EllipsisToken(token string) string {
	if len(token) > 8 {
		return token[:4] + "..." + token[len(token)-4:]
	}
	return token
}
