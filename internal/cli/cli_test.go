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

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftable/compare-api-go/internal/cli"
	cerrors "github.com/draftable/compare-api-go/pkg/errors"
)

type row struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestPrint(t *testing.T) {
	rows := []row{{Name: "a", Count: 1}}

	t.Run("table test", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.Print(&buf, "", rows, func() string {
			tw := cli.NewTable(table.Row{"NAME", "COUNT"})
			for _, r := range rows {
				tw.AppendRow(table.Row{r.Name, r.Count})
			}
			return tw.Render()
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "NAME")
		assert.Contains(t, buf.String(), "COUNT")
	})

	t.Run("json test", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cli.Print(&buf, "json", rows, nil))
		assert.JSONEq(t, `[{"name": "a", "count": 1}]`, buf.String())
	})

	t.Run("yaml test", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cli.Print(&buf, "yaml", rows, nil))
		assert.Equal(t, "- name: a\n  count: 1\n", buf.String())
	})

	t.Run("unknown format test", func(t *testing.T) {
		assert.Error(t, cli.Print(&bytes.Buffer{}, "xml", rows, nil))
	})
}

func TestHumanTime(t *testing.T) {
	assert.Equal(t, "-", cli.HumanTime(nil))

	past := time.Now().Add(-3 * time.Hour)
	assert.Equal(t, "3 hours ago", cli.HumanTime(&past))
}

func TestEllipsisToken(t *testing.T) {
	assert.Equal(t, "short", cli.EllipsisToken("short"))
	assert.Equal(t, "0123...cdef", cli.EllipsisToken("0123456789abcdef"))
}

func TestPoll(t *testing.T) {
	t.Run("done test", func(t *testing.T) {
		calls := 0
		err := cli.Poll(context.Background(), time.Millisecond, func(context.Context) (bool, error) {
			calls++
			return calls == 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("error test", func(t *testing.T) {
		errCheck := errors.New("check failed")
		err := cli.Poll(context.Background(), time.Millisecond, func(context.Context) (bool, error) {
			return false, errCheck
		})
		assert.ErrorIs(t, err, errCheck)
	})

	t.Run("canceled test", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := cli.Poll(ctx, time.Millisecond, func(context.Context) (bool, error) {
			return false, nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
	t.Run("non-positive interval test", func(t *testing.T) {
		for _, interval := range []time.Duration{0, -time.Second} {
			calls := 0
			err := cli.Poll(context.Background(), interval, func(context.Context) (bool, error) {
				calls++
				return false, nil
			})
			assert.True(t, cerrors.IsInvalidArgument(err))
			assert.Equal(t, "poll-interval", cerrors.ErrorInfoOf(err).Field)
			assert.Zero(t, calls)
		}
	})
}
