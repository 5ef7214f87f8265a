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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftable/compare-api-go/internal/version"
	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/testhelper"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with a fresh home directory and environment.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// runWith executes the CLI with the credentials of the fake API.
func runWith(t *testing.T, api *testhelper.FakeAPI, args ...string) (string, string, error) {
	t.Helper()

	return run(t, append(args,
		"-a", testhelper.TestAccountID,
		"-t", testhelper.TestAuthToken,
		"-b", api.BaseURL(),
	)...)
}

func isolate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"DR_ACCOUNT", "DR_TOKEN", "DR_BASE_URL", "DR_ENV"} {
		t.Setenv(key, "")
	}
}

func TestComparisonCommands(t *testing.T) {
	isolate(t)

	testhelper.WithFakeAPI(t, func(t *testing.T, api *testhelper.FakeAPI) {
		t.Run("create with urls test", func(t *testing.T) {
			stdout, _, err := runWith(t, api,
				"create", "https://example.com/a.pdf", "https://example.com/b.docx",
				"-i", "cliTest1", "-p", "-o", "json",
			)
			require.NoError(t, err)

			var view struct {
				Comparison struct {
					Identifier string `json:"identifier"`
					Public     bool   `json:"public"`
				} `json:"comparison"`
				PublicURL string `json:"public_url"`
				SignedURL string `json:"signed_url"`
			}
			require.NoError(t, json.Unmarshal([]byte(stdout), &view))
			assert.Equal(t, "cliTest1", view.Comparison.Identifier)
			assert.True(t, view.Comparison.Public)
			assert.Equal(t, api.BaseURL()+"/comparisons/viewer/test-account/cliTest1", view.PublicURL)
			assert.Contains(t, view.SignedURL, "signature=")

			left := api.LastRequest().JSON["left"].(map[string]any)
			assert.Equal(t, "pdf", left["file_type"])
			assert.Equal(t, "a.pdf", left["display_name"])
		})

		t.Run("create with files test", func(t *testing.T) {
			dir := t.TempDir()
			leftPath := filepath.Join(dir, "old.pdf")
			rightPath := filepath.Join(dir, "new")
			require.NoError(t, os.WriteFile(leftPath, []byte("left"), 0o600))
			require.NoError(t, os.WriteFile(rightPath, []byte("right"), 0o600))

			stdout, _, err := runWith(t, api,
				"add", leftPath, rightPath, "--right-type", "rtf", "-i", "cliTest2", "-m", "15",
			)
			require.NoError(t, err)
			assert.Contains(t, stdout, "cliTest2")
			assert.Contains(t, stdout, "pending")

			req := api.LastRequest()
			assert.Equal(t, "left.pdf", req.Files["left.file"])
			assert.Equal(t, "right.rtf", req.Files["right.file"])
			assert.Equal(t, "right", req.Uploads["right.file"])
			assert.NotEmpty(t, req.Form["expires"])
		})

		t.Run("create without file type test", func(t *testing.T) {
			_, _, err := runWith(t, api, "create", "https://example.com/a", "https://example.com/b.pdf")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--left-type")
		})

		t.Run("all test", func(t *testing.T) {
			stdout, _, err := runWith(t, api, "ls", "-o", "json")
			require.NoError(t, err)

			var comparisons []map[string]any
			require.NoError(t, json.Unmarshal([]byte(stdout), &comparisons))
			assert.Len(t, comparisons, 2)

			stdout, _, err = runWith(t, api, "all")
			require.NoError(t, err)
			assert.Contains(t, stdout, "Account test-account has 2 comparison(s):")
		})

		t.Run("get test", func(t *testing.T) {
			stdout, stderr, err := runWith(t, api, "get", "cliTest1", "missing", "-o", "json")
			require.NoError(t, err)
			assert.Contains(t, stderr, "Comparison not found with identifier: missing")

			var views []map[string]any
			require.NoError(t, json.Unmarshal([]byte(stdout), &views))
			assert.Len(t, views, 1)
		})

		t.Run("get with wait test", func(t *testing.T) {
			timer := time.AfterFunc(50*time.Millisecond, func() { api.MarkReady("cliTest2", false) })
			defer timer.Stop()

			stdout, _, err := runWith(t, api, "get", "cliTest2", "--wait", "--poll-interval", "10ms")
			require.NoError(t, err)
			assert.Contains(t, stdout, "ready")
			assert.NotContains(t, stdout, "pending")
		})

		t.Run("get with zero poll interval test", func(t *testing.T) {
			_, _, err := runWith(t, api, "get", "cliTest2", "--wait", "--poll-interval", "0s")
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})

		t.Run("url test", func(t *testing.T) {
			stdout, _, err := runWith(t, api, "public-url", "cliTest1", "-w")
			require.NoError(t, err)
			assert.Equal(t, api.BaseURL()+"/comparisons/viewer/test-account/cliTest1?wait\n", stdout)

			stdout, _, err = runWith(t, api, "signed", "cliTest1", "cliTest2", "-m", "75")
			require.NoError(t, err)
			assert.Regexp(
				t,
				`^(\S+/viewer/test-account/cliTest[12]\?valid_until=\d+&signature=[0-9a-f]{64}\n){2}$`,
				stdout,
			)

			_, _, err = runWith(t, api, "signed", "cliTest1", "-m", "-5")
			assert.Error(t, err)
		})

		t.Run("export test", func(t *testing.T) {
			stdout, _, err := runWith(t, api,
				"export", "create", "cliTest1", "--kind", "combined", "--cover-page", "-o", "json",
			)
			require.NoError(t, err)

			var export map[string]any
			require.NoError(t, json.Unmarshal([]byte(stdout), &export))
			assert.Equal(t, "combined", export["kind"])
			assert.Equal(t, true, export["include_cover_page"])

			stdout, _, err = runWith(t, api, "export", "get", export["identifier"].(string))
			require.NoError(t, err)
			assert.Contains(t, stdout, "combined")

			_, _, err = runWith(t, api, "export", "create", "cliTest1", "--kind", "side_by_side")
			assert.Error(t, err)
		})

		t.Run("delete test", func(t *testing.T) {
			stdout, stderr, err := runWith(t, api, "rm", "cliTest1", "cliTest2", "missing")
			require.NoError(t, err)
			assert.Contains(t, stdout, "Deleted cliTest1")
			assert.Contains(t, stdout, "Deleted cliTest2")
			assert.Contains(t, stderr, "Comparison not found with identifier: missing")
			assert.Equal(t, 0, api.Count())
		})

		t.Run("wrong token test", func(t *testing.T) {
			_, _, err := run(t, "all", "-a", testhelper.TestAccountID, "-t", "wrong", "-b", api.BaseURL())
			require.Error(t, err)

			var out bytes.Buffer
			printError(context.Background(), &out, err)
			assert.Contains(t, out.String(), "Error: ")
			assert.Contains(t, out.String(), "HTTP status: 401")
		})
	})
}

func TestContextCommands(t *testing.T) {
	isolate(t)

	testhelper.WithFakeAPI(t, func(t *testing.T, api *testhelper.FakeAPI) {
		t.Run("missing credentials test", func(t *testing.T) {
			_, _, err := run(t, "all")
			assert.Error(t, err)
		})

		t.Run("set test", func(t *testing.T) {
			_, _, err := run(t, "context", "set", "fake",
				"-a", testhelper.TestAccountID,
				"-t", testhelper.TestAuthToken,
				"-b", api.BaseURL(),
			)
			require.NoError(t, err)

			_, _, err = run(t, "context", "set", "other", "-a", "other", "-t", "other-token-0123")
			require.NoError(t, err)

			stdout, _, err := run(t, "context", "ls", "-o", "json")
			require.NoError(t, err)

			var contexts []map[string]any
			require.NoError(t, json.Unmarshal([]byte(stdout), &contexts))
			require.Len(t, contexts, 2)
			assert.Equal(t, "fake", contexts[0]["name"])
			assert.Equal(t, "", contexts[0]["current"])
			assert.Equal(t, "other", contexts[1]["name"])
			assert.Equal(t, "*", contexts[1]["current"])
			assert.Equal(t, "othe...0123", contexts[1]["token"])
		})

		t.Run("named context test", func(t *testing.T) {
			stdout, _, err := run(t, "all", "-e", "fake")
			require.NoError(t, err)
			assert.Contains(t, stdout, "Account test-account has 0 comparison(s):")

			t.Setenv("DR_ENV", "fake")
			_, _, err = run(t, "all")
			require.NoError(t, err)
		})

		t.Run("remove test", func(t *testing.T) {
			stdout, _, err := run(t, "context", "remove", "other")
			require.NoError(t, err)
			assert.Contains(t, stdout, "fake is now current")

			stdout, _, err = run(t, "all")
			require.NoError(t, err)
			assert.Contains(t, stdout, "Account test-account")

			_, _, err = run(t, "context", "remove", "other")
			assert.Error(t, err)
		})
	})
}

func TestLocalCommands(t *testing.T) {
	isolate(t)

	t.Run("changes test", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "changes.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"changes": [
				{"kind": "insert", "leftText": "", "rightText": "a"},
				{"kind": "insert", "leftText": "", "rightText": "b"},
				{"kind": "delete", "leftText": "c", "rightText": ""}
			],
			"summary": {"leftDocumentSummary": {"wordCount": 1200}, "rightDocumentSummary": {"wordCount": 1201}}
		}`), 0o600))

		stdout, _, err := run(t, "changes", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "insert")
		assert.Contains(t, stdout, "delete")
		assert.Contains(t, stdout, "left: 1,200 words, right: 1,201 words")

		_, _, err = run(t, "changes", filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("version test", func(t *testing.T) {
		stdout, _, err := run(t, "version", "-o", "json")
		require.NoError(t, err)

		var info struct {
			ClientVersion struct {
				Version string `json:"version"`
			} `json:"clientVersion"`
			BaseURL string `json:"baseURL"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &info))
		assert.Equal(t, version.Version, info.ClientVersion.Version)
		assert.Equal(t, "https://api.draftable.com/v1", info.BaseURL)
	})

	t.Run("invalid output test", func(t *testing.T) {
		_, _, err := run(t, "version", "-o", "xml")
		assert.Error(t, err)
	})
}

func TestPrintError(t *testing.T) {
	t.Run("field test", func(t *testing.T) {
		var out bytes.Buffer
		printError(context.Background(), &out, errors.InvalidArgumentFor("expires", "expires must be in the future"))
		assert.Equal(t, "Error: invalid argument: expires must be in the future\nField: expires\n", out.String())
	})

	t.Run("connection test", func(t *testing.T) {
		var out bytes.Buffer
		printError(context.Background(), &out, errors.Connection(os.ErrDeadlineExceeded))
		assert.Contains(t, out.String(), "unable to connect to the API")
		assert.Contains(t, out.String(), "Check the base URL")
		assert.NotContains(t, out.String(), "HTTP status")
	})

	t.Run("missing credentials test", func(t *testing.T) {
		isolate(t)
		_, _, err := run(t, "all")
		require.Error(t, err)

		var out bytes.Buffer
		printError(context.Background(), &out, err)
		assert.Equal(t, "Error: both account and token must be set\n", out.String())
	})
}
