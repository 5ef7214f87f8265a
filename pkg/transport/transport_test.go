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

package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftable/compare-api-go/internal/version"
	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/pkg/logging"
	"github.com/draftable/compare-api-go/pkg/metrics/prometheus"
	"github.com/draftable/compare-api-go/pkg/transport"
)

type recorded struct {
	method  string
	path    string
	query   url.Values
	header  http.Header
	body    []byte
	form    map[string][]string
	files   map[string]string
	fileNms map[string]string
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *recorded) {
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.header = r.Header.Clone()

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			rec.form = r.MultipartForm.Value
			rec.files = make(map[string]string)
			rec.fileNms = make(map[string]string)
			for key, headers := range r.MultipartForm.File {
				f, err := headers[0].Open()
				assert.NoError(t, err)
				data, err := io.ReadAll(f)
				assert.NoError(t, err)
				rec.files[key] = string(data)
				rec.fileNms[key] = headers[0].Filename
			}
		} else {
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			rec.body = body
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("sends auth headers test", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, `{"results": []}`)
		cli, err := transport.New(transport.WithToken("secret-token"))
		require.NoError(t, err)

		body, err := cli.Get(ctx, srv.URL+"/comparisons", nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"results": []}`, string(body))

		assert.Equal(t, http.MethodGet, rec.method)
		assert.Equal(t, "/comparisons", rec.path)
		assert.Equal(t, "Token secret-token", rec.header.Get("Authorization"))
		assert.Equal(t, version.UserAgent(), rec.header.Get("User-Agent"))
		assert.Equal(t, "application/json", rec.header.Get("Accept"))
	})

	t.Run("get with query parameters test", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, `{}`)
		cli, err := transport.New()
		require.NoError(t, err)

		_, err = cli.Get(ctx, srv.URL+"/exports/abc", url.Values{"wait": {"true"}})
		require.NoError(t, err)
		assert.Equal(t, "true", rec.query.Get("wait"))
	})

	t.Run("post json test", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusCreated, `{"identifier": "abc"}`)
		cli, err := transport.New(transport.WithToken("token"))
		require.NoError(t, err)

		_, err = cli.Post(ctx, srv.URL+"/comparisons", transport.Payload{
			"identifier": "abc",
			"public":     false,
			"expires":    nil,
			"left": transport.Payload{
				"file_type":  "pdf",
				"source_url": "https://example.com/a.pdf",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, rec.method)
		assert.Equal(t, "application/json", rec.header.Get("Content-Type"))
		assert.JSONEq(t, `{
			"identifier": "abc",
			"public": false,
			"expires": null,
			"left": {"file_type": "pdf", "source_url": "https://example.com/a.pdf"}
		}`, string(rec.body))
	})

	t.Run("post multipart test", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusCreated, `{"identifier": "abc"}`)
		metrics := prometheus.NewMetrics()
		cli, err := transport.New(transport.WithMetrics(metrics))
		require.NoError(t, err)

		_, err = cli.Post(ctx, srv.URL+"/comparisons", transport.Payload{
			"identifier": "abc",
			"public":     true,
			"expires":    nil,
			"left": transport.Payload{
				"file_type":    "pdf",
				"display_name": "old.pdf",
				"file":         transport.File{Name: "left.pdf", Content: strings.NewReader("left content")},
			},
			"right": transport.Payload{
				"file_type":  "docx",
				"source_url": "https://example.com/new.docx",
			},
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(rec.header.Get("Content-Type"), "multipart/form-data"))
		assert.Equal(t, []string{"abc"}, rec.form["identifier"])
		assert.Equal(t, []string{"true"}, rec.form["public"])
		assert.Equal(t, []string{"pdf"}, rec.form["left.file_type"])
		assert.Equal(t, []string{"old.pdf"}, rec.form["left.display_name"])
		assert.Equal(t, []string{"docx"}, rec.form["right.file_type"])
		assert.Equal(t, []string{"https://example.com/new.docx"}, rec.form["right.source_url"])
		assert.NotContains(t, rec.form, "expires")
		assert.Equal(t, "left content", rec.files["left.file"])
		assert.Equal(t, "left.pdf", rec.fileNms["left.file"])

		assert.Equal(t, 1.0, gathered(t, metrics, "draftable_api_uploaded_files_total"))
		assert.Equal(t, 1.0, gathered(t, metrics, "draftable_api_requests_total"))
	})

	t.Run("not found test", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusNotFound, `{"detail": "Not found."}`)
		cli, err := transport.New()
		require.NoError(t, err)

		_, err = cli.Get(ctx, srv.URL+"/comparisons/missing", nil)
		assert.True(t, errors.IsNotFound(err))

		var httpErr *errors.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.Equal(t, map[string]any{"detail": "Not found."}, httpErr.Response)
	})

	t.Run("bad request test", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusBadRequest, `{"left": ["This field is required."]}`)
		cli, err := transport.New()
		require.NoError(t, err)

		_, err = cli.Post(ctx, srv.URL+"/comparisons", transport.Payload{"identifier": "abc"})
		assert.True(t, errors.IsBadRequest(err))
		assert.Equal(t, errors.ErrCodeBadRequest, errors.StatusOf(err))
		assert.Contains(t, err.Error(), "status code 400")
	})

	t.Run("error body that is not json test", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusInternalServerError, `<html>oops</html>`)
		cli, err := transport.New()
		require.NoError(t, err)

		err = cli.Delete(ctx, srv.URL+"/comparisons/abc")
		var httpErr *errors.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "<html>oops</html>", httpErr.Response)
	})

	t.Run("delete with empty body test", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusNoContent, ``)
		cli, err := transport.New()
		require.NoError(t, err)

		assert.NoError(t, cli.Delete(ctx, srv.URL+"/comparisons/abc"))
		assert.Equal(t, http.MethodDelete, rec.method)
	})

	t.Run("success body that is not json test", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `not json`)
		cli, err := transport.New()
		require.NoError(t, err)

		_, err = cli.Get(ctx, srv.URL+"/comparisons", nil)
		assert.Equal(t, errors.ErrCodeInternal, errors.StatusOf(err))
	})

	t.Run("connection refused test", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := listener.Addr().String()
		require.NoError(t, listener.Close())

		metrics := prometheus.NewMetrics()
		cli, err := transport.New(transport.WithMetrics(metrics))
		require.NoError(t, err)

		_, err = cli.Get(ctx, "http://"+addr+"/comparisons", nil)
		assert.Equal(t, errors.ErrCodeUnavailable, errors.StatusOf(err))
		assert.Equal(t, "connection", errors.ErrorInfoOf(err).Code)
		assert.Equal(t, 1.0, gathered(t, metrics, "draftable_api_requests_total"))
	})

	t.Run("tls verification test", func(t *testing.T) {
		srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		verified, err := transport.New()
		require.NoError(t, err)
		_, err = verified.Get(ctx, srv.URL+"/comparisons", nil)
		assert.Equal(t, errors.ErrCodeUnavailable, errors.StatusOf(err))

		unverified, err := transport.New(transport.WithInsecureSkipVerify(true))
		require.NoError(t, err)
		_, err = unverified.Get(ctx, srv.URL+"/comparisons", nil)
		assert.NoError(t, err)
	})

	t.Run("logs without leaking the token test", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{}`)

		var buf bytes.Buffer
		assert.NoError(t, logging.SetLogLevel("debug"))
		defer func() { _ = logging.SetLogLevel("info") }()

		cli, err := transport.New(
			transport.WithToken("very-secret"),
			transport.WithLogger(logging.NewWithWriter(&buf, "transport")),
		)
		require.NoError(t, err)

		_, err = cli.Get(ctx, srv.URL+"/comparisons", nil)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "received response")
		assert.NotContains(t, buf.String(), "very-secret")
	})

	t.Run("logger of the context test", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{}`)

		var clientBuf, callBuf bytes.Buffer
		assert.NoError(t, logging.SetLogLevel("debug"))
		defer func() { _ = logging.SetLogLevel("info") }()

		cli, err := transport.New(transport.WithLogger(logging.NewWithWriter(&clientBuf, "transport")))
		require.NoError(t, err)

		callCtx := logging.With(ctx, logging.NewWithWriter(&callBuf, "call"))
		_, err = cli.Get(callCtx, srv.URL+"/comparisons", nil)
		require.NoError(t, err)
		assert.Contains(t, callBuf.String(), "received response")
		assert.Empty(t, clientBuf.String())
	})

	t.Run("canceled context test", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{}`)
		cli, err := transport.New()
		require.NoError(t, err)

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = cli.Get(canceled, srv.URL+"/comparisons", nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// gathered sums the samples of the named counter.
func gathered(t *testing.T, metrics *prometheus.Metrics, name string) float64 {
	families, err := metrics.Registry().Gather()
	require.NoError(t, err)

	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func TestDecodedBody(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"identifier": "abc", "ready": true}`)
	cli, err := transport.New()
	require.NoError(t, err)

	body, err := cli.Get(context.Background(), srv.URL+"/comparisons/abc", nil)
	require.NoError(t, err)

	var decoded struct {
		Identifier string `json:"identifier"`
		Ready      bool   `json:"ready"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "abc", decoded.Identifier)
	assert.True(t, decoded.Ready)
}
