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

// Package testhelper provides an in-memory fake of the Draftable API for
// tests of the client and the CLI.
package testhelper

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/draftable/compare-api-go/api/types"
)

const (
	// TestAccountID is the account of the fake API.
	TestAccountID = "test-account"

	// TestAuthToken is the only auth token the fake API accepts.
	TestAuthToken = "test-token"

	apiPrefix = "/v1"
)

// RecordedRequest is a request received by the fake API.
type RecordedRequest struct {
	Method      string
	Path        string
	Query       string
	ContentType string

	// Form holds the fields of a multipart request.
	Form map[string][]string

	// Files maps the field of each uploaded file to its file name.
	Files map[string]string

	// Uploads maps the field of each uploaded file to its content.
	Uploads map[string]string

	// JSON is the decoded body of a JSON request.
	JSON map[string]any
}

// FakeAPI is an in-memory fake of the comparisons and exports endpoints.
type FakeAPI struct {
	server *httptest.Server
	clock  func() time.Time

	mu          sync.Mutex
	comparisons map[string]map[string]any
	exports     map[string]map[string]any
	requests    []RecordedRequest
	exportSeq   int
}

// NewFakeAPI starts a fake API that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	api := &FakeAPI{
		clock:       time.Now,
		comparisons: make(map[string]map[string]any),
		exports:     make(map[string]map[string]any),
	}
	api.server = httptest.NewServer(http.HandlerFunc(api.serveHTTP))
	t.Cleanup(api.server.Close)

	return api
}

// WithFakeAPI runs f against a new fake API.
func WithFakeAPI(t *testing.T, f func(*testing.T, *FakeAPI)) {
	f(t, NewFakeAPI(t))
}

// BaseURL returns the base URL clients should use.
func (a *FakeAPI) BaseURL() string {
	return a.server.URL + apiPrefix
}

// Requests returns the requests received so far.
func (a *FakeAPI) Requests() []RecordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	requests := make([]RecordedRequest, len(a.requests))
	copy(requests, a.requests)
	return requests
}

// LastRequest returns the last request received.
func (a *FakeAPI) LastRequest() RecordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.requests) == 0 {
		return RecordedRequest{}
	}
	return a.requests[len(a.requests)-1]
}

// MarkReady makes the given comparison ready, failed or not.
func (a *FakeAPI) MarkReady(id string, failed bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	comparison, ok := a.comparisons[id]
	if !ok {
		return
	}
	comparison["ready"] = true
	comparison["ready_time"] = types.FormatTimestamp(a.clock())
	comparison["failed"] = failed
	if failed {
		comparison["error_message"] = "The document could not be converted."
	}
}

// Count returns the number of comparisons stored.
func (a *FakeAPI) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.comparisons)
}

func (a *FakeAPI) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Token "+TestAuthToken {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Invalid token."})
		return
	}

	rec, err := record(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": err.Error()})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = append(a.requests, rec)

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, apiPrefix), "/")
	segments := strings.Split(path, "/")

	switch {
	case path == "comparisons" && r.Method == http.MethodGet:
		a.listComparisons(w)
	case path == "comparisons" && r.Method == http.MethodPost:
		a.createComparison(w, rec)
	case len(segments) == 2 && segments[0] == "comparisons" && r.Method == http.MethodGet:
		a.getComparison(w, segments[1])
	case len(segments) == 2 && segments[0] == "comparisons" && r.Method == http.MethodDelete:
		a.deleteComparison(w, segments[1])
	case path == "exports" && r.Method == http.MethodPost:
		a.createExport(w, rec)
	case len(segments) == 2 && segments[0] == "exports" && r.Method == http.MethodGet:
		a.getExport(w, segments[1])
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
	}
}

func (a *FakeAPI) listComparisons(w http.ResponseWriter) {
	ids := make([]string, 0, len(a.comparisons))
	for id := range a.comparisons {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		results = append(results, a.comparisons[id])
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(results), "results": results})
}

func (a *FakeAPI) createComparison(w http.ResponseWriter, rec RecordedRequest) {
	body := rec.JSON
	if body == nil {
		body = unflatten(rec)
	}

	id, _ := body["identifier"].(string)
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"identifier": []string{"This field is required."}})
		return
	}
	if _, ok := a.comparisons[id]; ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"identifier": []string{"A comparison with this identifier already exists."},
		})
		return
	}

	left, lok := responseSide(body["left"])
	right, rok := responseSide(body["right"])
	if !lok || !rok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "left and right are required."})
		return
	}

	comparison := map[string]any{
		"identifier":    id,
		"left":          left,
		"right":         right,
		"public":        truthy(body["public"]),
		"creation_time": types.FormatTimestamp(a.clock()),
		"ready":         false,
	}
	if expires, ok := body["expires"].(string); ok && expires != "" {
		comparison["expiry_time"] = expires
	}
	a.comparisons[id] = comparison

	writeJSON(w, http.StatusCreated, comparison)
}

func (a *FakeAPI) getComparison(w http.ResponseWriter, id string) {
	comparison, ok := a.comparisons[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}

func (a *FakeAPI) deleteComparison(w http.ResponseWriter, id string) {
	if _, ok := a.comparisons[id]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		return
	}
	delete(a.comparisons, id)
	w.WriteHeader(http.StatusNoContent)
}

func (a *FakeAPI) createExport(w http.ResponseWriter, rec RecordedRequest) {
	body := rec.JSON
	comparison, _ := body["comparison"].(string)
	if _, ok := a.comparisons[comparison]; !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"comparison": []string{"Invalid comparison."}})
		return
	}

	a.exportSeq++
	id := "export" + strconv.Itoa(a.exportSeq)
	export := map[string]any{
		"identifier":         id,
		"comparison":         comparison,
		"kind":               body["kind"],
		"ready":              true,
		"failed":             false,
		"url":                fmt.Sprintf("%s/exports/%s.pdf", a.BaseURL(), id),
		"include_cover_page": truthy(body["include_cover_page"]),
	}
	a.exports[id] = export

	writeJSON(w, http.StatusCreated, export)
}

func (a *FakeAPI) getExport(w http.ResponseWriter, id string) {
	export, ok := a.exports[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, export)
}

func record(r *http.Request) (RecordedRequest, error) {
	rec := RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.RawQuery,
		ContentType: r.Header.Get("Content-Type"),
	}

	switch {
	case strings.HasPrefix(rec.ContentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return rec, fmt.Errorf("parse multipart: %w", err)
		}
		rec.Form = r.MultipartForm.Value
		rec.Files = make(map[string]string)
		rec.Uploads = make(map[string]string)
		for field, headers := range r.MultipartForm.File {
			f, err := headers[0].Open()
			if err != nil {
				return rec, fmt.Errorf("open %s: %w", field, err)
			}
			content, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				return rec, fmt.Errorf("read %s: %w", field, err)
			}
			rec.Files[field] = headers[0].Filename
			rec.Uploads[field] = string(content)
		}
	case strings.HasPrefix(rec.ContentType, "application/json"):
		if err := json.NewDecoder(r.Body).Decode(&rec.JSON); err != nil {
			return rec, fmt.Errorf("decode json: %w", err)
		}
	}

	return rec, nil
}

// unflatten rebuilds the nested body of a multipart request.
func unflatten(rec RecordedRequest) map[string]any {
	body := make(map[string]any)
	set := func(key string, value any) {
		parent, child, nested := strings.Cut(key, ".")
		if !nested {
			body[key] = value
			return
		}
		side, ok := body[parent].(map[string]any)
		if !ok {
			side = make(map[string]any)
			body[parent] = side
		}
		side[child] = value
	}

	for key, values := range rec.Form {
		if len(values) > 0 {
			set(key, values[0])
		}
	}
	for key := range rec.Files {
		set(key, "<uploaded>")
	}
	return body
}

func responseSide(v any) (map[string]any, bool) {
	side, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	fileType, _ := side["file_type"].(string)
	if fileType == "" {
		return nil, false
	}

	resp := map[string]any{"file_type": fileType}
	if sourceURL, ok := side["source_url"].(string); ok {
		resp["source_url"] = sourceURL
	}
	if displayName, ok := side["display_name"].(string); ok {
		resp["display_name"] = displayName
	}
	return resp, true
}

func truthy(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		b, _ := strconv.ParseBool(value)
		return b
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
