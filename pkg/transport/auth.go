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

package transport

import (
	"net/http"

	"github.com/draftable/compare-api-go/internal/version"
)

// AuthTransport is an http.RoundTripper that authenticates every request
// with the auth token of the account.
type AuthTransport struct {
	token string
	base  http.RoundTripper
}

// NewAuthTransport creates a new instance of AuthTransport sending requests
// through base, or http.DefaultTransport when base is nil.
func NewAuthTransport(token string, base http.RoundTripper) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{
		token: token,
		base:  base,
	}
}

// RoundTrip sets the authorization headers on a copy of the request and
// sends it.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Token "+t.token)
	req.Header.Set("User-Agent", version.UserAgent())
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return t.base.RoundTrip(req)
}
