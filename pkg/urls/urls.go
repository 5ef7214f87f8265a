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

// Package urls provides an immutable builder for API endpoint URLs.
package urls

import "strings"

// URL is an immutable URL under construction. Every operation returns a new
// value and leaves the receiver untouched.
type URL struct {
	raw string
}

// New returns a URL starting from base.
func New(base string) URL {
	return URL{raw: base}
}

// Join appends one path segment, separated from the current URL by exactly
// one slash. Leading and trailing slashes of both sides are ignored, so
// u.Join("a").Join("b") equals u.Join("a/b"). An empty segment leaves the URL
// unchanged.
func (u URL) Join(segment string) URL {
	segment = strings.Trim(segment, "/")
	if segment == "" {
		return u
	}
	return URL{raw: strings.TrimRight(u.raw, "/") + "/" + segment}
}

// Append concatenates raw text verbatim, e.g. a query string.
func (u URL) Append(raw string) URL {
	return URL{raw: u.raw + raw}
}

// String returns the URL as a string.
func (u URL) String() string {
	return u.raw
}
