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

package types

import (
	"fmt"
	"time"
)

const (
	// timestampLayout is the layout the API uses for instants. Fractional
	// seconds are optional when parsing.
	timestampLayout = "2006-01-02T15:04:05.999999999Z"

	// requestTimestampLayout is the layout used for instants sent to the API.
	requestTimestampLayout = "2006-01-02T15:04:05.000000Z"
)

// ParseTimestamp parses an API timestamp such as "2024-01-02T03:04:05Z" or
// "2024-01-02T03:04:05.123456Z". The result is in UTC.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t.UTC(), nil
}

// FormatTimestamp formats an instant the way the API expects it in requests.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(requestTimestampLayout)
}
