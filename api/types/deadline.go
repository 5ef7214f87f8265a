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

// Deadline is either an absolute instant or a duration relative to the moment
// it is resolved. It is used for comparison expiry and signed URL validity.
// The zero value means no deadline was given.
type Deadline struct {
	at       time.Time
	after    time.Duration
	relative bool
}

// DeadlineAt returns a deadline at the given instant.
func DeadlineAt(t time.Time) Deadline {
	return Deadline{at: t}
}

// DeadlineIn returns a deadline the given duration after it is resolved.
func DeadlineIn(d time.Duration) Deadline {
	return Deadline{after: d, relative: true}
}

// IsZero returns whether no deadline was given.
func (d Deadline) IsZero() bool {
	return !d.relative && d.at.IsZero()
}

// IsRelative returns whether the deadline is a duration.
func (d Deadline) IsRelative() bool {
	return d.relative
}

// Duration returns the relative duration of the deadline.
func (d Deadline) Duration() time.Duration {
	return d.after
}

// Time returns the absolute instant of the deadline.
func (d Deadline) Time() time.Time {
	return d.at
}

// Resolve returns the instant of the deadline in UTC, taking relative
// deadlines from now.
func (d Deadline) Resolve(now time.Time) time.Time {
	if d.relative {
		return now.Add(d.after).UTC()
	}
	return d.at.UTC()
}

// String returns a readable form of the deadline.
func (d Deadline) String() string {
	switch {
	case d.IsZero():
		return "none"
	case d.relative:
		return fmt.Sprintf("in %s", d.after)
	default:
		return d.at.UTC().Format(time.RFC3339)
	}
}
