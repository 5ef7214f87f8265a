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

// Package types provides the value objects returned by the Draftable API.
package types

import (
	"fmt"
	"time"
)

// ComparisonSide describes one of the two documents of a comparison as
// reported by the API.
type ComparisonSide struct {
	// FileType is the lowercase file type of the document, e.g. "pdf".
	FileType FileType `json:"file_type" yaml:"file_type"`

	// SourceURL is the URL the document was fetched from. It is empty when the
	// document was uploaded.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`

	// DisplayName is the name shown in the viewer.
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// String returns a short description of the side.
func (s ComparisonSide) String() string {
	source := s.SourceURL
	if source == "" {
		source = "<uploaded>"
	}
	if s.DisplayName != "" {
		return fmt.Sprintf("%s (%s, %s)", s.DisplayName, s.FileType, source)
	}
	return fmt.Sprintf("%s (%s)", source, s.FileType)
}

// Comparison is a comparison of two documents hosted by the API.
type Comparison struct {
	// Identifier is the unique identifier of the comparison within the account.
	Identifier string `json:"identifier" yaml:"identifier"`

	// Left is the left, or old, document.
	Left ComparisonSide `json:"left" yaml:"left"`

	// Right is the right, or new, document.
	Right ComparisonSide `json:"right" yaml:"right"`

	// Public is whether the comparison can be viewed without a signed URL.
	Public bool `json:"public" yaml:"public"`

	// CreationTime is the time when the comparison was created.
	CreationTime time.Time `json:"creation_time" yaml:"creation_time"`

	// ExpiryTime is the time when the comparison will be deleted, if any.
	ExpiryTime *time.Time `json:"expiry_time,omitempty" yaml:"expiry_time,omitempty"`

	// Ready is whether the comparison has finished processing.
	Ready bool `json:"ready" yaml:"ready"`

	// ReadyTime is the time when the comparison became ready.
	ReadyTime *time.Time `json:"ready_time,omitempty" yaml:"ready_time,omitempty"`

	// Failed is whether processing failed. It is only reported once the
	// comparison is ready.
	Failed *bool `json:"failed,omitempty" yaml:"failed,omitempty"`

	// ErrorMessage describes the failure when Failed is true.
	ErrorMessage string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// HasFailed returns whether the comparison is ready and failed.
func (c *Comparison) HasFailed() bool {
	return c.Failed != nil && *c.Failed
}

// IsExpired returns whether the expiry time of the comparison is before now.
func (c *Comparison) IsExpired(now time.Time) bool {
	return c.ExpiryTime != nil && c.ExpiryTime.Before(now)
}

// ComparisonIdentifier returns the identifier of the comparison, which makes
// a comparison usable wherever a ComparisonRef is expected.
func (c *Comparison) ComparisonIdentifier() string {
	return c.Identifier
}

// String returns a short description of the comparison.
func (c *Comparison) String() string {
	state := "pending"
	if c.Ready {
		state = "ready"
		if c.HasFailed() {
			state = "failed"
		}
	}
	return fmt.Sprintf("Comparison(%s, %s)", c.Identifier, state)
}

// ComparisonRef refers to an existing comparison either by its identifier or
// by value.
type ComparisonRef interface {
	ComparisonIdentifier() string
}

// ComparisonID is the identifier of a comparison.
type ComparisonID string

// ComparisonIdentifier returns the identifier itself.
func (id ComparisonID) ComparisonIdentifier() string {
	return string(id)
}
