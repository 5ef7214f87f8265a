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

import "fmt"

// Export is a rendered artifact of a finished comparison, e.g. a combined PDF.
type Export struct {
	// Identifier is the unique identifier of the export.
	Identifier string `json:"identifier" yaml:"identifier"`

	// Comparison is the identifier of the comparison the export belongs to.
	Comparison string `json:"comparison" yaml:"comparison"`

	// Kind is the kind of document that is rendered.
	Kind ExportKind `json:"kind" yaml:"kind"`

	// Ready is whether the export has finished rendering.
	Ready bool `json:"ready" yaml:"ready"`

	// Failed is whether rendering failed.
	Failed *bool `json:"failed,omitempty" yaml:"failed,omitempty"`

	// URL is the download URL of the rendered document once it is ready.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// ErrorMessage describes the failure when Failed is true.
	ErrorMessage string `json:"error_message,omitempty" yaml:"error_message,omitempty"`

	// IncludeCoverPage is whether a cover page was requested.
	IncludeCoverPage *bool `json:"include_cover_page,omitempty" yaml:"include_cover_page,omitempty"`
}

// HasFailed returns whether the export failed.
func (e *Export) HasFailed() bool {
	return e.Failed != nil && *e.Failed
}

// String returns a short description of the export.
func (e *Export) String() string {
	return fmt.Sprintf("Export(%s, %s of %s)", e.Identifier, e.Kind, e.Comparison)
}
