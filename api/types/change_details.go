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

// ChangeDetails is the detailed diff report of a finished comparison.
type ChangeDetails struct {
	Changes []Change `json:"changes"`
	Summary *Summary `json:"summary,omitempty"`
}

// Change is a single difference between the two documents.
type Change struct {
	// Kind is the kind of change, e.g. "insert", "delete" or "replace".
	Kind string `json:"kind"`

	LeftText  string `json:"leftText"`
	RightText string `json:"rightText"`

	LeftRegion   *Region       `json:"leftRegion,omitempty"`
	RightRegion  *Region       `json:"rightRegion,omitempty"`
	StylesInfo   *StylesInfo   `json:"stylesInfo,omitempty"`
	DeletionMark *DeletionMark `json:"deletionMark,omitempty"`
}

// Region is the area a change covers on one page of a document.
type Region struct {
	PageIndex  *int        `json:"pageIndex,omitempty"`
	Rectangles []Rectangle `json:"rectangles,omitempty"`
}

// Rectangle is a box on a page, in points.
type Rectangle struct {
	Left   *float64 `json:"left,omitempty"`
	Top    *float64 `json:"top,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
}

// StylesInfo describes the styles of the text touched by a change.
type StylesInfo struct {
	LeftStyles    []Style `json:"leftStyles,omitempty"`
	RightStyles   []Style `json:"rightStyles,omitempty"`
	LeftStyleMap  []int   `json:"leftStyleMap,omitempty"`
	RightStyleMap []int   `json:"rightStyleMap,omitempty"`
}

// Style is a text style.
type Style struct {
	Color    *string  `json:"color,omitempty"`
	Font     *string  `json:"font,omitempty"`
	Emphasis *string  `json:"emphasis,omitempty"`
	Size     *float64 `json:"size,omitempty"`
}

// DeletionMark marks where deleted text used to be in the right document.
type DeletionMark struct {
	PageIndex int `json:"pageIndex"`

	// Point is the (x, y) position of the mark.
	Point [2]float64 `json:"point"`
}

// Summary aggregates the changes of a comparison.
type Summary struct {
	AnyChanges           *bool            `json:"anyChanges,omitempty"`
	AnyMatches           *bool            `json:"anyMatches,omitempty"`
	ChangeSummary        *ChangeCounts    `json:"changeSummary,omitempty"`
	LeftDocumentSummary  *DocumentSummary `json:"leftDocumentSummary,omitempty"`
	RightDocumentSummary *DocumentSummary `json:"rightDocumentSummary,omitempty"`
}

// ChangeCounts counts changes and words by kind.
type ChangeCounts struct {
	Matches            *int `json:"matches,omitempty"`
	Deletions          *int `json:"deletions,omitempty"`
	Insertions         *int `json:"insertions,omitempty"`
	Replacements       *int `json:"replacements,omitempty"`
	MatchingWords      *int `json:"matchingWords,omitempty"`
	DeletedLeftWords   *int `json:"deletedLeftWords,omitempty"`
	ReplacedLeftWords  *int `json:"replacedLeftWords,omitempty"`
	InsertedRightWords *int `json:"insertedRightWords,omitempty"`
	ReplacedRightWords *int `json:"replacedRightWords,omitempty"`
}

// DocumentSummary describes the size of one document.
type DocumentSummary struct {
	PageCount      *int `json:"pageCount,omitempty"`
	CharacterCount *int `json:"characterCount,omitempty"`
	WordCount      *int `json:"wordCount,omitempty"`
}

// CountByKind returns the number of changes of each kind.
func (d *ChangeDetails) CountByKind() map[string]int {
	counts := make(map[string]int)
	for _, change := range d.Changes {
		counts[change.Kind]++
	}
	return counts
}
