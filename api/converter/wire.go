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

package converter

// The structs below mirror the JSON bodies of the API. Optional values are
// pointers so that an absent field and a null field both decode to nil.

type comparisonSide struct {
	FileType    string  `json:"file_type"`
	SourceURL   *string `json:"source_url"`
	DisplayName *string `json:"display_name"`
}

type comparisonResponse struct {
	Identifier   string          `json:"identifier"`
	Left         *comparisonSide `json:"left"`
	Right        *comparisonSide `json:"right"`
	Public       bool            `json:"public"`
	CreationTime *string         `json:"creation_time"`
	ExpiryTime   *string         `json:"expiry_time"`
	Ready        bool            `json:"ready"`
	ReadyTime    *string         `json:"ready_time"`
	Failed       *bool           `json:"failed"`
	ErrorMessage *string         `json:"error_message"`
}

type comparisonListResponse struct {
	Count   int                  `json:"count"`
	Results []comparisonResponse `json:"results"`
}

type exportResponse struct {
	Identifier       string  `json:"identifier"`
	Comparison       string  `json:"comparison"`
	Kind             string  `json:"kind"`
	Ready            bool    `json:"ready"`
	Failed           *bool   `json:"failed"`
	URL              *string `json:"url"`
	ErrorMessage     *string `json:"error_message"`
	IncludeCoverPage *bool   `json:"include_cover_page"`
}
