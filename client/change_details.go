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

package client

import (
	"io"

	"github.com/draftable/compare-api-go/api/converter"
	"github.com/draftable/compare-api-go/api/types"
)

// ParseChangeDetails decodes a change details report of a comparison, e.g. one
// saved from the viewer. Fields missing from the report are left nil.
func ParseChangeDetails(r io.Reader) (*types.ChangeDetails, error) {
	return converter.FromChangeDetails(r)
}
