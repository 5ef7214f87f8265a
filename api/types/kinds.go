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

// FileType is the type of a compared document.
type FileType string

// The file types accepted by the API.
const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOC  FileType = "doc"
	FileTypeDOCX FileType = "docx"
	FileTypeDOCM FileType = "docm"
	FileTypeRTF  FileType = "rtf"
	FileTypePPT  FileType = "ppt"
	FileTypePPTX FileType = "pptx"
	FileTypePPTM FileType = "pptm"
	FileTypeTXT  FileType = "txt"
)

// SupportedFileTypes lists every file type accepted by the API.
var SupportedFileTypes = []FileType{
	FileTypePDF,
	FileTypeDOC,
	FileTypeDOCX,
	FileTypeDOCM,
	FileTypeRTF,
	FileTypePPT,
	FileTypePPTX,
	FileTypePPTM,
	FileTypeTXT,
}

// IsSupported returns whether the file type is accepted by the API. The
// comparison is exact: callers normalize casing first.
func (t FileType) IsSupported() bool {
	for _, supported := range SupportedFileTypes {
		if t == supported {
			return true
		}
	}
	return false
}

// ExportKind is the kind of document an export renders.
type ExportKind string

const (
	// ExportKindSinglePage renders both documents side by side on single pages.
	ExportKindSinglePage ExportKind = "single_page"

	// ExportKindCombined renders a single document combining both sides.
	ExportKindCombined ExportKind = "combined"

	// ExportKindLeft renders the left document with its changes marked.
	ExportKindLeft ExportKind = "left"

	// ExportKindRight renders the right document with its changes marked.
	ExportKindRight ExportKind = "right"
)

// DefaultExportKind is used when no kind is requested.
const DefaultExportKind = ExportKindSinglePage

// SupportedExportKinds lists every export kind accepted by the API.
var SupportedExportKinds = []ExportKind{
	ExportKindSinglePage,
	ExportKindCombined,
	ExportKindLeft,
	ExportKindRight,
}

// IsSupported returns whether the export kind is accepted by the API.
func (k ExportKind) IsSupported() bool {
	for _, supported := range SupportedExportKinds {
		if k == supported {
			return true
		}
	}
	return false
}
