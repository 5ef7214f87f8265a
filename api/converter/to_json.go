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

import (
	"io"
	"time"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/pkg/transport"
)

// ToURLSide converts a side fetched by the API from a URL to its payload.
func ToURLSide(fileType types.FileType, sourceURL, displayName string) transport.Payload {
	payload := transport.Payload{
		"file_type":  string(fileType),
		"source_url": sourceURL,
	}
	if displayName != "" {
		payload["display_name"] = displayName
	}
	return payload
}

// ToFileSide converts an uploaded side to its payload. The upload is named
// after the position of the side, e.g. "left.pdf".
func ToFileSide(position string, fileType types.FileType, content io.Reader, displayName string) transport.Payload {
	payload := transport.Payload{
		"file_type": string(fileType),
		"file": transport.File{
			Name:    position + "." + string(fileType),
			Content: content,
		},
	}
	if displayName != "" {
		payload["display_name"] = displayName
	}
	return payload
}

// ToComparison converts the arguments of a comparison creation to its
// payload. A nil expires means the comparison never expires.
func ToComparison(
	identifier string,
	left, right transport.Payload,
	public bool,
	expires *time.Time,
) transport.Payload {
	var expiresValue any
	if expires != nil {
		expiresValue = types.FormatTimestamp(*expires)
	}

	return transport.Payload{
		"identifier": identifier,
		"left":       left,
		"right":      right,
		"public":     public,
		"expires":    expiresValue,
	}
}

// ToExport converts the arguments of an export creation to its payload.
func ToExport(comparison string, kind types.ExportKind, includeCoverPage bool) transport.Payload {
	return transport.Payload{
		"comparison":         comparison,
		"kind":               string(kind),
		"include_cover_page": includeCoverPage,
	}
}
