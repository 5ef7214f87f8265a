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
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/draftable/compare-api-go/api/converter"
	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/internal/validation"
	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/pkg/transport"
)

// guessFileType is the file type that asks for inference from the extension.
const guessFileType = "guess"

// Side is one of the two documents of a new comparison. It is either a
// *URLSide fetched by the API or a *FileSide uploaded with the request.
type Side interface {
	// FileType returns the file type of the document.
	FileType() types.FileType

	// DisplayName returns the name shown in the viewer, if any.
	DisplayName() string

	// Close releases the file opened for the side, if any.
	Close() error

	payload(position string) transport.Payload
}

// isNilSide reports whether side is nil or a nil *URLSide or *FileSide.
func isNilSide(side Side) bool {
	switch s := side.(type) {
	case nil:
		return true
	case *URLSide:
		return s == nil
	case *FileSide:
		return s == nil
	default:
		return false
	}
}

// URLSide is a document the API fetches from a URL.
type URLSide struct {
	url         string
	fileType    types.FileType
	displayName string
}

// SideFromURL creates a side the API fetches from the given http or https URL.
func SideFromURL(rawURL, fileType, displayName string) (*URLSide, error) {
	validURL, err := validation.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	validType, err := validation.ValidateFileType(fileType)
	if err != nil {
		return nil, err
	}

	return &URLSide{
		url:         validURL,
		fileType:    validType,
		displayName: displayName,
	}, nil
}

// URL returns the URL of the document.
func (s *URLSide) URL() string { return s.url }

// FileType returns the file type of the document.
func (s *URLSide) FileType() types.FileType { return s.fileType }

// DisplayName returns the name shown in the viewer.
func (s *URLSide) DisplayName() string { return s.displayName }

// Close does nothing.
func (s *URLSide) Close() error { return nil }

// String returns a description of the side.
func (s *URLSide) String() string {
	return fmt.Sprintf("URL side: %s (%s, %q)", s.url, s.fileType, s.displayName)
}

func (s *URLSide) payload(string) transport.Payload {
	return converter.ToURLSide(s.fileType, s.url, s.displayName)
}

// FileSide is a document uploaded with the request.
type FileSide struct {
	content     io.Reader
	fileType    types.FileType
	displayName string
}

// SideFromFile creates a side uploading the content of r. The content is read
// once, when the comparison is created.
func SideFromFile(r io.Reader, fileType, displayName string) (*FileSide, error) {
	if r == nil {
		return nil, errors.InvalidArgumentFor("file", "file is a required field")
	}
	validType, err := validation.ValidateFileType(fileType)
	if err != nil {
		return nil, err
	}

	return &FileSide{
		content:     r,
		fileType:    validType,
		displayName: displayName,
	}, nil
}

// SideFromFilePath creates a side uploading the file at the given path. An
// empty or "guess" file type is inferred from the extension, and the display
// name defaults to the base name of the file. The caller closes the side.
func SideFromFilePath(filePath, fileType, displayName string) (*FileSide, error) {
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return nil, errors.InvalidArgumentFor("path", fmt.Sprintf("%s is not a file that exists", filePath))
	}

	if isGuess(fileType) {
		fileType = fileTypeFromPath(filepath.Ext(filePath))
	}
	if displayName == "" {
		displayName = filepath.Base(filePath)
	}

	validType, err := validation.ValidateFileType(fileType)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}

	return &FileSide{
		content:     f,
		fileType:    validType,
		displayName: displayName,
	}, nil
}

// Content returns the content to upload.
func (s *FileSide) Content() io.Reader { return s.content }

// FileType returns the file type of the document.
func (s *FileSide) FileType() types.FileType { return s.fileType }

// DisplayName returns the name shown in the viewer.
func (s *FileSide) DisplayName() string { return s.displayName }

// Close closes the content when it is closable.
func (s *FileSide) Close() error {
	if closer, ok := s.content.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// String returns a description of the side.
func (s *FileSide) String() string {
	return fmt.Sprintf("File side: %T (%s, %q)", s.content, s.fileType, s.displayName)
}

func (s *FileSide) payload(position string) transport.Payload {
	return converter.ToFileSide(position, s.fileType, s.content, s.displayName)
}

// MakeSide creates a side from a URL or a local file path.
//
// An http or https URL becomes a *URLSide; its file type is inferred from the
// extension of the URL path when fileType is empty or "guess", and the display
// name defaults to the last path segment. A "file:" URL must not name a host
// and is treated as the path it carries. Anything else must be the path of an
// existing file.
func MakeSide(urlOrPath, fileType, displayName string) (Side, error) {
	lower := strings.ToLower(urlOrPath)

	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		u, err := url.Parse(urlOrPath)
		if err != nil {
			return nil, errors.InvalidArgumentFor("url", fmt.Sprintf("url %s cannot be parsed", urlOrPath))
		}

		if isGuess(fileType) {
			fileType = fileTypeFromPath(u.Path)
			if fileType == "" {
				return nil, errors.InvalidArgumentFor(
					"file_type",
					"unable to infer file type from URL, file_type must be specified",
				)
			}
		}
		if displayName == "" {
			displayName = baseName(u.Path)
		}
		side, err := SideFromURL(urlOrPath, fileType, displayName)
		if err != nil {
			return nil, err
		}
		return side, nil

	case strings.HasPrefix(lower, "file:"):
		u, err := url.Parse(urlOrPath)
		if err != nil {
			return nil, errors.InvalidArgumentFor("path", fmt.Sprintf("file url %s cannot be parsed", urlOrPath))
		}
		if u.Host != "" {
			return nil, errors.InvalidArgumentFor(
				"path",
				fmt.Sprintf("file url %s must be local only, and not contain host name (%s)", urlOrPath, u.Host),
			)
		}

		filePath := u.Path
		if filePath == "" {
			filePath = u.Opaque
		}
		return sideFromFilePath(filePath, fileType, displayName)

	default:
		return sideFromFilePath(urlOrPath, fileType, displayName)
	}
}

func sideFromFilePath(filePath, fileType, displayName string) (Side, error) {
	side, err := SideFromFilePath(filePath, fileType, displayName)
	if err != nil {
		return nil, err
	}
	return side, nil
}

func isGuess(fileType string) bool {
	return fileType == "" || strings.EqualFold(fileType, guessFileType)
}

// fileTypeFromPath returns the lowercase extension of p without its dot.
func fileTypeFromPath(p string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}

func baseName(p string) string {
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
