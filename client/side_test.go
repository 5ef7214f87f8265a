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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/pkg/transport"
)

func TestMakeSide(t *testing.T) {
	t.Run("url with inferred type test", func(t *testing.T) {
		side, err := MakeSide("https://host/doc.pdf", "", "")
		require.NoError(t, err)

		urlSide, ok := side.(*URLSide)
		require.True(t, ok)
		assert.Equal(t, "https://host/doc.pdf", urlSide.URL())
		assert.Equal(t, types.FileTypePDF, urlSide.FileType())
		assert.Equal(t, "doc.pdf", urlSide.DisplayName())
	})

	t.Run("url type is case folded and ignores query test", func(t *testing.T) {
		side, err := MakeSide("https://host/path/Report.DOCX?download=1", "guess", "")
		require.NoError(t, err)
		assert.Equal(t, types.FileTypeDOCX, side.FileType())
		assert.Equal(t, "Report.DOCX", side.DisplayName())
	})

	t.Run("url with explicit type and name test", func(t *testing.T) {
		side, err := MakeSide("https://host/download?id=1", "rtf", "Contract")
		require.NoError(t, err)
		assert.Equal(t, types.FileTypeRTF, side.FileType())
		assert.Equal(t, "Contract", side.DisplayName())
	})

	t.Run("url without extension test", func(t *testing.T) {
		_, err := MakeSide("https://host/download", "", "")
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t, "file_type", errors.ErrorInfoOf(err).Field)
	})

	t.Run("url with unsupported type test", func(t *testing.T) {
		_, err := MakeSide("https://host/sheet.xlsx", "", "")
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("local path test", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "old.PPTX")
		require.NoError(t, os.WriteFile(filePath, []byte("slides"), 0o600))

		side, err := MakeSide(filePath, "", "")
		require.NoError(t, err)
		defer func() { assert.NoError(t, side.Close()) }()

		fileSide, ok := side.(*FileSide)
		require.True(t, ok)
		assert.Equal(t, types.FileTypePPTX, fileSide.FileType())
		assert.Equal(t, "old.PPTX", fileSide.DisplayName())

		content, err := io.ReadAll(fileSide.Content())
		require.NoError(t, err)
		assert.Equal(t, "slides", string(content))
	})

	t.Run("file url test", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "new.txt")
		require.NoError(t, os.WriteFile(filePath, []byte("text"), 0o600))

		side, err := MakeSide("file://"+filePath, "", "New")
		require.NoError(t, err)
		defer func() { assert.NoError(t, side.Close()) }()
		assert.Equal(t, types.FileTypeTXT, side.FileType())
		assert.Equal(t, "New", side.DisplayName())
	})

	t.Run("file url with host test", func(t *testing.T) {
		_, err := MakeSide("file://server/share/a.pdf", "", "")
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t, "path", errors.ErrorInfoOf(err).Field)
	})

	t.Run("missing file test", func(t *testing.T) {
		side, err := MakeSide(filepath.Join(t.TempDir(), "missing.pdf"), "", "")
		assert.Nil(t, side)
		assert.True(t, errors.IsInvalidArgument(err))

		_, err = MakeSide(t.TempDir(), "pdf", "")
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestSideConstructors(t *testing.T) {
	t.Run("side from url validates test", func(t *testing.T) {
		_, err := SideFromURL("ftp://host/a.pdf", "pdf", "")
		assert.True(t, errors.IsInvalidArgument(err))

		_, err = SideFromURL("https://host/a.pdf", "xls", "")
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("side from file validates test", func(t *testing.T) {
		_, err := SideFromFile(nil, "pdf", "")
		assert.True(t, errors.IsInvalidArgument(err))

		side, err := SideFromFile(strings.NewReader("x"), "Doc", "")
		require.NoError(t, err)
		assert.Equal(t, types.FileTypeDOC, side.FileType())
		assert.NoError(t, side.Close())
	})

	t.Run("payload test", func(t *testing.T) {
		urlSide, err := SideFromURL("https://host/a.pdf", "pdf", "")
		require.NoError(t, err)
		assert.Equal(t, transport.Payload{
			"file_type":  "pdf",
			"source_url": "https://host/a.pdf",
		}, urlSide.payload("left"))

		fileSide, err := SideFromFile(strings.NewReader("x"), "pdf", "A")
		require.NoError(t, err)
		payload := fileSide.payload("right")
		assert.Equal(t, "A", payload["display_name"])
		assert.Equal(t, "right.pdf", payload["file"].(transport.File).Name)
	})
}
