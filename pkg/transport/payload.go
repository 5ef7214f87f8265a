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

package transport

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strconv"
)

// Payload is the body of a POST request. Values are JSON-encodable values,
// nested Payloads, or Files.
type Payload = map[string]any

// File is a document uploaded as part of a multipart request.
type File struct {
	// Name is the file name sent in the Content-Disposition of the part.
	Name string

	// Content is read once, when the request is sent.
	Content io.Reader
}

// FormField is a leaf of a flattened payload.
type FormField struct {
	Key   string
	Value any
}

// HasFile reports whether any leaf of v is a File.
func HasFile(v any) bool {
	switch value := v.(type) {
	case File, *File:
		return true
	case map[string]any:
		for _, child := range value {
			if HasFile(child) {
				return true
			}
		}
	case []any:
		for _, child := range value {
			if HasFile(child) {
				return true
			}
		}
	}
	return false
}

// Flatten turns nested payloads into leaves whose keys join the path with
// dots, e.g. {"left": {"file_type": "pdf"}} becomes "left.file_type". Leaves
// are sorted by key and nil values are dropped.
func Flatten(payload Payload) []FormField {
	var fields []FormField
	flatten("", payload, &fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}

func flatten(prefix string, payload Payload, fields *[]FormField) {
	for key, value := range payload {
		if prefix != "" {
			key = prefix + "." + key
		}

		switch v := value.(type) {
		case nil:
		case map[string]any:
			flatten(key, v, fields)
		default:
			*fields = append(*fields, FormField{Key: key, Value: v})
		}
	}
}

// writeMultipart writes the flattened payload to w. Files become file parts,
// every other leaf a form value. It returns the number of files written.
func writeMultipart(w *multipart.Writer, payload Payload) (int, error) {
	files := 0
	for _, f := range Flatten(payload) {
		switch v := f.Value.(type) {
		case File:
			if err := writeFile(w, f.Key, v); err != nil {
				return files, err
			}
			files++
		case *File:
			if err := writeFile(w, f.Key, *v); err != nil {
				return files, err
			}
			files++
		case []any:
			for _, item := range v {
				if err := w.WriteField(f.Key, formValue(item)); err != nil {
					return files, fmt.Errorf("write field %s: %w", f.Key, err)
				}
			}
		default:
			if err := w.WriteField(f.Key, formValue(v)); err != nil {
				return files, fmt.Errorf("write field %s: %w", f.Key, err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return files, fmt.Errorf("close multipart writer: %w", err)
	}
	return files, nil
}

func writeFile(w *multipart.Writer, key string, file File) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, key, file.Name))
	header.Set("Content-Type", "application/octet-stream")

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create part %s: %w", key, err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return fmt.Errorf("copy %s: %w", key, err)
	}
	return nil
}

func formValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
