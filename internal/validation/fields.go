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

package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/draftable/compare-api-go/api/types"
	cerrors "github.com/draftable/compare-api-go/pkg/errors"
)

type identifierField struct {
	Identifier string `json:"identifier" validate:"required,identifier"`
}

type fileTypeField struct {
	FileType string `json:"file_type" validate:"required,filetype"`
}

type urlField struct {
	URL string `json:"url" validate:"required,url,httpurl"`
}

type exportKindField struct {
	Kind string `json:"kind" validate:"required,exportkind"`
}

// ValidateIdentifier checks a comparison or export identifier and returns it
// unchanged.
func ValidateIdentifier(identifier string) (string, error) {
	if err := validateField(identifierField{Identifier: identifier}); err != nil {
		return "", err
	}
	return identifier, nil
}

// ValidateFileType case-folds the file type and checks it against the
// supported file types.
func ValidateFileType(fileType string) (types.FileType, error) {
	normalized := strings.ToLower(fileType)
	if err := validateField(fileTypeField{FileType: normalized}); err != nil {
		return "", err
	}
	return types.FileType(normalized), nil
}

// ValidateURL checks the URL of a remotely fetched document.
func ValidateURL(rawURL string) (string, error) {
	if err := validateField(urlField{URL: rawURL}); err != nil {
		return "", err
	}
	return rawURL, nil
}

// ValidateExportKind case-folds the export kind and checks it against the
// supported kinds.
func ValidateExportKind(kind string) (types.ExportKind, error) {
	normalized := strings.ToLower(kind)
	if err := validateField(exportKindField{Kind: normalized}); err != nil {
		return "", err
	}
	return types.ExportKind(normalized), nil
}

// ValidateDeadline resolves the deadline against now and checks that it lies
// in the future. Relative deadlines must be strictly positive. The result is
// in UTC.
func ValidateDeadline(field string, deadline types.Deadline, now time.Time) (time.Time, error) {
	if deadline.IsZero() {
		return time.Time{}, cerrors.InvalidArgumentFor(field, fmt.Sprintf("%s is a required field", field))
	}

	if deadline.IsRelative() {
		if deadline.Duration() <= 0 {
			return time.Time{}, cerrors.InvalidArgumentFor(
				field,
				fmt.Sprintf("%s must be a positive duration, got %s", field, deadline.Duration()),
			)
		}
		return deadline.Resolve(now), nil
	}

	at := deadline.Resolve(now)
	if !at.After(now) {
		return time.Time{}, cerrors.InvalidArgumentFor(
			field,
			fmt.Sprintf("%s must be in the future, got %s", field, at.Format(time.RFC3339)),
		)
	}
	return at, nil
}

// validateField validates a single-field struct and converts the violation
// into an invalid argument error naming the field.
func validateField(s interface{}) error {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}

	var structErr *StructError
	if errors.As(err, &structErr) && len(structErr.Violations) > 0 {
		violation := structErr.Violations[0]
		return cerrors.InvalidArgumentFor(violation.Field, violation.Description)
	}
	return cerrors.InvalidArgument(err.Error())
}
