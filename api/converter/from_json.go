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

// Package converter provides the converter for converting model to JSON
// payloads of the Draftable API and vice versa.
package converter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/pkg/errors"
)

var (
	errIdentifierRequired = errors.Internal("identifier required")
	errSideRequired       = errors.Internal("left and right required")
	errCreationRequired   = errors.Internal("creation_time required")
	errComparisonRequired = errors.Internal("comparison required")
)

// FromComparison converts the given JSON response to a Comparison.
func FromComparison(data []byte) (*types.Comparison, error) {
	var resp comparisonResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "decode comparison")
	}
	return fromComparisonResponse(&resp)
}

// FromComparisons converts the given JSON list response to Comparisons. The
// API wraps the list in a "results" field.
func FromComparisons(data []byte) ([]*types.Comparison, error) {
	var resp comparisonListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "decode comparisons")
	}

	comparisons := make([]*types.Comparison, 0, len(resp.Results))
	for i := range resp.Results {
		comparison, err := fromComparisonResponse(&resp.Results[i])
		if err != nil {
			return nil, fmt.Errorf("comparison %d: %w", i, err)
		}
		comparisons = append(comparisons, comparison)
	}
	return comparisons, nil
}

// FromExport converts the given JSON response to an Export.
func FromExport(data []byte) (*types.Export, error) {
	var resp exportResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "decode export")
	}
	if resp.Identifier == "" {
		return nil, errIdentifierRequired
	}
	if resp.Comparison == "" {
		return nil, errComparisonRequired
	}

	return &types.Export{
		Identifier:       resp.Identifier,
		Comparison:       resp.Comparison,
		Kind:             types.ExportKind(resp.Kind),
		Ready:            resp.Ready,
		Failed:           resp.Failed,
		URL:              stringOf(resp.URL),
		ErrorMessage:     stringOf(resp.ErrorMessage),
		IncludeCoverPage: resp.IncludeCoverPage,
	}, nil
}

// FromChangeDetails decodes a change details report. Unknown fields are
// ignored and absent ones are left nil.
func FromChangeDetails(r io.Reader) (*types.ChangeDetails, error) {
	var details types.ChangeDetails
	if err := json.NewDecoder(r).Decode(&details); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidArgument, "decode change details")
	}
	return &details, nil
}

func fromComparisonResponse(resp *comparisonResponse) (*types.Comparison, error) {
	if resp.Identifier == "" {
		return nil, errIdentifierRequired
	}
	if resp.Left == nil || resp.Right == nil {
		return nil, errSideRequired
	}
	if resp.CreationTime == nil {
		return nil, errCreationRequired
	}

	creationTime, err := types.ParseTimestamp(*resp.CreationTime)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "creation_time")
	}
	expiryTime, err := fromOptionalTimestamp(resp.ExpiryTime)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "expiry_time")
	}
	readyTime, err := fromOptionalTimestamp(resp.ReadyTime)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "ready_time")
	}

	return &types.Comparison{
		Identifier:   resp.Identifier,
		Left:         fromComparisonSide(resp.Left),
		Right:        fromComparisonSide(resp.Right),
		Public:       resp.Public,
		CreationTime: creationTime,
		ExpiryTime:   expiryTime,
		Ready:        resp.Ready,
		ReadyTime:    readyTime,
		Failed:       resp.Failed,
		ErrorMessage: stringOf(resp.ErrorMessage),
	}, nil
}

func fromComparisonSide(side *comparisonSide) types.ComparisonSide {
	return types.ComparisonSide{
		FileType:    types.FileType(side.FileType),
		SourceURL:   stringOf(side.SourceURL),
		DisplayName: stringOf(side.DisplayName),
	}
}

func fromOptionalTimestamp(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := types.ParseTimestamp(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func stringOf(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
