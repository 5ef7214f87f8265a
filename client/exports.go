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
	"context"
	"reflect"

	"github.com/draftable/compare-api-go/api/converter"
	"github.com/draftable/compare-api-go/api/types"
	"github.com/draftable/compare-api-go/internal/validation"
	"github.com/draftable/compare-api-go/pkg/errors"
	"github.com/draftable/compare-api-go/pkg/urls"
)

// Exports is the endpoint of exports.
type Exports struct {
	client *Client
}

// Create requests an export of the given comparison. An empty kind means
// types.DefaultExportKind.
func (e *Exports) Create(
	ctx context.Context,
	ref types.ComparisonRef,
	kind types.ExportKind,
	includeCoverPage bool,
) (*types.Export, error) {
	if isNilRef(ref) {
		return nil, errors.InvalidArgumentFor("comparison", "comparison is a required field")
	}
	comparison, err := validation.ValidateIdentifier(ref.ComparisonIdentifier())
	if err != nil {
		return nil, err
	}

	if kind == "" {
		kind = types.DefaultExportKind
	}
	validKind, err := validation.ValidateExportKind(string(kind))
	if err != nil {
		return nil, err
	}

	payload := converter.ToExport(comparison, validKind, includeCoverPage)
	data, err := e.client.conn.Post(ctx, e.exportsURL().String(), payload)
	if err != nil {
		return nil, err
	}
	return converter.FromExport(data)
}

// Get returns the export of the given identifier.
func (e *Exports) Get(ctx context.Context, id string) (*types.Export, error) {
	id, err := validation.ValidateIdentifier(id)
	if err != nil {
		return nil, err
	}

	data, err := e.client.conn.Get(ctx, e.exportsURL().Join(id).String(), nil)
	if err != nil {
		return nil, err
	}
	return converter.FromExport(data)
}

// isNilRef reports whether ref is nil or a nil pointer such as a nil
// *types.Comparison.
func isNilRef(ref types.ComparisonRef) bool {
	if ref == nil {
		return true
	}
	v := reflect.ValueOf(ref)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (e *Exports) exportsURL() urls.URL {
	return e.client.baseURL.Join("exports")
}
