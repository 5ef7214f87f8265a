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

// Package errors provides the error taxonomy of the Draftable API client:
// local argument failures, remote HTTP failures and transport failures, each
// carrying a status code that survives wrapping.
package errors

import "fmt"

// StatusCode represents the error codes used throughout the client.
type StatusCode int

const (
	// ErrCodeInvalidArgument indicates that the caller passed an argument that
	// failed local validation. Requests with such arguments never reach the API.
	ErrCodeInvalidArgument StatusCode = 3

	// ErrCodeNotFound indicates that the API reported the resource does not exist.
	ErrCodeNotFound StatusCode = 5

	// ErrCodeBadRequest indicates that the API answered with a non-success
	// status other than 404.
	ErrCodeBadRequest StatusCode = 9

	// ErrCodeInternal indicates that the API answered successfully but with a
	// payload the client could not interpret.
	ErrCodeInternal StatusCode = 13

	// ErrCodeUnavailable indicates that the API could not be reached at all.
	ErrCodeUnavailable StatusCode = 14
)

// String returns the string representation of the error code.
func (c StatusCode) String() string {
	switch c {
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeBadRequest:
		return "bad_request"
	case ErrCodeInternal:
		return "internal"
	case ErrCodeUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("code_%d", int(c))
	}
}

// IsClientError returns true if the error code represents a problem with the
// request the client built or the resource it asked for.
func (c StatusCode) IsClientError() bool {
	switch c {
	case ErrCodeInvalidArgument, ErrCodeNotFound, ErrCodeBadRequest:
		return true
	default:
		return false
	}
}

// IsServerError returns true if the error code represents a failure of the
// remote service or the path to it.
func (c StatusCode) IsServerError() bool {
	switch c {
	case ErrCodeInternal, ErrCodeUnavailable:
		return true
	default:
		return false
	}
}
