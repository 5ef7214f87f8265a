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

package errors

import (
	"errors"
	"fmt"
)

// StatusError represents an error that carries an error status.
type StatusError interface {
	error
	Status() StatusCode
	Code() string
	WithCode(code string) StatusError
}

// errorWithStatus is the internal implementation of StatusError.
type errorWithStatus struct {
	err    error
	status StatusCode
	code   string
}

// Error returns the error message.
func (e errorWithStatus) Error() string {
	return e.err.Error()
}

// Status returns the error status.
func (e errorWithStatus) Status() StatusCode {
	return e.status
}

// Code returns the string representation of the error code.
func (e errorWithStatus) Code() string {
	return e.code
}

// Unwrap returns the underlying error for error chain compatibility.
func (e errorWithStatus) Unwrap() error {
	return e.err
}

// WithCode returns a new StatusError with the specified custom code.
func (e errorWithStatus) WithCode(code string) StatusError {
	return errorWithStatus{
		err:    e.err,
		status: e.status,
		code:   code,
	}
}

func newErrorWithStatus(err error, status StatusCode) StatusError {
	return errorWithStatus{
		err:    err,
		status: status,
		code:   "",
	}
}

// InvalidArgument creates a new "invalid argument" error.
func InvalidArgument(message string) StatusError {
	return newErrorWithStatus(errors.New(message), ErrCodeInvalidArgument)
}

// InvalidArgumentFor creates a new "invalid argument" error for the given
// field. The message should name the field; the field name is also kept in
// the error metadata under "field".
func InvalidArgumentFor(field, message string) error {
	err := newErrorWithStatus(
		fmt.Errorf("invalid argument: %s", message),
		ErrCodeInvalidArgument,
	).WithCode("invalid_" + field)
	return WithMetadata(err, map[string]string{"field": field})
}

// NotFound creates a new "not found" error that did not come from an HTTP
// response.
func NotFound(message string) StatusError {
	return newErrorWithStatus(errors.New(message), ErrCodeNotFound)
}

// Internal creates a new "internal" error.
func Internal(message string) StatusError {
	return newErrorWithStatus(errors.New(message), ErrCodeInternal)
}

// Wrap attaches the given status to err, keeping err in the chain.
func Wrap(err error, status StatusCode, message string) StatusError {
	return newErrorWithStatus(fmt.Errorf("%s: %w", message, err), status)
}

// Connection creates the error returned when the API cannot be reached. The
// cause stays reachable through errors.Is and errors.As.
func Connection(cause error) StatusError {
	return Wrap(cause, ErrCodeUnavailable, "unable to connect to the API").WithCode("connection")
}

// StatusOf extracts the error status from an error. If no status is found in
// the chain, it returns 0.
func StatusOf(err error) StatusCode {
	if err == nil {
		return 0
	}

	if statusErr, ok := err.(StatusError); ok {
		return statusErr.Status()
	}

	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status()
	}

	return 0
}

// IsStatus checks if the given error has the specified error status.
func IsStatus(err error, code StatusCode) bool {
	return StatusOf(err) == code
}

// IsNotFound reports whether the API said the requested resource does not
// exist.
func IsNotFound(err error) bool {
	return IsStatus(err, ErrCodeNotFound)
}

// IsInvalidArgument reports whether err is a local validation failure.
func IsInvalidArgument(err error) bool {
	return IsStatus(err, ErrCodeInvalidArgument)
}

// IsBadRequest reports whether the API answered with any non-success status,
// 404 included.
func IsBadRequest(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// IsClientError checks if the error represents a client-side error.
func IsClientError(err error) bool {
	return StatusOf(err).IsClientError()
}

// IsServerError checks if the error represents a server-side error.
func IsServerError(err error) bool {
	return StatusOf(err).IsServerError()
}

// ErrorInfo provides detailed information about an error.
type ErrorInfo struct {
	Status       StatusCode
	Code         string
	Message      string
	IsClient     bool
	IsServer     bool
	StatusString string
	HTTPStatus   int
	Field        string
}

// ErrorInfoOf extracts comprehensive information from an error for logging
// and CLI output.
func ErrorInfoOf(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	code := ""
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		code = statusErr.Code()
	}

	httpStatus := 0
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		httpStatus = httpErr.StatusCode
	}

	status := StatusOf(err)
	return ErrorInfo{
		Status:       status,
		Code:         code,
		Message:      err.Error(),
		IsClient:     status.IsClientError(),
		IsServer:     status.IsServerError(),
		StatusString: status.String(),
		HTTPStatus:   httpStatus,
		Field:        Metadata(err)["field"],
	}
}
