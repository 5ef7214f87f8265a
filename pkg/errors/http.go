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
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPError is returned when the API answers with a non-success status. A 404
// reports ErrCodeNotFound, every other status reports ErrCodeBadRequest.
type HTTPError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Response is the decoded JSON body, or the raw body as a string when it
	// is not JSON.
	Response any

	code string
}

// NewHTTPError creates an HTTPError from a response status and body.
func NewHTTPError(statusCode int, body []byte) *HTTPError {
	var response any
	if len(bytes.TrimSpace(body)) == 0 {
		response = ""
	} else if err := json.Unmarshal(body, &response); err != nil {
		response = string(body)
	}

	return &HTTPError{
		StatusCode: statusCode,
		Response:   response,
	}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	if e.StatusCode == http.StatusNotFound {
		return fmt.Sprintf("not found: %s", e.responseText())
	}
	return fmt.Sprintf("bad request (status code %d): %s", e.StatusCode, e.responseText())
}

// Status returns the error status.
func (e *HTTPError) Status() StatusCode {
	if e.StatusCode == http.StatusNotFound {
		return ErrCodeNotFound
	}
	return ErrCodeBadRequest
}

// Code returns the custom code of the error, if any.
func (e *HTTPError) Code() string {
	return e.code
}

// WithCode returns a copy of the error with the specified custom code.
func (e *HTTPError) WithCode(code string) StatusError {
	return &HTTPError{
		StatusCode: e.StatusCode,
		Response:   e.Response,
		code:       code,
	}
}

func (e *HTTPError) responseText() string {
	if text, ok := e.Response.(string); ok {
		return text
	}

	encoded, err := json.Marshal(e.Response)
	if err != nil {
		return fmt.Sprintf("%v", e.Response)
	}
	return string(encoded)
}
