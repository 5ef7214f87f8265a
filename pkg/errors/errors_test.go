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
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		name string
		code StatusCode
		want string
	}{
		{"InvalidArgument", ErrCodeInvalidArgument, "invalid_argument"},
		{"NotFound", ErrCodeNotFound, "not_found"},
		{"BadRequest", ErrCodeBadRequest, "bad_request"},
		{"Internal", ErrCodeInternal, "internal"},
		{"Unavailable", ErrCodeUnavailable, "unavailable"},
		{"Unknown", StatusCode(999), "code_999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestErrorCode_Category(t *testing.T) {
	for _, code := range []StatusCode{ErrCodeInvalidArgument, ErrCodeNotFound, ErrCodeBadRequest} {
		t.Run(fmt.Sprintf("ClientError_%s", code), func(t *testing.T) {
			assert.True(t, code.IsClientError())
			assert.False(t, code.IsServerError())
		})
	}

	for _, code := range []StatusCode{ErrCodeInternal, ErrCodeUnavailable} {
		t.Run(fmt.Sprintf("ServerError_%s", code), func(t *testing.T) {
			assert.False(t, code.IsClientError())
			assert.True(t, code.IsServerError())
		})
	}
}

func TestInvalidArgumentFor(t *testing.T) {
	err := InvalidArgumentFor("identifier", "identifier must not be empty")

	assert.Equal(t, "invalid argument: identifier must not be empty", err.Error())
	assert.True(t, IsInvalidArgument(err))
	assert.False(t, IsBadRequest(err))
	assert.Equal(t, "identifier", Metadata(err)["field"])

	wrapped := fmt.Errorf("create comparison: %w", err)
	assert.True(t, IsInvalidArgument(wrapped))
	assert.Equal(t, "identifier", Metadata(wrapped)["field"])

	info := ErrorInfoOf(wrapped)
	assert.Equal(t, "invalid_identifier", info.Code)
	assert.Equal(t, "identifier", info.Field)
	assert.True(t, info.IsClient)
}

func TestHTTPError(t *testing.T) {
	t.Run("not found is a bad request subtype", func(t *testing.T) {
		err := NewHTTPError(404, []byte(`{"detail":"Not found."}`))

		assert.True(t, IsNotFound(err))
		assert.True(t, IsBadRequest(err))
		assert.Equal(t, map[string]any{"detail": "Not found."}, err.Response)
		assert.Equal(t, `not found: {"detail":"Not found."}`, err.Error())
	})

	t.Run("other statuses are bad requests", func(t *testing.T) {
		err := NewHTTPError(400, []byte(`{"identifier":["already exists"]}`))

		assert.False(t, IsNotFound(err))
		assert.True(t, IsBadRequest(err))
		assert.True(t, IsStatus(err, ErrCodeBadRequest))
		assert.Equal(t, 400, ErrorInfoOf(err).HTTPStatus)
	})

	t.Run("non-JSON body kept raw", func(t *testing.T) {
		err := NewHTTPError(502, []byte("<html>bad gateway</html>"))

		assert.Equal(t, "<html>bad gateway</html>", err.Response)
		assert.Equal(t, "bad request (status code 502): <html>bad gateway</html>", err.Error())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("get comparison: %w", NewHTTPError(404, nil))

		assert.True(t, IsNotFound(err))
		var httpErr *HTTPError
		assert.True(t, errors.As(err, &httpErr))
		assert.Equal(t, 404, httpErr.StatusCode)
	})
}

func TestConnection(t *testing.T) {
	err := Connection(syscall.ECONNREFUSED)

	assert.True(t, IsStatus(err, ErrCodeUnavailable))
	assert.True(t, errors.Is(err, syscall.ECONNREFUSED))
	assert.Equal(t, "connection", err.Code())
	assert.Contains(t, err.Error(), "unable to connect to the API")
	assert.True(t, IsServerError(err))
}

func TestStatusOf(t *testing.T) {
	t.Run("StatusError", func(t *testing.T) {
		assert.Equal(t, ErrCodeNotFound, StatusOf(NotFound("test error")))
	})

	t.Run("WrappedStatusError", func(t *testing.T) {
		wrappedErr := fmt.Errorf("wrapped: %w", Internal("base error"))
		assert.Equal(t, ErrCodeInternal, StatusOf(wrappedErr))
	})

	t.Run("StandardError", func(t *testing.T) {
		assert.Equal(t, StatusCode(0), StatusOf(errors.New("standard error")))
	})

	t.Run("NilError", func(t *testing.T) {
		assert.Equal(t, StatusCode(0), StatusOf(nil))
	})
}

func TestMetadata(t *testing.T) {
	base := InvalidArgument("bad")

	assert.Nil(t, WithMetadata(nil, map[string]string{"a": "b"}))
	assert.Equal(t, base, WithMetadata(base, nil))
	assert.Nil(t, Metadata(base))

	err := WithMetadata(base, map[string]string{"field": "url", "a": "1"})
	err = WithMetadata(err, map[string]string{"a": "2"})

	assert.Equal(t, map[string]string{"field": "url", "a": "2"}, Metadata(err))
	assert.Equal(t, ErrCodeInvalidArgument, StatusOf(err))

	md := Metadata(err)
	md["field"] = "changed"
	assert.Equal(t, "url", Metadata(err)["field"])
}
