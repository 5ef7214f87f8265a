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

// Package signing computes the signatures of signed viewer URLs.
//
// A signature is the lowercase hex HMAC-SHA256, keyed by the account's auth
// token, of the canonical JSON policy
//
//	{"account_id":"<account>","identifier":"<comparison>","valid_until":<unix>}
//
// The API recomputes the same bytes to verify a URL, so key order, the absence
// of whitespace and the string escaping are all part of the format. Strings
// are written in ASCII only: quote, backslash and the control characters
// \b, \f, \n, \r and \t get their short escapes, every other character outside
// the printable ASCII range becomes a lowercase \uXXXX escape, with surrogate
// pairs outside the basic multilingual plane.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// CanonicalPolicy returns the bytes that are signed for the given account,
// comparison identifier and expiry timestamp.
func CanonicalPolicy(accountID, identifier string, validUntil int64) []byte {
	buf := make([]byte, 0, 64+len(accountID)+len(identifier))
	buf = append(buf, `{"account_id":`...)
	buf = appendString(buf, accountID)
	buf = append(buf, `,"identifier":`...)
	buf = appendString(buf, identifier)
	buf = append(buf, `,"valid_until":`...)
	buf = strconv.AppendInt(buf, validUntil, 10)
	return append(buf, '}')
}

// Sign returns the hex encoded signature of the viewer URL policy.
func Sign(accountID, authToken, identifier string, validUntil int64) string {
	mac := hmac.New(sha256.New, []byte(authToken))
	mac.Write(CanonicalPolicy(accountID, identifier, validUntil))
	return hex.EncodeToString(mac.Sum(nil))
}

// appendString appends s as a quoted JSON string. Invalid UTF-8 is written as
// U+FFFD.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for _, r := range s {
		switch {
		case r == '"':
			buf = append(buf, '\\', '"')
		case r == '\\':
			buf = append(buf, '\\', '\\')
		case r == '\b':
			buf = append(buf, '\\', 'b')
		case r == '\f':
			buf = append(buf, '\\', 'f')
		case r == '\n':
			buf = append(buf, '\\', 'n')
		case r == '\r':
			buf = append(buf, '\\', 'r')
		case r == '\t':
			buf = append(buf, '\\', 't')
		case r >= 0x20 && r < 0x7f:
			buf = append(buf, byte(r))
		case r >= 0x10000 && r <= utf8.MaxRune:
			r1, r2 := utf16.EncodeRune(r)
			buf = appendEscape(buf, r1)
			buf = appendEscape(buf, r2)
		default:
			buf = appendEscape(buf, r)
		}
	}
	return append(buf, '"')
}

// appendEscape appends the \uXXXX escape of a rune of the basic multilingual
// plane.
func appendEscape(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigits[r>>12&0xf],
		hexDigits[r>>8&0xf],
		hexDigits[r>>4&0xf],
		hexDigits[r&0xf],
	)
}
