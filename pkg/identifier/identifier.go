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

// Package identifier generates comparison identifiers.
package identifier

import (
	"math/rand"
)

const (
	// Length is the length of generated identifiers.
	Length = 12

	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Source is a source of uniformly distributed random integers. *rand.Rand
// satisfies it.
type Source interface {
	// Intn returns an integer in [0, n).
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// DefaultSource is backed by the top-level functions of math/rand and is safe
// for concurrent use.
var DefaultSource Source = globalSource{}

// Generate returns an identifier of Length ASCII letters drawn from src. It
// is a convenience and does not guarantee uniqueness.
func Generate(src Source) string {
	if src == nil {
		src = DefaultSource
	}

	b := make([]byte, Length)
	for i := range b {
		b[i] = letters[src.Intn(len(letters))]
	}
	return string(b)
}
