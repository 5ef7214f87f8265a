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

package identifier_test

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftable/compare-api-go/pkg/identifier"
)

type sequence struct {
	values []int
	next   int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func TestGenerate(t *testing.T) {
	t.Run("letters only", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.Regexp(t, regexp.MustCompile(`^[A-Za-z]{12}$`), identifier.Generate(nil))
		}
	})

	t.Run("deterministic with an injected source", func(t *testing.T) {
		src := &sequence{values: []int{0, 25, 26, 51}}
		assert.Equal(t, "azAZazAZazAZ", identifier.Generate(src))
	})

	t.Run("seeded rand is reproducible", func(t *testing.T) {
		first := identifier.Generate(rand.New(rand.NewSource(42)))
		second := identifier.Generate(rand.New(rand.NewSource(42)))
		assert.Equal(t, first, second)
		assert.Len(t, first, identifier.Length)
	})
}
