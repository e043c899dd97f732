// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvex/CppFrontend/internal/arena"
)

func TestStableAddresses(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]
	var ptrs []*int
	for i := range 1000 {
		ptrs = append(ptrs, a.NewValue(i))
	}

	require.Equal(t, 1000, a.Len())
	for i, p := range ptrs {
		assert.Equal(t, i, *p)
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	var a arena.Arena[string]
	words := []string{"int", "long", "double", "char", "bool"}
	for _, w := range words {
		a.NewValue(w)
	}

	var got []string
	a.All(func(p *string) bool {
		got = append(got, *p)
		return true
	})
	assert.Equal(t, words, got)

	var first []string
	a.All(func(p *string) bool {
		first = append(first, *p)
		return false
	})
	assert.Equal(t, words[:1], first)
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var a arena.Arena[struct{ x, y int }]
	assert.Equal(t, 0, a.Len())
	p := a.New()
	assert.Zero(t, *p)
	assert.Equal(t, 1, a.Len())
}
