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

package intern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvex/CppFrontend/internal/intern"
)

func TestIntern(t *testing.T) {
	t.Parallel()

	var table intern.Table
	a := table.Intern("is_void")
	b := table.Intern("value")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, table.Intern("is_void"))
	assert.Equal(t, "is_void", table.Value(a))
	assert.Equal(t, "value", table.Value(b))
}

func TestEmptyString(t *testing.T) {
	t.Parallel()

	var table intern.Table
	assert.Equal(t, intern.ID(0), table.Intern(""))
	assert.Equal(t, "", table.Value(0))

	id, ok := table.Query("")
	assert.True(t, ok)
	assert.Equal(t, intern.ID(0), id)

	_, ok = table.Query("missing")
	assert.False(t, ok)
}

func TestRoundTripPool(t *testing.T) {
	t.Parallel()

	var table intern.Table
	table.Intern("N")
	table.Intern("x")
	table.Intern(`"hello"`)

	rebuilt, err := intern.FromStrings(table.Strings())
	require.NoError(t, err)
	assert.Equal(t, table.Strings(), rebuilt.Strings())

	id, ok := rebuilt.Query("x")
	require.True(t, ok)
	assert.Equal(t, "x", rebuilt.Value(id))
}

func TestBadPool(t *testing.T) {
	t.Parallel()

	_, err := intern.FromStrings([]string{"oops"})
	assert.Error(t, err)

	_, err = intern.FromStrings([]string{"", "a", "a"})
	assert.Error(t, err)
}
