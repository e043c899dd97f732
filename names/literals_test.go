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

package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarvex/CppFrontend/names"
	"github.com/sarvex/CppFrontend/token"
)

func TestIntegerLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		want     uint64
	}{
		{"0", 0},
		{"42", 42},
		{"42u", 42},
		{"42ull", 42},
		{"0x2a", 42},
		{"0X2A", 42},
		{"0b101010", 42},
		{"052", 42},
		{"1'000'000", 1000000},
		{"18446744073709551615", 1<<64 - 1},
		{"not a number", 0},
	}
	for _, tt := range tests {
		l := names.NewIntegerLiteral(tt.spelling)
		assert.Equal(t, tt.spelling, l.Value())
		assert.Equal(t, tt.want, l.IntegerValue(), tt.spelling)
	}
}

func TestFloatLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		want     float64
	}{
		{"0.", 0},
		{"1.5", 1.5},
		{"1.5f", 1.5},
		{"1e10", 1e10},
		{"2.5L", 2.5},
	}
	for _, tt := range tests {
		l := names.NewFloatLiteral(tt.spelling)
		assert.Equal(t, tt.want, l.FloatValue(), tt.spelling)
	}
}

func TestCharLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		want     rune
	}{
		{"'a'", 'a'},
		{"L'a'", 'a'},
		{"u8'x'", 'x'},
		{`'\n'`, '\n'},
		{`'\0'`, 0},
		{`'\x41'`, 'A'},
		{`'\101'`, 'A'},
		{"''", 0},
	}
	for _, tt := range tests {
		l := names.NewCharLiteral(tt.spelling)
		assert.Equal(t, tt.want, l.CharValue(), tt.spelling)
	}
}

func TestStringLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		want     string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"quote\""`, `quote"`},
		{`R"(raw \n text)"`, `raw \n text`},
	}
	for _, tt := range tests {
		l := names.NewStringLiteral(tt.spelling)
		assert.Equal(t, tt.spelling, l.Value())
		assert.Equal(t, tt.want, l.StringValue(), tt.spelling)
	}
}

func TestNameKinds(t *testing.T) {
	t.Parallel()

	id := names.NewIdentifier("is_void")
	assert.Equal(t, names.KindIdentifier, id.NameKind())
	assert.Equal(t, "is_void", id.Value())

	op := names.NewOperatorID(token.PlusPlus)
	assert.Equal(t, names.KindOperatorID, op.NameKind())
	assert.Equal(t, token.PlusPlus, op.Op())
	assert.Equal(t, "operator ++", op.String())

	dtor := names.NewDestructorID(id)
	assert.Equal(t, names.KindDestructorID, dtor.NameKind())
	assert.Same(t, names.Name(id), dtor.Name())

	lit := names.NewLiteralOperatorID("sv")
	assert.Equal(t, names.KindLiteralOperatorID, lit.NameKind())
	assert.Equal(t, "sv", lit.Name())
}
