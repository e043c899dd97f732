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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvex/CppFrontend/token"
)

func TestSpell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.EOFSymbol, "<eof_symbol>"},
		{token.Identifier, "<identifier>"},
		{token.AmpAmp, "&&"},
		{token.LessEqualGreater, "<=>"},
		{token.DeleteArray, "delete[]"},
		{token.ColonColon, "::"},
		{token.Public, "public"},
		{token.StaticAssert, "static_assert"},
		{token.CoAwait, "co_await"},
		{token.WcharT, "wchar_t"},
		{token.GnuAttribute, "__attribute__"},
		{token.UnderlyingType, "__underlying_type"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Spell())
	}
}

func TestEverySpellingIsNonEmpty(t *testing.T) {
	t.Parallel()

	for k := range token.Count() {
		kind := token.Kind(k)
		require.True(t, kind.IsValid())
		assert.NotEmpty(t, kind.Spell(), "kind %d", k)
		assert.NotEmpty(t, kind.String(), "kind %d", k)
	}
	assert.False(t, token.Kind(token.Count()).IsValid())
	assert.Equal(t, "<invalid>", token.Kind(255).Spell())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	k, ok := token.Lookup("namespace")
	require.True(t, ok)
	assert.Equal(t, token.Namespace, k)

	// Alternative tokens resolve to the kind they alias.
	aliases := map[string]token.Kind{
		"and":            token.AmpAmp,
		"or":             token.BarBar,
		"not":            token.Exclaim,
		"bitand":         token.Amp,
		"bitor":          token.Bar,
		"xor":            token.Caret,
		"compl":          token.Tilde,
		"and_eq":         token.AmpEqual,
		"not_eq":         token.ExclaimEqual,
		"__typeof__":     token.Decltype,
		"__inline":       token.Inline,
		"_Static_assert": token.StaticAssert,
	}
	for text, want := range aliases {
		k, ok := token.Lookup(text)
		require.True(t, ok, text)
		assert.Equal(t, want, k, text)
	}

	_, ok = token.Lookup("definitely_not_a_keyword")
	assert.False(t, ok)
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "__is_void", token.BuiltinIsVoid.Spell())
	assert.Equal(t, "__builtin_bit_cast", token.BuiltinBitCast.Spell())
	assert.Equal(t, "<identifier>", token.BuiltinIdentifier.Spell())

	k, ok := token.LookupBuiltin("__is_same")
	require.True(t, ok)
	assert.Equal(t, token.BuiltinIsSame, k)

	_, ok = token.LookupBuiltin("__is_unheard_of")
	assert.False(t, ok)

	for k := range token.BuiltinCount() {
		assert.NotEmpty(t, token.BuiltinKind(k).Spell())
	}
}
