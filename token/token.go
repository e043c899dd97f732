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

// Package token enumerates the token kinds of the language and their
// canonical spellings.
//
// Token kinds appear as scalar payloads on AST nodes: an operator slot, a
// class key, an access specifier. [EOFSymbol] is the "no token" sentinel for
// such optional payloads. A parallel [BuiltinKind] enum covers the compiler
// builtins (type traits and builtin functions) that lex as single tokens.
package token

import "fmt"

// Kind identifies the lexical class of a token: a base token, an operator,
// or a keyword.
//
// The zero value is [EOFSymbol], which doubles as the "no token" sentinel in
// AST payloads.
type Kind uint8

// Spell returns the canonical spelling of k.
//
// Base tokens spell as a placeholder of the form "<identifier>"; operators
// and keywords spell as their source text.
func (k Kind) Spell() string {
	if int(k) >= len(spellings) {
		return "<invalid>"
	}
	return spellings[k]
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsValid returns whether k is one of the enumerated kinds.
func (k Kind) IsValid() bool {
	return k < numKinds
}

// Count returns the number of enumerated token kinds.
func Count() int {
	return int(numKinds)
}

// Lookup maps the spelling of a keyword, an alternative token ("and",
// "bitor", ...) or a compiler-extension synonym ("__typeof__", ...) to its
// kind. Alternative spellings resolve to the kind they alias.
func Lookup(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// BuiltinKind identifies a compiler builtin: a type trait, a builtin cast,
// or a builtin function.
//
// The zero value is [BuiltinIdentifier], marking a token that is a plain
// identifier rather than a builtin.
type BuiltinKind uint16

// Spell returns the canonical spelling of k.
func (k BuiltinKind) Spell() string {
	if int(k) >= len(builtinSpellings) {
		return "<invalid>"
	}
	return builtinSpellings[k]
}

// String implements [fmt.Stringer].
func (k BuiltinKind) String() string {
	return k.Spell()
}

// IsValid returns whether k is one of the enumerated builtin kinds.
func (k BuiltinKind) IsValid() bool {
	return k < numBuiltinKinds
}

// BuiltinCount returns the number of enumerated builtin kinds.
func BuiltinCount() int {
	return int(numBuiltinKinds)
}

var builtinIndex = func() map[string]BuiltinKind {
	m := make(map[string]BuiltinKind, numBuiltinKinds)
	for k := BuiltinIdentifier + 1; k < numBuiltinKinds; k++ {
		m[builtinSpellings[k]] = k
	}
	return m
}()

// LookupBuiltin maps the spelling of a builtin to its kind.
func LookupBuiltin(text string) (BuiltinKind, bool) {
	k, ok := builtinIndex[text]
	return k, ok
}
