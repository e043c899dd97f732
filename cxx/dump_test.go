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

package cxx_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarvex/CppFrontend/cxx"
	"github.com/sarvex/CppFrontend/token"
)

// TestDumpTemplateStruct builds the symbols of
//
//	template <typename T> struct is_void {
//	  enum { value = __is_void(T) };
//	};
//
// and pins the dumped stream: namespace, template, struct, enum,
// enumerator, in that order.
func TestDumpTemplateStruct(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()

	global := c.NewNamespaceSymbol(nil)

	templ := c.NewTemplateParametersSymbol(global.MemberScope())
	global.MemberScope().AddSymbol(templ)

	param := c.NewTypeParameterSymbol(templ.MemberScope())
	param.SetName(c.GetIdentifier("T"))

	class := c.NewClassSymbol(templ.MemberScope())
	class.SetName(c.GetIdentifier("is_void"))
	class.SetClassKey(token.Struct)
	templ.MemberScope().AddSymbol(class)

	enum := c.NewEnumSymbol(class.MemberScope())
	class.MemberScope().AddSymbol(enum)

	enumerator := c.NewEnumeratorSymbol(enum.MemberScope())
	enumerator.SetName(c.GetIdentifier("value"))
	enum.MemberScope().AddSymbol(enumerator)

	var b strings.Builder
	cxx.DumpSymbols(&b, global)

	assert.Equal(t, strings.Join([]string{
		"- namespace:",
		"  - template:",
		"    - struct: is_void",
		"      - enum:",
		"        - enumerator: value",
		"",
	}, "\n"), b.String())
}

func TestDumpNamedNamespace(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	global := c.NewNamespaceSymbol(nil)
	ns := c.NewNamespaceSymbol(global.MemberScope())
	ns.SetName(c.GetIdentifier("N"))
	global.MemberScope().AddSymbol(ns)

	v := c.NewVariableSymbol(ns.MemberScope())
	v.SetName(c.GetIdentifier("x"))
	ns.MemberScope().AddSymbol(v)

	var b strings.Builder
	cxx.DumpSymbols(&b, global)

	assert.Equal(t, strings.Join([]string{
		"- namespace:",
		"  - namespace: N",
		"    - variable: x",
		"",
	}, "\n"), b.String())
}
