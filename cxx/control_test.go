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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvex/CppFrontend/cxx"
	"github.com/sarvex/CppFrontend/token"
)

func TestIdentifierInterning(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	a := c.GetIdentifier("is_void")
	b := c.GetIdentifier("is_void")
	assert.Same(t, a, b)
	assert.NotSame(t, a, c.GetIdentifier("is_void2"))

	// The empty string is a legal identifier value with a stable instance.
	assert.Same(t, c.GetIdentifier(""), c.GetIdentifier(""))

	// Interning does not cross controls.
	other := cxx.NewControl()
	assert.NotSame(t, a, other.GetIdentifier("is_void"))
}

func TestLiteralNormalizedOnFirstIntern(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	l := c.GetIntegerLiteral("0x2a")
	assert.Same(t, l, c.GetIntegerLiteral("0x2a"))
	assert.EqualValues(t, 42, l.IntegerValue())

	f := c.GetFloatLiteral("1.5f")
	assert.Same(t, f, c.GetFloatLiteral("1.5f"))
	assert.Equal(t, 1.5, f.FloatValue())

	s := c.GetStringLiteral(`"a\nb"`)
	assert.Same(t, s, c.GetStringLiteral(`"a\nb"`))
	assert.Equal(t, "a\nb", s.StringValue())
}

func TestNameInterning(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()

	assert.Same(t, c.GetOperatorID(token.PlusPlus), c.GetOperatorID(token.PlusPlus))
	assert.NotSame(t, c.GetOperatorID(token.PlusPlus), c.GetOperatorID(token.MinusMinus))

	id := c.GetIdentifier("T")
	assert.Same(t, c.GetDestructorID(id), c.GetDestructorID(id))
	assert.Same(t, c.GetLiteralOperatorID("sv"), c.GetLiteralOperatorID("sv"))

	intType := c.GetIntType()
	assert.Same(t, c.GetConversionFunctionID(intType), c.GetConversionFunctionID(intType))
	assert.NotSame(t,
		c.GetConversionFunctionID(intType),
		c.GetConversionFunctionID(c.GetBoolType()))
}

func TestTemplateIDInterning(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	base := c.GetIdentifier("vector")

	args := []cxx.TemplateArgument{{Type: c.GetIntType()}}
	a := c.GetTemplateID(base, args)
	b := c.GetTemplateID(base, []cxx.TemplateArgument{{Type: c.GetIntType()}})
	assert.Same(t, a, b)

	other := c.GetTemplateID(base, []cxx.TemplateArgument{{Type: c.GetBoolType()}})
	assert.NotSame(t, a, other)

	assert.Same(t, base, a.Name())
	require.Len(t, a.Arguments(), 1)
}

func TestCompoundTypeInterning(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	intType := c.GetIntType()

	assert.Same(t, c.GetConstType(intType), c.GetQualType(intType, cxx.CVConst))
	assert.NotSame(t, c.GetConstType(intType), c.GetVolatileType(intType))

	assert.Same(t, c.GetPointerType(intType), c.GetPointerType(intType))
	assert.Same(t, c.GetBoundedArrayType(intType, 4), c.GetBoundedArrayType(intType, 4))
	assert.NotSame(t, c.GetBoundedArrayType(intType, 4), c.GetBoundedArrayType(intType, 5))
	assert.Same(t, c.GetUnboundedArrayType(intType), c.GetUnboundedArrayType(intType))
	assert.Same(t, c.GetLvalueReferenceType(intType), c.GetLvalueReferenceType(intType))
	assert.Same(t, c.GetRvalueReferenceType(intType), c.GetRvalueReferenceType(intType))

	// Deep structural keys.
	p1 := c.GetPointerType(c.GetConstType(intType))
	p2 := c.GetPointerType(c.GetConstType(intType))
	assert.Same(t, p1, p2)
}

func TestFunctionTypeInterning(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	intType := c.GetIntType()
	boolType := c.GetBoolType()

	f1 := c.GetFunctionType(intType, []cxx.Type{boolType}, false, cxx.CVNone, cxx.RefNone, false)
	f2 := c.GetFunctionType(intType, []cxx.Type{boolType}, false, cxx.CVNone, cxx.RefNone, false)
	assert.Same(t, f1, f2)

	variadic := c.GetFunctionType(intType, []cxx.Type{boolType}, true, cxx.CVNone, cxx.RefNone, false)
	assert.NotSame(t, f1, variadic)
	assert.True(t, variadic.IsVariadic())

	noexceptF := c.GetFunctionType(intType, []cxx.Type{boolType}, false, cxx.CVNone, cxx.RefNone, true)
	assert.NotSame(t, f1, noexceptF)

	moreParams := c.GetFunctionType(intType, []cxx.Type{boolType, boolType}, false, cxx.CVNone, cxx.RefNone, false)
	assert.NotSame(t, f1, moreParams)
}

func TestRecordTypesAreIdentityTyped(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	assert.NotSame(t, c.NewClassType(), c.NewClassType())
	assert.NotSame(t, c.NewEnumType(), c.NewEnumType())
	assert.NotSame(t, c.NewNamespaceType(), c.NewNamespaceType())
}

func TestRecordSymbolTypeBackReference(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	global := c.NewNamespaceSymbol(nil)
	require.NotNil(t, global.MemberScope())
	assert.Same(t, cxx.Symbol(global), global.MemberScope().Owner())

	nsType, ok := global.Type().(*cxx.NamespaceType)
	require.True(t, ok)
	assert.Same(t, global, nsType.Symbol())

	class := c.NewClassSymbol(global.MemberScope())
	classType, ok := class.Type().(*cxx.ClassType)
	require.True(t, ok)
	assert.Same(t, class, classType.Symbol())
	assert.Same(t, global.MemberScope(), class.EnclosingScope())

	enum := c.NewEnumSymbol(class.MemberScope())
	enumType, ok := enum.Type().(*cxx.EnumType)
	require.True(t, ok)
	assert.Same(t, enum, enumType.Symbol())

	union := c.NewUnionSymbol(global.MemberScope())
	assert.Same(t, union, union.Type().(*cxx.UnionType).Symbol())

	scoped := c.NewScopedEnumSymbol(global.MemberScope())
	assert.Same(t, scoped, scoped.Type().(*cxx.ScopedEnumType).Symbol())
}

func TestSymbolWithoutScopePanics(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	assert.Panics(t, func() { c.NewClassSymbol(nil) })
	assert.Panics(t, func() { c.NewVariableSymbol(nil) })
	assert.NotPanics(t, func() { c.NewNamespaceSymbol(nil) })
}

func TestScopeLookup(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	global := c.NewNamespaceSymbol(nil)

	v := c.NewVariableSymbol(global.MemberScope())
	v.SetName(c.GetIdentifier("x"))
	global.MemberScope().AddSymbol(v)

	class := c.NewClassSymbol(global.MemberScope())
	class.SetName(c.GetIdentifier("C"))
	global.MemberScope().AddSymbol(class)

	field := c.NewFieldSymbol(class.MemberScope())
	field.SetName(c.GetIdentifier("x"))
	class.MemberScope().AddSymbol(field)

	found := class.MemberScope().Find(c.GetIdentifier("x"))
	require.Len(t, found, 1)
	assert.Same(t, cxx.Symbol(field), found[0])

	// Lookup walks outward, innermost scope first.
	outer := class.MemberScope().Lookup(c.GetIdentifier("x"))
	require.Len(t, outer, 1)
	assert.Same(t, cxx.Symbol(field), outer[0])

	assert.Empty(t, class.MemberScope().Find(c.GetIdentifier("missing")))
}

func TestNewAnonymousID(t *testing.T) {
	t.Parallel()

	c := cxx.NewControl()
	a := c.NewAnonymousID("enum")
	b := c.NewAnonymousID("enum")
	assert.NotSame(t, a, b)
	assert.Equal(t, "$enum1", a.Value())
	assert.Equal(t, "$enum2", b.Value())

	// Minted names are ordinary interned identifiers afterwards.
	assert.Same(t, a, c.GetIdentifier("$enum1"))
}

func TestLineColumn(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	u.SetSource([]byte("int x;\nint y;\n"), "test.cc")
	assert.Equal(t, "test.cc", u.FileName())

	line, col := u.LineColumn(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = u.LineColumn(7)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = u.LineColumn(11)
	assert.Equal(t, 2, line)
	assert.Equal(t, 5, col)
}
