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

package astio

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvex/CppFrontend/ast"
	"github.com/sarvex/CppFrontend/cxx"
	"github.com/sarvex/CppFrontend/internal/intern"
	"github.com/sarvex/CppFrontend/names"
	"github.com/sarvex/CppFrontend/printer"
	"github.com/sarvex/CppFrontend/token"
)

// fillScalars populates every scalar and interned-string field of a node
// with a nonzero value, so the sweep exercises more than absent defaults.
func fillScalars(n ast.Node, c *cxx.Control) {
	v := reflect.ValueOf(n).Elem()
	for i := range v.NumField() {
		f := v.Field(i)
		switch f.Interface().(type) {
		case bool:
			f.SetBool(true)
		case uint32:
			f.SetUint(2)
		case token.Kind:
			f.Set(reflect.ValueOf(token.Public))
		case token.BuiltinKind:
			f.Set(reflect.ValueOf(token.BuiltinIsVoid))
		case *names.Identifier:
			f.Set(reflect.ValueOf(c.GetIdentifier("x")))
		case *names.StringLiteral:
			f.Set(reflect.ValueOf(c.GetStringLiteral(`"s"`)))
		case *names.CharLiteral:
			f.Set(reflect.ValueOf(c.GetCharLiteral(`'a'`)))
		case *names.IntegerLiteral:
			f.Set(reflect.ValueOf(c.GetIntegerLiteral("42")))
		case *names.FloatLiteral:
			f.Set(reflect.ValueOf(c.GetFloatLiteral("1.5")))
		}
	}
}

func dump(n ast.Node) string {
	var b strings.Builder
	printer.Print(&b, n)
	return b.String()
}

// TestRoundTripEveryVariant encodes one minimal instance of every variant,
// decodes it into a fresh unit, and re-encodes it; the second byte stream
// must match the first and the printed dumps must agree.
func TestRoundTripEveryVariant(t *testing.T) {
	t.Parallel()

	for _, node := range allNodes {
		node := node
		t.Run(node.Kind().String(), func(t *testing.T) {
			t.Parallel()

			source := cxx.NewTranslationUnit()
			fillScalars(node, source.Control())

			enc := &encoder{f: new(wireFile), pool: new(intern.Table)}
			typ, ptr := encodeAny(enc, node)
			require.NotZero(t, ptr, "node did not encode")
			enc.f.Strings = enc.pool.Strings()
			first, err := encMode.Marshal(enc.f)
			require.NoError(t, err)

			dest := cxx.NewTranslationUnit()
			var decoded wireFile
			require.NoError(t, cbor.Unmarshal(first, &decoded))
			dec := &decoder{
				f:       &decoded,
				arena:   dest.Arena(),
				control: dest.Control(),
				strings: decoded.Strings,
			}
			got, err := decodeAny(dec, node, typ, ptr)
			require.NoError(t, err)
			require.NotNil(t, got)

			assert.Equal(t, node.Kind(), got.Kind())
			assert.Equal(t, dump(node), dump(got))

			enc2 := &encoder{f: new(wireFile), pool: new(intern.Table)}
			typ2, ptr2 := encodeAny(enc2, got)
			enc2.f.Strings = enc2.pool.Strings()
			second, err := encMode.Marshal(enc2.f)
			require.NoError(t, err)
			assert.Equal(t, typ, typ2)
			assert.Equal(t, ptr, ptr2)
			assert.Equal(t, first, second)
		})
	}
}

// cmpOpts compares interned values by spelling; pointer identity does not
// carry across translation units.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b *names.Identifier) bool {
		return (a == nil) == (b == nil) && (a == nil || a.Value() == b.Value())
	}),
	cmp.Comparer(func(a, b *names.StringLiteral) bool {
		return (a == nil) == (b == nil) && (a == nil || a.Value() == b.Value())
	}),
	cmp.Comparer(func(a, b *names.CharLiteral) bool {
		return (a == nil) == (b == nil) && (a == nil || a.Value() == b.Value())
	}),
	cmp.Comparer(func(a, b *names.IntegerLiteral) bool {
		return (a == nil) == (b == nil) && (a == nil || a.Value() == b.Value())
	}),
	cmp.Comparer(func(a, b *names.FloatLiteral) bool {
		return (a == nil) == (b == nil) && (a == nil || a.Value() == b.Value())
	}),
}

// buildTemplateUnit assembles the tree for
//
//	template <typename T> struct is_void {
//	  enum { value = __is_void(T) };
//	};
//
// plus a namespace and a static assertion in front of it.
func buildTemplateUnit(u *cxx.TranslationUnit) *ast.TranslationUnit {
	a := u.Arena()
	c := u.Control()

	ns := ast.New[ast.NamespaceDefinition](a)
	ns.Identifier = c.GetIdentifier("N")

	assertDecl := ast.New[ast.StaticAssertDeclaration](a)
	boolLit := ast.New[ast.BoolLiteralExpression](a)
	boolLit.IsTrue = true
	assertDecl.Expression = boolLit

	traitArg := ast.New[ast.TypeID](a)
	namedT := ast.New[ast.NamedTypeSpecifier](a)
	nameT := ast.New[ast.NameID](a)
	nameT.Identifier = c.GetIdentifier("T")
	namedT.UnqualifiedID = nameT
	traitArg.TypeSpecifierList = ast.ListOf[ast.Specifier](a, namedT)

	trait := ast.New[ast.TypeTraitsExpression](a)
	trait.TypeTrait = token.BuiltinIsVoid
	trait.TypeIDList = ast.ListOf(a, traitArg)

	enumerator := ast.New[ast.Enumerator](a)
	enumerator.Identifier = c.GetIdentifier("value")
	enumerator.Expression = trait

	enumSpec := ast.New[ast.EnumSpecifier](a)
	enumSpec.EnumeratorList = ast.ListOf(a, enumerator)

	enumDecl := ast.New[ast.SimpleDeclaration](a)
	enumDecl.DeclSpecifierList = ast.ListOf[ast.Specifier](a, enumSpec)

	classSpec := ast.New[ast.ClassSpecifier](a)
	classSpec.ClassKey = token.Struct
	className := ast.New[ast.NameID](a)
	className.Identifier = c.GetIdentifier("is_void")
	classSpec.UnqualifiedID = className
	classSpec.DeclarationList = ast.ListOf[ast.Declaration](a, enumDecl)

	classDecl := ast.New[ast.SimpleDeclaration](a)
	classDecl.DeclSpecifierList = ast.ListOf[ast.Specifier](a, classSpec)

	typenameT := ast.New[ast.TypenameTypeParameter](a)
	typenameT.Identifier = c.GetIdentifier("T")

	templ := ast.New[ast.TemplateDeclaration](a)
	templ.TemplateParameterList = ast.ListOf[ast.TemplateParameter](a, typenameT)
	templ.Declaration = classDecl

	root := ast.New[ast.TranslationUnit](a)
	root.DeclarationList = ast.ListOf[ast.Declaration](a, ns, assertDecl, templ)
	return root
}

func TestRoundTripUnit(t *testing.T) {
	t.Parallel()

	source := cxx.NewTranslationUnit()
	source.SetSource(nil, "templ.001.cc")
	source.SetAST(buildTemplateUnit(source))

	data, err := Encode(source)
	require.NoError(t, err)

	dest := cxx.NewTranslationUnit()
	dec := NewDecoder(dest)
	require.True(t, dec.Decode(data), "decode failed: %v", dec.Err())
	require.NoError(t, dec.Err())
	assert.Equal(t, StateDone, dec.State())

	assert.Equal(t, "templ.001.cc", dest.FileName())
	require.NotNil(t, dest.AST())

	assert.Equal(t, dump(source.AST()), dump(dest.AST()))
	assert.Empty(t, cmp.Diff(source.AST(), dest.AST(), cmpOpts))

	// Re-interning lands in the destination control: same spelling, same
	// pointer as a direct intern.
	decoded := dest.AST().(*ast.TranslationUnit)
	ns := decoded.DeclarationList.Value.(*ast.NamespaceDefinition)
	assert.Same(t, dest.Control().GetIdentifier("N"), ns.Identifier)

	second, err := Encode(dest)
	require.NoError(t, err)
	assert.Equal(t, data, second)
}

func TestEncodeEmptyUnit(t *testing.T) {
	t.Parallel()

	source := cxx.NewTranslationUnit()
	source.SetAST(ast.New[ast.TranslationUnit](source.Arena()))

	data, err := Encode(source)
	require.NoError(t, err)

	dest := cxx.NewTranslationUnit()
	require.True(t, NewDecoder(dest).Decode(data))
	root, ok := dest.AST().(*ast.TranslationUnit)
	require.True(t, ok)
	assert.Nil(t, root.DeclarationList)
	assert.Equal(t, "translation-unit\n", dump(root))
}

func TestDecodeTruncated(t *testing.T) {
	t.Parallel()

	source := cxx.NewTranslationUnit()
	source.SetAST(buildTemplateUnit(source))
	data, err := Encode(source)
	require.NoError(t, err)

	dest := cxx.NewTranslationUnit()
	dec := NewDecoder(dest)
	assert.False(t, dec.Decode(data[:len(data)/2]))
	assert.Equal(t, StateFailed, dec.State())
	assert.ErrorIs(t, dec.Err(), ErrDecode)
}

func TestDecodeVectorLengthMismatch(t *testing.T) {
	t.Parallel()

	f := &wireFile{
		UnitType:        unitTranslationUnit,
		Unit:            1,
		Strings:         []string{""},
		TranslationUnit: []wireTranslationUnit{{DeclarationList: []uint32{1}}},
		EmptyDeclaration: []wireEmptyDeclaration{
			{},
		},
	}
	data, err := encMode.Marshal(f)
	require.NoError(t, err)

	dec := NewDecoder(cxx.NewTranslationUnit())
	assert.False(t, dec.Decode(data))
	assert.ErrorIs(t, dec.Err(), ErrDecode)
	assert.Contains(t, dec.Err().Error(), "vectors disagree")
}

func TestDecodeOffsetOutOfRange(t *testing.T) {
	t.Parallel()

	f := &wireFile{
		UnitType: unitTranslationUnit,
		Unit:     7,
		Strings:  []string{""},
	}
	data, err := encMode.Marshal(f)
	require.NoError(t, err)

	dec := NewDecoder(cxx.NewTranslationUnit())
	assert.False(t, dec.Decode(data))
	assert.ErrorIs(t, dec.Err(), ErrDecode)
}

// TestDecodeUnknownDiscriminator pins the tolerance contract: an
// unrecognized discriminator decodes to a null child, not an error.
func TestDecodeUnknownDiscriminator(t *testing.T) {
	t.Parallel()

	f := &wireFile{
		UnitType: unitTranslationUnit,
		Unit:     1,
		Strings:  []string{""},
		TranslationUnit: []wireTranslationUnit{{
			DeclarationList:     []uint32{9},
			DeclarationListType: []uint8{250},
		}},
	}
	data, err := encMode.Marshal(f)
	require.NoError(t, err)

	dest := cxx.NewTranslationUnit()
	dec := NewDecoder(dest)
	require.True(t, dec.Decode(data), "unknown discriminators must not fail: %v", dec.Err())

	root := dest.AST().(*ast.TranslationUnit)
	require.Equal(t, 1, root.DeclarationList.Len())
	assert.True(t, ast.IsNil(root.DeclarationList.Value))
	assert.Equal(t, "translation-unit\n  declaration-list\n", dump(root))
}

func TestDecoderIsSingleUse(t *testing.T) {
	t.Parallel()

	source := cxx.NewTranslationUnit()
	source.SetAST(ast.New[ast.TranslationUnit](source.Arena()))
	data, err := Encode(source)
	require.NoError(t, err)

	dec := NewDecoder(cxx.NewTranslationUnit())
	assert.Equal(t, StateIdle, dec.State())
	require.True(t, dec.Decode(data))
	assert.Equal(t, StateDone, dec.State())

	assert.False(t, dec.Decode(data))
	assert.Equal(t, StateFailed, dec.State())
}

func TestEncodeDeterministic(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	u.SetAST(buildTemplateUnit(u))

	a, err := Encode(u)
	require.NoError(t, err)
	b, err := Encode(u)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
