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

package printer_test

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvex/CppFrontend/ast"
	"github.com/sarvex/CppFrontend/cxx"
	"github.com/sarvex/CppFrontend/printer"
	"github.com/sarvex/CppFrontend/token"
)

func dump(n ast.Node) string {
	var b strings.Builder
	printer.Print(&b, n)
	return b.String()
}

// requireDump compares a dump byte for byte, showing a unified diff on
// mismatch.
func requireDump(t *testing.T, want string, n ast.Node) {
	t.Helper()
	got := dump(n)
	if got == want {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	require.NoError(t, err)
	t.Fatalf("dump mismatch:\n%s", diff)
}

func TestEmptyTranslationUnit(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	root := ast.New[ast.TranslationUnit](u.Arena())
	requireDump(t, "translation-unit\n", root)
}

func TestNamespaceDefinition(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	a := u.Arena()

	ns := ast.New[ast.NamespaceDefinition](a)
	ns.Identifier = u.Control().GetIdentifier("N")
	root := ast.New[ast.TranslationUnit](a)
	root.DeclarationList = ast.ListOf[ast.Declaration](a, ns)

	requireDump(t, strings.Join([]string{
		"translation-unit",
		"  declaration-list",
		"    namespace-definition",
		"      identifier: N",
		"",
	}, "\n"), root)
}

func TestStaticAssertDeclaration(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	a := u.Arena()

	lit := ast.New[ast.BoolLiteralExpression](a)
	lit.IsTrue = true
	decl := ast.New[ast.StaticAssertDeclaration](a)
	decl.Expression = lit

	requireDump(t, strings.Join([]string{
		"static-assert-declaration",
		"  expression: bool-literal-expression",
		"    is-true: true",
		"",
	}, "\n"), decl)
}

func TestAccessDeclaration(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	decl := ast.New[ast.AccessDeclaration](u.Arena())
	decl.AccessSpecifier = token.Public

	requireDump(t, strings.Join([]string{
		"access-declaration",
		"  access-specifier: public",
		"",
	}, "\n"), decl)

	// The sentinel kind suppresses the payload line.
	blank := ast.New[ast.AccessDeclaration](u.Arena())
	requireDump(t, "access-declaration\n", blank)
}

func TestFalseFlagsAreSuppressed(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	ns := ast.New[ast.NamespaceDefinition](u.Arena())
	ns.Identifier = u.Control().GetIdentifier("inner")
	requireDump(t, "namespace-definition\n  identifier: inner\n", ns)

	ns.IsInline = true
	requireDump(t, strings.Join([]string{
		"namespace-definition",
		"  identifier: inner",
		"  is-inline: true",
		"",
	}, "\n"), ns)
}

func TestLiteralPayloads(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	a := u.Arena()

	decl := ast.New[ast.AsmDeclaration](a)
	decl.Literal = u.Control().GetStringLiteral(`"nop"`)

	requireDump(t, strings.Join([]string{
		"asm-declaration",
		`  literal: "nop"`,
		"",
	}, "\n"), decl)
}

func TestBinaryExpression(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	a := u.Arena()
	c := u.Control()

	left := ast.New[ast.IntLiteralExpression](a)
	left.Literal = c.GetIntegerLiteral("1")
	right := ast.New[ast.IntLiteralExpression](a)
	right.Literal = c.GetIntegerLiteral("2")

	expr := ast.New[ast.BinaryExpression](a)
	expr.Op = token.Plus
	expr.LeftExpression = left
	expr.RightExpression = right

	requireDump(t, strings.Join([]string{
		"binary-expression",
		"  op: +",
		"  left-expression: int-literal-expression",
		"    literal: 1",
		"  right-expression: int-literal-expression",
		"    literal: 2",
		"",
	}, "\n"), expr)
}

// TestDeepDeclarator pins the printer on a declarator with many chained
// array chunks: depth tracks nesting and nothing overflows.
func TestDeepDeclarator(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	a := u.Arena()

	const depth = 64
	var chunks []ast.DeclaratorChunk
	for range depth {
		chunks = append(chunks, ast.New[ast.ArrayDeclaratorChunk](a))
	}
	d := ast.New[ast.Declarator](a)
	d.DeclaratorChunkList = ast.ListOf(a, chunks...)

	out := dump(d)
	assert.Equal(t, depth, strings.Count(out, "array-declarator-chunk"))
	assert.True(t, strings.HasPrefix(out, "declarator\n  declarator-chunk-list\n"))
}

// TestNestedExpressionDepth drives recursion well past any reasonable
// source nesting; printing must stay linear and terminate.
func TestNestedExpressionDepth(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	a := u.Arena()

	var expr ast.Expression = ast.New[ast.ThisExpression](a)
	for range 500 {
		nested := ast.New[ast.NestedExpression](a)
		nested.Expression = expr
		expr = nested
	}

	out := dump(expr)
	assert.Equal(t, 500, strings.Count(out, "nested-expression"))
	assert.Equal(t, 1, strings.Count(out, "this-expression"))
}

func TestNilChildrenPrintNothing(t *testing.T) {
	t.Parallel()

	u := cxx.NewTranslationUnit()
	decl := ast.New[ast.StaticAssertDeclaration](u.Arena())
	requireDump(t, "static-assert-declaration\n", decl)
}
