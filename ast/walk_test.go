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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvex/CppFrontend/ast"
	"github.com/sarvex/CppFrontend/token"
)

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	a := ast.NewArena()

	// if (cond) then; else other;
	cond := ast.New[ast.BoolLiteralExpression](a)
	thenStmt := ast.New[ast.BreakStatement](a)
	elseStmt := ast.New[ast.ContinueStatement](a)
	ifStmt := ast.New[ast.IfStatement](a)
	ifStmt.Condition = cond
	ifStmt.Statement = thenStmt
	ifStmt.ElseStatement = elseStmt

	body := ast.New[ast.CompoundStatement](a)
	body.StatementList = ast.ListOf[ast.Statement](a, ifStmt)

	var kinds []ast.Kind
	ast.Inspect(body, func(n ast.Node) bool {
		if n != nil {
			kinds = append(kinds, n.Kind())
		}
		return true
	})

	// Children visit in declared source order: initializer, condition,
	// statement, else-statement.
	assert.Equal(t, []ast.Kind{
		ast.KindCompoundStatement,
		ast.KindIfStatement,
		ast.KindBoolLiteralExpression,
		ast.KindBreakStatement,
		ast.KindContinueStatement,
	}, kinds)
}

func TestWalkSkipsAbsentChildren(t *testing.T) {
	t.Parallel()

	a := ast.NewArena()
	decl := ast.New[ast.StaticAssertDeclaration](a)

	count := 0
	ast.Inspect(decl, func(n ast.Node) bool {
		if n != nil {
			count++
		}
		return true
	})
	assert.Equal(t, 1, count)
}

func TestWalkPrune(t *testing.T) {
	t.Parallel()

	a := ast.NewArena()
	inner := ast.New[ast.ThisExpression](a)
	nested := ast.New[ast.NestedExpression](a)
	nested.Expression = inner
	stmt := ast.New[ast.ExpressionStatement](a)
	stmt.Expression = nested

	var kinds []ast.Kind
	ast.Inspect(stmt, func(n ast.Node) bool {
		if n == nil {
			return true
		}
		kinds = append(kinds, n.Kind())
		// Prune below the nested expression.
		return n.Kind() != ast.KindNestedExpression
	})
	assert.Equal(t, []ast.Kind{
		ast.KindExpressionStatement,
		ast.KindNestedExpression,
	}, kinds)
}

func TestListHelpers(t *testing.T) {
	t.Parallel()

	a := ast.NewArena()
	var empty *ast.List[ast.Statement]
	assert.Equal(t, 0, empty.Len())

	s1 := ast.New[ast.BreakStatement](a)
	s2 := ast.New[ast.ContinueStatement](a)
	l := ast.ListOf[ast.Statement](a, s1, s2)
	require.Equal(t, 2, l.Len())

	var got []ast.Statement
	l.Values(func(s ast.Statement) bool {
		got = append(got, s)
		return true
	})
	require.Len(t, got, 2)
	assert.Same(t, ast.Statement(s1), got[0])
	assert.Same(t, ast.Statement(s2), got[1])
}

func TestKindNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "translation-unit", ast.KindTranslationUnit.String())
	assert.Equal(t, "namespace-definition", ast.KindNamespaceDefinition.String())
	assert.Equal(t, "id-expression", ast.KindIDExpression.String())
	assert.Equal(t, "simple-template-id", ast.KindSimpleTemplateID.String())
	assert.Equal(t, "cxx-attribute", ast.KindCxxAttribute.String())
	assert.Equal(t, "invalid", ast.KindInvalid.String())
}

func TestNodeDefaults(t *testing.T) {
	t.Parallel()

	a := ast.NewArena()
	n := ast.New[ast.AccessDeclaration](a)
	assert.Equal(t, token.EOFSymbol, n.AccessSpecifier)
	assert.Equal(t, ast.KindAccessDeclaration, n.Kind())

	assert.True(t, ast.IsNil(nil))
	var typedNil *ast.BreakStatement
	assert.True(t, ast.IsNil(typedNil))
	assert.False(t, ast.IsNil(n))
}

func TestArenaCounts(t *testing.T) {
	t.Parallel()

	a := ast.NewArena()
	assert.Equal(t, 0, a.Len())
	ast.New[ast.BreakStatement](a)
	ast.New[ast.BreakStatement](a)
	ast.ListOf[ast.Statement](a, ast.New[ast.ContinueStatement](a))
	assert.Equal(t, 4, a.Len())
}
