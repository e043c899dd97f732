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

// Package ast defines the syntax tree of the front-end.
//
// Nodes are grouped into closed categories (declarations, statements,
// expressions, ...), each a sum type realized as an interface with one
// marker method; the variants of a category are structs. A node carries
// child pointers, child lists and small scalar payloads: flags, token
// kinds, and interned identifiers and literals owned by the translation
// unit's control.
//
// All nodes and list cells are allocated on an [Arena] whose lifetime is
// that of the translation unit; child pointers borrow, they never own.
// Absent children are nil, absent token payloads are [token.EOFSymbol].
package ast

import "reflect"

// Node is implemented by every syntax tree node.
type Node interface {
	// Kind returns the variant tag of this node.
	Kind() Kind
}

// Unit is the root of a parse: a translation unit or a module unit.
type Unit interface {
	Node
	unitNode()
}

// Declaration is a declaration node.
type Declaration interface {
	Node
	declarationNode()
}

// Statement is a statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is an expression node. Initializer clauses count as
// expressions.
type Expression interface {
	Node
	expressionNode()
}

// TemplateParameter is a parameter of a template declaration.
type TemplateParameter interface {
	Node
	templateParameterNode()
}

// Specifier is a declaration specifier: storage class, cv-qualifier,
// function specifier or type specifier.
type Specifier interface {
	Node
	specifierNode()
}

// PtrOperator is a pointer, reference or pointer-to-member operator of a
// declarator.
type PtrOperator interface {
	Node
	ptrOperatorNode()
}

// CoreDeclarator is the innermost part of a declarator: the declared id, a
// bitfield, a parameter pack or a parenthesized declarator.
type CoreDeclarator interface {
	Node
	coreDeclaratorNode()
}

// DeclaratorChunk is a function or array suffix of a declarator.
type DeclaratorChunk interface {
	Node
	declaratorChunkNode()
}

// UnqualifiedID is an unqualified name: a plain identifier, an operator
// name, a destructor name or a template id.
type UnqualifiedID interface {
	Node
	unqualifiedIDNode()
}

// NestedNameSpecifier is a qualified-name prefix chain such as `A::B::`.
type NestedNameSpecifier interface {
	Node
	nestedNameSpecifierNode()
}

// FunctionBody is the body of a function definition.
type FunctionBody interface {
	Node
	functionBodyNode()
}

// TemplateArgument is a type or expression argument of a template id.
type TemplateArgument interface {
	Node
	templateArgumentNode()
}

// ExceptionSpecifier is a dynamic or noexcept exception specifier.
type ExceptionSpecifier interface {
	Node
	exceptionSpecifierNode()
}

// Requirement is a requirement inside a requires-expression.
type Requirement interface {
	Node
	requirementNode()
}

// NewInitializer is the initializer of a new-expression.
type NewInitializer interface {
	Node
	newInitializerNode()
}

// MemInitializer is a member initializer of a constructor.
type MemInitializer interface {
	Node
	memInitializerNode()
}

// LambdaCapture is a capture of a lambda-expression.
type LambdaCapture interface {
	Node
	lambdaCaptureNode()
}

// ExceptionDeclaration is the declaration of a catch handler.
type ExceptionDeclaration interface {
	Node
	exceptionDeclarationNode()
}

// AttributeSpecifier is an attribute specifier: [[...]], an alignas clause
// or a compiler-extension attribute.
type AttributeSpecifier interface {
	Node
	attributeSpecifierNode()
}

// AttributeToken is the name part of an attribute.
type AttributeToken interface {
	Node
	attributeTokenNode()
}

// IsNil reports whether n is an absent child: a nil interface or a typed
// nil pointer stored in one.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
