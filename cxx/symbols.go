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

package cxx

import (
	"github.com/sarvex/CppFrontend/names"
	"github.com/sarvex/CppFrontend/token"
)

// SymbolKind discriminates the implementations of [Symbol].
type SymbolKind uint8

const (
	SymbolKindInvalid SymbolKind = iota
	SymbolKindNamespace
	SymbolKindConcept
	SymbolKindClass
	SymbolKindUnion
	SymbolKindEnum
	SymbolKindScopedEnum
	SymbolKindFunction
	SymbolKindLambda
	SymbolKindFunctionParameters
	SymbolKindTemplateParameters
	SymbolKindBlock
	SymbolKindTypeAlias
	SymbolKindVariable
	SymbolKindField
	SymbolKindParameter
	SymbolKindTypeParameter
	SymbolKindNonTypeParameter
	SymbolKindTemplateTypeParameter
	SymbolKindConstraintTypeParameter
	SymbolKindEnumerator
)

// Symbol is a named entity of the program. Symbols are owned by the
// control and live until the translation unit is dropped; a symbol belongs
// to exactly one enclosing scope.
type Symbol interface {
	SymbolKind() SymbolKind

	// Name returns the symbol's name, nil for anonymous symbols.
	Name() names.Name
	SetName(names.Name)

	// Type returns the symbol's type. For record-like symbols the type is
	// wired at creation and back-references the symbol.
	Type() Type
	SetType(Type)

	// EnclosingScope returns the scope the symbol was declared in; nil
	// only for the global namespace.
	EnclosingScope() *Scope

	// MemberScope returns the scope the symbol owns, nil for symbols that
	// do not open one.
	MemberScope() *Scope
}

// symbolBase is the state shared by every symbol.
type symbolBase struct {
	name  names.Name
	typ   Type
	scope *Scope
}

// Name returns the symbol's name, nil for anonymous symbols.
func (s *symbolBase) Name() names.Name { return s.name }

// SetName sets the symbol's name.
func (s *symbolBase) SetName(name names.Name) { s.name = name }

// Type returns the symbol's type.
func (s *symbolBase) Type() Type { return s.typ }

// SetType sets the symbol's type.
func (s *symbolBase) SetType(t Type) { s.typ = t }

// EnclosingScope returns the scope the symbol was declared in.
func (s *symbolBase) EnclosingScope() *Scope { return s.scope }

// MemberScope returns nil; scoped symbols shadow this.
func (s *symbolBase) MemberScope() *Scope { return nil }

// scopedSymbol is embedded by symbols that open a scope of their own.
type scopedSymbol struct {
	symbolBase
	members Scope
}

// MemberScope returns the scope the symbol owns.
func (s *scopedSymbol) MemberScope() *Scope { return &s.members }

// NamespaceSymbol is a namespace. The global namespace is the only symbol
// with no enclosing scope.
type NamespaceSymbol struct {
	scopedSymbol
	isInline bool
}

// SymbolKind implements [Symbol].
func (*NamespaceSymbol) SymbolKind() SymbolKind { return SymbolKindNamespace }

// IsInline returns whether this is an inline namespace.
func (s *NamespaceSymbol) IsInline() bool { return s.isInline }

// SetIsInline marks the namespace inline.
func (s *NamespaceSymbol) SetIsInline(v bool) { s.isInline = v }

// ConceptSymbol is a concept definition.
type ConceptSymbol struct {
	symbolBase
}

// SymbolKind implements [Symbol].
func (*ConceptSymbol) SymbolKind() SymbolKind { return SymbolKindConcept }

// ClassSymbol is a class or struct.
type ClassSymbol struct {
	scopedSymbol
	classKey token.Kind
	isFinal  bool
}

// SymbolKind implements [Symbol].
func (*ClassSymbol) SymbolKind() SymbolKind { return SymbolKindClass }

// ClassKey returns the class-key the class was declared with; the default
// is [token.Class].
func (s *ClassSymbol) ClassKey() token.Kind { return s.classKey }

// SetClassKey sets the class-key.
func (s *ClassSymbol) SetClassKey(k token.Kind) { s.classKey = k }

// IsFinal returns whether the class is declared final.
func (s *ClassSymbol) IsFinal() bool { return s.isFinal }

// SetIsFinal marks the class final.
func (s *ClassSymbol) SetIsFinal(v bool) { s.isFinal = v }

// UnionSymbol is a union.
type UnionSymbol struct {
	scopedSymbol
}

// SymbolKind implements [Symbol].
func (*UnionSymbol) SymbolKind() SymbolKind { return SymbolKindUnion }

// EnumSymbol is an unscoped enumeration.
type EnumSymbol struct {
	scopedSymbol
	underlyingType Type
}

// SymbolKind implements [Symbol].
func (*EnumSymbol) SymbolKind() SymbolKind { return SymbolKindEnum }

// UnderlyingType returns the declared underlying type, possibly nil.
func (s *EnumSymbol) UnderlyingType() Type { return s.underlyingType }

// SetUnderlyingType sets the underlying type.
func (s *EnumSymbol) SetUnderlyingType(t Type) { s.underlyingType = t }

// ScopedEnumSymbol is a scoped enumeration.
type ScopedEnumSymbol struct {
	scopedSymbol
	underlyingType Type
}

// SymbolKind implements [Symbol].
func (*ScopedEnumSymbol) SymbolKind() SymbolKind { return SymbolKindScopedEnum }

// UnderlyingType returns the declared underlying type, possibly nil.
func (s *ScopedEnumSymbol) UnderlyingType() Type { return s.underlyingType }

// SetUnderlyingType sets the underlying type.
func (s *ScopedEnumSymbol) SetUnderlyingType(t Type) { s.underlyingType = t }

// FunctionSymbol is a function or member function.
type FunctionSymbol struct {
	scopedSymbol
}

// SymbolKind implements [Symbol].
func (*FunctionSymbol) SymbolKind() SymbolKind { return SymbolKindFunction }

// LambdaSymbol is the closure of a lambda-expression.
type LambdaSymbol struct {
	scopedSymbol
}

// SymbolKind implements [Symbol].
func (*LambdaSymbol) SymbolKind() SymbolKind { return SymbolKindLambda }

// FunctionParametersSymbol holds the parameter scope of a declarator.
type FunctionParametersSymbol struct {
	scopedSymbol
}

// SymbolKind implements [Symbol].
func (*FunctionParametersSymbol) SymbolKind() SymbolKind { return SymbolKindFunctionParameters }

// TemplateParametersSymbol holds the parameter scope of a template
// declaration.
type TemplateParametersSymbol struct {
	scopedSymbol
}

// SymbolKind implements [Symbol].
func (*TemplateParametersSymbol) SymbolKind() SymbolKind { return SymbolKindTemplateParameters }

// BlockSymbol is a compound-statement scope.
type BlockSymbol struct {
	scopedSymbol
}

// SymbolKind implements [Symbol].
func (*BlockSymbol) SymbolKind() SymbolKind { return SymbolKindBlock }

// TypeAliasSymbol is a typedef or alias declaration.
type TypeAliasSymbol struct {
	symbolBase
}

// SymbolKind implements [Symbol].
func (*TypeAliasSymbol) SymbolKind() SymbolKind { return SymbolKindTypeAlias }

// VariableSymbol is a variable.
type VariableSymbol struct {
	symbolBase
}

// SymbolKind implements [Symbol].
func (*VariableSymbol) SymbolKind() SymbolKind { return SymbolKindVariable }

// FieldSymbol is a non-static data member.
type FieldSymbol struct {
	symbolBase
}

// SymbolKind implements [Symbol].
func (*FieldSymbol) SymbolKind() SymbolKind { return SymbolKindField }

// ParameterSymbol is a function parameter.
type ParameterSymbol struct {
	symbolBase
}

// SymbolKind implements [Symbol].
func (*ParameterSymbol) SymbolKind() SymbolKind { return SymbolKindParameter }

// TypeParameterSymbol is a resolved template type parameter.
type TypeParameterSymbol struct {
	symbolBase
	depth, index int
	isPack       bool
}

// SymbolKind implements [Symbol].
func (*TypeParameterSymbol) SymbolKind() SymbolKind { return SymbolKindTypeParameter }

// Depth returns the template nesting depth.
func (s *TypeParameterSymbol) Depth() int { return s.depth }

// Index returns the position in the parameter list.
func (s *TypeParameterSymbol) Index() int { return s.index }

// IsPack returns whether this is a parameter pack.
func (s *TypeParameterSymbol) IsPack() bool { return s.isPack }

// SetPosition records depth and index.
func (s *TypeParameterSymbol) SetPosition(depth, index int) { s.depth, s.index = depth, index }

// SetIsPack marks the parameter a pack.
func (s *TypeParameterSymbol) SetIsPack(v bool) { s.isPack = v }

// NonTypeParameterSymbol is a non-type template parameter.
type NonTypeParameterSymbol struct {
	symbolBase
	depth, index int
	isPack       bool
}

// SymbolKind implements [Symbol].
func (*NonTypeParameterSymbol) SymbolKind() SymbolKind { return SymbolKindNonTypeParameter }

// Depth returns the template nesting depth.
func (s *NonTypeParameterSymbol) Depth() int { return s.depth }

// Index returns the position in the parameter list.
func (s *NonTypeParameterSymbol) Index() int { return s.index }

// IsPack returns whether this is a parameter pack.
func (s *NonTypeParameterSymbol) IsPack() bool { return s.isPack }

// SetPosition records depth and index.
func (s *NonTypeParameterSymbol) SetPosition(depth, index int) { s.depth, s.index = depth, index }

// SetIsPack marks the parameter a pack.
func (s *NonTypeParameterSymbol) SetIsPack(v bool) { s.isPack = v }

// TemplateTypeParameterSymbol is a template template parameter.
type TemplateTypeParameterSymbol struct {
	symbolBase
}

// SymbolKind implements [Symbol].
func (*TemplateTypeParameterSymbol) SymbolKind() SymbolKind { return SymbolKindTemplateTypeParameter }

// ConstraintTypeParameterSymbol is a constrained template type parameter.
type ConstraintTypeParameterSymbol struct {
	symbolBase
}

// SymbolKind implements [Symbol].
func (*ConstraintTypeParameterSymbol) SymbolKind() SymbolKind {
	return SymbolKindConstraintTypeParameter
}

// EnumeratorSymbol is an enumerator.
type EnumeratorSymbol struct {
	symbolBase
	value uint64
}

// SymbolKind implements [Symbol].
func (*EnumeratorSymbol) SymbolKind() SymbolKind { return SymbolKindEnumerator }

// Value returns the enumerator's value.
func (s *EnumeratorSymbol) Value() uint64 { return s.value }

// SetValue sets the enumerator's value.
func (s *EnumeratorSymbol) SetValue(v uint64) { s.value = v }
