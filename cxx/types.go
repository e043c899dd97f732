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
	"github.com/sarvex/CppFrontend/ast"
)

// TypeKind discriminates the implementations of [Type].
type TypeKind uint8

const (
	TypeKindInvalid TypeKind = iota

	// Primitive types; singletons owned by the control.
	TypeKindVoid
	TypeKindNullptr
	TypeKindDecltypeAuto
	TypeKindAuto
	TypeKindBool
	TypeKindSignedChar
	TypeKindShortInt
	TypeKindInt
	TypeKindLongInt
	TypeKindLongLongInt
	TypeKindUnsignedChar
	TypeKindUnsignedShortInt
	TypeKindUnsignedInt
	TypeKindUnsignedLongInt
	TypeKindUnsignedLongLongInt
	TypeKindChar
	TypeKindChar8
	TypeKindChar16
	TypeKindChar32
	TypeKindWideChar
	TypeKindFloat
	TypeKindDouble
	TypeKindLongDouble
	TypeKindClassDescription

	// Compound types; interned by structural key.
	TypeKindQual
	TypeKindBoundedArray
	TypeKindUnboundedArray
	TypeKindPointer
	TypeKindLvalueReference
	TypeKindRvalueReference
	TypeKindFunction
	TypeKindMemberObjectPointer
	TypeKindMemberFunctionPointer
	TypeKindUnresolvedName
	TypeKindUnresolvedBoundedArray
	TypeKindUnresolvedUnderlying

	// Record-like types; fresh objects, identity is the address.
	TypeKindClass
	TypeKindUnion
	TypeKindNamespace
	TypeKindEnum
	TypeKindScopedEnum
)

// Type is a term of the type table. Equal types issued by one control are
// the same pointer, except for record-like types, whose identity is their
// address by construction.
type Type interface {
	TypeKind() TypeKind

	// seq returns the interning sequence number used to order structural
	// keys. It also closes the sum: only this package defines types.
	seq() uint32
}

// typeBase carries the interning sequence number.
type typeBase struct {
	n uint32
}

func (t *typeBase) seq() uint32 { return t.n }

// CVQualifiers is a bitset of const/volatile qualification.
type CVQualifiers uint8

const (
	CVNone          CVQualifiers = 0
	CVConst         CVQualifiers = 1 << 0
	CVVolatile      CVQualifiers = 1 << 1
	CVConstVolatile              = CVConst | CVVolatile
)

// IsConst returns whether the const bit is set.
func (cv CVQualifiers) IsConst() bool { return cv&CVConst != 0 }

// IsVolatile returns whether the volatile bit is set.
func (cv CVQualifiers) IsVolatile() bool { return cv&CVVolatile != 0 }

// RefQualifier is the ref-qualifier of a function type.
type RefQualifier uint8

const (
	RefNone RefQualifier = iota
	RefLvalue
	RefRvalue
)

// VoidType is the type void.
type VoidType struct{ typeBase }

// NullptrType is the type of nullptr.
type NullptrType struct{ typeBase }

// DecltypeAutoType is the decltype(auto) placeholder type.
type DecltypeAutoType struct{ typeBase }

// AutoType is the auto placeholder type.
type AutoType struct{ typeBase }

// BoolType is the type bool.
type BoolType struct{ typeBase }

// SignedCharType is the type signed char.
type SignedCharType struct{ typeBase }

// ShortIntType is the type short int.
type ShortIntType struct{ typeBase }

// IntType is the type int.
type IntType struct{ typeBase }

// LongIntType is the type long int.
type LongIntType struct{ typeBase }

// LongLongIntType is the type long long int.
type LongLongIntType struct{ typeBase }

// UnsignedCharType is the type unsigned char.
type UnsignedCharType struct{ typeBase }

// UnsignedShortIntType is the type unsigned short int.
type UnsignedShortIntType struct{ typeBase }

// UnsignedIntType is the type unsigned int.
type UnsignedIntType struct{ typeBase }

// UnsignedLongIntType is the type unsigned long int.
type UnsignedLongIntType struct{ typeBase }

// UnsignedLongLongIntType is the type unsigned long long int.
type UnsignedLongLongIntType struct{ typeBase }

// CharType is the type char.
type CharType struct{ typeBase }

// Char8Type is the type char8_t.
type Char8Type struct{ typeBase }

// Char16Type is the type char16_t.
type Char16Type struct{ typeBase }

// Char32Type is the type char32_t.
type Char32Type struct{ typeBase }

// WideCharType is the type wchar_t.
type WideCharType struct{ typeBase }

// FloatType is the type float.
type FloatType struct{ typeBase }

// DoubleType is the type double.
type DoubleType struct{ typeBase }

// LongDoubleType is the type long double.
type LongDoubleType struct{ typeBase }

// ClassDescriptionType is the type of a class in a type-dependent context.
type ClassDescriptionType struct{ typeBase }

func (*VoidType) TypeKind() TypeKind                { return TypeKindVoid }
func (*NullptrType) TypeKind() TypeKind             { return TypeKindNullptr }
func (*DecltypeAutoType) TypeKind() TypeKind        { return TypeKindDecltypeAuto }
func (*AutoType) TypeKind() TypeKind                { return TypeKindAuto }
func (*BoolType) TypeKind() TypeKind                { return TypeKindBool }
func (*SignedCharType) TypeKind() TypeKind          { return TypeKindSignedChar }
func (*ShortIntType) TypeKind() TypeKind            { return TypeKindShortInt }
func (*IntType) TypeKind() TypeKind                 { return TypeKindInt }
func (*LongIntType) TypeKind() TypeKind             { return TypeKindLongInt }
func (*LongLongIntType) TypeKind() TypeKind         { return TypeKindLongLongInt }
func (*UnsignedCharType) TypeKind() TypeKind        { return TypeKindUnsignedChar }
func (*UnsignedShortIntType) TypeKind() TypeKind    { return TypeKindUnsignedShortInt }
func (*UnsignedIntType) TypeKind() TypeKind         { return TypeKindUnsignedInt }
func (*UnsignedLongIntType) TypeKind() TypeKind     { return TypeKindUnsignedLongInt }
func (*UnsignedLongLongIntType) TypeKind() TypeKind { return TypeKindUnsignedLongLongInt }
func (*CharType) TypeKind() TypeKind                { return TypeKindChar }
func (*Char8Type) TypeKind() TypeKind               { return TypeKindChar8 }
func (*Char16Type) TypeKind() TypeKind              { return TypeKindChar16 }
func (*Char32Type) TypeKind() TypeKind              { return TypeKindChar32 }
func (*WideCharType) TypeKind() TypeKind            { return TypeKindWideChar }
func (*FloatType) TypeKind() TypeKind               { return TypeKindFloat }
func (*DoubleType) TypeKind() TypeKind              { return TypeKindDouble }
func (*LongDoubleType) TypeKind() TypeKind          { return TypeKindLongDouble }
func (*ClassDescriptionType) TypeKind() TypeKind    { return TypeKindClassDescription }

// QualType is a cv-qualified type.
type QualType struct {
	typeBase
	element Type
	cv      CVQualifiers
}

// TypeKind implements [Type].
func (*QualType) TypeKind() TypeKind { return TypeKindQual }

// Element returns the unqualified type.
func (t *QualType) Element() Type { return t.element }

// CV returns the qualifier bits.
func (t *QualType) CV() CVQualifiers { return t.cv }

// BoundedArrayType is an array type of known extent.
type BoundedArrayType struct {
	typeBase
	element Type
	size    uint64
}

// TypeKind implements [Type].
func (*BoundedArrayType) TypeKind() TypeKind { return TypeKindBoundedArray }

// Element returns the element type.
func (t *BoundedArrayType) Element() Type { return t.element }

// Size returns the extent.
func (t *BoundedArrayType) Size() uint64 { return t.size }

// UnboundedArrayType is an array type of unknown extent.
type UnboundedArrayType struct {
	typeBase
	element Type
}

// TypeKind implements [Type].
func (*UnboundedArrayType) TypeKind() TypeKind { return TypeKindUnboundedArray }

// Element returns the element type.
func (t *UnboundedArrayType) Element() Type { return t.element }

// PointerType is an object or function pointer type.
type PointerType struct {
	typeBase
	element Type
}

// TypeKind implements [Type].
func (*PointerType) TypeKind() TypeKind { return TypeKindPointer }

// Element returns the pointee type.
func (t *PointerType) Element() Type { return t.element }

// LvalueReferenceType is an lvalue reference type.
type LvalueReferenceType struct {
	typeBase
	element Type
}

// TypeKind implements [Type].
func (*LvalueReferenceType) TypeKind() TypeKind { return TypeKindLvalueReference }

// Element returns the referenced type.
func (t *LvalueReferenceType) Element() Type { return t.element }

// RvalueReferenceType is an rvalue reference type.
type RvalueReferenceType struct {
	typeBase
	element Type
}

// TypeKind implements [Type].
func (*RvalueReferenceType) TypeKind() TypeKind { return TypeKindRvalueReference }

// Element returns the referenced type.
func (t *RvalueReferenceType) Element() Type { return t.element }

// FunctionType is a function type. Its structural key is the return type,
// the parameter types in order, variadicity, cv-qualification, the
// ref-qualifier and the noexcept bit.
type FunctionType struct {
	typeBase
	returnType Type
	parameters []Type
	isVariadic bool
	cv         CVQualifiers
	ref        RefQualifier
	isNoexcept bool
}

// TypeKind implements [Type].
func (*FunctionType) TypeKind() TypeKind { return TypeKindFunction }

// ReturnType returns the return type.
func (t *FunctionType) ReturnType() Type { return t.returnType }

// ParameterTypes returns the parameter types in declaration order. The
// returned slice must not be mutated.
func (t *FunctionType) ParameterTypes() []Type { return t.parameters }

// IsVariadic returns whether the parameter list ends with an ellipsis.
func (t *FunctionType) IsVariadic() bool { return t.isVariadic }

// CV returns the cv-qualification of the implicit object parameter.
func (t *FunctionType) CV() CVQualifiers { return t.cv }

// RefQualifier returns the ref-qualifier.
func (t *FunctionType) RefQualifier() RefQualifier { return t.ref }

// IsNoexcept returns whether the type carries a noexcept specifier.
func (t *FunctionType) IsNoexcept() bool { return t.isNoexcept }

// MemberObjectPointerType is a pointer-to-data-member type.
type MemberObjectPointerType struct {
	typeBase
	class   *ClassType
	element Type
}

// TypeKind implements [Type].
func (*MemberObjectPointerType) TypeKind() TypeKind { return TypeKindMemberObjectPointer }

// Class returns the owning class type.
func (t *MemberObjectPointerType) Class() *ClassType { return t.class }

// Element returns the member type.
func (t *MemberObjectPointerType) Element() Type { return t.element }

// MemberFunctionPointerType is a pointer-to-member-function type.
type MemberFunctionPointerType struct {
	typeBase
	class    *ClassType
	function *FunctionType
}

// TypeKind implements [Type].
func (*MemberFunctionPointerType) TypeKind() TypeKind { return TypeKindMemberFunctionPointer }

// Class returns the owning class type.
func (t *MemberFunctionPointerType) Class() *ClassType { return t.class }

// FunctionType returns the member function type.
func (t *MemberFunctionPointerType) FunctionType() *FunctionType { return t.function }

// UnresolvedNameType is a type named by a dependent qualified id; it is
// resolved during instantiation.
type UnresolvedNameType struct {
	typeBase
	unit                *TranslationUnit
	nestedNameSpecifier ast.NestedNameSpecifier
	unqualifiedID       ast.UnqualifiedID
}

// TypeKind implements [Type].
func (*UnresolvedNameType) TypeKind() TypeKind { return TypeKindUnresolvedName }

// Unit returns the owning translation unit.
func (t *UnresolvedNameType) Unit() *TranslationUnit { return t.unit }

// NestedNameSpecifier returns the qualifying prefix, possibly nil.
func (t *UnresolvedNameType) NestedNameSpecifier() ast.NestedNameSpecifier {
	return t.nestedNameSpecifier
}

// UnqualifiedID returns the terminal name.
func (t *UnresolvedNameType) UnqualifiedID() ast.UnqualifiedID { return t.unqualifiedID }

// UnresolvedBoundedArrayType is an array type whose extent is a dependent
// expression.
type UnresolvedBoundedArrayType struct {
	typeBase
	unit           *TranslationUnit
	element        Type
	sizeExpression ast.Expression
}

// TypeKind implements [Type].
func (*UnresolvedBoundedArrayType) TypeKind() TypeKind { return TypeKindUnresolvedBoundedArray }

// Unit returns the owning translation unit.
func (t *UnresolvedBoundedArrayType) Unit() *TranslationUnit { return t.unit }

// Element returns the element type.
func (t *UnresolvedBoundedArrayType) Element() Type { return t.element }

// SizeExpression returns the dependent extent expression.
func (t *UnresolvedBoundedArrayType) SizeExpression() ast.Expression { return t.sizeExpression }

// UnresolvedUnderlyingType is a __underlying_type term over a dependent
// type id.
type UnresolvedUnderlyingType struct {
	typeBase
	unit   *TranslationUnit
	typeID *ast.TypeID
}

// TypeKind implements [Type].
func (*UnresolvedUnderlyingType) TypeKind() TypeKind { return TypeKindUnresolvedUnderlying }

// Unit returns the owning translation unit.
func (t *UnresolvedUnderlyingType) Unit() *TranslationUnit { return t.unit }

// TypeID returns the dependent type id.
func (t *UnresolvedUnderlyingType) TypeID() *ast.TypeID { return t.typeID }

// ClassType is the type of one class; every class gets a fresh instance.
type ClassType struct {
	typeBase
	symbol *ClassSymbol
}

// TypeKind implements [Type].
func (*ClassType) TypeKind() TypeKind { return TypeKindClass }

// Symbol returns the class symbol this type describes.
func (t *ClassType) Symbol() *ClassSymbol { return t.symbol }

// UnionType is the type of one union.
type UnionType struct {
	typeBase
	symbol *UnionSymbol
}

// TypeKind implements [Type].
func (*UnionType) TypeKind() TypeKind { return TypeKindUnion }

// Symbol returns the union symbol this type describes.
func (t *UnionType) Symbol() *UnionSymbol { return t.symbol }

// NamespaceType is the type of one namespace.
type NamespaceType struct {
	typeBase
	symbol *NamespaceSymbol
}

// TypeKind implements [Type].
func (*NamespaceType) TypeKind() TypeKind { return TypeKindNamespace }

// Symbol returns the namespace symbol this type describes.
func (t *NamespaceType) Symbol() *NamespaceSymbol { return t.symbol }

// EnumType is the type of one unscoped enumeration.
type EnumType struct {
	typeBase
	symbol *EnumSymbol
}

// TypeKind implements [Type].
func (*EnumType) TypeKind() TypeKind { return TypeKindEnum }

// Symbol returns the enum symbol this type describes.
func (t *EnumType) Symbol() *EnumSymbol { return t.symbol }

// ScopedEnumType is the type of one scoped enumeration.
type ScopedEnumType struct {
	typeBase
	symbol *ScopedEnumSymbol
}

// TypeKind implements [Type].
func (*ScopedEnumType) TypeKind() TypeKind { return TypeKindScopedEnum }

// Symbol returns the scoped enum symbol this type describes.
func (t *ScopedEnumType) Symbol() *ScopedEnumSymbol { return t.symbol }
