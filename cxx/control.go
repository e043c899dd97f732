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
	"strconv"

	"github.com/tidwall/btree"

	"github.com/sarvex/CppFrontend/ast"
	"github.com/sarvex/CppFrontend/internal/arena"
	"github.com/sarvex/CppFrontend/names"
	"github.com/sarvex/CppFrontend/token"
)

// Control owns the interned objects and symbols of one translation unit:
// identifiers, literals, names, the type tables and the symbol storage.
//
// GetXxx factories intern: equal arguments return the same pointer.
// NewXxx factories always allocate a fresh object. Pointers returned by
// either stay valid for the lifetime of the control. A control is mutated
// only by its owning translation unit; there is no internal locking.
type Control struct {
	identifiers map[string]*names.Identifier

	integerLiterals map[string]*names.IntegerLiteral
	floatLiterals   map[string]*names.FloatLiteral
	charLiterals    map[string]*names.CharLiteral
	stringLiterals  map[string]*names.StringLiteral
	wideLiterals    map[string]*names.WideStringLiteral
	utf8Literals    map[string]*names.Utf8StringLiteral
	utf16Literals   map[string]*names.Utf16StringLiteral
	utf32Literals   map[string]*names.Utf32StringLiteral
	commentLiterals map[string]*names.CommentLiteral

	operatorIDs           map[token.Kind]*names.OperatorID
	destructorIDs         map[names.Name]*names.DestructorID
	literalOperatorIDs    map[string]*names.LiteralOperatorID
	conversionFunctionIDs map[Type]*ConversionFunctionID
	templateIDs           map[names.Name][]*TemplateID

	voidType             VoidType
	nullptrType          NullptrType
	decltypeAutoType     DecltypeAutoType
	autoType             AutoType
	boolType             BoolType
	signedCharType       SignedCharType
	shortIntType         ShortIntType
	intType              IntType
	longIntType          LongIntType
	longLongIntType      LongLongIntType
	unsignedCharType     UnsignedCharType
	unsignedShortIntType UnsignedShortIntType
	unsignedIntType      UnsignedIntType
	unsignedLongIntType  UnsignedLongIntType
	unsignedLongLongType UnsignedLongLongIntType
	charType             CharType
	char8Type            Char8Type
	char16Type           Char16Type
	char32Type           Char32Type
	wideCharType         WideCharType
	floatType            FloatType
	doubleType           DoubleType
	longDoubleType       LongDoubleType
	classDescriptionType ClassDescriptionType

	typeSeq uint32

	qualTypes             *btree.BTreeG[*QualType]
	boundedArrayTypes     *btree.BTreeG[*BoundedArrayType]
	unboundedArrayTypes   *btree.BTreeG[*UnboundedArrayType]
	pointerTypes          *btree.BTreeG[*PointerType]
	lvalueReferenceTypes  *btree.BTreeG[*LvalueReferenceType]
	rvalueReferenceTypes  *btree.BTreeG[*RvalueReferenceType]
	functionTypes         *btree.BTreeG[*FunctionType]
	memberObjectPointers  *btree.BTreeG[*MemberObjectPointerType]
	memberFunctionPtrs    *btree.BTreeG[*MemberFunctionPointerType]
	unresolvedNames       map[unresolvedNameKey]*UnresolvedNameType
	unresolvedArrays      map[unresolvedArrayKey]*UnresolvedBoundedArrayType
	unresolvedUnderlyings map[*ast.TypeID]*UnresolvedUnderlyingType

	classTypes      arena.Arena[ClassType]
	unionTypes      arena.Arena[UnionType]
	namespaceTypes  arena.Arena[NamespaceType]
	enumTypes       arena.Arena[EnumType]
	scopedEnumTypes arena.Arena[ScopedEnumType]

	namespaceSymbols          arena.Arena[NamespaceSymbol]
	conceptSymbols            arena.Arena[ConceptSymbol]
	classSymbols              arena.Arena[ClassSymbol]
	unionSymbols              arena.Arena[UnionSymbol]
	enumSymbols               arena.Arena[EnumSymbol]
	scopedEnumSymbols         arena.Arena[ScopedEnumSymbol]
	functionSymbols           arena.Arena[FunctionSymbol]
	lambdaSymbols             arena.Arena[LambdaSymbol]
	functionParametersSymbols arena.Arena[FunctionParametersSymbol]
	templateParametersSymbols arena.Arena[TemplateParametersSymbol]
	blockSymbols              arena.Arena[BlockSymbol]
	typeAliasSymbols          arena.Arena[TypeAliasSymbol]
	variableSymbols           arena.Arena[VariableSymbol]
	fieldSymbols              arena.Arena[FieldSymbol]
	parameterSymbols          arena.Arena[ParameterSymbol]
	typeParameterSymbols      arena.Arena[TypeParameterSymbol]
	nonTypeParameterSymbols   arena.Arena[NonTypeParameterSymbol]
	templateTypeParameters    arena.Arena[TemplateTypeParameterSymbol]
	constraintTypeParameters  arena.Arena[ConstraintTypeParameterSymbol]
	enumeratorSymbols         arena.Arena[EnumeratorSymbol]

	anonymousIDCount int
}

type unresolvedNameKey struct {
	nestedNameSpecifier ast.NestedNameSpecifier
	unqualifiedID       ast.UnqualifiedID
}

type unresolvedArrayKey struct {
	element        Type
	sizeExpression ast.Expression
}

// NewControl returns an empty control with its primitive type singletons
// initialized.
func NewControl() *Control {
	c := &Control{
		identifiers:           make(map[string]*names.Identifier),
		integerLiterals:       make(map[string]*names.IntegerLiteral),
		floatLiterals:         make(map[string]*names.FloatLiteral),
		charLiterals:          make(map[string]*names.CharLiteral),
		stringLiterals:        make(map[string]*names.StringLiteral),
		wideLiterals:          make(map[string]*names.WideStringLiteral),
		utf8Literals:          make(map[string]*names.Utf8StringLiteral),
		utf16Literals:         make(map[string]*names.Utf16StringLiteral),
		utf32Literals:         make(map[string]*names.Utf32StringLiteral),
		commentLiterals:       make(map[string]*names.CommentLiteral),
		operatorIDs:           make(map[token.Kind]*names.OperatorID),
		destructorIDs:         make(map[names.Name]*names.DestructorID),
		literalOperatorIDs:    make(map[string]*names.LiteralOperatorID),
		conversionFunctionIDs: make(map[Type]*ConversionFunctionID),
		templateIDs:           make(map[names.Name][]*TemplateID),
		unresolvedNames:       make(map[unresolvedNameKey]*UnresolvedNameType),
		unresolvedArrays:      make(map[unresolvedArrayKey]*UnresolvedBoundedArrayType),
		unresolvedUnderlyings: make(map[*ast.TypeID]*UnresolvedUnderlyingType),
	}

	primitives := []*typeBase{
		&c.voidType.typeBase, &c.nullptrType.typeBase, &c.decltypeAutoType.typeBase,
		&c.autoType.typeBase, &c.boolType.typeBase, &c.signedCharType.typeBase,
		&c.shortIntType.typeBase, &c.intType.typeBase, &c.longIntType.typeBase,
		&c.longLongIntType.typeBase, &c.unsignedCharType.typeBase,
		&c.unsignedShortIntType.typeBase, &c.unsignedIntType.typeBase,
		&c.unsignedLongIntType.typeBase, &c.unsignedLongLongType.typeBase,
		&c.charType.typeBase, &c.char8Type.typeBase, &c.char16Type.typeBase,
		&c.char32Type.typeBase, &c.wideCharType.typeBase, &c.floatType.typeBase,
		&c.doubleType.typeBase, &c.longDoubleType.typeBase,
		&c.classDescriptionType.typeBase,
	}
	for _, p := range primitives {
		p.n = c.nextTypeSeq()
	}

	c.qualTypes = btree.NewBTreeG(func(a, b *QualType) bool {
		if a.element.seq() != b.element.seq() {
			return a.element.seq() < b.element.seq()
		}
		return a.cv < b.cv
	})
	c.boundedArrayTypes = btree.NewBTreeG(func(a, b *BoundedArrayType) bool {
		if a.element.seq() != b.element.seq() {
			return a.element.seq() < b.element.seq()
		}
		return a.size < b.size
	})
	c.unboundedArrayTypes = btree.NewBTreeG(func(a, b *UnboundedArrayType) bool {
		return a.element.seq() < b.element.seq()
	})
	c.pointerTypes = btree.NewBTreeG(func(a, b *PointerType) bool {
		return a.element.seq() < b.element.seq()
	})
	c.lvalueReferenceTypes = btree.NewBTreeG(func(a, b *LvalueReferenceType) bool {
		return a.element.seq() < b.element.seq()
	})
	c.rvalueReferenceTypes = btree.NewBTreeG(func(a, b *RvalueReferenceType) bool {
		return a.element.seq() < b.element.seq()
	})
	c.functionTypes = btree.NewBTreeG(functionTypeLess)
	c.memberObjectPointers = btree.NewBTreeG(func(a, b *MemberObjectPointerType) bool {
		if a.class.seq() != b.class.seq() {
			return a.class.seq() < b.class.seq()
		}
		return a.element.seq() < b.element.seq()
	})
	c.memberFunctionPtrs = btree.NewBTreeG(func(a, b *MemberFunctionPointerType) bool {
		if a.class.seq() != b.class.seq() {
			return a.class.seq() < b.class.seq()
		}
		return a.function.seq() < b.function.seq()
	})

	return c
}

func functionTypeLess(a, b *FunctionType) bool {
	if a.returnType.seq() != b.returnType.seq() {
		return a.returnType.seq() < b.returnType.seq()
	}
	if len(a.parameters) != len(b.parameters) {
		return len(a.parameters) < len(b.parameters)
	}
	for i := range a.parameters {
		if a.parameters[i].seq() != b.parameters[i].seq() {
			return a.parameters[i].seq() < b.parameters[i].seq()
		}
	}
	if a.isVariadic != b.isVariadic {
		return !a.isVariadic
	}
	if a.cv != b.cv {
		return a.cv < b.cv
	}
	if a.ref != b.ref {
		return a.ref < b.ref
	}
	if a.isNoexcept != b.isNoexcept {
		return !a.isNoexcept
	}
	return false
}

func (c *Control) nextTypeSeq() uint32 {
	c.typeSeq++
	return c.typeSeq
}

// GetIdentifier interns an identifier by value. The empty string is a
// legal identifier value with a stable interned instance.
func (c *Control) GetIdentifier(name string) *names.Identifier {
	if id, ok := c.identifiers[name]; ok {
		return id
	}
	id := names.NewIdentifier(name)
	c.identifiers[name] = id
	return id
}

// NewAnonymousID mints a fresh identifier of the shape "$<base><n>". The
// counter is unique within the control, not stable across runs.
func (c *Control) NewAnonymousID(base string) *names.Identifier {
	c.anonymousIDCount++
	return c.GetIdentifier("$" + base + strconv.Itoa(c.anonymousIDCount))
}

// GetIntegerLiteral interns an integer literal by spelling; the value is
// decoded once, on first intern.
func (c *Control) GetIntegerLiteral(spelling string) *names.IntegerLiteral {
	if l, ok := c.integerLiterals[spelling]; ok {
		return l
	}
	l := names.NewIntegerLiteral(spelling)
	c.integerLiterals[spelling] = l
	return l
}

// GetFloatLiteral interns a floating-point literal by spelling.
func (c *Control) GetFloatLiteral(spelling string) *names.FloatLiteral {
	if l, ok := c.floatLiterals[spelling]; ok {
		return l
	}
	l := names.NewFloatLiteral(spelling)
	c.floatLiterals[spelling] = l
	return l
}

// GetCharLiteral interns a character literal by spelling.
func (c *Control) GetCharLiteral(spelling string) *names.CharLiteral {
	if l, ok := c.charLiterals[spelling]; ok {
		return l
	}
	l := names.NewCharLiteral(spelling)
	c.charLiterals[spelling] = l
	return l
}

// GetStringLiteral interns a string literal by spelling.
func (c *Control) GetStringLiteral(spelling string) *names.StringLiteral {
	if l, ok := c.stringLiterals[spelling]; ok {
		return l
	}
	l := names.NewStringLiteral(spelling)
	c.stringLiterals[spelling] = l
	return l
}

// GetWideStringLiteral interns a wide string literal by spelling.
func (c *Control) GetWideStringLiteral(spelling string) *names.WideStringLiteral {
	if l, ok := c.wideLiterals[spelling]; ok {
		return l
	}
	l := names.NewWideStringLiteral(spelling)
	c.wideLiterals[spelling] = l
	return l
}

// GetUtf8StringLiteral interns a u8 string literal by spelling.
func (c *Control) GetUtf8StringLiteral(spelling string) *names.Utf8StringLiteral {
	if l, ok := c.utf8Literals[spelling]; ok {
		return l
	}
	l := names.NewUtf8StringLiteral(spelling)
	c.utf8Literals[spelling] = l
	return l
}

// GetUtf16StringLiteral interns a u16 string literal by spelling.
func (c *Control) GetUtf16StringLiteral(spelling string) *names.Utf16StringLiteral {
	if l, ok := c.utf16Literals[spelling]; ok {
		return l
	}
	l := names.NewUtf16StringLiteral(spelling)
	c.utf16Literals[spelling] = l
	return l
}

// GetUtf32StringLiteral interns a u32 string literal by spelling.
func (c *Control) GetUtf32StringLiteral(spelling string) *names.Utf32StringLiteral {
	if l, ok := c.utf32Literals[spelling]; ok {
		return l
	}
	l := names.NewUtf32StringLiteral(spelling)
	c.utf32Literals[spelling] = l
	return l
}

// GetCommentLiteral interns a comment by text.
func (c *Control) GetCommentLiteral(text string) *names.CommentLiteral {
	if l, ok := c.commentLiterals[text]; ok {
		return l
	}
	l := names.NewCommentLiteral(text)
	c.commentLiterals[text] = l
	return l
}

// GetOperatorID interns an operator-function name by operator token.
func (c *Control) GetOperatorID(op token.Kind) *names.OperatorID {
	if id, ok := c.operatorIDs[op]; ok {
		return id
	}
	id := names.NewOperatorID(op)
	c.operatorIDs[op] = id
	return id
}

// GetDestructorID interns a destructor name by the wrapped name's
// identity.
func (c *Control) GetDestructorID(name names.Name) *names.DestructorID {
	if id, ok := c.destructorIDs[name]; ok {
		return id
	}
	id := names.NewDestructorID(name)
	c.destructorIDs[name] = id
	return id
}

// GetLiteralOperatorID interns a literal-operator name by suffix.
func (c *Control) GetLiteralOperatorID(name string) *names.LiteralOperatorID {
	if id, ok := c.literalOperatorIDs[name]; ok {
		return id
	}
	id := names.NewLiteralOperatorID(name)
	c.literalOperatorIDs[name] = id
	return id
}

// GetConversionFunctionID interns a conversion-function name by target
// type identity.
func (c *Control) GetConversionFunctionID(t Type) *ConversionFunctionID {
	if id, ok := c.conversionFunctionIDs[t]; ok {
		return id
	}
	id := &ConversionFunctionID{typ: t}
	c.conversionFunctionIDs[t] = id
	return id
}

// GetTemplateID interns a template-id by base name identity and the
// ordered argument vector.
func (c *Control) GetTemplateID(name names.Name, arguments []TemplateArgument) *TemplateID {
	for _, id := range c.templateIDs[name] {
		if templateArgumentsEqual(id.arguments, arguments) {
			return id
		}
	}
	id := &TemplateID{name: name, arguments: append([]TemplateArgument(nil), arguments...)}
	c.templateIDs[name] = append(c.templateIDs[name], id)
	return id
}

func templateArgumentsEqual(a, b []TemplateArgument) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Primitive type singletons.

func (c *Control) GetVoidType() *VoidType                         { return &c.voidType }
func (c *Control) GetNullptrType() *NullptrType                   { return &c.nullptrType }
func (c *Control) GetDecltypeAutoType() *DecltypeAutoType         { return &c.decltypeAutoType }
func (c *Control) GetAutoType() *AutoType                         { return &c.autoType }
func (c *Control) GetBoolType() *BoolType                         { return &c.boolType }
func (c *Control) GetSignedCharType() *SignedCharType             { return &c.signedCharType }
func (c *Control) GetShortIntType() *ShortIntType                 { return &c.shortIntType }
func (c *Control) GetIntType() *IntType                           { return &c.intType }
func (c *Control) GetLongIntType() *LongIntType                   { return &c.longIntType }
func (c *Control) GetLongLongIntType() *LongLongIntType           { return &c.longLongIntType }
func (c *Control) GetUnsignedCharType() *UnsignedCharType         { return &c.unsignedCharType }
func (c *Control) GetUnsignedShortIntType() *UnsignedShortIntType { return &c.unsignedShortIntType }
func (c *Control) GetUnsignedIntType() *UnsignedIntType           { return &c.unsignedIntType }
func (c *Control) GetUnsignedLongIntType() *UnsignedLongIntType   { return &c.unsignedLongIntType }
func (c *Control) GetUnsignedLongLongIntType() *UnsignedLongLongIntType {
	return &c.unsignedLongLongType
}
func (c *Control) GetCharType() *CharType             { return &c.charType }
func (c *Control) GetChar8Type() *Char8Type           { return &c.char8Type }
func (c *Control) GetChar16Type() *Char16Type         { return &c.char16Type }
func (c *Control) GetChar32Type() *Char32Type         { return &c.char32Type }
func (c *Control) GetWideCharType() *WideCharType     { return &c.wideCharType }
func (c *Control) GetFloatType() *FloatType           { return &c.floatType }
func (c *Control) GetDoubleType() *DoubleType         { return &c.doubleType }
func (c *Control) GetLongDoubleType() *LongDoubleType { return &c.longDoubleType }
func (c *Control) GetClassDescriptionType() *ClassDescriptionType {
	return &c.classDescriptionType
}

// GetQualType interns a cv-qualified type.
func (c *Control) GetQualType(element Type, cv CVQualifiers) *QualType {
	probe := &QualType{element: element, cv: cv}
	if t, ok := c.qualTypes.Get(probe); ok {
		return t
	}
	probe.n = c.nextTypeSeq()
	c.qualTypes.Set(probe)
	return probe
}

// GetConstType interns the const-qualified form of element.
func (c *Control) GetConstType(element Type) *QualType {
	return c.GetQualType(element, CVConst)
}

// GetVolatileType interns the volatile-qualified form of element.
func (c *Control) GetVolatileType(element Type) *QualType {
	return c.GetQualType(element, CVVolatile)
}

// GetConstVolatileType interns the const-volatile-qualified form of
// element.
func (c *Control) GetConstVolatileType(element Type) *QualType {
	return c.GetQualType(element, CVConstVolatile)
}

// GetBoundedArrayType interns an array type of known extent.
func (c *Control) GetBoundedArrayType(element Type, size uint64) *BoundedArrayType {
	probe := &BoundedArrayType{element: element, size: size}
	if t, ok := c.boundedArrayTypes.Get(probe); ok {
		return t
	}
	probe.n = c.nextTypeSeq()
	c.boundedArrayTypes.Set(probe)
	return probe
}

// GetUnboundedArrayType interns an array type of unknown extent.
func (c *Control) GetUnboundedArrayType(element Type) *UnboundedArrayType {
	probe := &UnboundedArrayType{element: element}
	if t, ok := c.unboundedArrayTypes.Get(probe); ok {
		return t
	}
	probe.n = c.nextTypeSeq()
	c.unboundedArrayTypes.Set(probe)
	return probe
}

// GetPointerType interns a pointer type.
func (c *Control) GetPointerType(element Type) *PointerType {
	probe := &PointerType{element: element}
	if t, ok := c.pointerTypes.Get(probe); ok {
		return t
	}
	probe.n = c.nextTypeSeq()
	c.pointerTypes.Set(probe)
	return probe
}

// GetLvalueReferenceType interns an lvalue reference type.
func (c *Control) GetLvalueReferenceType(element Type) *LvalueReferenceType {
	probe := &LvalueReferenceType{element: element}
	if t, ok := c.lvalueReferenceTypes.Get(probe); ok {
		return t
	}
	probe.n = c.nextTypeSeq()
	c.lvalueReferenceTypes.Set(probe)
	return probe
}

// GetRvalueReferenceType interns an rvalue reference type.
func (c *Control) GetRvalueReferenceType(element Type) *RvalueReferenceType {
	probe := &RvalueReferenceType{element: element}
	if t, ok := c.rvalueReferenceTypes.Get(probe); ok {
		return t
	}
	probe.n = c.nextTypeSeq()
	c.rvalueReferenceTypes.Set(probe)
	return probe
}

// GetFunctionType interns a function type by its full structural key.
func (c *Control) GetFunctionType(returnType Type, parameters []Type, isVariadic bool, cv CVQualifiers, ref RefQualifier, isNoexcept bool) *FunctionType {
	probe := &FunctionType{
		returnType: returnType,
		parameters: parameters,
		isVariadic: isVariadic,
		cv:         cv,
		ref:        ref,
		isNoexcept: isNoexcept,
	}
	if t, ok := c.functionTypes.Get(probe); ok {
		return t
	}
	probe.parameters = append([]Type(nil), parameters...)
	probe.n = c.nextTypeSeq()
	c.functionTypes.Set(probe)
	return probe
}

// GetMemberObjectPointerType interns a pointer-to-data-member type.
func (c *Control) GetMemberObjectPointerType(class *ClassType, element Type) *MemberObjectPointerType {
	probe := &MemberObjectPointerType{class: class, element: element}
	if t, ok := c.memberObjectPointers.Get(probe); ok {
		return t
	}
	probe.n = c.nextTypeSeq()
	c.memberObjectPointers.Set(probe)
	return probe
}

// GetMemberFunctionPointerType interns a pointer-to-member-function type.
func (c *Control) GetMemberFunctionPointerType(class *ClassType, function *FunctionType) *MemberFunctionPointerType {
	probe := &MemberFunctionPointerType{class: class, function: function}
	if t, ok := c.memberFunctionPtrs.Get(probe); ok {
		return t
	}
	probe.n = c.nextTypeSeq()
	c.memberFunctionPtrs.Set(probe)
	return probe
}

// GetUnresolvedNameType interns a dependent name type by the identity of
// its syntax.
func (c *Control) GetUnresolvedNameType(unit *TranslationUnit, nestedNameSpecifier ast.NestedNameSpecifier, unqualifiedID ast.UnqualifiedID) *UnresolvedNameType {
	key := unresolvedNameKey{nestedNameSpecifier, unqualifiedID}
	if t, ok := c.unresolvedNames[key]; ok {
		return t
	}
	t := &UnresolvedNameType{
		unit:                unit,
		nestedNameSpecifier: nestedNameSpecifier,
		unqualifiedID:       unqualifiedID,
	}
	t.n = c.nextTypeSeq()
	c.unresolvedNames[key] = t
	return t
}

// GetUnresolvedBoundedArrayType interns a dependent-extent array type.
func (c *Control) GetUnresolvedBoundedArrayType(unit *TranslationUnit, element Type, sizeExpression ast.Expression) *UnresolvedBoundedArrayType {
	key := unresolvedArrayKey{element, sizeExpression}
	if t, ok := c.unresolvedArrays[key]; ok {
		return t
	}
	t := &UnresolvedBoundedArrayType{
		unit:           unit,
		element:        element,
		sizeExpression: sizeExpression,
	}
	t.n = c.nextTypeSeq()
	c.unresolvedArrays[key] = t
	return t
}

// GetUnresolvedUnderlyingType interns a dependent __underlying_type term.
func (c *Control) GetUnresolvedUnderlyingType(unit *TranslationUnit, typeID *ast.TypeID) *UnresolvedUnderlyingType {
	if t, ok := c.unresolvedUnderlyings[typeID]; ok {
		return t
	}
	t := &UnresolvedUnderlyingType{unit: unit, typeID: typeID}
	t.n = c.nextTypeSeq()
	c.unresolvedUnderlyings[typeID] = t
	return t
}

// Record-like types are identity typed: every call allocates.

// NewClassType allocates a fresh class type.
func (c *Control) NewClassType() *ClassType {
	t := c.classTypes.New()
	t.n = c.nextTypeSeq()
	return t
}

// NewUnionType allocates a fresh union type.
func (c *Control) NewUnionType() *UnionType {
	t := c.unionTypes.New()
	t.n = c.nextTypeSeq()
	return t
}

// NewNamespaceType allocates a fresh namespace type.
func (c *Control) NewNamespaceType() *NamespaceType {
	t := c.namespaceTypes.New()
	t.n = c.nextTypeSeq()
	return t
}

// NewEnumType allocates a fresh enum type.
func (c *Control) NewEnumType() *EnumType {
	t := c.enumTypes.New()
	t.n = c.nextTypeSeq()
	return t
}

// NewScopedEnumType allocates a fresh scoped enum type.
func (c *Control) NewScopedEnumType() *ScopedEnumType {
	t := c.scopedEnumTypes.New()
	t.n = c.nextTypeSeq()
	return t
}

// requireScope enforces the creation contract: every symbol except a
// namespace needs an enclosing scope.
func requireScope(enclosingScope *Scope) {
	if enclosingScope == nil {
		panic("cxx: symbol created without an enclosing scope")
	}
}

func initScope(sym Symbol, enclosingScope *Scope) {
	members := sym.MemberScope()
	members.owner = sym
	members.parent = enclosingScope
}

// NewNamespaceSymbol allocates a namespace symbol and wires its namespace
// type. A nil enclosing scope creates the global namespace.
func (c *Control) NewNamespaceSymbol(enclosingScope *Scope) *NamespaceSymbol {
	sym := c.namespaceSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	t := c.NewNamespaceType()
	sym.SetType(t)
	t.symbol = sym
	return sym
}

// NewConceptSymbol allocates a concept symbol.
func (c *Control) NewConceptSymbol(enclosingScope *Scope) *ConceptSymbol {
	requireScope(enclosingScope)
	sym := c.conceptSymbols.New()
	sym.scope = enclosingScope
	return sym
}

// NewClassSymbol allocates a class symbol and wires its class type.
func (c *Control) NewClassSymbol(enclosingScope *Scope) *ClassSymbol {
	requireScope(enclosingScope)
	sym := c.classSymbols.New()
	sym.scope = enclosingScope
	sym.classKey = token.Class
	initScope(sym, enclosingScope)
	t := c.NewClassType()
	sym.SetType(t)
	t.symbol = sym
	return sym
}

// NewUnionSymbol allocates a union symbol and wires its union type.
func (c *Control) NewUnionSymbol(enclosingScope *Scope) *UnionSymbol {
	requireScope(enclosingScope)
	sym := c.unionSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	t := c.NewUnionType()
	sym.SetType(t)
	t.symbol = sym
	return sym
}

// NewEnumSymbol allocates an enum symbol and wires its enum type.
func (c *Control) NewEnumSymbol(enclosingScope *Scope) *EnumSymbol {
	requireScope(enclosingScope)
	sym := c.enumSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	t := c.NewEnumType()
	sym.SetType(t)
	t.symbol = sym
	return sym
}

// NewScopedEnumSymbol allocates a scoped enum symbol and wires its type.
func (c *Control) NewScopedEnumSymbol(enclosingScope *Scope) *ScopedEnumSymbol {
	requireScope(enclosingScope)
	sym := c.scopedEnumSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	t := c.NewScopedEnumType()
	sym.SetType(t)
	t.symbol = sym
	return sym
}

// NewFunctionSymbol allocates a function symbol.
func (c *Control) NewFunctionSymbol(enclosingScope *Scope) *FunctionSymbol {
	requireScope(enclosingScope)
	sym := c.functionSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	return sym
}

// NewLambdaSymbol allocates a lambda symbol.
func (c *Control) NewLambdaSymbol(enclosingScope *Scope) *LambdaSymbol {
	requireScope(enclosingScope)
	sym := c.lambdaSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	return sym
}

// NewFunctionParametersSymbol allocates a function-parameters scope
// symbol.
func (c *Control) NewFunctionParametersSymbol(enclosingScope *Scope) *FunctionParametersSymbol {
	requireScope(enclosingScope)
	sym := c.functionParametersSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	return sym
}

// NewTemplateParametersSymbol allocates a template-parameters scope
// symbol.
func (c *Control) NewTemplateParametersSymbol(enclosingScope *Scope) *TemplateParametersSymbol {
	requireScope(enclosingScope)
	sym := c.templateParametersSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	return sym
}

// NewBlockSymbol allocates a block scope symbol.
func (c *Control) NewBlockSymbol(enclosingScope *Scope) *BlockSymbol {
	requireScope(enclosingScope)
	sym := c.blockSymbols.New()
	sym.scope = enclosingScope
	initScope(sym, enclosingScope)
	return sym
}

// NewTypeAliasSymbol allocates a type alias symbol.
func (c *Control) NewTypeAliasSymbol(enclosingScope *Scope) *TypeAliasSymbol {
	requireScope(enclosingScope)
	sym := c.typeAliasSymbols.New()
	sym.scope = enclosingScope
	return sym
}

// NewVariableSymbol allocates a variable symbol.
func (c *Control) NewVariableSymbol(enclosingScope *Scope) *VariableSymbol {
	requireScope(enclosingScope)
	sym := c.variableSymbols.New()
	sym.scope = enclosingScope
	return sym
}

// NewFieldSymbol allocates a field symbol.
func (c *Control) NewFieldSymbol(enclosingScope *Scope) *FieldSymbol {
	requireScope(enclosingScope)
	sym := c.fieldSymbols.New()
	sym.scope = enclosingScope
	return sym
}

// NewParameterSymbol allocates a parameter symbol.
func (c *Control) NewParameterSymbol(enclosingScope *Scope) *ParameterSymbol {
	requireScope(enclosingScope)
	sym := c.parameterSymbols.New()
	sym.scope = enclosingScope
	return sym
}

// NewTypeParameterSymbol allocates a template type parameter symbol.
func (c *Control) NewTypeParameterSymbol(enclosingScope *Scope) *TypeParameterSymbol {
	requireScope(enclosingScope)
	sym := c.typeParameterSymbols.New()
	sym.scope = enclosingScope
	return sym
}

// NewNonTypeParameterSymbol allocates a non-type template parameter
// symbol.
func (c *Control) NewNonTypeParameterSymbol(enclosingScope *Scope) *NonTypeParameterSymbol {
	requireScope(enclosingScope)
	sym := c.nonTypeParameterSymbols.New()
	sym.scope = enclosingScope
	return sym
}

// NewTemplateTypeParameterSymbol allocates a template template parameter
// symbol.
func (c *Control) NewTemplateTypeParameterSymbol(enclosingScope *Scope) *TemplateTypeParameterSymbol {
	requireScope(enclosingScope)
	sym := c.templateTypeParameters.New()
	sym.scope = enclosingScope
	return sym
}

// NewConstraintTypeParameterSymbol allocates a constrained type parameter
// symbol.
func (c *Control) NewConstraintTypeParameterSymbol(enclosingScope *Scope) *ConstraintTypeParameterSymbol {
	requireScope(enclosingScope)
	sym := c.constraintTypeParameters.New()
	sym.scope = enclosingScope
	return sym
}

// NewEnumeratorSymbol allocates an enumerator symbol.
func (c *Control) NewEnumeratorSymbol(enclosingScope *Scope) *EnumeratorSymbol {
	requireScope(enclosingScope)
	sym := c.enumeratorSymbols.New()
	sym.scope = enclosingScope
	return sym
}
