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

// Package names defines the interned name and literal values shared by the
// syntax tree and the semantic tables.
//
// Values of this package are interned by a control: two equal values are
// represented by the same pointer, so identity comparison replaces deep
// equality. Construct them through the control's factories, not directly,
// whenever interning matters.
package names

import (
	"github.com/sarvex/CppFrontend/token"
)

// NameKind discriminates the implementations of [Name].
type NameKind uint8

const (
	KindIdentifier NameKind = iota
	KindOperatorID
	KindDestructorID
	KindLiteralOperatorID
	KindConversionFunctionID
	KindTemplateID
)

// Name is an interned name: a plain identifier or one of the compound
// names produced by semantic analysis.
//
// The compound names that reference types live with the type tables; they
// satisfy this interface as well.
type Name interface {
	NameKind() NameKind
}

// Identifier is an interned identifier, unique by its UTF-8 value.
type Identifier struct {
	value string
}

// NewIdentifier returns a fresh identifier with the given value.
func NewIdentifier(value string) *Identifier {
	return &Identifier{value: value}
}

// NameKind implements [Name].
func (*Identifier) NameKind() NameKind { return KindIdentifier }

// Value returns the identifier's text.
func (id *Identifier) Value() string { return id.value }

// String implements [fmt.Stringer].
func (id *Identifier) String() string { return id.value }

// OperatorID names an operator function, unique by the operator token.
type OperatorID struct {
	op token.Kind
}

// NewOperatorID returns a fresh operator-function name for op.
func NewOperatorID(op token.Kind) *OperatorID {
	return &OperatorID{op: op}
}

// NameKind implements [Name].
func (*OperatorID) NameKind() NameKind { return KindOperatorID }

// Op returns the operator token.
func (id *OperatorID) Op() token.Kind { return id.op }

// String implements [fmt.Stringer].
func (id *OperatorID) String() string { return "operator " + id.op.Spell() }

// DestructorID names a destructor, unique by the wrapped name's identity.
type DestructorID struct {
	name Name
}

// NewDestructorID returns a fresh destructor name wrapping name.
func NewDestructorID(name Name) *DestructorID {
	return &DestructorID{name: name}
}

// NameKind implements [Name].
func (*DestructorID) NameKind() NameKind { return KindDestructorID }

// Name returns the wrapped name.
func (id *DestructorID) Name() Name { return id.name }

// LiteralOperatorID names a user-defined literal operator, unique by its
// suffix identifier.
type LiteralOperatorID struct {
	name string
}

// NewLiteralOperatorID returns a fresh literal-operator name for the given
// suffix.
func NewLiteralOperatorID(name string) *LiteralOperatorID {
	return &LiteralOperatorID{name: name}
}

// NameKind implements [Name].
func (*LiteralOperatorID) NameKind() NameKind { return KindLiteralOperatorID }

// Name returns the suffix identifier's text.
func (id *LiteralOperatorID) Name() string { return id.name }

// String implements [fmt.Stringer].
func (id *LiteralOperatorID) String() string { return `operator "" ` + id.name }
