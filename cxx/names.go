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
	"github.com/sarvex/CppFrontend/names"
)

// The compound names that reference the type tables live here rather than
// in package names; they still satisfy [names.Name].

// ConversionFunctionID names a conversion function, unique by the identity
// of its target type.
type ConversionFunctionID struct {
	typ Type
}

// NameKind implements [names.Name].
func (*ConversionFunctionID) NameKind() names.NameKind { return names.KindConversionFunctionID }

// Type returns the conversion target type.
func (id *ConversionFunctionID) Type() Type { return id.typ }

// TemplateArgument is one argument of a template id: a type or a constant
// expression. Exactly one field is set.
type TemplateArgument struct {
	Type       Type
	Expression ast.Expression
}

// TemplateID names a template specialization, unique by the base name's
// identity and the ordered argument vector.
type TemplateID struct {
	name      names.Name
	arguments []TemplateArgument
}

// NameKind implements [names.Name].
func (*TemplateID) NameKind() names.NameKind { return names.KindTemplateID }

// Name returns the base template name.
func (id *TemplateID) Name() names.Name { return id.name }

// Arguments returns the ordered argument vector. The returned slice must
// not be mutated.
func (id *TemplateID) Arguments() []TemplateArgument { return id.arguments }
