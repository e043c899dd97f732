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
	"fmt"
	"io"
	"strings"

	"github.com/sarvex/CppFrontend/names"
)

// DumpSymbols writes the symbol tree rooted at sym to w, one symbol per
// line, two spaces of indentation per nesting level:
//
//	- namespace:
//	  - struct: is_void
//
// The stream is what the test harness compares against -dump-symbols
// expectations.
func DumpSymbols(w io.Writer, sym Symbol) {
	dumpSymbol(w, sym, 0)
}

func dumpSymbol(w io.Writer, sym Symbol, depth int) {
	label := symbolLabel(sym)
	name := nameText(sym.Name())
	if name != "" {
		fmt.Fprintf(w, "%s- %s: %s\n", strings.Repeat("  ", depth), label, name)
	} else {
		fmt.Fprintf(w, "%s- %s:\n", strings.Repeat("  ", depth), label)
	}
	if members := sym.MemberScope(); members != nil {
		for _, m := range members.Symbols() {
			dumpSymbol(w, m, depth+1)
		}
	}
}

func symbolLabel(sym Symbol) string {
	switch sym := sym.(type) {
	case *NamespaceSymbol:
		return "namespace"
	case *ConceptSymbol:
		return "concept"
	case *ClassSymbol:
		return sym.ClassKey().Spell()
	case *UnionSymbol:
		return "union"
	case *EnumSymbol:
		return "enum"
	case *ScopedEnumSymbol:
		return "enum class"
	case *FunctionSymbol:
		return "function"
	case *LambdaSymbol:
		return "lambda"
	case *FunctionParametersSymbol:
		return "parameters"
	case *TemplateParametersSymbol:
		return "template"
	case *BlockSymbol:
		return "block"
	case *TypeAliasSymbol:
		return "typealias"
	case *VariableSymbol:
		return "variable"
	case *FieldSymbol:
		return "field"
	case *ParameterSymbol:
		return "parameter"
	case *TypeParameterSymbol:
		return "parameter:type"
	case *NonTypeParameterSymbol:
		return "parameter:non-type"
	case *TemplateTypeParameterSymbol:
		return "parameter:template-type"
	case *ConstraintTypeParameterSymbol:
		return "parameter:constraint-type"
	case *EnumeratorSymbol:
		return "enumerator"
	default:
		return "symbol"
	}
}

// nameText renders an interned name for diagnostics.
func nameText(name names.Name) string {
	switch name := name.(type) {
	case nil:
		return ""
	case *names.Identifier:
		return name.Value()
	case *names.OperatorID:
		return name.String()
	case *names.DestructorID:
		return "~" + nameText(name.Name())
	case *names.LiteralOperatorID:
		return name.String()
	case *ConversionFunctionID:
		return "operator(type)"
	case *TemplateID:
		return nameText(name.Name()) + "<...>"
	default:
		return ""
	}
}
