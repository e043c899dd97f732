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

package token

// keywords maps every keyword spelling to its kind, including the standard
// alternative tokens and the compiler-extension synonyms, which resolve to
// the kind they alias.
var keywords = map[string]Kind{
	"alignas":           Alignas,
	"alignof":           Alignof,
	"asm":               Asm,
	"auto":              Auto,
	"bool":              Bool,
	"break":             Break,
	"case":              Case,
	"catch":             Catch,
	"char":              Char,
	"char16_t":          Char16T,
	"char32_t":          Char32T,
	"char8_t":           Char8T,
	"class":             Class,
	"co_await":          CoAwait,
	"co_return":         CoReturn,
	"co_yield":          CoYield,
	"concept":           Concept,
	"const_cast":        ConstCast,
	"const":             Const,
	"consteval":         Consteval,
	"constexpr":         Constexpr,
	"constinit":         Constinit,
	"continue":          Continue,
	"decltype":          Decltype,
	"default":           Default,
	"delete":            Delete,
	"do":                Do,
	"double":            Double,
	"dynamic_cast":      DynamicCast,
	"else":              Else,
	"enum":              Enum,
	"explicit":          Explicit,
	"export":            Export,
	"extern":            Extern,
	"false":             False,
	"float":             Float,
	"for":               For,
	"friend":            Friend,
	"goto":              Goto,
	"if":                If,
	"import":            Import,
	"inline":            Inline,
	"int":               Int,
	"long":              Long,
	"module":            Module,
	"mutable":           Mutable,
	"namespace":         Namespace,
	"new":               New,
	"noexcept":          Noexcept,
	"nullptr":           Nullptr,
	"operator":          Operator,
	"private":           Private,
	"protected":         Protected,
	"public":            Public,
	"reinterpret_cast":  ReinterpretCast,
	"requires":          Requires,
	"return":            Return,
	"short":             Short,
	"signed":            Signed,
	"sizeof":            Sizeof,
	"static_assert":     StaticAssert,
	"static_cast":       StaticCast,
	"static":            Static,
	"struct":            Struct,
	"switch":            Switch,
	"template":          Template,
	"this":              This,
	"thread_local":      ThreadLocal,
	"throw":             Throw,
	"true":              True,
	"try":               Try,
	"typedef":           Typedef,
	"typeid":            Typeid,
	"typename":          Typename,
	"union":             Union,
	"unsigned":          Unsigned,
	"using":             Using,
	"virtual":           Virtual,
	"void":              Void,
	"volatile":          Volatile,
	"wchar_t":           WcharT,
	"while":             While,
	"_Atomic":           Atomic,
	"_Complex":          Complex,
	"__attribute__":     GnuAttribute,
	"__builtin_va_list": BuiltinVaListKw,
	"__complex__":       GnuComplex,
	"__extension__":     GnuExtension,
	"__float128":        Float128,
	"__float80":         Float80,
	"__imag__":          GnuImag,
	"__int128":          Int128,
	"__int64":           Int64,
	"__real__":          GnuReal,
	"__restrict__":      GnuRestrict,
	"__thread":          GnuThread,
	"__underlying_type": UnderlyingType,
	"and_eq":            AmpEqual,
	"and":               AmpAmp,
	"bitand":            Amp,
	"bitor":             Bar,
	"compl":             Tilde,
	"not_eq":            ExclaimEqual,
	"not":               Exclaim,
	"or_eq":             BarEqual,
	"or":                BarBar,
	"xor_eq":            CaretEqual,
	"xor":               Caret,
	"__alignof__":       Alignof,
	"__alignof":         Alignof,
	"__asm__":           Asm,
	"__asm":             Asm,
	"__attribute":       GnuAttribute,
	"__decltype__":      Decltype,
	"__decltype":        Decltype,
	"__inline__":        Inline,
	"__inline":          Inline,
	"__restrict":        GnuRestrict,
	"__typeof__":        Decltype,
	"__typeof":          Decltype,
	"_Alignof":          Alignof,
	"_Static_assert":    StaticAssert,
}
