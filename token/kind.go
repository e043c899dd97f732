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

// Token kinds, in the fixed order their numeric values are derived from:
// base tokens first, then operators, then keywords.
const (
	EOFSymbol Kind = iota    // <eof_symbol>
	Error                    // <error>
	Comment                  // <comment>
	Builtin                  // <builtin>
	Identifier               // <identifier>
	CharacterLiteral         // <character_literal>
	FloatingPointLiteral     // <floating_point_literal>
	IntegerLiteral           // <integer_literal>
	StringLiteral            // <string_literal>
	UserDefinedStringLiteral // <user_defined_string_literal>
	Utf16StringLiteral       // <utf16_string_literal>
	Utf32StringLiteral       // <utf32_string_literal>
	Utf8StringLiteral        // <utf8_string_literal>
	WideStringLiteral        // <wide_string_literal>
	AmpAmp                   // &&
	AmpEqual                 // &=
	Amp                      // &
	BarBar                   // ||
	BarEqual                 // |=
	Bar                      // |
	CaretEqual               // ^=
	Caret                    // ^
	ColonColon               // ::
	Colon                    // :
	Comma                    // ,
	DeleteArray              // delete[]
	DotDotDot                // ...
	DotStar                  // .*
	Dot                      // .
	EqualEqual               // ==
	Equal                    // =
	ExclaimEqual             // !=
	Exclaim                  // !
	GreaterEqual             // >=
	GreaterGreaterEqual      // >>=
	GreaterGreater           // >>
	Greater                  // >
	HashHash                 // ##
	Hash                     // #
	LBrace                   // {
	LBracket                 // [
	LessEqualGreater         // <=>
	LessEqual                // <=
	LessLessEqual            // <<=
	LessLess                 // <<
	Less                     // <
	LParen                   // (
	MinusEqual               // -=
	MinusGreaterStar         // ->*
	MinusGreater             // ->
	MinusMinus               // --
	Minus                    // -
	NewArray                 // new[]
	PercentEqual             // %=
	Percent                  // %
	PlusEqual                // +=
	PlusPlus                 // ++
	Plus                     // +
	Question                 // ?
	RBrace                   // }
	RBracket                 // ]
	RParen                   // )
	Semicolon                // ;
	SlashEqual               // /=
	Slash                    // /
	StarEqual                // *=
	Star                     // *
	Tilde                    // ~
	Alignas                  // alignas
	Alignof                  // alignof
	Asm                      // asm
	Auto                     // auto
	Bool                     // bool
	Break                    // break
	Case                     // case
	Catch                    // catch
	Char                     // char
	Char16T                  // char16_t
	Char32T                  // char32_t
	Char8T                   // char8_t
	Class                    // class
	CoAwait                  // co_await
	CoReturn                 // co_return
	CoYield                  // co_yield
	Concept                  // concept
	ConstCast                // const_cast
	Const                    // const
	Consteval                // consteval
	Constexpr                // constexpr
	Constinit                // constinit
	Continue                 // continue
	Decltype                 // decltype
	Default                  // default
	Delete                   // delete
	Do                       // do
	Double                   // double
	DynamicCast              // dynamic_cast
	Else                     // else
	Enum                     // enum
	Explicit                 // explicit
	Export                   // export
	Extern                   // extern
	False                    // false
	Float                    // float
	For                      // for
	Friend                   // friend
	Goto                     // goto
	If                       // if
	Import                   // import
	Inline                   // inline
	Int                      // int
	Long                     // long
	Module                   // module
	Mutable                  // mutable
	Namespace                // namespace
	New                      // new
	Noexcept                 // noexcept
	Nullptr                  // nullptr
	Operator                 // operator
	Private                  // private
	Protected                // protected
	Public                   // public
	ReinterpretCast          // reinterpret_cast
	Requires                 // requires
	Return                   // return
	Short                    // short
	Signed                   // signed
	Sizeof                   // sizeof
	StaticAssert             // static_assert
	StaticCast               // static_cast
	Static                   // static
	Struct                   // struct
	Switch                   // switch
	Template                 // template
	This                     // this
	ThreadLocal              // thread_local
	Throw                    // throw
	True                     // true
	Try                      // try
	Typedef                  // typedef
	Typeid                   // typeid
	Typename                 // typename
	Union                    // union
	Unsigned                 // unsigned
	Using                    // using
	Virtual                  // virtual
	Void                     // void
	Volatile                 // volatile
	WcharT                   // wchar_t
	While                    // while
	Atomic                   // _Atomic
	Complex                  // _Complex
	GnuAttribute             // __attribute__
	BuiltinVaListKw          // __builtin_va_list
	GnuComplex               // __complex__
	GnuExtension             // __extension__
	Float128                 // __float128
	Float80                  // __float80
	GnuImag                  // __imag__
	Int128                   // __int128
	Int64                    // __int64
	GnuReal                  // __real__
	GnuRestrict              // __restrict__
	GnuThread                // __thread
	UnderlyingType           // __underlying_type

	numKinds
)

// spellings records the canonical spelling of every token kind.
var spellings = [numKinds]string{
	EOFSymbol:                "<eof_symbol>",
	Error:                    "<error>",
	Comment:                  "<comment>",
	Builtin:                  "<builtin>",
	Identifier:               "<identifier>",
	CharacterLiteral:         "<character_literal>",
	FloatingPointLiteral:     "<floating_point_literal>",
	IntegerLiteral:           "<integer_literal>",
	StringLiteral:            "<string_literal>",
	UserDefinedStringLiteral: "<user_defined_string_literal>",
	Utf16StringLiteral:       "<utf16_string_literal>",
	Utf32StringLiteral:       "<utf32_string_literal>",
	Utf8StringLiteral:        "<utf8_string_literal>",
	WideStringLiteral:        "<wide_string_literal>",
	AmpAmp:                   "&&",
	AmpEqual:                 "&=",
	Amp:                      "&",
	BarBar:                   "||",
	BarEqual:                 "|=",
	Bar:                      "|",
	CaretEqual:               "^=",
	Caret:                    "^",
	ColonColon:               "::",
	Colon:                    ":",
	Comma:                    ",",
	DeleteArray:              "delete[]",
	DotDotDot:                "...",
	DotStar:                  ".*",
	Dot:                      ".",
	EqualEqual:               "==",
	Equal:                    "=",
	ExclaimEqual:             "!=",
	Exclaim:                  "!",
	GreaterEqual:             ">=",
	GreaterGreaterEqual:      ">>=",
	GreaterGreater:           ">>",
	Greater:                  ">",
	HashHash:                 "##",
	Hash:                     "#",
	LBrace:                   "{",
	LBracket:                 "[",
	LessEqualGreater:         "<=>",
	LessEqual:                "<=",
	LessLessEqual:            "<<=",
	LessLess:                 "<<",
	Less:                     "<",
	LParen:                   "(",
	MinusEqual:               "-=",
	MinusGreaterStar:         "->*",
	MinusGreater:             "->",
	MinusMinus:               "--",
	Minus:                    "-",
	NewArray:                 "new[]",
	PercentEqual:             "%=",
	Percent:                  "%",
	PlusEqual:                "+=",
	PlusPlus:                 "++",
	Plus:                     "+",
	Question:                 "?",
	RBrace:                   "}",
	RBracket:                 "]",
	RParen:                   ")",
	Semicolon:                ";",
	SlashEqual:               "/=",
	Slash:                    "/",
	StarEqual:                "*=",
	Star:                     "*",
	Tilde:                    "~",
	Alignas:                  "alignas",
	Alignof:                  "alignof",
	Asm:                      "asm",
	Auto:                     "auto",
	Bool:                     "bool",
	Break:                    "break",
	Case:                     "case",
	Catch:                    "catch",
	Char:                     "char",
	Char16T:                  "char16_t",
	Char32T:                  "char32_t",
	Char8T:                   "char8_t",
	Class:                    "class",
	CoAwait:                  "co_await",
	CoReturn:                 "co_return",
	CoYield:                  "co_yield",
	Concept:                  "concept",
	ConstCast:                "const_cast",
	Const:                    "const",
	Consteval:                "consteval",
	Constexpr:                "constexpr",
	Constinit:                "constinit",
	Continue:                 "continue",
	Decltype:                 "decltype",
	Default:                  "default",
	Delete:                   "delete",
	Do:                       "do",
	Double:                   "double",
	DynamicCast:              "dynamic_cast",
	Else:                     "else",
	Enum:                     "enum",
	Explicit:                 "explicit",
	Export:                   "export",
	Extern:                   "extern",
	False:                    "false",
	Float:                    "float",
	For:                      "for",
	Friend:                   "friend",
	Goto:                     "goto",
	If:                       "if",
	Import:                   "import",
	Inline:                   "inline",
	Int:                      "int",
	Long:                     "long",
	Module:                   "module",
	Mutable:                  "mutable",
	Namespace:                "namespace",
	New:                      "new",
	Noexcept:                 "noexcept",
	Nullptr:                  "nullptr",
	Operator:                 "operator",
	Private:                  "private",
	Protected:                "protected",
	Public:                   "public",
	ReinterpretCast:          "reinterpret_cast",
	Requires:                 "requires",
	Return:                   "return",
	Short:                    "short",
	Signed:                   "signed",
	Sizeof:                   "sizeof",
	StaticAssert:             "static_assert",
	StaticCast:               "static_cast",
	Static:                   "static",
	Struct:                   "struct",
	Switch:                   "switch",
	Template:                 "template",
	This:                     "this",
	ThreadLocal:              "thread_local",
	Throw:                    "throw",
	True:                     "true",
	Try:                      "try",
	Typedef:                  "typedef",
	Typeid:                   "typeid",
	Typename:                 "typename",
	Union:                    "union",
	Unsigned:                 "unsigned",
	Using:                    "using",
	Virtual:                  "virtual",
	Void:                     "void",
	Volatile:                 "volatile",
	WcharT:                   "wchar_t",
	While:                    "while",
	Atomic:                   "_Atomic",
	Complex:                  "_Complex",
	GnuAttribute:             "__attribute__",
	BuiltinVaListKw:          "__builtin_va_list",
	GnuComplex:               "__complex__",
	GnuExtension:             "__extension__",
	Float128:                 "__float128",
	Float80:                  "__float80",
	GnuImag:                  "__imag__",
	Int128:                   "__int128",
	Int64:                    "__int64",
	GnuReal:                  "__real__",
	GnuRestrict:              "__restrict__",
	GnuThread:                "__thread",
	UnderlyingType:           "__underlying_type",
}

// kindNames records the enumerator name of every token kind.
var kindNames = [numKinds]string{
	EOFSymbol:                "EOFSymbol",
	Error:                    "Error",
	Comment:                  "Comment",
	Builtin:                  "Builtin",
	Identifier:               "Identifier",
	CharacterLiteral:         "CharacterLiteral",
	FloatingPointLiteral:     "FloatingPointLiteral",
	IntegerLiteral:           "IntegerLiteral",
	StringLiteral:            "StringLiteral",
	UserDefinedStringLiteral: "UserDefinedStringLiteral",
	Utf16StringLiteral:       "Utf16StringLiteral",
	Utf32StringLiteral:       "Utf32StringLiteral",
	Utf8StringLiteral:        "Utf8StringLiteral",
	WideStringLiteral:        "WideStringLiteral",
	AmpAmp:                   "AmpAmp",
	AmpEqual:                 "AmpEqual",
	Amp:                      "Amp",
	BarBar:                   "BarBar",
	BarEqual:                 "BarEqual",
	Bar:                      "Bar",
	CaretEqual:               "CaretEqual",
	Caret:                    "Caret",
	ColonColon:               "ColonColon",
	Colon:                    "Colon",
	Comma:                    "Comma",
	DeleteArray:              "DeleteArray",
	DotDotDot:                "DotDotDot",
	DotStar:                  "DotStar",
	Dot:                      "Dot",
	EqualEqual:               "EqualEqual",
	Equal:                    "Equal",
	ExclaimEqual:             "ExclaimEqual",
	Exclaim:                  "Exclaim",
	GreaterEqual:             "GreaterEqual",
	GreaterGreaterEqual:      "GreaterGreaterEqual",
	GreaterGreater:           "GreaterGreater",
	Greater:                  "Greater",
	HashHash:                 "HashHash",
	Hash:                     "Hash",
	LBrace:                   "LBrace",
	LBracket:                 "LBracket",
	LessEqualGreater:         "LessEqualGreater",
	LessEqual:                "LessEqual",
	LessLessEqual:            "LessLessEqual",
	LessLess:                 "LessLess",
	Less:                     "Less",
	LParen:                   "LParen",
	MinusEqual:               "MinusEqual",
	MinusGreaterStar:         "MinusGreaterStar",
	MinusGreater:             "MinusGreater",
	MinusMinus:               "MinusMinus",
	Minus:                    "Minus",
	NewArray:                 "NewArray",
	PercentEqual:             "PercentEqual",
	Percent:                  "Percent",
	PlusEqual:                "PlusEqual",
	PlusPlus:                 "PlusPlus",
	Plus:                     "Plus",
	Question:                 "Question",
	RBrace:                   "RBrace",
	RBracket:                 "RBracket",
	RParen:                   "RParen",
	Semicolon:                "Semicolon",
	SlashEqual:               "SlashEqual",
	Slash:                    "Slash",
	StarEqual:                "StarEqual",
	Star:                     "Star",
	Tilde:                    "Tilde",
	Alignas:                  "Alignas",
	Alignof:                  "Alignof",
	Asm:                      "Asm",
	Auto:                     "Auto",
	Bool:                     "Bool",
	Break:                    "Break",
	Case:                     "Case",
	Catch:                    "Catch",
	Char:                     "Char",
	Char16T:                  "Char16T",
	Char32T:                  "Char32T",
	Char8T:                   "Char8T",
	Class:                    "Class",
	CoAwait:                  "CoAwait",
	CoReturn:                 "CoReturn",
	CoYield:                  "CoYield",
	Concept:                  "Concept",
	ConstCast:                "ConstCast",
	Const:                    "Const",
	Consteval:                "Consteval",
	Constexpr:                "Constexpr",
	Constinit:                "Constinit",
	Continue:                 "Continue",
	Decltype:                 "Decltype",
	Default:                  "Default",
	Delete:                   "Delete",
	Do:                       "Do",
	Double:                   "Double",
	DynamicCast:              "DynamicCast",
	Else:                     "Else",
	Enum:                     "Enum",
	Explicit:                 "Explicit",
	Export:                   "Export",
	Extern:                   "Extern",
	False:                    "False",
	Float:                    "Float",
	For:                      "For",
	Friend:                   "Friend",
	Goto:                     "Goto",
	If:                       "If",
	Import:                   "Import",
	Inline:                   "Inline",
	Int:                      "Int",
	Long:                     "Long",
	Module:                   "Module",
	Mutable:                  "Mutable",
	Namespace:                "Namespace",
	New:                      "New",
	Noexcept:                 "Noexcept",
	Nullptr:                  "Nullptr",
	Operator:                 "Operator",
	Private:                  "Private",
	Protected:                "Protected",
	Public:                   "Public",
	ReinterpretCast:          "ReinterpretCast",
	Requires:                 "Requires",
	Return:                   "Return",
	Short:                    "Short",
	Signed:                   "Signed",
	Sizeof:                   "Sizeof",
	StaticAssert:             "StaticAssert",
	StaticCast:               "StaticCast",
	Static:                   "Static",
	Struct:                   "Struct",
	Switch:                   "Switch",
	Template:                 "Template",
	This:                     "This",
	ThreadLocal:              "ThreadLocal",
	Throw:                    "Throw",
	True:                     "True",
	Try:                      "Try",
	Typedef:                  "Typedef",
	Typeid:                   "Typeid",
	Typename:                 "Typename",
	Union:                    "Union",
	Unsigned:                 "Unsigned",
	Using:                    "Using",
	Virtual:                  "Virtual",
	Void:                     "Void",
	Volatile:                 "Volatile",
	WcharT:                   "WcharT",
	While:                    "While",
	Atomic:                   "Atomic",
	Complex:                  "Complex",
	GnuAttribute:             "GnuAttribute",
	BuiltinVaListKw:          "BuiltinVaListKw",
	GnuComplex:               "GnuComplex",
	GnuExtension:             "GnuExtension",
	Float128:                 "Float128",
	Float80:                  "Float80",
	GnuImag:                  "GnuImag",
	Int128:                   "Int128",
	Int64:                    "Int64",
	GnuReal:                  "GnuReal",
	GnuRestrict:              "GnuRestrict",
	GnuThread:                "GnuThread",
	UnderlyingType:           "UnderlyingType",
}
