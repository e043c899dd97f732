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

// Package cxx holds the semantic model of one translation unit: the type
// tables, the symbol tables, the scopes, and the [Control] facade that
// owns them all.
//
// Interned objects obey pointer identity: asking the control twice for
// the same literal, name or compound type returns the same pointer, so
// downstream phases compare identities instead of structures. Record-like
// types (classes, unions, namespaces, enums) are the exception; each
// declaration mints a fresh type wired 1:1 to its symbol.
//
// [TranslationUnit] ties the model to a parse: it owns the node arena,
// the control, and the source map used for diagnostics. Nothing allocated
// through a unit is released before the unit itself.
package cxx
