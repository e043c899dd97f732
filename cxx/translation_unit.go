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
	"sort"

	"github.com/sarvex/CppFrontend/ast"
)

// TranslationUnit is the root container of one parse: it owns the node
// arena, the control, the source map and the root of the syntax tree.
//
// A unit is single-threaded: one producer builds it, then one consumer at
// a time reads it. Pointers into a unit never cross to another unit.
type TranslationUnit struct {
	arena       *ast.Arena
	control     *Control
	fileName    string
	source      []byte
	lineOffsets []int
	root        ast.Unit
}

// NewTranslationUnit returns an empty unit with a fresh arena and control.
func NewTranslationUnit() *TranslationUnit {
	return &TranslationUnit{
		arena:   ast.NewArena(),
		control: NewControl(),
	}
}

// Arena returns the node arena. Its lifetime is the unit's.
func (u *TranslationUnit) Arena() *ast.Arena { return u.arena }

// Control returns the unit's control.
func (u *TranslationUnit) Control() *Control { return u.control }

// AST returns the root node, nil before parsing or decoding.
func (u *TranslationUnit) AST() ast.Unit { return u.root }

// SetAST installs the root node.
func (u *TranslationUnit) SetAST(root ast.Unit) { u.root = root }

// FileName returns the name of the primary source file.
func (u *TranslationUnit) FileName() string { return u.fileName }

// Source returns the source text, possibly nil.
func (u *TranslationUnit) Source() []byte { return u.source }

// SetSource installs the source map used for diagnostics.
func (u *TranslationUnit) SetSource(source []byte, fileName string) {
	u.source = source
	u.fileName = fileName
	u.lineOffsets = u.lineOffsets[:0]
	u.lineOffsets = append(u.lineOffsets, 0)
	for i, b := range source {
		if b == '\n' {
			u.lineOffsets = append(u.lineOffsets, i+1)
		}
	}
}

// LineColumn converts a byte offset into 1-based line and column numbers.
// Offsets past the end of the source map to its last position.
func (u *TranslationUnit) LineColumn(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(u.source) {
		offset = len(u.source)
	}
	i := sort.SearchInts(u.lineOffsets, offset+1) - 1
	if i < 0 {
		return 1, offset + 1
	}
	return i + 1, offset - u.lineOffsets[i] + 1
}
