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

import "github.com/sarvex/CppFrontend/names"

// Scope is the set of symbols declared directly inside one scoped symbol.
// Insertion order is preserved; name lookup sees declaration order.
type Scope struct {
	owner   Symbol
	parent  *Scope
	symbols []Symbol
	index   map[names.Name][]Symbol
}

// Owner returns the symbol this scope belongs to.
func (s *Scope) Owner() Symbol { return s.owner }

// Parent returns the lexically enclosing scope, nil for the global scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Symbols returns the member symbols in declaration order. The returned
// slice must not be mutated.
func (s *Scope) Symbols() []Symbol { return s.symbols }

// AddSymbol appends sym to the scope.
func (s *Scope) AddSymbol(sym Symbol) {
	s.symbols = append(s.symbols, sym)
	if name := sym.Name(); name != nil {
		if s.index == nil {
			s.index = make(map[names.Name][]Symbol)
		}
		s.index[name] = append(s.index[name], sym)
	}
}

// Find returns the symbols declared in this scope under name, in
// declaration order.
func (s *Scope) Find(name names.Name) []Symbol {
	return s.index[name]
}

// Lookup searches this scope and its parents for name, innermost first.
func (s *Scope) Lookup(name names.Name) []Symbol {
	for it := s; it != nil; it = it.parent {
		if found := it.Find(name); found != nil {
			return found
		}
	}
	return nil
}
