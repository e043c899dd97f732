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

package ast

import (
	"reflect"

	"github.com/sarvex/CppFrontend/internal/arena"
)

// Arena owns every node and list cell of one translation unit. A parse
// allocates tens of thousands of tiny nodes with identical lifetime;
// batching them into per-type slabs keeps them contiguous and releases
// them together when the unit is dropped.
//
// An Arena must not be shared across translation units.
type Arena struct {
	slabs map[reflect.Type]any
	count int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{slabs: make(map[reflect.Type]any)}
}

// New allocates a zeroed T on the arena. Fields default to "absent": nil
// children, empty lists, sentinel token kinds.
func New[T any](a *Arena) *T {
	key := reflect.TypeFor[T]()
	slab, ok := a.slabs[key]
	if !ok {
		slab = new(arena.Arena[T])
		a.slabs[key] = slab
	}
	a.count++
	return slab.(*arena.Arena[T]).New()
}

// Len returns the number of values allocated on the arena.
func (a *Arena) Len() int {
	return a.count
}
