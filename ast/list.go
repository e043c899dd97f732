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

// List is a singly-linked list cell holding one child node. Lists are built
// front to back by the parser and never mutated afterwards; source order is
// the cell order. There is no length header, traversal walks Next until
// nil.
type List[T Node] struct {
	Value T
	Next  *List[T]
}

// Len returns the number of cells in the list.
func (l *List[T]) Len() int {
	n := 0
	for it := l; it != nil; it = it.Next {
		n++
	}
	return n
}

// Values calls yield for every value in source order, stopping early if
// yield returns false.
func (l *List[T]) Values(yield func(T) bool) {
	for it := l; it != nil; it = it.Next {
		if !yield(it.Value) {
			return
		}
	}
}

// NewList allocates a single list cell on the arena.
func NewList[T Node](a *Arena, value T) *List[T] {
	cell := New[List[T]](a)
	cell.Value = value
	return cell
}

// ListOf builds a list from values in order, allocating its cells on the
// arena. An empty values slice yields a nil list.
func ListOf[T Node](a *Arena, values ...T) *List[T] {
	var head *List[T]
	tail := &head
	for _, v := range values {
		*tail = NewList(a, v)
		tail = &(*tail).Next
	}
	return head
}
