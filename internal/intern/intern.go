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

// Package intern provides a string interning table.
//
// The codec uses a table as its string pool: every identifier, literal
// spelling and file name is stored once and referenced by [ID].
package intern

import "fmt"

// ID is an interned string in a particular [Table].
//
// IDs can be compared very cheaply. The zero value of ID always corresponds
// to the empty string.
type ID uint32

// Table is an interning table.
//
// A table can be used to convert strings into [ID]s and back again. Tables
// are owned by a single translation unit and are not synchronized.
//
// The zero value of Table is empty and ready to use.
type Table struct {
	index map[string]ID
	table []string
}

// Intern interns the given string into this table, returning its ID.
//
// Interning the same string twice returns the same ID.
func (t *Table) Intern(s string) ID {
	if s == "" {
		return 0
	}
	if id, ok := t.index[s]; ok {
		return id
	}

	if t.table == nil {
		// Slot 0 is reserved for "".
		t.table = append(t.table, "")
		t.index = make(map[string]ID)
	}

	t.table = append(t.table, s)
	id := ID(len(t.table) - 1)
	t.index[s] = id
	return id
}

// Query reports whether s has already been interned.
func (t *Table) Query(s string) (ID, bool) {
	if s == "" {
		return 0, true
	}
	id, ok := t.index[s]
	return id, ok
}

// Value converts an [ID] back into its corresponding string.
//
// Panics if id was not created by this table.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}
	if int(id) >= len(t.table) {
		panic(fmt.Sprintf("internal/intern: ID out of range: %d", id))
	}
	return t.table[id]
}

// Strings returns the table's backing pool: the interned strings in
// insertion order, with slot 0 holding "".
//
// The returned slice is aliased by the table and must not be mutated.
func (t *Table) Strings() []string {
	if t.table == nil {
		return []string{""}
	}
	return t.table
}

// FromStrings reconstructs a table from a pool previously obtained through
// [Table.Strings].
//
// Returns an error if the pool does not reserve slot 0 for "" or contains
// duplicate entries.
func FromStrings(pool []string) (*Table, error) {
	t := new(Table)
	if len(pool) == 0 {
		return t, nil
	}
	if pool[0] != "" {
		return nil, fmt.Errorf("internal/intern: pool slot 0 must be empty, got %q", pool[0])
	}
	t.table = append(t.table, "")
	t.index = make(map[string]ID, len(pool)-1)
	for _, s := range pool[1:] {
		if _, ok := t.index[s]; ok || s == "" {
			return nil, fmt.Errorf("internal/intern: duplicate pool entry %q", s)
		}
		t.table = append(t.table, s)
		t.index[s] = ID(len(t.table) - 1)
	}
	return t, nil
}
