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

// Package astio serializes syntax trees to a binary form and back.
//
// The wire format is a tagged-union schema: each node category is a
// discriminator byte paired with an offset into the per-variant table the
// discriminator selects, lists are parallel offset/discriminator vectors,
// and every interned string is an offset into a shared string pool. The
// envelope is a CBOR document carrying the file name, the root unit and
// the tables.
//
// Encoding sweeps the tree post-order, so a parent is written only after
// all of its children have table offsets. Decoding rebuilds the tree in
// the receiving unit's arena, re-interning identifiers and literal
// spellings into its control; the trees on both sides are structurally
// equal. A decoder that meets an unknown discriminator yields a null child
// rather than failing, so newer producers stay readable; structural damage
// (truncation, mismatched list vectors, out-of-range offsets) fails the
// decode and the partial tree must be discarded.
package astio

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/sarvex/CppFrontend/cxx"
	"github.com/sarvex/CppFrontend/internal/intern"
)

// ErrDecode is wrapped by every error reported by a [Decoder].
var ErrDecode = errors.New("astio: decode failed")

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Encode serializes the unit's syntax tree.
//
// Output is deterministic: encoding the same tree twice produces identical
// bytes.
func Encode(unit *cxx.TranslationUnit) ([]byte, error) {
	f := new(wireFile)
	e := &encoder{f: f, pool: new(intern.Table)}

	f.UnitType, f.Unit = e.unit(unit.AST())
	if name := unit.FileName(); name != "" {
		f.FileName = e.str(name)
	}
	f.Strings = e.pool.Strings()

	return encMode.Marshal(f)
}

// State is the phase a [Decoder] is in. A decoder moves Idle →
// HeaderRead → RootDecoded → Done; any failure moves it to the terminal
// Failed state. There is no resume or retry.
type State uint8

const (
	StateIdle State = iota
	StateHeaderRead
	StateRootDecoded
	StateDone
	StateFailed
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHeaderRead:
		return "HeaderRead"
	case StateRootDecoded:
		return "RootDecoded"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Decoder reconstructs a syntax tree into a translation unit.
type Decoder struct {
	unit  *cxx.TranslationUnit
	state State
	err   error
}

// NewDecoder returns a decoder that builds into unit: nodes go to the
// unit's arena, strings re-intern into its control.
func NewDecoder(unit *cxx.TranslationUnit) *Decoder {
	return &Decoder{unit: unit}
}

// Decode parses data and installs the decoded tree as the unit's root.
//
// It reports false on malformed input; [Decoder.Err] then carries the
// detail, and whatever was decoded before the error is not usable. A
// decoder decodes once: further calls fail.
func (d *Decoder) Decode(data []byte) bool {
	if d.state != StateIdle {
		d.fail(fmt.Errorf("%w: decoder already used (state %v)", ErrDecode, d.state))
		return false
	}
	if err := d.decode(data); err != nil {
		d.fail(err)
		return false
	}
	d.state = StateDone
	return true
}

// State returns the decoder's phase.
func (d *Decoder) State() State { return d.state }

// Err returns the error that moved the decoder to Failed, or nil.
func (d *Decoder) Err() error { return d.err }

func (d *Decoder) fail(err error) {
	d.state = StateFailed
	if d.err == nil {
		d.err = err
	}
}

func (d *Decoder) decode(data []byte) error {
	var f wireFile
	if err := cbor.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if _, err := intern.FromStrings(f.Strings); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	d.state = StateHeaderRead

	dd := &decoder{
		f:       &f,
		arena:   d.unit.Arena(),
		control: d.unit.Control(),
		strings: f.Strings,
	}

	if f.FileName != 0 {
		name, err := dd.str(f.FileName)
		if err != nil {
			return err
		}
		d.unit.SetSource(nil, name)
	}

	root, err := dd.unit(f.UnitType, f.Unit)
	if err != nil {
		return err
	}
	d.state = StateRootDecoded

	d.unit.SetAST(root)
	return nil
}
