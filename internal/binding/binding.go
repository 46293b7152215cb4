// This file is part of go-optspec.
//
// Copyright (C) 2023-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package binding - internal binding struct and methods.
package binding

import (
	"io"
	"log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Kind - Indicates the kind of binding.
type Kind int

// Binding kinds. The engine only supports flag options and options with a
// mandatory argument. There are no optional argument kinds.
const (
	FlagKind Kind = iota
	ValuedKind
)

// Binding - the (name, kind, value) triple exposed to the caller for one
// declared option.
type Binding struct {
	Name   rune
	Kind   Kind
	Called bool // Indicates if the option was given in the parsed arguments

	// Pointer receivers:
	pBool   *bool   // receiver for flag bindings
	pString *string // receiver for valued bindings
}

// New - Returns a new binding writing through the given receiver.
func New(name rune, kind Kind, data interface{}) *Binding {
	b := &Binding{
		Name: name,
		Kind: kind,
	}
	switch kind {
	case ValuedKind:
		b.pString = data.(*string)
	default: // FlagKind
		b.pBool = data.(*bool)
	}
	return b
}

// SetCalled - Marks the binding as given in the parsed arguments.
func (b *Binding) SetCalled() *Binding {
	b.Called = true
	return b
}

// Save - Saves the parsed data into the binding.
// A flag binding ignores the data and records presence; a valued binding
// stores the first element verbatim.
func (b *Binding) Save(a ...string) {
	Logger.Printf("name: %c, kind: %d, data: %q\n", b.Name, b.Kind, a)
	switch b.Kind {
	case ValuedKind:
		if len(a) > 0 {
			*b.pString = a[0]
		}
	default: // FlagKind
		*b.pBool = true
	}
}

// Value - Get the typed current value, bool for flags and string for valued
// bindings.
func (b *Binding) Value() interface{} {
	switch b.Kind {
	case ValuedKind:
		return *b.pString
	default: // FlagKind
		return *b.pBool
	}
}

// Reset - Restores the compiled default, false for flags and the empty
// string for valued bindings, and clears the called state.
func (b *Binding) Reset() {
	b.Called = false
	switch b.Kind {
	case ValuedKind:
		*b.pString = ""
	default: // FlagKind
		*b.pBool = false
	}
}
