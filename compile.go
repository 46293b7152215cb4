// This file is part of go-optspec.
//
// Copyright (C) 2023-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DavidGamba/go-optspec/internal/binding"
	"github.com/DavidGamba/go-optspec/text"
)

var optstringRegex = regexp.MustCompile(`^[a-zA-Z0-9:]*$`)

// Compile - translates a compact optstring into an OptSpec.
//
// Each character of the optstring is an option name; a name followed by ':'
// requires an argument. A single leading ':' (the getopts silent error
// reporting marker) is ignored. Digit options are always flags and can't
// be marked with ':'.
//
// bounds optionally carries the minimum and maximum positional argument
// counts, in that order. With no bounds the minimum is 0 and there is no
// maximum. Passing more than two bounds is a programmer error and panics.
//
// On a malformed optstring the diagnostic is written to Writer and the
// returned OptSpec is still safe to use: it holds no bindings and its
// Parse fails with the same error.
func Compile(optstring string, bounds ...int) (*OptSpec, error) {
	s := New()
	if len(bounds) > 2 {
		panic(fmt.Sprintf("Compile accepts at most min and max bounds, got %v", bounds))
	}
	if len(bounds) >= 1 {
		s.SetMinArgs(bounds[0])
	}
	if len(bounds) == 2 {
		s.SetMaxArgs(bounds[1])
	}

	// The silent error reporting marker has no meaning here, diagnostics are
	// always written to Writer.
	spec := strings.TrimPrefix(optstring, ":")
	Logger.Printf("Compile optstring: %q, normalized: %q, bounds: %v\n", optstring, spec, bounds)

	if !optstringRegex.MatchString(spec) {
		return s.compileFail(fmt.Errorf(text.ErrorInvalidOptstring+"%w", optstring, ErrorUsage))
	}

	// Scan from the end so that ':' always attaches to the name immediately
	// before it.
	runes := []rune(spec)
	for i := len(runes) - 1; i >= 0; i-- {
		name := runes[i]
		kind := binding.FlagKind
		if name == ':' {
			if i == 0 || runes[i-1] == ':' {
				return s.compileFail(fmt.Errorf(text.ErrorInvalidOptstring+"%w", optstring, ErrorUsage))
			}
			i--
			name = runes[i]
			if name >= '0' && name <= '9' {
				return s.compileFail(fmt.Errorf(text.ErrorDigitWithArgument+"%w", name, ErrorUsage))
			}
			kind = binding.ValuedKind
		}
		err := s.declare(name, kind)
		if err != nil {
			return s.compileFail(err)
		}
	}
	return s, nil
}

// declare - adds a binding for name unless one of the same kind already
// exists. The optstring is untrusted input so a conflict is an error, not a
// panic like in the builder methods.
func (s *OptSpec) declare(name rune, kind binding.Kind) error {
	if b, ok := s.bindings[name]; ok {
		if b.Kind == kind {
			return nil
		}
		return fmt.Errorf(text.ErrorRedeclaredOption+"%w", name, ErrorUsage)
	}
	switch kind {
	case binding.ValuedKind:
		v := ""
		s.bindings[name] = binding.New(name, kind, &v)
	default: // binding.FlagKind
		b := false
		s.bindings[name] = binding.New(name, kind, &b)
	}
	return nil
}

// compileFail - reports the diagnostic and turns the OptSpec into a plan
// that is safe to execute but fails: no partial bindings, and Parse
// returns the compile error without scanning.
func (s *OptSpec) compileFail(err error) (*OptSpec, error) {
	fmt.Fprintf(Writer, "%s\n", err)
	s.bindings = make(map[rune]*binding.Binding)
	s.compileErr = err
	return s, err
}
