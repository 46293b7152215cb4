// This file is part of go-optspec.
//
// Copyright (C) 2023-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optspec - getopts style option parser for single character options.

It compiles a compact optstring, like "ab:", into a set of typed bindings,
runs a single POSIX style left to right scan over any given slice of
strings and returns the remaining (non used) arguments. Positional
argument count bounds are validated after the scan and every invalid
invocation is reported the same way: one diagnostic line on Writer, an
optional "Usage: ..." line, and an error wrapping ErrorUsage.

The following is a basic example:

	import "github.com/DavidGamba/go-optspec"

	opt, err := optspec.Compile("ab:", 1)
	if err != nil {
		os.Exit(optspec.ExitCodeUsage)
	}
	opt.SetUsage("myscript [-a] [-b value] target...")

	remaining, err := opt.Parse(os.Args[1:])
	if err != nil {
		os.Exit(optspec.ExitCodeUsage)
	}

	if opt.Called('a') {
		// ... do something
	}
	value := opt.Option('b').(string)

The optstring is a convenience layer over the schema builder, which can be
used directly and returns pointers into the caller's own frame:

	opt := optspec.New().SetMinArgs(1)
	a := opt.Flag('a')
	b := opt.Valued('b')
	remaining, err := opt.Parse(os.Args[1:])

Flag options default to false and valued options to the empty string. A
binding only reflects the last Parse call; each Compile or New gives a
fresh set of bindings so nested parsers don't step on each other.

# Panic

The library will panic if it finds that the programmer defined the same
option twice, used an option name outside [a-zA-Z0-9], or gave positional
bounds that can't be satisfied.
*/
package optspec

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DavidGamba/go-optspec/internal/binding"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - Where usage error diagnostics are written to.
// Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// OptSpec - main struct holding the declared bindings, the positional
// argument bounds and the usage text.
type OptSpec struct {
	bindings   map[rune]*binding.Binding
	minArgs    int
	maxArgs    int // -1 means unbounded
	usage      string
	compileErr error
}

// New - returns an empty OptSpec with no declared options, a minimum of 0
// positional arguments and no maximum.
// This is the starting point when building a schema by hand; use Compile
// for the optstring form.
func New() *OptSpec {
	return &OptSpec{
		bindings: make(map[rune]*binding.Binding),
		maxArgs:  -1,
	}
}

func validName(name rune) bool {
	return (name >= 'a' && name <= 'z') ||
		(name >= 'A' && name <= 'Z') ||
		(name >= '0' && name <= '9')
}

// failIfDefined will *panic* if an option is defined twice or named outside
// [a-zA-Z0-9]. This is not an error because the programmer has to fix this!
func (s *OptSpec) failIfDefined(name rune) {
	Logger.Printf("checking option %c", name)
	if !validName(name) {
		panic(fmt.Sprintf("Invalid option name '%c'", name))
	}
	if _, ok := s.bindings[name]; ok {
		panic(fmt.Sprintf("Option '%c' is already defined", name))
	}
}

// Flag - define a flag option.
// It returns a `*bool` pointing to the variable holding the result, false
// until the option is seen during Parse.
// Additionally, the result will be available through the `Option` accessor.
func (s *OptSpec) Flag(name rune) *bool {
	var b bool
	s.FlagVar(&b, name)
	return &b
}

// FlagVar - define a flag option.
// The result will be available through the variable marked by the given pointer.
func (s *OptSpec) FlagVar(p *bool, name rune) {
	s.failIfDefined(name)
	*p = false
	s.bindings[name] = binding.New(name, binding.FlagKind, p)
}

// Valued - define an option that requires an argument.
// It returns a `*string` pointing to the variable holding the result, the
// empty string until the option is seen during Parse.
// Additionally, the result will be available through the `Option` accessor.
func (s *OptSpec) Valued(name rune) *string {
	var v string
	s.ValuedVar(&v, name)
	return &v
}

// ValuedVar - define an option that requires an argument.
// The result will be available through the variable marked by the given pointer.
func (s *OptSpec) ValuedVar(p *string, name rune) {
	s.failIfDefined(name)
	*p = ""
	s.bindings[name] = binding.New(name, binding.ValuedKind, p)
}

// SetMinArgs - Sets the minimum number of positional arguments that must
// remain after the option scan.
func (s *OptSpec) SetMinArgs(n int) *OptSpec {
	if n < 0 {
		panic(fmt.Sprintf("Invalid minimum argument count %d", n))
	}
	s.minArgs = n
	return s
}

// SetMaxArgs - Sets the maximum number of positional arguments allowed
// after the option scan. Without this call there is no maximum.
func (s *OptSpec) SetMaxArgs(n int) *OptSpec {
	if n < 0 || n < s.minArgs {
		panic(fmt.Sprintf("Invalid maximum argument count %d", n))
	}
	s.maxArgs = n
	return s
}

// SetUsage - Sets the usage text appended as a "Usage: ..." line to the
// diagnostics of any parse failure.
func (s *OptSpec) SetUsage(usage string) *OptSpec {
	s.usage = usage
	return s
}

// Called - Indicates if the option was given in the parsed arguments.
func (s *OptSpec) Called(name rune) bool {
	if b, ok := s.bindings[name]; ok {
		return b.Called
	}
	return false
}

// Option - Returns the value of the given option: bool for flags, string
// for valued options, nil for options that were never declared.
//
// Type assertions are required in cases where the compiler can't determine
// the type by context. For example: `opt.Option('a').(bool)`.
func (s *OptSpec) Option(name rune) interface{} {
	if b, ok := s.bindings[name]; ok {
		return b.Value()
	}
	return nil
}
