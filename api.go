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
	"strings"

	"github.com/DavidGamba/go-optspec/internal/binding"
	"github.com/DavidGamba/go-optspec/internal/sliceiterator"
	"github.com/DavidGamba/go-optspec/text"
)

// scanState - state of the option scan.
type scanState int

const (
	scanning scanState = iota // consuming option tokens
	stopped                   // saw "--", no further option recognition
	done                      // only the positional count validation remains
)

// Parse - runs the scan over args, populates the declared bindings and
// returns the remaining positional arguments in their original order.
//
// Option recognition ends at "--" (consumed) or at the first token that is
// not an option; everything from there on is positional. Tokens may bundle
// several flags ("-ab") and a valued option takes the rest of its token or
// the following token, verbatim, as its argument.
//
// On failure the diagnostic and the optional usage line are written to
// Writer and the returned error wraps ErrorUsage. Bindings are only
// guaranteed to hold their defaults on that path.
func (s *OptSpec) Parse(args []string) ([]string, error) {
	if s.compileErr != nil {
		return nil, s.compileErr
	}
	Logger.Printf("Parse args: %v(%d)\n", args, len(args))
	for _, b := range s.bindings {
		b.Reset()
	}

	remaining := []string{}
	state := scanning
	iterator := sliceiterator.New(args)
ARGS_LOOP:
	for iterator.Next() {
		token := iterator.Value()
		Logger.Printf("Parse input token: %s\n", token)
		switch {
		case state == stopped:
			remaining = append(remaining, token)
		case token == "--":
			state = stopped
		case len(token) > 1 && strings.HasPrefix(token, "-"):
			err := s.scanToken(iterator)
			if err != nil {
				return nil, s.failUsage(err)
			}
		default:
			// First non option token, "" and the lonesome dash included.
			state = done
			remaining = append(remaining, iterator.Remaining()...)
			break ARGS_LOOP
		}
	}
	state = done
	Logger.Printf("Parse state: %d, remaining: %v(%d)\n", state, remaining, len(remaining))

	if len(remaining) < s.minArgs {
		return nil, s.failUsage(fmt.Errorf(text.ErrorMinArgs+"%w", s.minArgs, ErrorUsage))
	}
	if s.maxArgs >= 0 && len(remaining) > s.maxArgs {
		return nil, s.failUsage(fmt.Errorf(text.ErrorMaxArgs+"%w", s.maxArgs, ErrorUsage))
	}
	return remaining, nil
}

// scanToken - consumes one option token, bundled flags included. When a
// valued option is found the rest of the token, or failing that the next
// token from the iterator, is captured verbatim as its argument.
func (s *OptSpec) scanToken(iterator *sliceiterator.Iterator) error {
	runes := []rune(iterator.Value()[1:])
	for i := 0; i < len(runes); i++ {
		name := runes[i]
		b, ok := s.bindings[name]
		if !ok {
			return fmt.Errorf(text.ErrorUnknownOption+"%w", name, ErrorUsage)
		}
		b.SetCalled()
		if b.Kind == binding.FlagKind {
			b.Save()
			continue
		}
		if i+1 < len(runes) {
			b.Save(string(runes[i+1:]))
			return nil
		}
		if !iterator.Next() {
			return fmt.Errorf(text.ErrorMissingArgument+"%w", name, ErrorUsage)
		}
		b.Save(iterator.Value())
		return nil
	}
	return nil
}

// failUsage - writes the diagnostic to Writer, followed by the usage line
// when one was set.
func (s *OptSpec) failUsage(err error) error {
	fmt.Fprintf(Writer, "%s\n", err)
	if s.usage != "" {
		fmt.Fprintf(Writer, text.UsageLine+"\n", s.usage)
	}
	return err
}
