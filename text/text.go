// This file is part of go-optspec.
//
// Copyright (C) 2023-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - user facing strings.
package text

// ErrorUnknownOption holds the text for the unknown option error.
// It has a rune placeholder '%c' for the option character.
var ErrorUnknownOption = "Unknown option '-%c'"

// ErrorMissingArgument holds the text for the missing argument error.
// It has a rune placeholder '%c' for the option character.
var ErrorMissingArgument = "Option '-%c' requires an argument"

// ErrorMinArgs holds the text for the insufficient positional arguments error.
// It has an int placeholder '%d' for the minimum count.
var ErrorMinArgs = "Insufficient arguments; minimum %d"

// ErrorMaxArgs holds the text for the excess positional arguments error.
// It has an int placeholder '%d' for the maximum count.
var ErrorMaxArgs = "Too many arguments; maximum %d"

// ErrorInvalidOptstring holds the text for a malformed option specification.
// It has a string placeholder '%s' for the optstring.
var ErrorInvalidOptstring = "Invalid option specification '%s'"

// ErrorDigitWithArgument holds the text for a digit option marked as value
// taking. Digit options are always flags.
// It has a rune placeholder '%c' for the option character.
var ErrorDigitWithArgument = "Option '-%c' can't take an argument"

// ErrorRedeclaredOption holds the text for an option that appears in the
// optstring both with and without the ':' marker.
// It has a rune placeholder '%c' for the option character.
var ErrorRedeclaredOption = "Option '-%c' declared as both flag and valued"

// UsageLine holds the text of the usage line appended to diagnostics.
// It has a string placeholder '%s' for the usage text.
var UsageLine = "Usage: %s"
