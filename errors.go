// This file is part of go-optspec.
//
// Copyright (C) 2023-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"errors"
)

// ErrorUsage - Indicates an invalid invocation: a malformed option
// specification, an unknown option, a value option missing its argument or
// a positional argument count outside the declared bounds.
// Every error returned by Compile and Parse wraps it so callers can
// classify with `errors.Is(err, optspec.ErrorUsage)`.
var ErrorUsage = errors.New("")

// ExitCodeUsage - Process exit status reserved for usage errors, so "bad
// invocation" stays distinguishable from other failure categories.
const ExitCodeUsage = 2
