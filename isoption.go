// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package brokenoptions

import (
	"strings"
)

type optionPair struct {
	// Option as written on the command line, leading dashes included.
	Option string
	// Inline argument given with '='. At most one element.
	Args []string
}

/*
isOption - Check if the given string is an option (starts with -).
Return the option key, with its leading dashes, and the inline argument if
the string contained one.

The key is everything before the first '=', the argument everything after it,
so `--opt=a=b` has the argument `a=b` and `--opt=` has an empty argument.

The option parsing terminator `--` is not identified as an option.
It is the caller's responsibility.
*/
func isOption(s string) (optionPair, bool) {
	if s == "--" || !strings.HasPrefix(s, "-") {
		return optionPair{}, false
	}
	key, arg, found := strings.Cut(s, "=")
	if !found {
		return optionPair{Option: key}, true
	}
	return optionPair{Option: key, Args: []string{arg}}, true
}
