// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package brokenoptions - Small option parser for flat command lines.

It operates on any given slice of strings, usually os.Args[1:], and returns
an immutable Options result with the option values and the positional
arguments.

# Usage

The following is a basic example:

	p := brokenoptions.New()

	// Options take exactly one value and are required unless they have a default.
	p.Option("port", p.ShortName("p"), p.DefaultValue("8080"))

	// Multi options can be given many times.
	p.MultiOption("include", p.ShortName("I"))

	// Toggles take no value.
	p.Toggle("verbose", p.ShortName("v"))

	opts, err := p.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, p.Help("myprog"))
		os.Exit(1)
	}

	port, err := brokenoptions.As[int](opts, "port")
	if opts.Given("verbose") {
		// ...
	}
	last, err := opts.Positional(-1)

# Features

* Long options `--name` and short options `-n`.

* Values given as `--name value` or `--name=value`.

* `--` stops option parsing, everything after it is positional.

* Unknown options can be passed through to the positionals with IgnoreUnknown.

* Environment variable fallbacks with EnvVar.

# Errors

Every failure is returned as an error wrapping one of the Err sentinels; use
errors.Is or the IsConfigError, IsParseError and IsAccessError helpers.
*/
package brokenoptions
