// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package brokenoptions

import (
	"io"
	"log"

	"github.com/nitro-cxx/brokenoptions/internal/option"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Kind - Indicates the kind of option a name was registered as.
type Kind = option.Kind

// Option kinds.
const (
	OptionKind      = option.OptionKind
	MultiOptionKind = option.MultiOptionKind
	ToggleKind      = option.ToggleKind
)

// Parser - main object. Holds the option definitions.
//
// A Parser is meant to be used by a single goroutine. It can be reused, every
// call to Parse starts from a clean state.
type Parser struct {
	specs         []*option.Spec
	index         map[string]int // map[name]arena index
	shortNames    map[string]int // map[short name]arena index
	ignoreUnknown bool
}

// Handle - Refers to an option definition of the Parser that returned it.
type Handle struct {
	owner *Parser
	idx   int
}

// New returns an empty Parser.
// This is the starting point when using brokenoptions.
// For example:
//
//	p := brokenoptions.New()
func New() *Parser {
	return &Parser{
		index:      map[string]int{},
		shortNames: map[string]int{},
	}
}

// Option - Defines a named option that takes exactly one value.
// The option is required unless a default value is set.
//
// Defining an option that already exists returns the same Handle and applies
// fns to the existing definition.
func (p *Parser) Option(name string, fns ...ModifyFn) (Handle, error) {
	return p.register(name, option.OptionKind, fns)
}

// MultiOption - Defines a named option that can be given any number of times.
// Values are kept in the order they were given, duplicates included.
func (p *Parser) MultiOption(name string, fns ...ModifyFn) (Handle, error) {
	return p.register(name, option.MultiOptionKind, fns)
}

// Toggle - Defines a named flag that takes no value.
func (p *Parser) Toggle(name string, fns ...ModifyFn) (Handle, error) {
	return p.register(name, option.ToggleKind, fns)
}

// Configure - Applies fns to an existing definition.
func (p *Parser) Configure(h Handle, fns ...ModifyFn) error {
	spec, err := p.spec(h)
	if err != nil {
		return err
	}
	for _, fn := range fns {
		if err := fn(p, spec); err != nil {
			return err
		}
	}
	return nil
}

// IgnoreUnknown - When set, unknown options are not an error.
// An unknown option and the argument that follows it are added to the positionals.
func (p *Parser) IgnoreUnknown(ignore bool) *Parser {
	p.ignoreUnknown = ignore
	return p
}

// Name - Returns the name of the option h refers to.
func (h Handle) Name() string {
	if h.owner == nil || h.idx < 0 || h.idx >= len(h.owner.specs) {
		return ""
	}
	return h.owner.specs[h.idx].Name
}

// Kind - Returns the kind of the option h refers to.
func (h Handle) Kind() Kind {
	if h.owner == nil || h.idx < 0 || h.idx >= len(h.owner.specs) {
		return option.OptionKind
	}
	return h.owner.specs[h.idx].Kind
}
