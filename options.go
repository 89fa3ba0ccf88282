// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package brokenoptions

import (
	"github.com/pkg/errors"

	"github.com/nitro-cxx/brokenoptions/internal/option"
	"github.com/nitro-cxx/brokenoptions/text"
)

// Options - Result of a successful Parse.
// It is never modified after Parse returns and is safe for concurrent reads.
type Options struct {
	specs       map[string]*option.Spec
	positionals []string
}

func newOptions(specs []*option.Spec, positionals []string) *Options {
	o := &Options{
		specs:       make(map[string]*option.Spec, len(specs)),
		positionals: make([]string, len(positionals)),
	}
	for _, s := range specs {
		o.specs[s.Name] = s.Copy()
	}
	copy(o.positionals, positionals)
	return o
}

func (o *Options) lookup(name string, kind option.Kind) (*option.Spec, error) {
	s, ok := o.specs[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, text.ErrorNotFound, name)
	}
	if s.Kind != kind {
		return nil, errors.Wrapf(ErrWrongKind, text.ErrorWrongKind, name, s.Kind, kind)
	}
	return s, nil
}

// Get - Returns the value of an option, or its default when it wasn't given.
func (o *Options) Get(name string) (string, error) {
	s, err := o.lookup(name, option.OptionKind)
	if err != nil {
		return "", err
	}
	v, ok := s.Value()
	if !ok {
		return "", errors.Wrapf(ErrNotFound, text.ErrorNotFound, name)
	}
	return v, nil
}

// GetAt - Returns the i-th value of a multi option.
func (o *Options) GetAt(name string, i int) (string, error) {
	s, err := o.lookup(name, option.MultiOptionKind)
	if err != nil {
		return "", err
	}
	values := s.Values()
	if i < 0 || i >= len(values) {
		return "", errors.Wrapf(ErrIndexOutOfRange, text.ErrorIndexOutOfRange, i, name, len(values))
	}
	return values[i], nil
}

// Values - Returns all the values of a multi option in the order they were given.
func (o *Options) Values(name string) ([]string, error) {
	s, err := o.lookup(name, option.MultiOptionKind)
	if err != nil {
		return nil, err
	}
	return s.Values(), nil
}

// Count - Number of times a multi option was given.
func (o *Options) Count(name string) (int, error) {
	s, err := o.lookup(name, option.MultiOptionKind)
	if err != nil {
		return 0, err
	}
	return len(s.Values()), nil
}

// Given - Indicates if the option was passed on the command line.
// Defaults and environment variables don't count.
func (o *Options) Given(name string) bool {
	s, ok := o.specs[name]
	return ok && s.Called
}

// CalledAs - Returns the alias used on the command line, `--name` or `-n`.
// Returns an empty string when the option wasn't given.
func (o *Options) CalledAs(name string) string {
	s, ok := o.specs[name]
	if !ok || !s.Called {
		return ""
	}
	return s.UsedAlias
}

// Positional - Returns a positional argument.
// Negative indexes count from the end: -1 is the last one.
func (o *Options) Positional(i int) (string, error) {
	idx := i
	if idx < 0 {
		idx += len(o.positionals)
	}
	if idx < 0 || idx >= len(o.positionals) {
		return "", errors.Wrapf(ErrIndexOutOfRange, text.ErrorIndexOutOfRange, i, "positionals", len(o.positionals))
	}
	return o.positionals[idx], nil
}

// Positionals - Returns a copy of the positional arguments.
func (o *Options) Positionals() []string {
	out := make([]string, len(o.positionals))
	copy(out, o.positionals)
	return out
}
