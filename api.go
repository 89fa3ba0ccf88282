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

	"github.com/pkg/errors"

	"github.com/nitro-cxx/brokenoptions/internal/option"
	"github.com/nitro-cxx/brokenoptions/internal/sliceiterator"
	"github.com/nitro-cxx/brokenoptions/text"
)

// matchOrder - Options are tried before multi options and those before toggles.
var matchOrder = []option.Kind{option.OptionKind, option.MultiOptionKind, option.ToggleKind}

// register - Single insertion point for definitions.
// Names are unique across all kinds.
func (p *Parser) register(name string, kind option.Kind, fns []ModifyFn) (Handle, error) {
	if name == "" {
		return Handle{}, errors.Wrap(ErrInvalidName, text.ErrorEmptyName)
	}
	if strings.Contains(name, "=") {
		return Handle{}, errors.Wrapf(ErrInvalidName, text.ErrorNameWithEquals, name)
	}

	idx, ok := p.index[name]
	if ok {
		if existing := p.specs[idx]; existing.Kind != kind {
			return Handle{}, errors.Wrapf(ErrNameConflict, text.ErrorNameConflict, existing.Kind, kind, name)
		}
		h := Handle{owner: p, idx: idx}
		if err := p.Configure(h, fns...); err != nil {
			return Handle{}, err
		}
		return h, nil
	}

	p.specs = append(p.specs, option.New(name, kind))
	idx = len(p.specs) - 1
	p.index[name] = idx
	h := Handle{owner: p, idx: idx}
	if err := p.Configure(h, fns...); err != nil {
		p.unregisterLast()
		return Handle{}, err
	}
	Logger.Printf("registered %s '%s'", kind, name)
	return h, nil
}

// unregisterLast - Drops a definition that failed its initial configuration.
func (p *Parser) unregisterLast() {
	idx := len(p.specs) - 1
	spec := p.specs[idx]
	delete(p.index, spec.Name)
	if spec.ShortName != "" && p.shortNames[spec.ShortName] == idx {
		delete(p.shortNames, spec.ShortName)
	}
	p.specs = p.specs[:idx]
}

func (p *Parser) spec(h Handle) (*option.Spec, error) {
	if h.owner != p || h.idx < 0 || h.idx >= len(p.specs) {
		return nil, errors.Wrap(ErrInvalidHandle, text.ErrorInvalidHandle)
	}
	return p.specs[h.idx], nil
}

// byKind - Definitions of the given kind in definition order.
func (p *Parser) byKind(kind option.Kind) []*option.Spec {
	list := []*option.Spec{}
	for _, s := range p.specs {
		if s.Kind == kind {
			list = append(list, s)
		}
	}
	return list
}

// match - First definition whose long or short form equals key.
func (p *Parser) match(key string) *option.Spec {
	for _, kind := range matchOrder {
		for _, s := range p.byKind(kind) {
			if s.Matches(key) {
				return s
			}
		}
	}
	return nil
}

// Parse - Call the parse method when done defining options.
// args is expected to be os.Args[1:].
//
// Every call resets the values recorded by a previous call. The returned
// Options don't share state with the Parser.
func (p *Parser) Parse(args []string) (*Options, error) {
	for _, s := range p.specs {
		s.Reset()
	}

	positionals := []string{}
	onlyPositionals := false
	iterator := sliceiterator.New(args)

	for iterator.Next() {
		arg := iterator.Value()
		Logger.Printf("arg %d: '%s'", iterator.Index(), arg)

		if onlyPositionals {
			positionals = append(positionals, arg)
			continue
		}

		// handle terminator
		if arg == "--" {
			onlyPositionals = true
			continue
		}

		pair, is := isOption(arg)
		if !is {
			positionals = append(positionals, arg)
			continue
		}

		spec := p.match(pair.Option)
		if spec == nil {
			if !p.ignoreUnknown {
				return nil, errors.Wrapf(ErrUnknownArgument, text.ErrorUnknownArgument, arg)
			}
			// An unknown option is assumed to take one argument.
			positionals = append(positionals, arg)
			if next, ok := iterator.Consume(); ok {
				positionals = append(positionals, next)
			}
			continue
		}

		var err error
		switch {
		case !spec.TakesValue():
			err = spec.Save(pair.Option, pair.Args...)
		case len(pair.Args) > 0:
			err = spec.Save(pair.Option, pair.Args[0])
		default:
			next, ok := iterator.Consume()
			if !ok {
				return nil, errors.Wrapf(ErrMissingArgument, text.ErrorMissingArgument, pair.Option)
			}
			err = spec.Save(pair.Option, next)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, kind := range matchOrder {
		for _, s := range p.byKind(kind) {
			if err := s.Check(); err != nil {
				return nil, err
			}
		}
	}

	return newOptions(p.specs, positionals), nil
}
