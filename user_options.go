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

// ModifyFn - Function signature for functions that modify an option.
type ModifyFn func(parent *Parser, spec *option.Spec) error

// ModifyFn has the parent because short names are global: `-o` can only
// refer to one option regardless of its kind.

// Description - Add a description to an option for use in automated help.
func (p *Parser) Description(msg string) ModifyFn {
	return func(parent *Parser, spec *option.Spec) error {
		spec.SetDescription(msg)
		return nil
	}
}

// ShortName - Sets the single character alias, used as `-s`.
// An option has at most one short name. Setting the same one again is a no-op.
func (p *Parser) ShortName(short string) ModifyFn {
	return func(parent *Parser, spec *option.Spec) error {
		if idx, ok := parent.shortNames[short]; ok && parent.specs[idx] != spec {
			return errors.Wrapf(ErrShortNameTaken, text.ErrorShortNameTaken, short, parent.specs[idx].Name)
		}
		if err := spec.SetShortName(short); err != nil {
			return err
		}
		parent.shortNames[short] = parent.index[spec.Name]
		return nil
	}
}

// DefaultValue - Value returned when the option is not given.
// An option with a default value is not required.
//
// Only valid for options.
func (p *Parser) DefaultValue(value string) ModifyFn {
	return func(parent *Parser, spec *option.Spec) error {
		return spec.SetDefault(value)
	}
}

// EnvVar - Will read an environment variable at parse time if set.
// Precedence higher to lower: CLI option, environment variable, option default.
//
// A value read from the environment satisfies a required option but the
// option is not reported as Given.
//
// Only valid for options.
func (p *Parser) EnvVar(name string) ModifyFn {
	return func(parent *Parser, spec *option.Spec) error {
		return spec.SetEnvVar(name)
	}
}
