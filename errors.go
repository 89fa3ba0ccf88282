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
)

// Configuration errors, returned while defining options.
var (
	// ErrInvalidName - Empty option name or a name containing '='.
	ErrInvalidName = errors.New("invalid name")
	// ErrNameConflict - Name already registered as a different kind.
	ErrNameConflict = errors.New("name conflict")
	// ErrShortNameRedefined - Option already has a different short name.
	ErrShortNameRedefined = option.ErrShortNameRedefined
	// ErrShortNameTaken - Short name already used by a different option.
	ErrShortNameTaken = errors.New("short name taken")
	// ErrInvalidShortName - Short name is not a single character.
	ErrInvalidShortName = option.ErrInvalidShortName
	// ErrInvalidModifier - Modifier doesn't apply to the option kind.
	ErrInvalidModifier = option.ErrInvalidModifier
	// ErrInvalidHandle - Handle from a different parser.
	ErrInvalidHandle = errors.New("invalid handle")
)

// Parse errors, returned by Parse.
var (
	// ErrUnknownArgument - Argument doesn't match any option.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrDuplicateValue - Option given more than once.
	ErrDuplicateValue = option.ErrDuplicateValue
	// ErrMissingValue - Required option not given.
	ErrMissingValue = option.ErrMissingValue
	// ErrMissingArgument - Option given as the last argument without a value.
	ErrMissingArgument = errors.New("missing argument")
	// ErrUnexpectedValue - Toggle given with a value.
	ErrUnexpectedValue = option.ErrUnexpectedValue
)

// Access errors, returned by Options accessors.
var (
	// ErrNotFound - Unknown option or option without value and default.
	ErrNotFound = errors.New("not found")
	// ErrWrongKind - Accessor used on a different option kind.
	ErrWrongKind = errors.New("wrong kind")
	// ErrIndexOutOfRange - Index outside of the values or positionals.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrConversion - Value can't be converted to the requested type.
	ErrConversion = errors.New("conversion failed")
)

// IsConfigError - Reports whether err was returned while defining options.
func IsConfigError(err error) bool {
	return isAny(err, ErrInvalidName, ErrNameConflict, ErrShortNameRedefined, ErrShortNameTaken,
		ErrInvalidShortName, ErrInvalidModifier, ErrInvalidHandle)
}

// IsParseError - Reports whether err was returned by Parse.
func IsParseError(err error) bool {
	return isAny(err, ErrUnknownArgument, ErrDuplicateValue, ErrMissingValue, ErrMissingArgument, ErrUnexpectedValue)
}

// IsAccessError - Reports whether err was returned while reading Options.
func IsAccessError(err error) bool {
	return isAny(err, ErrNotFound, ErrWrongKind, ErrIndexOutOfRange, ErrConversion)
}

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
