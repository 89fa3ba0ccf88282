// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorNameConflict - Error message for a name registered under two kinds.
var ErrorNameConflict = "trying to redefine %s as %s. Name: '%s'"

// ErrorEmptyName - Error message for a registration without a name.
var ErrorEmptyName = "option name can't be empty"

// ErrorNameWithEquals - Error message for a name that could never be matched.
var ErrorNameWithEquals = "option name '%s' can't contain '='"

// ErrorShortNameRedefined - Error message when changing an already set short name.
var ErrorShortNameRedefined = "option '%s' already has short name '%s', can't redefine it as '%s'"

// ErrorShortNameTaken - Error message when a short name belongs to a different option.
var ErrorShortNameTaken = "short name '%s' is already defined in option '%s'"

// ErrorInvalidShortName - Error message for short names that are not a single character.
var ErrorInvalidShortName = "invalid short name '%s' for option '%s', it must be a single character"

// ErrorInvalidModifier - Error message for a modifier that doesn't apply to the option kind.
var ErrorInvalidModifier = "%s can't be set on %s '%s'"

// ErrorInvalidHandle - Error message for a handle that doesn't belong to the parser.
var ErrorInvalidHandle = "handle doesn't refer to a registered option"

// ErrorUnknownArgument - Error message for an argument that doesn't match any option.
var ErrorUnknownArgument = "argument '%s' could not be parsed"

// ErrorDuplicateValue - Error message for an option given more than once.
var ErrorDuplicateValue = "option '%s' given more than once"

// ErrorMissingRequiredOption - Error message for a required option that was not given.
var ErrorMissingRequiredOption = "missing required value for option '%s'"

// ErrorMissingArgument - Error message for an option that is missing its argument.
var ErrorMissingArgument = "missing argument for option '%s'"

// ErrorUnexpectedValue - Error message for a toggle that was given a value.
var ErrorUnexpectedValue = "toggle '%s' doesn't take a value, got '%s'"

// ErrorNotFound - Error message for an option that has no value available.
var ErrorNotFound = "option '%s' was not given and has no default"

// ErrorWrongKind - Error message for an accessor used on the wrong option kind.
var ErrorWrongKind = "'%s' is a %s, not a %s"

// ErrorIndexOutOfRange - Error message for an index outside of the value list.
var ErrorIndexOutOfRange = "index %d out of range for '%s' with %d values"

// ErrorConvert - Error message for a value that can't be converted to the requested type.
var ErrorConvert = "can't convert '%s' value '%s' to %s"

// HelpSynopsisHeader - Synopsis header for help output.
var HelpSynopsisHeader = "SYNOPSIS"

// HelpRequiredOptionsHeader - Required options header for help output.
var HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"

// HelpOptionsHeader - Options header for help output.
var HelpOptionsHeader = "OPTIONS"

// HelpDefaultLabel - Label used to show default values.
var HelpDefaultLabel = "default"

// HelpEnvLabel - Label used to show the environment variable of an option.
var HelpEnvLabel = "env"
