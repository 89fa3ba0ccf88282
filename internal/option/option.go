// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option specification and methods.
package option

import (
	"io"
	"log"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/nitro-cxx/brokenoptions/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Configuration errors raised while defining options.
var (
	ErrShortNameRedefined = errors.New("short name redefined")
	ErrInvalidShortName   = errors.New("invalid short name")
	ErrInvalidModifier    = errors.New("invalid modifier")
)

// Parse errors raised while saving values or validating.
var (
	ErrDuplicateValue  = errors.New("duplicate value")
	ErrMissingValue    = errors.New("missing value")
	ErrUnexpectedValue = errors.New("unexpected value")
)

// Kind - Indicates the kind of option.
type Kind int

// Option kinds, in matching order.
const (
	OptionKind Kind = iota
	MultiOptionKind
	ToggleKind
)

func (k Kind) String() string {
	switch k {
	case OptionKind:
		return "option"
	case MultiOptionKind:
		return "multi_option"
	case ToggleKind:
		return "toggle"
	}
	return "unknown"
}

// Spec - Option specification and the values recorded for it during a parse.
type Spec struct {
	Name        string
	ShortName   string
	Description string
	Kind        Kind
	EnvVar      string // Env Var used as a fallback value, options only

	Called    bool   // Indicates if the option was passed on the command line
	UsedAlias string // Alias used when the option was called

	defaultValue string
	hasDefault   bool

	envValue string
	hasEnv   bool

	values []string
}

// New - Returns a new option specification.
func New(name string, kind Kind) *Spec {
	return &Spec{Name: name, Kind: kind}
}

// SetShortName - Sets the single character alias.
// Setting the same short name again is a no-op.
func (s *Spec) SetShortName(short string) error {
	if utf8.RuneCountInString(short) != 1 || short == "-" || short == "=" {
		return errors.Wrapf(ErrInvalidShortName, text.ErrorInvalidShortName, short, s.Name)
	}
	if s.ShortName == short {
		return nil
	}
	if s.ShortName != "" {
		return errors.Wrapf(ErrShortNameRedefined, text.ErrorShortNameRedefined, s.Name, s.ShortName, short)
	}
	s.ShortName = short
	return nil
}

// SetDescription - Updates the Description.
func (s *Spec) SetDescription(d string) *Spec {
	s.Description = d
	return s
}

// SetDefault - Sets the value used when the option is not given.
func (s *Spec) SetDefault(v string) error {
	if s.Kind != OptionKind {
		return errors.Wrapf(ErrInvalidModifier, text.ErrorInvalidModifier, "default value", s.Kind, s.Name)
	}
	s.defaultValue = v
	s.hasDefault = true
	return nil
}

// SetEnvVar - Sets the name of the Env var read as a fallback value.
func (s *Spec) SetEnvVar(name string) error {
	if s.Kind != OptionKind {
		return errors.Wrapf(ErrInvalidModifier, text.ErrorInvalidModifier, "env var", s.Kind, s.Name)
	}
	s.EnvVar = name
	return nil
}

// Default - Returns the default value and whether one was set.
func (s *Spec) Default() (string, bool) {
	return s.defaultValue, s.hasDefault
}

// IsRequired - An option without a default has to get a value.
func (s *Spec) IsRequired() bool {
	return s.Kind == OptionKind && !s.hasDefault
}

// LongForm - `--name`.
func (s *Spec) LongForm() string {
	return "--" + s.Name
}

// ShortForm - `-n` or an empty string when no short name is set.
func (s *Spec) ShortForm() string {
	if s.ShortName == "" {
		return ""
	}
	return "-" + s.ShortName
}

// Matches - Exact match of the key against the long and short forms.
func (s *Spec) Matches(key string) bool {
	if key == s.LongForm() {
		return true
	}
	return s.ShortName != "" && key == s.ShortForm()
}

// TakesValue - Toggles don't take values.
func (s *Spec) TakesValue() bool {
	return s.Kind != ToggleKind
}

// Reset - Clears the parse state and reloads the env var fallback.
func (s *Spec) Reset() {
	s.Called = false
	s.UsedAlias = ""
	s.values = nil
	s.envValue, s.hasEnv = "", false
	if s.EnvVar != "" {
		if v := os.Getenv(s.EnvVar); v != "" {
			s.envValue, s.hasEnv = v, true
		}
	}
}

// Save - Records the option as called with the given alias.
// Options and multi options take exactly one value, toggles none.
func (s *Spec) Save(usedAlias string, value ...string) error {
	Logger.Printf("name: %s, kind: %s, alias: %s, value: %v\n", s.Name, s.Kind, usedAlias, value)
	switch s.Kind {
	case ToggleKind:
		if len(value) > 0 {
			return errors.Wrapf(ErrUnexpectedValue, text.ErrorUnexpectedValue, usedAlias, value[0])
		}
	case OptionKind:
		if s.Called {
			return errors.Wrapf(ErrDuplicateValue, text.ErrorDuplicateValue, s.Name)
		}
		s.values = append(s.values, value...)
	default: // MultiOptionKind
		s.values = append(s.values, value...)
	}
	s.Called = true
	s.UsedAlias = usedAlias
	return nil
}

// Check - Returns error if a required option didn't get a value.
func (s *Spec) Check() error {
	if s.IsRequired() && !s.Called && !s.hasEnv {
		return errors.Wrapf(ErrMissingValue, text.ErrorMissingRequiredOption, s.Name)
	}
	return nil
}

// Value - Single value lookup. Precedence: command line, env var, default.
func (s *Spec) Value() (string, bool) {
	if s.Called && len(s.values) > 0 {
		return s.values[0], true
	}
	if s.hasEnv {
		return s.envValue, true
	}
	if s.hasDefault {
		return s.defaultValue, true
	}
	return "", false
}

// Values - Copy of the recorded values in order of appearance.
func (s *Spec) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Copy - Returns a copy that doesn't share state with s.
func (s *Spec) Copy() *Spec {
	c := *s
	if s.values != nil {
		c.values = s.Values()
	}
	return &c
}

// Sort - Sort by name.
func Sort(list []*Spec) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}
