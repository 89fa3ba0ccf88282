// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - internal help output generation.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nitro-cxx/brokenoptions/internal/option"
	"github.com/nitro-cxx/brokenoptions/text"
)

// Padding - Indentation of help entries.
var Padding = 4

// Width - Synopsis lines are wrapped at this width.
var Width = 80

func aliases(opt *option.Spec) string {
	out := opt.LongForm()
	if opt.ShortName != "" {
		out += "|" + opt.ShortForm()
	}
	return out
}

func split(options []*option.Spec) ([]*option.Spec, []*option.Spec) {
	requiredOptions := []*option.Spec{}
	normalOptions := []*option.Spec{}
	for _, opt := range options {
		if opt.IsRequired() {
			requiredOptions = append(requiredOptions, opt)
		} else {
			normalOptions = append(normalOptions, opt)
		}
	}
	option.Sort(requiredOptions)
	option.Sort(normalOptions)
	return requiredOptions, normalOptions
}

func optSynopsis(opt *option.Spec) string {
	switch opt.Kind {
	case option.ToggleKind:
		return fmt.Sprintf("[%s]", aliases(opt))
	case option.MultiOptionKind:
		return fmt.Sprintf("[%s <value>]...", aliases(opt))
	default:
		if opt.IsRequired() {
			return fmt.Sprintf("%s <value>", aliases(opt))
		}
		return fmt.Sprintf("[%s <value>]", aliases(opt))
	}
}

// Synopsis - Return a default synopsis with required options first.
func Synopsis(scriptName string, options []*option.Spec) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	requiredOptions, normalOptions := split(options)
	var out string
	line := scriptName
	for _, opt := range append(append(requiredOptions, normalOptions...), nil) {
		syn := "[<args>]"
		if opt != nil {
			syn = optSynopsis(opt)
		}
		if len(line)+len(syn)+1 > Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += " " + syn
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

func entry(opt *option.Spec) string {
	switch opt.Kind {
	case option.ToggleKind:
		return aliases(opt)
	case option.MultiOptionKind:
		return aliases(opt) + " <value>..."
	default:
		return aliases(opt) + " <value>"
	}
}

// OptionList - Return a formatted list of options and their descriptions.
func OptionList(options []*option.Spec) string {
	factor := 0
	for _, opt := range options {
		if l := len(entry(opt)); l > factor {
			factor = l
		}
	}
	factor += Padding
	indent := strings.Repeat(" ", Padding)

	helpString := func(opt *option.Spec) string {
		txt := indent + pad(entry(opt), factor)
		extra := []string{}
		if v, ok := opt.Default(); ok {
			extra = append(extra, fmt.Sprintf("%s: %q", text.HelpDefaultLabel, v))
		}
		if opt.EnvVar != "" {
			extra = append(extra, fmt.Sprintf("%s: %s", text.HelpEnvLabel, opt.EnvVar))
		}
		description := strings.ReplaceAll(opt.Description, "\n", "\n"+indent+strings.Repeat(" ", factor))
		if len(extra) > 0 {
			if description != "" {
				description += " "
			}
			description += "(" + strings.Join(extra, ", ") + ")"
		}
		return strings.TrimRight(txt+description, " ") + "\n\n"
	}

	requiredOptions, normalOptions := split(options)
	out := ""
	if len(requiredOptions) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpRequiredOptionsHeader)
		for _, opt := range requiredOptions {
			out += helpString(opt)
		}
	}
	if len(normalOptions) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
		for _, opt := range normalOptions {
			out += helpString(opt)
		}
	}
	return out
}
