// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package brokenoptions

import (
	"github.com/nitro-cxx/brokenoptions/internal/help"
)

// Help - Default help string built from the option definitions.
// Printing it, and choosing an exit code, is left to the caller.
func (p *Parser) Help(programName string) string {
	out := help.Synopsis(programName, p.specs)
	if list := help.OptionList(p.specs); list != "" {
		out += "\n" + list
	}
	return out
}
