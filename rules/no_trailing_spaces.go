// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"strings"

	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/token"
)

func init() {
	registry.RegisterLineRule(registry.Descriptor{
		Name:           "no-trailing-spaces",
		Topic:          "trailing-spaces",
		Description:    "Checks that there are no trailing spaces on any lines.",
		DefaultEnabled: true,
	}, func() lintrule.LineRule {
		r := &noTrailingSpacesRule{}
		r.init("no-trailing-spaces", "trailing-spaces")
		return r
	})
}

type noTrailingSpacesRule struct{ reporter }

// HandleLine trims trailing whitespace from the right and, if anything
// was trimmed, reports the trimmed suffix as the violation token. Lines
// already exclude their newline, so this finds real trailing
// whitespace only.
func (r *noTrailingSpacesRule) HandleLine(line string) {
	trimmed := strings.TrimRightFunc(line, isSpaceRune)
	if len(trimmed) == len(line) {
		return
	}
	r.report(lintrule.Violation{
		Token:  token.FromString(token.Space, line[len(trimmed):]),
		Reason: "Remove trailing spaces.",
	})
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
