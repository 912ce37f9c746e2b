// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/token"
)

func init() {
	registry.RegisterTokenRule(registry.Descriptor{
		Name:           "macro-string-concatenation",
		Topic:          "preprocessor",
		Description:    "Checks that a macro reference is not directly adjacent to a string literal, which risks unintended token pasting.",
		DefaultEnabled: true,
	}, func() lintrule.TokenRule {
		r := &macroStringConcatenationRule{}
		r.init("macro-string-concatenation", "preprocessor")
		return r
	})
}

// macroStringConcatenationRule walks the full (unfiltered) token stream
// tracking the immediately preceding token so it can tell whether a
// string literal directly abuts a macro reference with no intervening
// whitespace.
type macroStringConcatenationRule struct {
	reporter
	prev     token.Token
	hasPrev  bool
}

func (r *macroStringConcatenationRule) HandleToken(t token.Token) {
	if t.Kind == svgrammar.StringLiteral && r.hasPrev {
		if r.prev.Kind == svgrammar.MacroIdentifier || r.prev.Kind == svgrammar.MacroCallCloseParen {
			r.report(lintrule.Violation{
				Token:  t,
				Reason: "String literal directly concatenated with a macro reference; insert a space to avoid accidental token pasting.",
			})
		}
	}
	r.prev = t
	r.hasPrev = true
}
