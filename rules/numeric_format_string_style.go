// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"regexp"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
)

func init() {
	registry.RegisterSyntaxTreeRule(registry.Descriptor{
		Name:           "numeric-format-string-style",
		Topic:          "format-strings",
		Description:    "Checks that %d/%x/%h/%o format specifiers in display strings carry an explicit zero-pad width.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &numericFormatStringStyleRule{}
		r.init("numeric-format-string-style", "format-strings")
		return r
	})
}

var bareNumericFormatSpecifierPattern = regexp.MustCompile(`%[dxhoDXHO]`)

type numericFormatStringStyleRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *numericFormatStringStyleRule) HandleLeaf(leaf *cst.Leaf, ctx *cst.Context) {
	if leaf.Token.Kind != svgrammar.StringLiteral {
		return
	}
	if bareNumericFormatSpecifierPattern.Match(leaf.Token.Text) {
		r.report(lintrule.Violation{
			Token:  leaf.Token,
			Reason: "Bare %d/%x/%h/%o format specifier; use a zero-padded width such as %0d instead.",
		})
	}
}
