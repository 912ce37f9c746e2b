// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
)

func init() {
	registry.RegisterSyntaxTreeRule(registry.Descriptor{
		Name:           "undersized-binary-literal",
		Topic:          "numeric-literals",
		Description:    "Checks that a sized binary literal's digit count matches its declared bit width.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &undersizedBinaryLiteralRule{}
		r.init("undersized-binary-literal", "numeric-literals")
		return r
	})
}

var sizedBinaryLiteralPattern = regexp.MustCompile(`^(\d+)'([bB])([01xXzZ_]+)$`)

type undersizedBinaryLiteralRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *undersizedBinaryLiteralRule) HandleLeaf(leaf *cst.Leaf, ctx *cst.Context) {
	if leaf.Token.Kind != svgrammar.NumberLiteral {
		return
	}
	m := sizedBinaryLiteralPattern.FindStringSubmatch(string(leaf.Token.Text))
	if m == nil {
		return
	}
	width, err := strconv.Atoi(m[1])
	if err != nil {
		return
	}
	digits := strings.ReplaceAll(m[3], "_", "")
	if len(digits) < width {
		r.report(lintrule.Violation{
			Token:  leaf.Token,
			Reason: "Binary literal has fewer digits than its declared bit width; pad it explicitly.",
		})
	}
}
