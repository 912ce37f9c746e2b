// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
)

func init() {
	registry.RegisterSyntaxTreeRule(registry.Descriptor{
		Name:           "always-ff-non-blocking",
		Topic:          "always-blocks",
		Description:    "Checks that every assignment inside an always_ff block uses the nonblocking operator.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &alwaysFFNonBlockingRule{}
		r.init("always-ff-non-blocking", "always-blocks")
		return r
	})
}

type alwaysFFNonBlockingRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *alwaysFFNonBlockingRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagBlockingAssignment {
		return
	}
	always := enclosingTag(ctx.Ancestors(), 1, svgrammar.TagAlwaysStatement)
	if always == nil || !isAlwaysFF(always) {
		return
	}
	leaf, ok := node.Children[0].(*cst.Leaf)
	if !ok {
		return
	}
	r.report(lintrule.Violation{
		Token:  leaf.Token,
		Reason: "Use a nonblocking assignment (<=) inside an always_ff block.",
	})
}

func isAlwaysFF(always *cst.Node) bool {
	if len(always.Children) == 0 {
		return false
	}
	leaf, ok := always.Children[0].(*cst.Leaf)
	return ok && string(leaf.Token.Text) == svgrammar.KeywordAlwaysFF
}
