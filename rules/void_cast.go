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
		Name:           "void-cast",
		Topic:          "void-cast",
		Description:    "Checks that a void cast only wraps a function or system-task call whose result is intentionally discarded.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &voidCastRule{}
		r.init("void-cast", "void-cast")
		return r
	})
}

type voidCastRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *voidCastRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagCastExpression || len(node.Children) < 4 {
		return
	}
	keyword, ok := node.Children[0].(*cst.Leaf)
	if !ok || string(keyword.Token.Text) != svgrammar.KeywordVoid {
		return // a non-void cast; a different concern from this rule
	}
	expr := node.Children[3]
	if exprNode, ok := expr.(*cst.Node); ok && exprNode.Tag == svgrammar.TagSystemCallExpression {
		return
	}
	r.report(lintrule.Violation{
		Token:  keyword.Token,
		Reason: "void cast should only wrap a function or system-task call whose result is intentionally discarded.",
	})
}
