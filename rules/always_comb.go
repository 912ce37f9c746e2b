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
		Name:           "always-comb",
		Topic:          "always-blocks",
		Description:    "Checks that a combinational always block is written as always_comb rather than always @*.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &alwaysCombRule{}
		r.init("always-comb", "always-blocks")
		return r
	})
}

type alwaysCombRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *alwaysCombRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagAlwaysStatement || len(node.Children) < 2 {
		return
	}
	keyword, ok := node.Children[0].(*cst.Leaf)
	if !ok || string(keyword.Token.Text) != svgrammar.KeywordAlways {
		return
	}
	if _, ok := node.Children[1].(*cst.Node); !ok {
		return
	}
	if event := node.Children[1].(*cst.Node); event.Tag == svgrammar.TagEventControlStar {
		r.report(lintrule.Violation{
			Token:  keyword.Token,
			Reason: "Use always_comb instead of always @*.",
		})
	}
}
