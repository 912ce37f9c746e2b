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
		Name:           "module-begin-block",
		Topic:          "explicit-begin",
		Description:    "Checks that an always block's body uses an explicit begin/end block.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &moduleBeginBlockRule{}
		r.init("module-begin-block", "explicit-begin")
		return r
	})
}

type moduleBeginBlockRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *moduleBeginBlockRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagAlwaysStatement || len(node.Children) == 0 {
		return
	}
	body := node.Children[len(node.Children)-1]
	if bodyNode, ok := body.(*cst.Node); ok && bodyNode.Tag == svgrammar.TagSeqBlock {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "An always block's body must use an explicit begin/end block.",
	})
}
