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
		Name:           "explicit-task-lifetime",
		Topic:          "tasks",
		Description:    "Checks that task declarations give an explicit automatic or static lifetime.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &explicitTaskLifetimeRule{}
		r.init("explicit-task-lifetime", "tasks")
		return r
	})
}

type explicitTaskLifetimeRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *explicitTaskLifetimeRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagTaskDeclaration || len(node.Children) < 2 {
		return
	}
	keyword, ok := node.Children[0].(*cst.Leaf)
	if !ok {
		return
	}
	if leaf, ok := node.Children[1].(*cst.Leaf); ok {
		switch string(leaf.Token.Text) {
		case svgrammar.KeywordAutomatic, svgrammar.KeywordStatic:
			return
		}
	}
	r.report(lintrule.Violation{
		Token:  keyword.Token,
		Reason: "Task declared without an explicit automatic or static lifetime.",
	})
}
