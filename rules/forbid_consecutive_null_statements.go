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
		Name:           "forbid-consecutive-null-statements",
		Topic:          "null-statements",
		Description:    "Checks that no two bare semicolon statements appear back to back.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &forbidConsecutiveNullStatementsRule{}
		r.init("forbid-consecutive-null-statements", "null-statements")
		return r
	})
}

type forbidConsecutiveNullStatementsRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *forbidConsecutiveNullStatementsRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	for i := 1; i < len(node.Children); i++ {
		prev, ok1 := node.Children[i-1].(*cst.Node)
		cur, ok2 := node.Children[i].(*cst.Node)
		if !ok1 || !ok2 || prev.Tag != svgrammar.TagNullStatement || cur.Tag != svgrammar.TagNullStatement {
			continue
		}
		anchor := firstLeaf(cur)
		if anchor == nil {
			continue
		}
		r.report(lintrule.Violation{
			Token:  anchor.Token,
			Reason: "Consecutive null statements (\";;\") are forbidden.",
		})
	}
}
