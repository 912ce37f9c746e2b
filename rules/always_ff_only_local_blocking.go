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
		Name:           "always-ff-only-local-blocking",
		Topic:          "always-blocks",
		Description:    "Checks that a blocking assignment inside an always_ff block only targets a variable declared locally within the same block.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &alwaysFFOnlyLocalBlockingRule{}
		r.init("always-ff-only-local-blocking", "always-blocks")
		return r
	})
}

// alwaysFFOnlyLocalBlockingRule has no real symbol table to consult
// (spec.md §1 excludes full symbol-table resolution), so "local" is
// approximated as "declared directly inside the nearest enclosing
// begin/end block the assignment itself lives in."
type alwaysFFOnlyLocalBlockingRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *alwaysFFOnlyLocalBlockingRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagBlockingAssignment {
		return
	}
	always := enclosingTag(ctx.Ancestors(), 1, svgrammar.TagAlwaysStatement)
	if always == nil || !isAlwaysFF(always) {
		return
	}
	seqBlock := enclosingTag(ctx.Ancestors(), 1, svgrammar.TagSeqBlock)
	if seqBlock == nil {
		return
	}
	lhs, ok := node.Children[0].(*cst.Leaf)
	if !ok {
		return
	}
	name := string(lhs.Token.Text)
	if localNames(seqBlock)[name] {
		return
	}
	r.report(lintrule.Violation{
		Token:  lhs.Token,
		Reason: "Blocking assignment inside always_ff must target a variable declared locally within this block: " + name,
	})
}

// localNames collects the names declared by any TagDataDeclaration
// child of block, skipping each declaration's first identifier (its
// type name).
func localNames(block *cst.Node) map[string]bool {
	out := map[string]bool{}
	for _, c := range block.Children {
		decl, ok := c.(*cst.Node)
		if !ok || decl.Tag != svgrammar.TagDataDeclaration {
			continue
		}
		names := identifierLeaves(decl)
		for i, n := range names {
			if i == 0 {
				continue
			}
			out[n] = true
		}
	}
	return out
}
