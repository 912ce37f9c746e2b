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
		Name:           "forbidden-anonymous-enums",
		Topic:          "anonymous-types",
		Description:    "Checks that every enum type is named through a typedef rather than declared anonymously.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &forbiddenAnonymousEnumsRule{}
		r.init("forbidden-anonymous-enums", "anonymous-types")
		return r
	})
}

type forbiddenAnonymousEnumsRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *forbiddenAnonymousEnumsRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagEnumType {
		return
	}
	if wrappedInTypedef(ctx) {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "Anonymous enum type; wrap it in a typedef and give it a name.",
	})
}

// wrappedInTypedef reports whether the node currently being visited
// (already pushed onto ctx by the driver before HandleNode runs) is the
// direct child of a TagTypedefDeclaration: its real parent is the
// second-from-top entry, since the top entry is the node itself.
func wrappedInTypedef(ctx *cst.Context) bool {
	ancestors := ctx.Ancestors()
	if len(ancestors) < 2 {
		return false
	}
	return ancestors[len(ancestors)-2].Tag == svgrammar.TagTypedefDeclaration
}
