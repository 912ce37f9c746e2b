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
		Name:           "forbidden-anonymous-structs-unions",
		Topic:          "anonymous-types",
		Description:    "Checks that every struct or union type is named through a typedef rather than declared anonymously.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &forbiddenAnonymousStructsUnionsRule{}
		r.init("forbidden-anonymous-structs-unions", "anonymous-types")
		return r
	})
}

type forbiddenAnonymousStructsUnionsRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *forbiddenAnonymousStructsUnionsRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagStructType && node.Tag != svgrammar.TagUnionType {
		return
	}
	if wrappedInTypedef(ctx) {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	kind := "struct"
	if node.Tag == svgrammar.TagUnionType {
		kind = "union"
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "Anonymous " + kind + " type; wrap it in a typedef and give it a name.",
	})
}
