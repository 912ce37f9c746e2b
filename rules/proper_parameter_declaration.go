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
		Name:           "proper-parameter-declaration",
		Topic:          "parameters",
		Description:    "Checks that parameter declarations outside a module's port list use localparam instead of parameter.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &properParameterDeclarationRule{}
		r.init("proper-parameter-declaration", "parameters")
		return r
	})
}

type properParameterDeclarationRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *properParameterDeclarationRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagParameterDeclaration || len(node.Children) == 0 {
		return
	}
	keyword, ok := node.Children[0].(*cst.Leaf)
	if !ok || string(keyword.Token.Text) != svgrammar.KeywordParameter {
		return
	}
	if enclosingTag(ctx.Ancestors(), 1, svgrammar.TagModuleHeader) != nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  keyword.Token,
		Reason: "Parameter declared in the module body rather than the port list; use localparam instead.",
	})
}
