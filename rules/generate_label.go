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
		Name:           "generate-label",
		Topic:          "generate-constructs",
		Description:    "Checks that every generate block has an explicit label.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &generateLabelRule{}
		r.init("generate-label", "generate-constructs")
		return r
	})
}

type generateLabelRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *generateLabelRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagGenerateBlock {
		return
	}
	if generateBlockLabel(node) != "" {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "Generate block must have an explicit label.",
	})
}

// generateBlockLabel returns the label of a NewGenerateBlock-shaped
// node, or "" if it has none: begin ":" label ... end.
func generateBlockLabel(node *cst.Node) string {
	if len(node.Children) < 3 {
		return ""
	}
	colon, ok := node.Children[1].(*cst.Leaf)
	if !ok || string(colon.Token.Text) != ":" {
		return ""
	}
	name, ok := node.Children[2].(*cst.Leaf)
	if !ok {
		return ""
	}
	return string(name.Token.Text)
}
