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
		Name:           "legacy-generate-region",
		Topic:          "generate-constructs",
		Description:    "Checks that the legacy generate/endgenerate keywords are not used; they are optional in SystemVerilog.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &legacyGenerateRegionRule{}
		r.init("legacy-generate-region", "generate-constructs")
		return r
	})
}

type legacyGenerateRegionRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *legacyGenerateRegionRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagGenerateRegion {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "Avoid the legacy generate/endgenerate keywords; they are optional in SystemVerilog.",
	})
}
