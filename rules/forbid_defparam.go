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
		Name:           "forbid-defparam",
		Topic:          "forbidden-constructs",
		Description:    "Checks that defparam is never used to override a parameter.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &forbidDefparamRule{}
		r.init("forbid-defparam", "forbidden-constructs")
		return r
	})
}

type forbidDefparamRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *forbidDefparamRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagParameterOverride {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "defparam is forbidden; override parameters through the instance's parameter list instead.",
	})
}
