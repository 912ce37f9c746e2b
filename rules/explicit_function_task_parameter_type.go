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
		Name:           "explicit-function-task-parameter-type",
		Topic:          "tasks",
		Description:    "Checks that function and task ports declare an explicit type rather than relying on the implicit int default.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &explicitFunctionTaskParameterTypeRule{}
		r.init("explicit-function-task-parameter-type", "tasks")
		return r
	})
}

type explicitFunctionTaskParameterTypeRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *explicitFunctionTaskParameterTypeRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagFunctionPort && node.Tag != svgrammar.TagTaskPort {
		return
	}
	if len(node.Children) > 1 {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "Port declared without an explicit type; the implicit int default is easy to miss.",
	})
}
