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
		Name:           "plusarg-assignment",
		Topic:          "plusargs",
		Description:    "Checks that $test$plusargs and $value$plusargs are called with the argument count their form requires.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &plusargAssignmentRule{}
		r.init("plusarg-assignment", "plusargs")
		return r
	})
}

type plusargAssignmentRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *plusargAssignmentRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagSystemCallExpression || len(node.Children) == 0 {
		return
	}
	name, ok := node.Children[0].(*cst.Leaf)
	if !ok {
		return
	}
	args := len(node.Children) - 1
	switch string(name.Token.Text) {
	case "$test$plusargs":
		if args != 1 {
			r.report(lintrule.Violation{
				Token:  name.Token,
				Reason: "$test$plusargs takes exactly one argument: the plusarg name.",
			})
		}
	case "$value$plusargs":
		if args != 2 {
			r.report(lintrule.Violation{
				Token:  name.Token,
				Reason: "$value$plusargs takes exactly two arguments: a format string and the destination variable.",
			})
		}
	}
}
