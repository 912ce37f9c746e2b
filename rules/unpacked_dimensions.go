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
		Name:           "unpacked-dimensions",
		Topic:          "declarations",
		Description:    "Checks that unpacked array dimensions are declared with size syntax [N] rather than range syntax [a:b].",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &unpackedDimensionsRule{}
		r.init("unpacked-dimensions", "declarations")
		return r
	})
}

type unpackedDimensionsRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *unpackedDimensionsRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagUnpackedDimension || len(node.Children) != 5 {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "Unpacked dimension declared with range syntax [a:b]; use size syntax [N] instead.",
	})
}
