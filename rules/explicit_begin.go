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
		Name:           "explicit-begin",
		Topic:          "explicit-begin",
		Description:    "Checks that if/else/for/while bodies use an explicit begin/end block rather than a single bare statement.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &explicitBeginRule{}
		r.init("explicit-begin", "explicit-begin")
		return r
	})
}

type explicitBeginRule struct {
	reporter
	syntaxTreeDefaults
}

func (r *explicitBeginRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	switch node.Tag {
	case svgrammar.TagIfClause, svgrammar.TagElseClause, svgrammar.TagForLoopStatement, svgrammar.TagWhileLoopStatement:
	default:
		return
	}
	if len(node.Children) == 0 {
		return
	}
	body := node.Children[len(node.Children)-1]
	bodyNode, ok := body.(*cst.Node)
	if ok && bodyNode.Tag == svgrammar.TagSeqBlock {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "Use an explicit begin/end block instead of a single bare statement.",
	})
}

// firstLeaf returns the leftmost leaf under n, used to anchor a
// violation at a node that may have no leaf of its own.
func firstLeaf(n *cst.Node) *cst.Leaf {
	for _, c := range n.Children {
		switch x := c.(type) {
		case *cst.Leaf:
			return x
		case *cst.Node:
			if leaf := firstLeaf(x); leaf != nil {
				return leaf
			}
		}
	}
	return nil
}
