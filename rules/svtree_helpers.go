// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/token"
)

// enclosingTag scans ancestors (outermost to innermost, as returned by
// cst.Context.Ancestors) from the innermost entry backward, skipping
// the last skip entries (the caller's own node, already pushed onto
// the context by the time HandleNode runs), and returns the nearest
// node matching tag.
func enclosingTag(ancestors []*cst.Node, skip int, tag cst.Tag) *cst.Node {
	for i := len(ancestors) - 1 - skip; i >= 0; i-- {
		if ancestors[i].Tag == tag {
			return ancestors[i]
		}
	}
	return nil
}

// identifierLeaves collects every direct-child *cst.Leaf text under n,
// used by the declaration-scanning rules to pull variable/parameter
// names out of a builder-shaped node without a real symbol table.
func identifierLeaves(n *cst.Node) []string {
	var out []string
	for _, c := range n.Children {
		if leaf, ok := c.(*cst.Leaf); ok {
			out = append(out, string(leaf.Token.Text))
		}
	}
	return out
}

// identifierKindLeaves collects every direct-child *cst.Leaf under n whose
// token kind is token.Identifier, skipping keyword and punctuation leaves
// mixed into the same child list.
func identifierKindLeaves(n *cst.Node) []*cst.Leaf {
	var out []*cst.Leaf
	for _, c := range n.Children {
		if leaf, ok := c.(*cst.Leaf); ok && leaf.Token.Kind == token.Identifier {
			out = append(out, leaf)
		}
	}
	return out
}
