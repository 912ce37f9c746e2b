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
		Name:           "forbid-implicit-declarations",
		Topic:          "declarations",
		Description:    "Checks that every assignment target was declared somewhere in its enclosing module.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &forbidImplicitDeclarationsRule{declared: make(map[*cst.Node]map[string]bool)}
		r.init("forbid-implicit-declarations", "declarations")
		return r
	})
}

// forbidImplicitDeclarationsRule approximates full name-resolution with a
// best-effort local-scope declaration set gathered per module, rather than
// a real symbol table; it will miss names introduced through mechanisms
// this module's grammar stand-in doesn't model (package imports, generate
// scopes, and the like).
type forbidImplicitDeclarationsRule struct {
	reporter
	syntaxTreeDefaults
	declared map[*cst.Node]map[string]bool
}

func (r *forbidImplicitDeclarationsRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag == svgrammar.TagModuleDeclaration {
		names := make(map[string]bool)
		collectDeclaredNames(node, names)
		r.declared[node] = names
		return
	}
	if node.Tag != svgrammar.TagBlockingAssignment && node.Tag != svgrammar.TagNonblockingAssignment {
		return
	}
	if len(node.Children) == 0 {
		return
	}
	lhs, ok := node.Children[0].(*cst.Leaf)
	if !ok {
		return
	}
	module := enclosingTag(ctx.Ancestors(), 1, svgrammar.TagModuleDeclaration)
	if module == nil {
		return
	}
	names := r.declared[module]
	if names != nil && names[string(lhs.Token.Text)] {
		return
	}
	r.report(lintrule.Violation{
		Token:  lhs.Token,
		Reason: "Assignment target has no visible declaration in its enclosing module.",
	})
}

func collectDeclaredNames(n *cst.Node, out map[string]bool) {
	switch n.Tag {
	case svgrammar.TagPort:
		for _, leaf := range identifierKindLeaves(n) {
			out[string(leaf.Token.Text)] = true
		}
	case svgrammar.TagDataDeclaration, svgrammar.TagVariableDeclarationAssignment:
		leaves := identifierKindLeaves(n)
		for i, leaf := range leaves {
			if i == 0 {
				continue // the type name, not a declared identifier
			}
			out[string(leaf.Token.Text)] = true
		}
	case svgrammar.TagParameterDeclaration:
		if name := parameterDeclarationName(n); name != "" {
			out[name] = true
		}
	}
	for _, c := range n.Children {
		if child, ok := c.(*cst.Node); ok {
			collectDeclaredNames(child, out)
		}
	}
}

// parameterDeclarationName returns the declared name out of a
// TagParameterDeclaration node, identified as the identifier leaf
// immediately before the "=" punctuation (see NewParameterDeclaration).
func parameterDeclarationName(n *cst.Node) string {
	for i, c := range n.Children {
		leaf, ok := c.(*cst.Leaf)
		if !ok || leaf.Token.Kind != svgrammar.Punctuation || string(leaf.Token.Text) != "=" {
			continue
		}
		if i == 0 {
			return ""
		}
		if nameLeaf, ok := n.Children[i-1].(*cst.Leaf); ok {
			return string(nameLeaf.Token.Text)
		}
	}
	return ""
}
