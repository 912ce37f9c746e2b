// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cst

// Visitor defines generic tree iteration, independent of the
// ancestor-context-carrying syntax-tree walker in linter.SyntaxTreeDriver.
// Visit is called on x before recursing into its children; returning a
// nil Visitor skips the children entirely.
type Visitor interface {
	Visit(x Symbol) (w Visitor)
}

// Walk iterates the tree rooted at x by calling v.Visit before
// recursing into children, skipping nil symbols.
func Walk(v Visitor, x Symbol) {
	if x == nil {
		return
	}
	w := v.Visit(x)
	if w == nil {
		return
	}
	if n, ok := x.(*Node); ok {
		for _, c := range n.Children {
			Walk(w, c)
		}
	}
}

// Transformer rewrites a Symbol, returning its replacement (possibly
// itself, possibly nil to delete it).
type Transformer interface {
	Transform(x Symbol) Symbol
}

// Transform rewrites the tree rooted at x bottom-up: children are
// transformed first, then the (possibly already-rewritten) node itself
// is passed to t.Transform.
func Transform(t Transformer, x Symbol) Symbol {
	if x == nil {
		return nil
	}
	if n, ok := x.(*Node); ok {
		for i, c := range n.Children {
			n.Children[i] = Transform(t, c)
		}
	}
	return t.Transform(x)
}
