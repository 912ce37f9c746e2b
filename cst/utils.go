// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cst

import (
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/svlint/svlint/token"
)

// DescendThroughSingletons follows the unique-child chain starting at
// root, stopping at the first node that doesn't have exactly one
// non-nil child, or at a Leaf. Returns root itself if it is not a Node
// with exactly one child.
func DescendThroughSingletons(root Symbol) Symbol {
	cur := root
	for {
		n, ok := cur.(*Node)
		if !ok || len(n.Children) != 1 || n.Children[0] == nil {
			return cur
		}
		cur = n.Children[0]
	}
}

// DescendPath strictly descends through Children[indices[0]],
// Children[indices[1]], ... . Panics (fatal) if any intermediate value
// is not a *Node or an index is out of range.
func DescendPath(root Symbol, indices ...int) Symbol {
	cur := root
	for _, idx := range indices {
		n, ok := cur.(*Node)
		if !ok {
			panic(fmt.Sprintf("cst: DescendPath through non-node at index %d", idx))
		}
		cur = n.Child(idx)
	}
	return cur
}

// LeftmostLeaf returns the first non-nil Leaf found via pre-order scan,
// or nil if root contains no leaves.
func LeftmostLeaf(root Symbol) *Leaf {
	switch x := root.(type) {
	case nil:
		return nil
	case *Leaf:
		return x
	case *Node:
		for _, c := range x.Children {
			if l := LeftmostLeaf(c); l != nil {
				return l
			}
		}
		return nil
	}
	return nil
}

// RightmostLeaf returns the last non-nil Leaf found via reverse pre-order
// scan, or nil if root contains no leaves.
func RightmostLeaf(root Symbol) *Leaf {
	switch x := root.(type) {
	case nil:
		return nil
	case *Leaf:
		return x
	case *Node:
		for i := len(x.Children) - 1; i >= 0; i-- {
			if l := RightmostLeaf(x.Children[i]); l != nil {
				return l
			}
		}
		return nil
	}
	return nil
}

// StringSpanOfSymbol returns the minimum contiguous slice of base
// covering every leaf's token text under roots, in order. base must be
// the same backing buffer the tokens were lexed from. Returns an empty
// string if no leaves are found.
func StringSpanOfSymbol(base []byte, roots ...Symbol) []byte {
	var left, right *Leaf
	for _, r := range roots {
		if l := LeftmostLeaf(r); l != nil && left == nil {
			left = l
		}
		if r := RightmostLeaf(r); r != nil {
			right = r
		}
	}
	if left == nil || right == nil {
		return nil
	}
	lo := offsetOf(base, left.Token.Text)
	hi := offsetOf(base, right.Token.Text) + len(right.Token.Text)
	if lo < 0 || hi > len(base) || lo > hi {
		return nil
	}
	return base[lo:hi]
}

// offsetOf locates text's start within base via pointer arithmetic,
// requiring text to be a genuine sub-slice of base's backing array (true
// for every leaf token, which the grammar lexes directly from the
// source buffer). Token equality never needs this; it's only span math
// that does.
func offsetOf(base, text []byte) int {
	if len(text) == 0 {
		return len(base)
	}
	if len(base) == 0 {
		return 0
	}
	off := int(uintptr(unsafe.Pointer(&text[0])) - uintptr(unsafe.Pointer(&base[0])))
	if off < 0 || off > len(base) {
		// Not actually a sub-slice of base (e.g. synthesized text in a
		// test fixture); fall back to a content search.
		return strings.Index(string(base), string(text))
	}
	return off
}

// Predicate is a search function used by FindFirstSubtree / FindLastSubtree.
type Predicate func(Symbol) bool

// FindFirstSubtree returns the first Symbol (pre-order, including root)
// for which pred returns true, or nil.
func FindFirstSubtree(root Symbol, pred Predicate) Symbol {
	if root == nil {
		return nil
	}
	if pred(root) {
		return root
	}
	if n, ok := root.(*Node); ok {
		for _, c := range n.Children {
			if found := FindFirstSubtree(c, pred); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindLastSubtree returns the last Symbol (reverse pre-order) for which
// pred returns true, or nil.
func FindLastSubtree(root Symbol, pred Predicate) Symbol {
	if root == nil {
		return nil
	}
	if n, ok := root.(*Node); ok {
		for i := len(n.Children) - 1; i >= 0; i-- {
			if found := FindLastSubtree(n.Children[i], pred); found != nil {
				return found
			}
		}
	}
	if pred(root) {
		return root
	}
	return nil
}

// MutateLeaves applies f to every leaf's token, in pre-order.
func MutateLeaves(root Symbol, f func(token.Token) token.Token) {
	switch x := root.(type) {
	case *Leaf:
		x.Token = f(x.Token)
	case *Node:
		for _, c := range x.Children {
			MutateLeaves(c, f)
		}
	}
}

// PruneSyntaxTreeAfterOffset drops trailing children of root (and
// recursively of its last remaining child) whose leftmost leaf starts
// strictly after offset in base. A root that is not a *Node is returned
// unchanged; otherwise returns the same (possibly narrowed) Node, or nil
// if every child is pruned.
func PruneSyntaxTreeAfterOffset(base []byte, root Symbol, offset int) Symbol {
	n, ok := root.(*Node)
	if !ok {
		return root
	}
	kept := n.Children
	for len(kept) > 0 {
		l := LeftmostLeaf(kept[len(kept)-1])
		if l == nil {
			kept = kept[:len(kept)-1]
			continue
		}
		start := offsetOf(base, l.Token.Text)
		if start > offset {
			kept = kept[:len(kept)-1]
			continue
		}
		break
	}
	if len(kept) == 0 {
		return nil
	}
	kept[len(kept)-1] = PruneSyntaxTreeAfterOffset(base, kept[len(kept)-1], offset)
	n.Children = kept
	return n
}

// TrimSyntaxTree narrows root to a subtree whose full span lies within
// the half-open byte range [lo, hi) of base. The walk stops at the first
// qualifying symbol on each path, so root itself is returned when its
// whole span fits; among several disjoint qualifying subtrees the last
// one visited wins. Returns nil if no subtree qualifies.
func TrimSyntaxTree(base []byte, root Symbol, lo, hi int) Symbol {
	var best Symbol
	var walk func(Symbol)
	walk = func(s Symbol) {
		if s == nil {
			return
		}
		l, r := LeftmostLeaf(s), RightmostLeaf(s)
		if l == nil || r == nil {
			return
		}
		start := offsetOf(base, l.Token.Text)
		end := offsetOf(base, r.Token.Text) + len(r.Token.Text)
		if start >= lo && end <= hi {
			best = s
			return // this subtree already qualifies in full; no need to narrow further here
		}
		if n, ok := s.(*Node); ok {
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(root)
	return best
}

// PrettyPrint renders root as an indented tree, skipping nil children
// with an explicit marker, for debugging and golden-file tests.
func PrettyPrint(w io.Writer, root Symbol, indent int) {
	prefix := strings.Repeat("  ", indent)
	switch x := root.(type) {
	case nil:
		fmt.Fprintf(w, "%s(nil)\n", prefix)
	case *Leaf:
		fmt.Fprintf(w, "%sLeaf(%d, %q)\n", prefix, x.Token.Kind, x.Token.Text)
	case *Node:
		fmt.Fprintf(w, "%sNode(tag=%d)\n", prefix, x.Tag)
		for _, c := range x.Children {
			PrettyPrint(w, c, indent+1)
		}
	}
}

// RawPrint renders root as a flat sequence of leaf tokens, concatenated
// without separators. Whitespace and comments that are not leaves of the
// tree are not reproduced.
func RawPrint(w io.Writer, root Symbol) {
	switch x := root.(type) {
	case nil:
		return
	case *Leaf:
		w.Write(x.Token.Text)
	case *Node:
		for _, c := range x.Children {
			RawPrint(w, c)
		}
	}
}
