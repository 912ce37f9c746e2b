// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cst

// Context is a stack of ancestor Node references maintained during
// traversal, closest ancestor last. It answers the queries every
// syntax-tree rule needs to decide whether a leaf or node occurs in a
// particular structural position.
type Context struct {
	stack []*Node
}

// Push records node as the new innermost ancestor and returns a closure
// that pops it back off. Callers should immediately defer the returned
// closure so the pop happens on every exit path, mirroring the
// AutoPop scope guard this is grounded on.
func (c *Context) Push(node *Node) (pop func()) {
	c.stack = append(c.stack, node)
	return func() {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Size returns the current stack depth.
func (c *Context) Size() int { return len(c.stack) }

// Empty reports whether the stack is empty.
func (c *Context) Empty() bool { return len(c.stack) == 0 }

// Top returns the innermost ancestor. Callers must not call Top on an
// empty context.
func (c *Context) Top() *Node {
	if c.Empty() {
		panic("cst: Top called on empty Context")
	}
	return c.stack[len(c.stack)-1]
}

// Ancestors returns the stack from outermost to innermost. The returned
// slice aliases Context's internal storage and must not be retained
// across further Push/pop calls.
func (c *Context) Ancestors() []*Node { return c.stack }

// IsInside reports whether any ancestor on the stack (searched from the
// bottom) matches tag.
func (c *Context) IsInside(tag Tag) bool {
	for _, n := range c.stack {
		if n.MatchesTag(tag) {
			return true
		}
	}
	return false
}

// IsInsideFirst reports whether, scanning from the innermost ancestor
// outward, an "includes" tag is reached before any "excludes" tag.
func (c *Context) IsInsideFirst(includes, excludes []Tag) bool {
	for i := len(c.stack) - 1; i >= 0; i-- {
		n := c.stack[i]
		if n.MatchesTagAnyOf(includes...) {
			return true
		}
		if n.MatchesTagAnyOf(excludes...) {
			return false
		}
	}
	return false
}

// DirectParentIs reports whether the stack is non-empty and its top
// matches tag.
func (c *Context) DirectParentIs(tag Tag) bool {
	if c.Empty() {
		return false
	}
	return c.Top().MatchesTag(tag)
}

// DirectParentIsOneOf reports whether the stack is non-empty and its top
// matches any of tags.
func (c *Context) DirectParentIsOneOf(tags ...Tag) bool {
	if c.Empty() {
		return false
	}
	return c.Top().MatchesTagAnyOf(tags...)
}

// DirectParentsAre reports whether the ancestor chain, from direct
// parent outward, exactly matches tags. An empty tags list always
// matches.
func (c *Context) DirectParentsAre(tags []Tag) bool {
	if len(tags) > len(c.stack) {
		return false
	}
	for i, tag := range tags {
		n := c.stack[len(c.stack)-1-i]
		if !n.MatchesTag(tag) {
			return false
		}
	}
	return true
}
