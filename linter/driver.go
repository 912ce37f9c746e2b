// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package linter implements the four per-category rule drivers and the
// top-level orchestrator that runs a configured set of rules over a
// text.Structure and produces waiver-filtered rule statuses.
package linter

import (
	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/token"
)

// LineDriver runs every active LineRule over a sequence of lines.
type LineDriver struct {
	Rules []lintrule.LineRule
}

// Run invokes HandleLine on every rule for every line, in line order,
// then collects each rule's final report. The order rules are invoked
// in for the same line is unspecified by design; rules must not depend
// on it.
func (d *LineDriver) Run(lines []string) []lintrule.RuleStatus {
	for _, line := range lines {
		for _, r := range d.Rules {
			r.HandleLine(line)
		}
	}
	statuses := make([]lintrule.RuleStatus, 0, len(d.Rules))
	for _, r := range d.Rules {
		statuses = append(statuses, r.Report())
	}
	return statuses
}

// TokenStreamDriver runs every active TokenRule over the full
// (unfiltered) token sequence.
type TokenStreamDriver struct {
	Rules []lintrule.TokenRule
}

// Run invokes HandleToken on every rule for every token, in order.
func (d *TokenStreamDriver) Run(tokens []token.Token) []lintrule.RuleStatus {
	for _, t := range tokens {
		for _, r := range d.Rules {
			r.HandleToken(t)
		}
	}
	statuses := make([]lintrule.RuleStatus, 0, len(d.Rules))
	for _, r := range d.Rules {
		statuses = append(statuses, r.Report())
	}
	return statuses
}

// TextStructureDriver runs every active TextStructureRule exactly once
// against the whole structure.
type TextStructureDriver struct {
	Rules []lintrule.TextStructureRule
}

// Run invokes Lint on every rule once.
func (d *TextStructureDriver) Run(filename string, lintFn func(r lintrule.TextStructureRule)) []lintrule.RuleStatus {
	for _, r := range d.Rules {
		lintFn(r)
	}
	statuses := make([]lintrule.RuleStatus, 0, len(d.Rules))
	for _, r := range d.Rules {
		statuses = append(statuses, r.Report())
	}
	return statuses
}

// SyntaxTreeDriver walks a CST in pre-order, pushing each entered node
// onto a shared cst.Context before dispatching to every rule and
// popping on exit, so rules see their ancestor chain. This is a
// distinct concept from the generic cst.Walk: it always carries context
// and always dispatches to every rule's per-kind method, rather than
// letting a single Visitor decide whether to recurse.
type SyntaxTreeDriver struct {
	Rules []lintrule.SyntaxTreeRule
}

// Run walks root, invoking each rule's HandleSymbol on every symbol, and
// additionally HandleLeaf or HandleNode depending on its concrete kind.
func (d *SyntaxTreeDriver) Run(root cst.Symbol) []lintrule.RuleStatus {
	var ctx cst.Context
	d.walk(root, &ctx)
	statuses := make([]lintrule.RuleStatus, 0, len(d.Rules))
	for _, r := range d.Rules {
		statuses = append(statuses, r.Report())
	}
	return statuses
}

func (d *SyntaxTreeDriver) walk(sym cst.Symbol, ctx *cst.Context) {
	if sym == nil {
		return
	}
	switch x := sym.(type) {
	case *cst.Leaf:
		for _, r := range d.Rules {
			r.HandleSymbol(sym, ctx)
			r.HandleLeaf(x, ctx)
		}
	case *cst.Node:
		pop := ctx.Push(x)
		for _, r := range d.Rules {
			r.HandleSymbol(sym, ctx)
			r.HandleNode(x, ctx)
		}
		for _, c := range x.Children {
			d.walk(c, ctx)
		}
		pop()
	}
}
