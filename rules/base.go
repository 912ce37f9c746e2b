// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/lintrule"
)

// reporter is embedded by every concrete rule: the REDESIGN FLAGS note
// that the four *_lint_rule.h base classes become "a small capability
// trait per category" still leaves every concrete rule needing the
// same violations-accumulator/Report() pair, so that part is a shared
// free-standing helper rather than four parallel copies.
type reporter struct {
	ruleID     string
	infoURL    string
	violations []lintrule.Violation
}

func (r *reporter) init(ruleID, topic string) {
	r.ruleID = ruleID
	r.infoURL = styleGuideCitation(topic)
	r.violations = nil
}

func (r *reporter) report(v lintrule.Violation) {
	r.violations = append(r.violations, v)
}

func (r *reporter) Report() lintrule.RuleStatus {
	return lintrule.RuleStatus{RuleID: r.ruleID, InfoURL: r.infoURL, Violations: r.violations}
}

// syntaxTreeDefaults supplies no-op bodies for the three
// lintrule.SyntaxTreeRule handlers, so a concrete rule embedding it
// only needs to override whichever one it actually matches against.
type syntaxTreeDefaults struct{}

func (syntaxTreeDefaults) HandleLeaf(*cst.Leaf, *cst.Context)   {}
func (syntaxTreeDefaults) HandleNode(*cst.Node, *cst.Context)   {}
func (syntaxTreeDefaults) HandleSymbol(cst.Symbol, *cst.Context) {}
