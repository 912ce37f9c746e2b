// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
)

func newExplicitBeginRule() *explicitBeginRule {
	r := &explicitBeginRule{}
	r.init("explicit-begin", "explicit-begin")
	return r
}

func TestExplicitBeginFlagsBareStatement(t *testing.T) {
	r := newExplicitBeginRule()
	ifc := svgrammar.NewIfClause("cond", svgrammar.NewBlockingAssignment("a", "b"))
	module := svgrammar.NewModule("m", nil, svgrammar.NewConditionalStatement(ifc, nil))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestExplicitBeginAllowsSeqBlock(t *testing.T) {
	r := newExplicitBeginRule()
	ifc := svgrammar.NewIfClause("cond", svgrammar.NewSeqBlock("", svgrammar.NewBlockingAssignment("a", "b")))
	module := svgrammar.NewModule("m", nil, svgrammar.NewConditionalStatement(ifc, nil))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
