// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
)

func newAlwaysFFOnlyLocalBlockingRule() *alwaysFFOnlyLocalBlockingRule {
	r := &alwaysFFOnlyLocalBlockingRule{}
	r.init("always-ff-only-local-blocking", "always-blocks")
	return r
}

func TestAlwaysFFOnlyLocalBlockingAllowsLocalVariable(t *testing.T) {
	r := newAlwaysFFOnlyLocalBlockingRule()
	block := svgrammar.NewSeqBlock("",
		svgrammar.NewDataDeclaration("logic", "tmp"),
		svgrammar.NewBlockingAssignment("tmp", "d"))
	module := svgrammar.NewModule("m", nil, svgrammar.NewAlwaysFF(block))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestAlwaysFFOnlyLocalBlockingFlagsNonLocalVariable(t *testing.T) {
	r := newAlwaysFFOnlyLocalBlockingRule()
	block := svgrammar.NewSeqBlock("", svgrammar.NewBlockingAssignment("q", "d"))
	module := svgrammar.NewModule("m", nil, svgrammar.NewAlwaysFF(block))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}
