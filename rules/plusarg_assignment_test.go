// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
)

func newPlusargAssignmentRule() *plusargAssignmentRule {
	r := &plusargAssignmentRule{}
	r.init("plusarg-assignment", "plusargs")
	return r
}

func TestPlusargAssignmentAllowsCorrectArity(t *testing.T) {
	r := newPlusargAssignmentRule()
	valueCall := svgrammar.NewSystemCallExpression("$value$plusargs", svgrammar.NewSystemCallExpression("arg1"), svgrammar.NewSystemCallExpression("arg2"))
	testCall := svgrammar.NewSystemCallExpression("$test$plusargs", svgrammar.NewSystemCallExpression("arg1"))
	module := svgrammar.NewModule("m", nil, valueCall, testCall)
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestPlusargAssignmentFlagsWrongArity(t *testing.T) {
	r := newPlusargAssignmentRule()
	valueCall := svgrammar.NewSystemCallExpression("$value$plusargs", svgrammar.NewSystemCallExpression("arg1"))
	module := svgrammar.NewModule("m", nil, valueCall)
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestPlusargAssignmentFlagsTestPlusargsWrongArity(t *testing.T) {
	r := newPlusargAssignmentRule()
	testCall := svgrammar.NewSystemCallExpression("$test$plusargs", svgrammar.NewSystemCallExpression("arg1"), svgrammar.NewSystemCallExpression("arg2"))
	module := svgrammar.NewModule("m", nil, testCall)
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}
