// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
)

func newExplicitTaskLifetimeRule() *explicitTaskLifetimeRule {
	r := &explicitTaskLifetimeRule{}
	r.init("explicit-task-lifetime", "tasks")
	return r
}

func TestExplicitTaskLifetimeFlagsMissingLifetime(t *testing.T) {
	r := newExplicitTaskLifetimeRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewTaskDeclaration("", "do_thing"))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestExplicitTaskLifetimeAllowsAutomatic(t *testing.T) {
	r := newExplicitTaskLifetimeRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewTaskDeclaration(svgrammar.KeywordAutomatic, "do_thing"))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestExplicitTaskLifetimeAllowsStatic(t *testing.T) {
	r := newExplicitTaskLifetimeRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewTaskDeclaration(svgrammar.KeywordStatic, "do_thing"))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
