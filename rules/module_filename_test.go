// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/text"
)

func newModuleFilenameRule() *moduleFilenameRule {
	r := &moduleFilenameRule{}
	r.init("module-filename", "file-structure")
	return r
}

func TestModuleFilenameAllowsMatchingName(t *testing.T) {
	r := newModuleFilenameRule()
	module := svgrammar.NewModule("counter", nil)
	s := &text.Structure{Syntax: module}
	r.Lint(s, "counter.sv")
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestModuleFilenameFlagsMismatchedName(t *testing.T) {
	r := newModuleFilenameRule()
	module := svgrammar.NewModule("counter", nil)
	s := &text.Structure{Syntax: module}
	r.Lint(s, "top.sv")
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestModuleFilenameSkipsMultiModuleFiles(t *testing.T) {
	r := newModuleFilenameRule()
	a := svgrammar.NewModule("a", nil)
	b := svgrammar.NewModule("b", nil)
	root := cst.NewNode(0, a, b)
	s := &text.Structure{Syntax: root}
	r.Lint(s, "top.sv")
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
