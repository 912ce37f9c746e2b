// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/text"
)

func newPackageFilenameRule() *packageFilenameRule {
	r := &packageFilenameRule{}
	r.init("package-filename", "file-structure")
	return r
}

func TestPackageFilenameAllowsMatchingName(t *testing.T) {
	r := newPackageFilenameRule()
	pkg := svgrammar.NewPackageDeclaration("util_pkg")
	s := &text.Structure{Syntax: pkg}
	r.Lint(s, "util_pkg.sv")
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestPackageFilenameFlagsMismatchedName(t *testing.T) {
	r := newPackageFilenameRule()
	pkg := svgrammar.NewPackageDeclaration("util_pkg")
	s := &text.Structure{Syntax: pkg}
	r.Lint(s, "other.sv")
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}
