// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
)

func newExplicitParameterStorageTypeRule() *explicitParameterStorageTypeRule {
	r := &explicitParameterStorageTypeRule{}
	r.init("explicit-parameter-storage-type", "parameters")
	return r
}

func TestExplicitParameterStorageTypeFlagsMissingType(t *testing.T) {
	r := newExplicitParameterStorageTypeRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewParameterDeclaration(false, "", "WIDTH", "8"))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestExplicitParameterStorageTypeAllowsExplicitType(t *testing.T) {
	r := newExplicitParameterStorageTypeRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewParameterDeclaration(false, "int", "WIDTH", "8"))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestExplicitParameterStorageTypeExemptsStringValue(t *testing.T) {
	r := newExplicitParameterStorageTypeRule()
	if err := r.Configure("exempt_type=string"); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	module := svgrammar.NewModule("m", nil, svgrammar.NewParameterDeclaration(false, "", "NAME", `"foo"`))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
