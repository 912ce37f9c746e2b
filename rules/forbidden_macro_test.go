// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/token"
)

func newForbiddenMacroRule(config string) *forbiddenMacroRule {
	r := &forbiddenMacroRule{}
	r.init("forbidden-macro", "preprocessor")
	if err := r.Configure(config); err != nil {
		panic(err)
	}
	return r
}

func TestForbiddenMacroFlagsBannedName(t *testing.T) {
	r := newForbiddenMacroRule("ASSERT,FATAL_ERROR")
	r.HandleToken(token.New(svgrammar.MacroIdentifier, []byte("`ASSERT")))
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestForbiddenMacroIgnoresUnlisted(t *testing.T) {
	r := newForbiddenMacroRule("ASSERT")
	r.HandleToken(token.New(svgrammar.MacroIdentifier, []byte("`uvm_info")))
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestForbiddenMacroSilentWithoutConfig(t *testing.T) {
	r := newForbiddenMacroRule("")
	r.HandleToken(token.New(svgrammar.MacroIdentifier, []byte("`ASSERT")))
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
