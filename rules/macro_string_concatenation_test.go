// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/token"
)

func newMacroStringConcatenationRule() *macroStringConcatenationRule {
	r := &macroStringConcatenationRule{}
	r.init("macro-string-concatenation", "preprocessor")
	return r
}

func TestMacroStringConcatenationFlagsDirectAdjacency(t *testing.T) {
	r := newMacroStringConcatenationRule()
	r.HandleToken(token.New(svgrammar.MacroIdentifier, []byte("`NAME")))
	r.HandleToken(token.New(svgrammar.StringLiteral, []byte(`"literal"`)))
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestMacroStringConcatenationAllowsSpacedLiteral(t *testing.T) {
	r := newMacroStringConcatenationRule()
	r.HandleToken(token.New(svgrammar.MacroIdentifier, []byte("`NAME")))
	r.HandleToken(token.New(token.Space, []byte(" ")))
	r.HandleToken(token.New(svgrammar.StringLiteral, []byte(`"literal"`)))
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
