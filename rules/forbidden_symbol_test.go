// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/token"
)

func newForbiddenSymbolRule(config string) *forbiddenSymbolRule {
	r := &forbiddenSymbolRule{}
	r.init("forbidden-symbol", "forbidden-constructs")
	if err := r.Configure(config); err != nil {
		panic(err)
	}
	return r
}

func TestForbiddenSymbolFlagsBannedIdentifier(t *testing.T) {
	r := newForbiddenSymbolRule("legacy_reset_n")
	r.HandleToken(token.New(token.Identifier, []byte("legacy_reset_n")))
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestForbiddenSymbolIgnoresOtherIdentifiers(t *testing.T) {
	r := newForbiddenSymbolRule("legacy_reset_n")
	r.HandleToken(token.New(token.Identifier, []byte("clk")))
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
