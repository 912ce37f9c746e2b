// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"strings"
	"testing"
)

func newLineLengthRule() *lineLengthRule {
	r := &lineLengthRule{limit: defaultLineLengthLimit}
	r.init("line-length", "line-length")
	return r
}

func TestLineLengthRuleDefaultLimit(t *testing.T) {
	r := newLineLengthRule()
	r.HandleLine(strings.Repeat("x", 101))
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestLineLengthRuleAtLimitIsFine(t *testing.T) {
	r := newLineLengthRule()
	r.HandleLine(strings.Repeat("x", 100))
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestLineLengthRuleConfigurableLimit(t *testing.T) {
	r := newLineLengthRule()
	if err := r.Configure("10"); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	r.HandleLine(strings.Repeat("x", 11))
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestLineLengthRuleRejectsBadConfig(t *testing.T) {
	r := newLineLengthRule()
	if err := r.Configure("not-a-number"); err == nil {
		t.Fatalf("expected an error for a non-numeric config")
	}
	if err := r.Configure("0"); err == nil {
		t.Fatalf("expected an error for a non-positive limit")
	}
}

func TestLineLengthRuleCountsRunesNotBytes(t *testing.T) {
	r := newLineLengthRule()
	if err := r.Configure("3"); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	// "café" is 4 runes but 5 bytes; it must be measured as 4.
	r.HandleLine("café")
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1 (café is 4 runes, over a limit of 3)", got)
	}
}
