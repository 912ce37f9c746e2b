// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import "testing"

func newNoTabsRule() *noTabsRule {
	r := &noTabsRule{}
	r.init("no-tabs", "tabs")
	return r
}

func TestNoTabsRuleReportsFirstTab(t *testing.T) {
	r := newNoTabsRule()
	r.HandleLine("foo\tbar\tbaz")
	status := r.Report()
	if len(status.Violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(status.Violations))
	}
	if got := string(status.Violations[0].Token.Text); got != "\t" {
		t.Fatalf("token text = %q, want a single tab", got)
	}
}

func TestNoTabsRuleSilentWithoutTabs(t *testing.T) {
	r := newNoTabsRule()
	r.HandleLine("  no tabs here")
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestNoTabsRuleReportsOncePerLine(t *testing.T) {
	r := newNoTabsRule()
	r.HandleLine("a\tb")
	r.HandleLine("c\td\te")
	if got := len(r.Report().Violations); got != 2 {
		t.Fatalf("got %d violations, want 2 (one per offending line)", got)
	}
}
