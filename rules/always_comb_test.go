// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
)

func newAlwaysCombRule() *alwaysCombRule {
	r := &alwaysCombRule{}
	r.init("always-comb", "always-blocks")
	return r
}

func TestAlwaysCombFlagsAlwaysStar(t *testing.T) {
	r := newAlwaysCombRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewAlwaysStar(svgrammar.NewNullStatement()))
	var ctx cst.Context
	walkForTest(r, module, &ctx)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestAlwaysCombIgnoresAlwaysFF(t *testing.T) {
	r := newAlwaysCombRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewAlwaysFF(svgrammar.NewNullStatement()))
	var ctx cst.Context
	walkForTest(r, module, &ctx)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
