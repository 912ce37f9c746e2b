// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/internal/svgrammar"
)

func newLegacyGenerateRegionRule() *legacyGenerateRegionRule {
	r := &legacyGenerateRegionRule{}
	r.init("legacy-generate-region", "generate-constructs")
	return r
}

func TestLegacyGenerateRegionFlagsGenerateKeyword(t *testing.T) {
	r := newLegacyGenerateRegionRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewGenerateRegion(svgrammar.NewGenerateBlock("gen_x", svgrammar.NewNullStatement())))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestLegacyGenerateRegionAllowsBareGenerateBlock(t *testing.T) {
	r := newLegacyGenerateRegionRule()
	module := svgrammar.NewModule("m", nil, svgrammar.NewGenerateBlock("gen_x", svgrammar.NewNullStatement()))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
