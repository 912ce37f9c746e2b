// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/token"
)

func newUndersizedBinaryLiteralRule() *undersizedBinaryLiteralRule {
	r := &undersizedBinaryLiteralRule{}
	r.init("undersized-binary-literal", "numeric-literals")
	return r
}

func numberLiteral(text string) *cst.Leaf {
	return cst.NewLeaf(token.New(svgrammar.NumberLiteral, []byte(text)))
}

func TestUndersizedBinaryLiteralAllowsFullWidth(t *testing.T) {
	r := newUndersizedBinaryLiteralRule()
	module := svgrammar.NewModule("m", nil, numberLiteral("8'b0000_1111"))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}

func TestUndersizedBinaryLiteralFlagsShortDigits(t *testing.T) {
	r := newUndersizedBinaryLiteralRule()
	module := svgrammar.NewModule("m", nil, numberLiteral("8'b11"))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 1 {
		t.Fatalf("got %d violations, want 1", got)
	}
}

func TestUndersizedBinaryLiteralIgnoresOtherBases(t *testing.T) {
	r := newUndersizedBinaryLiteralRule()
	module := svgrammar.NewModule("m", nil, numberLiteral("8'hFF"))
	walkForTest(r, module, nil)
	if got := len(r.Report().Violations); got != 0 {
		t.Fatalf("got %d violations, want 0", got)
	}
}
