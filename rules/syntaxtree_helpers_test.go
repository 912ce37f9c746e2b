// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/linter"
	"github.com/svlint/svlint/lintrule"
)

// walkForTest runs r over root using the real SyntaxTreeDriver, so
// every test sees the same push-before-dispatch ancestor-context
// ordering the production linter uses.
func walkForTest(r lintrule.SyntaxTreeRule, root cst.Symbol, _ *cst.Context) {
	d := &linter.SyntaxTreeDriver{Rules: []lintrule.SyntaxTreeRule{r}}
	d.Run(root)
}
