// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"strings"

	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/token"
)

func init() {
	registry.RegisterTokenRule(registry.Descriptor{
		Name:           "uvm-macro-semicolon",
		Topic:          "uvm",
		Description:    "Checks that `uvm_* macro invocations are terminated with a semicolon.",
		DefaultEnabled: true,
	}, func() lintrule.TokenRule {
		r := &uvmMacroSemicolonRule{}
		r.init("uvm-macro-semicolon", "uvm")
		return r
	})
}

// uvmMacroSemicolonRule tracks whether the macro identifier most
// recently opened is a `uvm_* call, then checks the next significant
// token after its matching close paren is a semicolon.
type uvmMacroSemicolonRule struct {
	reporter

	inUvmCall bool

	waiting      bool
	pendingClose token.Token
}

func (r *uvmMacroSemicolonRule) HandleToken(t token.Token) {
	switch t.Kind {
	case svgrammar.MacroIdentifier:
		r.inUvmCall = strings.HasPrefix(string(t.Text), "`uvm_")
		return
	case svgrammar.MacroCallCloseParen:
		if r.inUvmCall {
			r.pendingClose = t
			r.waiting = true
		}
		r.inUvmCall = false
		return
	case token.Space:
		return
	}

	if !r.waiting {
		return
	}
	r.waiting = false
	if t.Kind == svgrammar.Punctuation && string(t.Text) == ";" {
		return
	}
	r.report(lintrule.Violation{
		Token:  r.pendingClose,
		Reason: "`uvm_* macro invocation must be terminated with a semicolon.",
	})
}
