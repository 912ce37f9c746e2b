// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package svgrammar stands in for the SystemVerilog lexer/parser that
// spec.md treats as an external collaborator: it only needs to produce
// a token stream and a cst.Symbol tree, so this package fixes one
// concrete token.Kind and cst.Tag numbering that the rules package and
// its tests build against. A real grammar front-end would replace this
// package without touching anything under lintrule, registry, waiver,
// linter, or format.
package svgrammar

import "github.com/svlint/svlint/token"

// Token kinds beyond the trivia/Identifier kinds already reserved by
// package token. Grounded on verilog_token_enum.h's PP_*/TK_* naming,
// collapsed to the subset the rules in this module actually switch on.
const (
	Keyword token.Kind = token.FirstUserKind + iota
	Directive
	DirectiveIdentifier // the argument to `ifdef/`ifndef/`define
	MacroIdentifier     // a `NAME macro call/reference
	MacroCallCloseParen
	StringLiteral
	NumberLiteral
	Operator
	Punctuation
)

// Comment tokens reuse package token's reserved LineComment/BlockComment
// kinds directly (token.LineComment, token.BlockComment) rather than
// redefining them here, since the waiver scanner and endif-comment both
// need to recognize the same kind regardless of which grammar produced
// it.
