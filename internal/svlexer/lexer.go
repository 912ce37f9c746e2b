// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package svlexer is the minimal real tokenizer cmd/lint.go runs a file
// through before handing it to the linter: it recognizes enough of
// SystemVerilog's lexical surface (comments, backtick directives and
// macro calls, string and number literals, identifiers, keywords, and
// punctuation) to drive every line- and token-stream-category rule.
// It never builds a concrete syntax tree; text.Structure.Syntax stays
// nil for a file lexed by this package, so syntax-tree-category rules
// simply find nothing to walk at runtime (they are exercised through
// their own tests, which hand-build trees with internal/svgrammar).
// A real parser front-end, per spec.md and SPEC_FULL.md, is an
// external collaborator this module never takes on.
package svlexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/text"
	"github.com/svlint/svlint/token"
)

var keywords = map[string]bool{
	"module": true, "endmodule": true, "package": true, "endpackage": true,
	"interface": true, "endinterface": true, "always": true, "always_comb": true,
	"always_ff": true, "always_latch": true, "begin": true, "end": true,
	"generate": true, "endgenerate": true, "defparam": true, "parameter": true,
	"localparam": true, "enum": true, "struct": true, "union": true,
	"typedef": true, "automatic": true, "static": true, "function": true,
	"endfunction": true, "task": true, "endtask": true, "void": true,
	"if": true, "else": true, "for": true, "while": true, "input": true,
	"output": true, "inout": true, "logic": true, "wire": true, "reg": true,
	"assign": true, "posedge": true, "negedge": true, "constraint": true,
}

// Lex tokenizes contents into a *text.Structure named filename. The
// returned structure's Tokens are in source order and do not overlap,
// but they do not cover every byte: spaces and tabs between a directive
// and its identifier argument, and a macro call's parenthesized
// arguments up to (not including) the closing parenthesis, belong to no
// token. FilteredTokens drops whitespace/comments via
// text.Structure.Filter.
func Lex(filename string, contents []byte) *text.Structure {
	var toks []token.Token
	i := 0
	n := len(contents)
	for i < n {
		start := i
		c := contents[i]
		switch {
		case c == '\n':
			toks = append(toks, token.New(token.Newline, contents[i:i+1]))
			i++
		case c == ' ' || c == '\t' || c == '\r':
			for i < n && (contents[i] == ' ' || contents[i] == '\t' || contents[i] == '\r') {
				i++
			}
			toks = append(toks, token.New(token.Space, contents[start:i]))
		case c == '/' && i+1 < n && contents[i+1] == '/':
			for i < n && contents[i] != '\n' {
				i++
			}
			toks = append(toks, token.New(token.LineComment, contents[start:i]))
		case c == '/' && i+1 < n && contents[i+1] == '*':
			i += 2
			for i+1 < n && !(contents[i] == '*' && contents[i+1] == '/') {
				i++
			}
			if i+1 < n {
				i += 2
			} else {
				i = n
			}
			toks = append(toks, token.New(token.BlockComment, contents[start:i]))
		case c == '`':
			i++
			for i < n && isIdentByte(contents[i]) {
				i++
			}
			name := string(contents[start+1 : i])
			switch name {
			case "ifdef", "ifndef", "define", "undef", "else", "elsif", "endif", "include", "timescale", "default_nettype", "celldefine", "endcelldefine", "resetall":
				toks = append(toks, token.New(svgrammar.Directive, contents[start:i]))
				// a leading identifier argument, e.g. `ifdef FOO or `define FOO
				for i < n && (contents[i] == ' ' || contents[i] == '\t') {
					i++
				}
				argStart := i
				for i < n && isIdentByte(contents[i]) {
					i++
				}
				if i > argStart {
					toks = append(toks, token.New(svgrammar.DirectiveIdentifier, contents[argStart:i]))
				}
			default:
				toks = append(toks, token.New(svgrammar.MacroIdentifier, contents[start:i]))
				if i < n && contents[i] == '(' {
					depth := 0
					for i < n {
						if contents[i] == '(' {
							depth++
						}
						if contents[i] == ')' {
							depth--
							if depth == 0 {
								i++
								break
							}
						}
						i++
					}
					toks = append(toks, token.New(svgrammar.MacroCallCloseParen, contents[i-1:i]))
				}
			}
		case c == '"':
			i++
			for i < n && contents[i] != '"' {
				if contents[i] == '\\' && i+1 < n {
					i++
				}
				i++
			}
			if i < n {
				i++
			}
			toks = append(toks, token.New(svgrammar.StringLiteral, contents[start:i]))
		case c >= '0' && c <= '9':
			for i < n && (isIdentByte(contents[i]) || contents[i] == '\'' || contents[i] == '.') {
				i++
			}
			toks = append(toks, token.New(svgrammar.NumberLiteral, contents[start:i]))
		case isIdentStart(contents[i]):
			for i < n && isIdentByte(contents[i]) {
				i++
			}
			text := string(contents[start:i])
			kind := token.Identifier
			if keywords[text] {
				kind = svgrammar.Keyword
			}
			toks = append(toks, token.New(kind, contents[start:i]))
		default:
			r, size := utf8.DecodeRune(contents[i:])
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				i += size
				toks = append(toks, token.New(svgrammar.Punctuation, contents[start:i]))
			} else {
				i += size
				toks = append(toks, token.New(svgrammar.Punctuation, contents[start:i]))
			}
		}
	}
	toks = append(toks, token.EOFToken(contents))

	s := text.NewStructure(filename, contents, toks, nil, nil)
	s.Filter()
	return s
}

func isIdentStart(b byte) bool { return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isIdentByte(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
