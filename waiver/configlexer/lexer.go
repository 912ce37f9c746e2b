// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package configlexer tokenizes one line of an external waiver-config
// file: `waive --rule=<rule-id> [--line=N|--line=N:M] [--location=<regex>]`.
// Grounded on ConfigFileLexer's token kinds (COMMAND, FLAG,
// FLAG_WITH_ARG, ARG, PARAM, NEWLINE, COMMENT, ERROR); re-expressed as a
// straightforward whitespace tokenizer rather than a generated flex
// scanner, since the grammar is a flat flag list rather than anything
// recursive.
package configlexer

import "strings"

// Kind is a lexical token category within one waiver-config line.
type Kind int

const (
	COMMAND Kind = iota
	FLAG
	FLAG_WITH_ARG
	ARG
	PARAM
	NEWLINE
	COMMENT
	ERROR
)

func (k Kind) String() string {
	switch k {
	case COMMAND:
		return "COMMAND"
	case FLAG:
		return "FLAG"
	case FLAG_WITH_ARG:
		return "FLAG_WITH_ARG"
	case ARG:
		return "ARG"
	case PARAM:
		return "PARAM"
	case NEWLINE:
		return "NEWLINE"
	case COMMENT:
		return "COMMENT"
	default:
		return "ERROR"
	}
}

// Token is one lexed element of a waiver-config line.
type Token struct {
	Kind Kind
	Text string // flag name or arg value, with -- and = stripped as applicable
}

// LexLine tokenizes a single line. A leading '#' (after optional
// whitespace) makes the whole line a single COMMENT token. The first
// non-flag word is COMMAND; words beginning with "--" are FLAG (no
// value) or FLAG_WITH_ARG (split on the first '='); anything else not
// recognized as a flag or the command is PARAM. An empty or
// whitespace-only line yields a single NEWLINE token.
func LexLine(line string) []Token {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return []Token{{Kind: NEWLINE}}
	}
	if strings.HasPrefix(trimmed, "#") {
		return []Token{{Kind: COMMENT, Text: trimmed}}
	}

	fields := strings.Fields(trimmed)
	tokens := make([]Token, 0, len(fields))
	sawCommand := false
	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, "--"):
			body := f[2:]
			if body == "" {
				tokens = append(tokens, Token{Kind: ERROR, Text: f})
				continue
			}
			if name, arg, hasArg := strings.Cut(body, "="); hasArg {
				tokens = append(tokens, Token{Kind: FLAG_WITH_ARG, Text: name})
				tokens = append(tokens, Token{Kind: ARG, Text: arg})
			} else {
				tokens = append(tokens, Token{Kind: FLAG, Text: body})
			}
		case !sawCommand:
			tokens = append(tokens, Token{Kind: COMMAND, Text: f})
			sawCommand = true
		default:
			tokens = append(tokens, Token{Kind: PARAM, Text: f})
		}
	}
	return tokens
}

// Lex tokenizes every line of content, one LexLine call per line, in
// order.
func Lex(content string) [][]Token {
	lines := strings.Split(content, "\n")
	out := make([][]Token, 0, len(lines))
	for _, line := range lines {
		out = append(out, LexLine(line))
	}
	return out
}
