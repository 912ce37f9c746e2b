// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package token defines the lexical token abstraction shared by every
// layer of the lint engine: a kind tag plus a slice of the original
// source buffer.
package token

import "unsafe"

// Kind identifies the lexical category of a Token. The concrete set of
// kinds is owned by whatever grammar produced the tokens (the external
// lexer/parser); this package only reserves the values every rule
// category needs to recognize directly.
type Kind int

const (
	// Unknown is the zero value; never produced by a well-formed lexer.
	Unknown Kind = iota
	// EOF is the distinguished sentinel marking the end of a token stream.
	EOF
	// Space is horizontal whitespace, including tabs.
	Space
	// Newline is an end-of-line token.
	Newline
	// LineComment is a "//..." style comment.
	LineComment
	// BlockComment is a "/* ... */" style comment.
	BlockComment
	// Identifier is a plain identifier.
	Identifier
	// firstUserKind is the first value available to a grammar-specific
	// enum built on top of this package.
	firstUserKind
)

// FirstUserKind is the first Kind value a grammar may assign to its own
// token categories without colliding with the reserved kinds above.
const FirstUserKind = firstUserKind

// Token is a lexeme: a kind tag and a slice of the source buffer it was
// lexed from. Token never copies source text; its Text field must not
// outlive the buffer it slices.
type Token struct {
	Kind Kind
	Text []byte
}

// New returns a Token with the given kind and text.
func New(kind Kind, text []byte) Token {
	return Token{Kind: kind, Text: text}
}

// FromString builds a Token whose Text aliases s's own backing bytes
// rather than copying them. Line rules only ever see a string (the
// fixed handle-line(line) signature has no byte-offset parameter to
// pass instead), so this is how a violation raised from a substring of
// that line still resolves to a real offset in the original buffer via
// offsetOf's pointer arithmetic: s itself must already alias the
// source buffer, which is true of every line Structure.Lines returns.
func FromString(kind Kind, s string) Token {
	if len(s) == 0 {
		return Token{Kind: kind}
	}
	return Token{Kind: kind, Text: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// EOFToken returns the distinguished EOF sentinel: a zero-length slice
// positioned at the end of buf.
func EOFToken(buf []byte) Token {
	return Token{Kind: EOF, Text: buf[len(buf):]}
}

// IsEOF reports whether t is an EOF sentinel.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// String returns the token text as a string. This copies.
func (t Token) String() string { return string(t.Text) }

// Equal compares two tokens by kind and text contents, checking the
// cheaper length match before the byte comparison. Unlike
// EquivalentWithoutLocation, Equal has no EOF special case: two EOF
// tokens are equal only if their texts match.
func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind && len(t.Text) == len(o.Text) && string(t.Text) == string(o.Text)
}

// EquivalentWithoutLocation compares kind and text contents, ignoring
// where in the source the text came from. EOF tokens compare equal to
// any other EOF token regardless of text.
func (t Token) EquivalentWithoutLocation(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == EOF {
		return true
	}
	return string(t.Text) == string(o.Text)
}

// Concat rebuilds a single string from a sequence of tokens and rewrites
// each token's Text to point into the new buffer, preserving relative
// order and adjacency. This is primarily useful for building test
// fixtures out of independently-constructed tokens.
func Concat(tokens []Token) (string, []Token) {
	total := 0
	for _, t := range tokens {
		total += len(t.Text)
	}
	buf := make([]byte, 0, total)
	offsets := make([]int, len(tokens))
	for i, t := range tokens {
		offsets[i] = len(buf)
		buf = append(buf, t.Text...)
	}
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		start := offsets[i]
		out[i] = Token{Kind: t.Kind, Text: buf[start : start+len(t.Text)]}
	}
	return string(buf), out
}
