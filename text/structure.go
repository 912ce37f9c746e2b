// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package text

import (
	"unsafe"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/token"
)

// Structure bundles everything a lint run needs about one source file:
// the raw buffer, the complete token sequence (including whitespace and
// comments), a filtered view of just the non-trivia tokens, a
// line-column map, and the parsed syntax tree (nil when the source was
// ill-formed and could not be salvaged into a tree).
//
// Structure owns the source buffer; every Token and cst.Leaf reachable
// from it borrows a slice of that buffer and must not be retained past
// the structure's own lifetime.
type Structure struct {
	Filename string
	Contents []byte

	// Tokens is every token lexed from Contents, in source order,
	// including whitespace, newlines, and comments.
	Tokens []token.Token

	// FilteredTokens is the subsequence of Tokens considered significant
	// by the grammar (i.e. with trivia like whitespace and comments
	// removed). It is a strict subsequence of Tokens, in the same order.
	FilteredTokens []token.Token

	LineColumnMap *LineColumnMap

	// Syntax is the root of the parsed concrete syntax tree, or nil if
	// the source could not be parsed into one.
	Syntax cst.Symbol
}

// NewStructure bundles already-lexed data into a Structure, deriving the
// line-column map from contents. filteredTokens must be a subsequence of
// tokens; callers are responsible for that invariant (see IsTrivia
// for the default whitespace/comment predicate used by most lexers).
func NewStructure(filename string, contents []byte, tokens, filteredTokens []token.Token, syntax cst.Symbol) *Structure {
	return &Structure{
		Filename:       filename,
		Contents:       contents,
		Tokens:         tokens,
		FilteredTokens: filteredTokens,
		LineColumnMap:  NewLineColumnMap(string(contents)),
		Syntax:         syntax,
	}
}

// IsTrivia is the default predicate distinguishing whitespace/comment
// tokens (never passed to token-stream or syntax-tree rules in their
// filtered form) from everything else.
func IsTrivia(k token.Kind) bool {
	switch k {
	case token.Space, token.Newline, token.LineComment, token.BlockComment:
		return true
	default:
		return false
	}
}

// Filter builds the FilteredTokens view from Tokens using IsTrivia,
// always keeping the trailing EOF sentinel. Call this after populating
// Tokens directly (e.g. from a fresh lex), rather than constructing
// FilteredTokens by hand.
func (s *Structure) Filter() {
	out := make([]token.Token, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		if t.IsEOF() || !IsTrivia(t.Kind) {
			out = append(out, t)
		}
	}
	s.FilteredTokens = out
}

// Lines splits Contents into lines without trailing newlines, using the
// line-column map's recorded line-start offsets so the split is
// consistent with every offset-to-line translation elsewhere in the
// engine. When Contents ends in a newline, the final element is the
// empty string rather than being dropped: posix-eof relies on seeing
// that empty last line to tell a properly-terminated file apart from
// one whose last line is missing its newline.
func (s *Structure) Lines() []string {
	offsets := s.LineColumnMap.GetBeginningOfLineOffsets()
	lines := make([]string, 0, len(offsets))
	for i, start := range offsets {
		end := len(s.Contents)
		if i+1 < len(offsets) {
			end = offsets[i+1] - 1 // exclude the newline itself
		}
		if start > end {
			end = start
		}
		if end > len(s.Contents) {
			end = len(s.Contents)
		}
		lines = append(lines, unsafeString(s.Contents[start:end]))
	}
	return lines
}

// unsafeString views b as a string without copying it. The result must
// not outlive b, same lifetime rule as every other borrowed Token.Text
// in this module: it exists so that a line handed to a LineRule still
// aliases Contents, letting token.FromString (and Violation.Offset's
// pointer-arithmetic fast path) locate a substring of that line without
// falling back to a content search.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
