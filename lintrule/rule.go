// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package lintrule

import (
	"sort"
	"strings"
	"unsafe"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/text"
	"github.com/svlint/svlint/token"
)

// TextEdit is a single non-overlapping replacement: bytes in
// [Start, End) of the source buffer are replaced by Replacement.
type TextEdit struct {
	Start, End  int
	Replacement string
}

// Autofix is a set of non-overlapping edits plus a human-readable
// description, constructed fully formed: overlapping edits are rejected
// immediately rather than discovered lazily at apply time.
type Autofix struct {
	Description string
	Edits       []TextEdit
}

// NewAutofix validates edits for overlap (sorting a copy by start
// offset) and returns the Autofix, or an *Error with code
// AutofixConflict if any two edits overlap. Overlap is a configuration
// error in the rule that constructed it, and it is reported through the
// standard Error type rather than a panic.
func NewAutofix(description string, edits []TextEdit) (*Autofix, error) {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, NewError(AutofixConflict, "", 0, 0,
				"autofix %q: overlapping edits [%d,%d) and [%d,%d)",
				description, sorted[i-1].Start, sorted[i-1].End, sorted[i].Start, sorted[i].End)
		}
	}
	return &Autofix{Description: description, Edits: edits}, nil
}

// Apply splices the non-edited spans of buf with this autofix's
// replacements, in positional order.
func (a *Autofix) Apply(buf []byte) []byte {
	sorted := make([]TextEdit, len(a.Edits))
	copy(sorted, a.Edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	out := make([]byte, 0, len(buf))
	cursor := 0
	for _, e := range sorted {
		out = append(out, buf[cursor:e.Start]...)
		out = append(out, e.Replacement...)
		cursor = e.End
	}
	out = append(out, buf[cursor:]...)
	return out
}

// Violation is one finding from a single rule. AncestorContext is a
// snapshot of the syntax-tree ancestor chain at the point the violation
// was raised (nil for rule categories that don't walk the tree).
type Violation struct {
	Token           token.Token
	Root            cst.Symbol // optional root symbol the violation concerns
	Reason          string
	AncestorContext []*cst.Node
	Autofixes       []*Autofix

	// RelatedTokens holds any additional tokens a rule's Reason message
	// refers to via the "@N" helper-placeholder syntax (1-based,
	// RelatedTokens[0] is "@1"). Most violations leave this nil.
	RelatedTokens []token.Token
}

// Offset returns the violation's anchoring byte offset within base:
// the start of its token.
func (v Violation) Offset(base []byte) int {
	return offsetOf(base, v.Token.Text)
}

// offsetOf locates text's backing bytes within base by pointer
// arithmetic rather than content search, so a token's position is found
// even when its text isn't unique in the file (a lone tab, a repeated
// line). This also handles zero-length tokens (e.g. a posix-eof
// insertion point): unsafe.SliceData still recovers a meaningful
// pointer from an empty slice produced by slicing base itself, unlike
// indexing text[0].
func offsetOf(base, text []byte) int {
	if len(base) == 0 {
		return 0
	}
	basePtr := unsafe.SliceData(base)
	textPtr := unsafe.SliceData(text)
	if textPtr == nil {
		return len(base)
	}
	off := int(uintptr(unsafe.Pointer(textPtr)) - uintptr(unsafe.Pointer(basePtr)))
	if off < 0 || off > len(base) {
		return strings.Index(string(base), string(text))
	}
	return off
}

// RuleStatus is one rule's complete set of findings for a lint run.
type RuleStatus struct {
	RuleID     string
	InfoURL    string
	Violations []Violation
}

// SortViolationsByOffset sorts vs in place by each violation's token
// start offset within base.
func SortViolationsByOffset(base []byte, vs []Violation) {
	sort.Slice(vs, func(i, j int) bool {
		return vs[i].Offset(base) < vs[j].Offset(base)
	})
}

// Configurable is implemented by any rule exposing a configuration
// string. The default behavior for a rule that does not implement this
// interface is to accept only the empty configuration string.
type Configurable interface {
	Configure(config string) error
}

// LineRule is invoked once per source line (excluding the line's
// trailing newline, if any).
type LineRule interface {
	HandleLine(line string)
	Report() RuleStatus
}

// TokenRule is invoked once per token in the full (unfiltered) token
// stream.
type TokenRule interface {
	HandleToken(t token.Token)
	Report() RuleStatus
}

// SyntaxTreeRule is invoked on every leaf and node, pre-order, with the
// ancestor context available at that point.
type SyntaxTreeRule interface {
	HandleLeaf(leaf *cst.Leaf, ctx *cst.Context)
	HandleNode(node *cst.Node, ctx *cst.Context)
	HandleSymbol(sym cst.Symbol, ctx *cst.Context)
	Report() RuleStatus
}

// TextStructureRule is invoked exactly once, against the entire text
// structure.
type TextStructureRule interface {
	Lint(s *text.Structure, filename string)
	Report() RuleStatus
}
