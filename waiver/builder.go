// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package waiver

import (
	"strings"
	"unsafe"

	"github.com/svlint/svlint/text"
	"github.com/svlint/svlint/token"
)

// Builder scans a file's tokens line by line for in-source waiver
// directive comments and accumulates the resulting Map. It is
// language-agnostic: callers supply which token kinds count as
// "comment" and "whitespace" via IsComment/IsSpace, since those are
// grammar-specific.
//
// Grounded on LintWaiverBuilder: a trigger keyword (default
// "verilog_lint") followed by a command ("waive", "waive-start",
// "waive-stop") and a rule id, found inside a comment token. A "waive"
// directive on a line that also carries non-comment, non-whitespace
// tokens waives that same line; otherwise it waives the first
// subsequent line that itself carries non-comment, non-whitespace
// tokens. Per this project's resolution of the corresponding Open
// Question, blank or comment-only lines in between do not cancel a
// pending one-line waiver — only the first qualifying line consumes it.
type Builder struct {
	Trigger           string
	WaiveOneLine      string
	WaiveRangeStart   string
	WaiveRangeStop    string
	IsComment         func(token.Kind) bool
	IsSpace           func(token.Kind) bool

	pendingOneLine map[string]bool
	openRanges     map[string]int
	result         *Map
}

// NewBuilder returns a Builder with the conventional command keywords
// and the given trigger word (defaulting to "verilog_lint" if empty).
func NewBuilder(trigger string, isComment, isSpace func(token.Kind) bool) *Builder {
	if trigger == "" {
		trigger = "verilog_lint"
	}
	return &Builder{
		Trigger:         trigger,
		WaiveOneLine:    "waive",
		WaiveRangeStart: "waive-start",
		WaiveRangeStop:  "waive-stop",
		IsComment:       isComment,
		IsSpace:         isSpace,
		pendingOneLine:  map[string]bool{},
		openRanges:      map[string]int{},
		result:          NewMap(),
	}
}

// GetLintWaiver returns the Map accumulated so far.
func (b *Builder) GetLintWaiver() *Map { return b.result }

// ProcessLine updates the waiver map from one line's tokens.
func (b *Builder) ProcessLine(lineTokens []token.Token, lineNumber int) {
	hasCode := false
	for _, t := range lineTokens {
		if t.IsEOF() {
			continue
		}
		if !b.IsComment(t.Kind) && !b.IsSpace(t.Kind) && t.Kind != token.Newline {
			hasCode = true
			break
		}
	}

	if hasCode {
		for rule := range b.pendingOneLine {
			b.result.WaiveOneLine(rule, lineNumber)
		}
		b.pendingOneLine = map[string]bool{}
	}

	for _, t := range lineTokens {
		if !b.IsComment(t.Kind) {
			continue
		}
		command, rule, ok := b.extractDirective(string(t.Text))
		if !ok {
			continue
		}
		switch command {
		case b.WaiveOneLine:
			if hasCode {
				b.result.WaiveOneLine(rule, lineNumber)
			} else {
				b.pendingOneLine[rule] = true
			}
		case b.WaiveRangeStart:
			b.openRanges[rule] = lineNumber
		case b.WaiveRangeStop:
			if start, ok := b.openRanges[rule]; ok {
				b.result.WaiveLineRange(rule, start, lineNumber+1)
				delete(b.openRanges, rule)
			}
		}
	}
}

// extractDirective looks for b.Trigger inside commentText, followed by a
// command and a rule id, tolerating a colon after the trigger and
// arbitrary whitespace between tokens.
func (b *Builder) extractDirective(commentText string) (command, rule string, ok bool) {
	idx := strings.Index(commentText, b.Trigger)
	if idx < 0 {
		return "", "", false
	}
	rest := commentText[idx+len(b.Trigger):]
	rest = strings.TrimLeft(rest, ": \t")
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

// ProcessTextStructure runs ProcessLine over every line of s, grouping
// s.Tokens by the line their start offset falls on.
func (b *Builder) ProcessTextStructure(s *text.Structure) {
	lineOf := func(pos int) int {
		return s.LineColumnMap.Lookup(pos).Line
	}

	byLine := map[int][]token.Token{}
	maxLine := 0
	for _, t := range s.Tokens {
		if t.IsEOF() {
			continue
		}
		pos := lineStartOffset(s, t)
		ln := lineOf(pos)
		byLine[ln] = append(byLine[ln], t)
		if ln > maxLine {
			maxLine = ln
		}
	}
	for ln := 0; ln <= maxLine; ln++ {
		b.ProcessLine(byLine[ln], ln)
	}
}

// lineStartOffset finds t's byte offset within s.Contents. Tokens lexed
// directly from s.Contents can use pointer arithmetic; anything else
// (e.g. synthesized test tokens) falls back to a content search, same
// strategy as cst.offsetOf.
func lineStartOffset(s *text.Structure, t token.Token) int {
	return offsetWithin(s.Contents, t.Text)
}

func offsetWithin(base, text []byte) int {
	if len(text) == 0 || len(base) == 0 {
		return len(base)
	}
	off := int(uintptr(unsafe.Pointer(&text[0])) - uintptr(unsafe.Pointer(&base[0])))
	if off < 0 || off > len(base) {
		return strings.Index(string(base), string(text))
	}
	return off
}
