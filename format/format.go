// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package format renders lintrule.RuleStatus findings as diagnostic
// text, one violation per line, with optional source-line and caret
// context.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/text"
	"github.com/svlint/svlint/token"
)

// Formatter renders violations against a single file's source.
type Formatter struct {
	// ShowContext, when true, follows each violation line with the
	// offending source line and a caret line underneath it.
	ShowContext bool
}

var helperPlaceholder = regexp.MustCompile(`\\@|@(\d+)`)

// expandReason resolves "@N" helper placeholders in reason to
// "path:line:col" for the N-th related token (1-based), and "\@" to a
// literal "@".
func expandReason(reason, filename string, related []token.Token, base []byte, lcmap *text.LineColumnMap) string {
	return helperPlaceholder.ReplaceAllStringFunc(reason, func(m string) string {
		if m == `\@` {
			return "@"
		}
		n, err := strconv.Atoi(m[1:])
		if err != nil || n < 1 || n > len(related) {
			return m
		}
		v := lintrule.Violation{Token: related[n-1]}
		lc := lcmap.Lookup(v.Offset(base))
		return fmt.Sprintf("%s:%s", filename, lc.String())
	})
}

// FormatViolation renders one violation as:
//
//	<path>:<line>:<col>[:<endline>:<endcol>]: <reason> <url> [<rule-id>]
//
// followed, when f.ShowContext is set, by the source line and a caret
// line whose leading padding is counted in runes (not bytes) so carets
// align correctly under multi-byte UTF-8 text.
func (f Formatter) FormatViolation(filename string, base []byte, lines []string, lcmap *text.LineColumnMap, status lintrule.RuleStatus, v lintrule.Violation) string {
	start := v.Offset(base)
	end := start + len(v.Token.Text)
	startLC := lcmap.Lookup(start)
	endOffset := end
	if endOffset > start {
		endOffset--
	}
	endLC := lcmap.Lookup(endOffset)

	reason := expandReason(v.Reason, filename, v.RelatedTokens, base, lcmap)

	var loc string
	if startLC.Line != endLC.Line {
		loc = fmt.Sprintf("%s:%s:%s", filename, startLC.String(), endLC.String())
	} else {
		loc = fmt.Sprintf("%s:%s", filename, startLC.String())
	}

	var b strings.Builder
	b.WriteString(loc)
	b.WriteString(": ")
	b.WriteString(reason)
	if status.InfoURL != "" {
		b.WriteByte(' ')
		b.WriteString(status.InfoURL)
	}
	b.WriteString(" [")
	b.WriteString(status.RuleID)
	b.WriteByte(']')

	if f.ShowContext && startLC.Line >= 0 && startLC.Line < len(lines) {
		line := lines[startLC.Line]
		b.WriteByte('\n')
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(caretLine(line, startLC.Column, len(v.Token.Text)))
	}

	return b.String()
}

// caretLine renders one leading space per rune of line[:byteColumn],
// followed by one caret per rune of the token (clipped to the remainder
// of the line). Padding is counted in runes, not bytes, so carets land
// under the right character when multi-byte UTF-8 text precedes the
// violation.
func caretLine(line string, byteColumn, tokenByteLen int) string {
	if byteColumn > len(line) {
		byteColumn = len(line)
	}
	padWidth := utf8.RuneCountInString(line[:byteColumn])

	end := byteColumn + tokenByteLen
	if end > len(line) {
		end = len(line)
	}
	caretWidth := utf8.RuneCountInString(line[byteColumn:end])
	if caretWidth < 1 {
		caretWidth = 1
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", padWidth))
	b.WriteString(strings.Repeat("^", caretWidth))
	return b.String()
}

// FormatStatuses renders every violation across statuses, sorted by
// token start offset across all rules (not grouped per rule), one
// rendering per violation.
func (f Formatter) FormatStatuses(filename string, base []byte, lines []string, lcmap *text.LineColumnMap, statuses []lintrule.RuleStatus) string {
	type entry struct {
		status lintrule.RuleStatus
		v      lintrule.Violation
	}
	var entries []entry
	for _, status := range statuses {
		for _, v := range status.Violations {
			entries = append(entries, entry{status: status, v: v})
		}
	}
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].v.Offset(base) < entries[j-1].v.Offset(base); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	rendered := make([]string, 0, len(entries))
	for _, e := range entries {
		rendered = append(rendered, f.FormatViolation(filename, base, lines, lcmap, e.status, e.v))
	}
	return strings.Join(rendered, "\n")
}

// FormatAutofixDiff renders a unified-style text diff between base and
// the result of applying fix to base, for a human to review before
// accepting an autofix. It is a standalone helper: the lint command's
// --show_context output prints only the source line and caret.
func FormatAutofixDiff(base []byte, fix *lintrule.Autofix) string {
	fixed := fix.Apply(base)
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(base), string(fixed), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
