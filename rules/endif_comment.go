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
		Name:           "endif-comment",
		Topic:          "preprocessor",
		Description:    "Checks that `endif is followed on the same line by a comment naming the condition it closes.",
		DefaultEnabled: true,
	}, func() lintrule.TokenRule {
		r := &endifCommentRule{}
		r.init("endif-comment", "preprocessor")
		return r
	})
}

// endifCommentRule tracks the stack of `ifdef/`ifndef condition names so
// that when an `endif is seen, the comment trailing it (if any) can be
// checked against the condition it closes.
type endifCommentRule struct {
	reporter

	stack []string

	expectName bool // previous token opened a conditional, awaiting its identifier

	pendingEndif token.Token
	pendingName  string
	waitingOnEndifLine bool
	sawCommentOnLine   bool
}

func (r *endifCommentRule) HandleToken(t token.Token) {
	switch {
	case t.Kind == token.Newline:
		if r.waitingOnEndifLine && !r.sawCommentOnLine {
			r.reportMissing()
		}
		r.waitingOnEndifLine = false
		r.sawCommentOnLine = false
		return

	case t.Kind == svgrammar.Directive:
		text := string(t.Text)
		switch text {
		case "`ifdef", "`ifndef":
			r.expectName = true
		case "`endif":
			if r.waitingOnEndifLine && !r.sawCommentOnLine {
				r.reportMissing()
			}
			name := ""
			if n := len(r.stack); n > 0 {
				name = r.stack[n-1]
				r.stack = r.stack[:n-1]
			}
			r.pendingEndif = t
			r.pendingName = name
			r.waitingOnEndifLine = true
			r.sawCommentOnLine = false
		}
		return

	case t.Kind == svgrammar.DirectiveIdentifier:
		if r.expectName {
			r.stack = append(r.stack, string(t.Text))
			r.expectName = false
		}
		return

	case t.Kind == token.LineComment:
		if r.waitingOnEndifLine {
			if r.pendingName == "" || strings.Contains(string(t.Text), r.pendingName) {
				r.sawCommentOnLine = true
			} else {
				r.report(lintrule.Violation{
					Token:  r.pendingEndif,
					Reason: "Comment after `endif does not name the condition it closes: " + r.pendingName,
				})
				r.sawCommentOnLine = true
			}
		}
	}
}

func (r *endifCommentRule) reportMissing() {
	reason := "`endif must be followed by a comment naming the condition it closes."
	if r.pendingName != "" {
		reason = "`endif must be followed by a comment naming the condition it closes: // " + r.pendingName
	}
	r.report(lintrule.Violation{
		Token:  r.pendingEndif,
		Reason: reason,
	})
}

// Report flushes any `endif still waiting on a trailing comment at
// end-of-stream (a file with no final newline after its last `endif).
func (r *endifCommentRule) Report() lintrule.RuleStatus {
	if r.waitingOnEndifLine && !r.sawCommentOnLine {
		r.reportMissing()
		r.waitingOnEndifLine = false
	}
	return r.reporter.Report()
}
