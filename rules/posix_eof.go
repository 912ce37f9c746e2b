// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/token"
)

func init() {
	registry.RegisterLineRule(registry.Descriptor{
		Name:           "posix-eof",
		Topic:          "posix-file-endings",
		Description:    "Checks that the file ends with a newline.",
		DefaultEnabled: true,
	}, func() lintrule.LineRule {
		r := &posixEOFRule{}
		r.init("posix-eof", "posix-file-endings")
		return r
	})
}

// posixEOFRule relies on Structure.Lines leaving a trailing empty
// element whenever the file ends in a newline (see text.Structure.Lines):
// a non-empty last line means the file's final newline is missing.
// HandleLine never sees a byte offset directly, so the rule tracks its
// own running offset across calls (every line is exactly followed by
// the '\n' that produced the next one) to anchor the eventual autofix.
type posixEOFRule struct {
	reporter
	offset         int
	lastLine       string
	lastLineOffset int
}

func (r *posixEOFRule) HandleLine(line string) {
	r.lastLine = line
	r.lastLineOffset = r.offset
	r.offset += len(line) + 1
}

// Report builds its one possible violation here, once every line has
// been seen, since only the very last HandleLine call carries the
// information this rule needs.
func (r *posixEOFRule) Report() lintrule.RuleStatus {
	if r.lastLine != "" {
		eof := r.lastLineOffset + len(r.lastLine)
		tail := r.lastLine[len(r.lastLine):]
		fix, _ := lintrule.NewAutofix("Add newline at end of file", []lintrule.TextEdit{
			{Start: eof, End: eof, Replacement: "\n"},
		})
		r.report(lintrule.Violation{
			Token:     token.FromString(token.Unknown, tail),
			Reason:    "File must end with a newline.",
			Autofixes: []*lintrule.Autofix{fix},
		})
	}
	return r.reporter.Report()
}
