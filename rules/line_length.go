// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"fmt"
	"strconv"

	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/token"
)

const defaultLineLengthLimit = 100

func init() {
	registry.RegisterLineRule(registry.Descriptor{
		Name:           "line-length",
		Topic:          "line-length",
		Description:    "Checks that no line exceeds a maximum length, in characters.",
		DefaultEnabled: true,
	}, func() lintrule.LineRule {
		r := &lineLengthRule{limit: defaultLineLengthLimit}
		r.init("line-length", "line-length")
		return r
	})
}

// lineLengthRule is shaped like noTabsRule: a single-field line rule
// matcher, the configurable limit standing in for the fixed '\t' match.
type lineLengthRule struct {
	reporter
	limit int
}

// Configure accepts a bare positive integer overriding the default
// limit, e.g. "120".
func (r *lineLengthRule) Configure(config string) error {
	if config == "" {
		return nil
	}
	n, err := strconv.Atoi(config)
	if err != nil || n <= 0 {
		return lintrule.NewError(lintrule.RuleConfigError, "", 0, 0,
			"line-length: expected a positive integer, got %q", config)
	}
	r.limit = n
	return nil
}

func (r *lineLengthRule) HandleLine(line string) {
	length := len([]rune(line))
	if length <= r.limit {
		return
	}
	overflowStart := runeByteOffset(line, r.limit)
	r.report(lintrule.Violation{
		Token:  token.FromString(token.Unknown, line[overflowStart:]),
		Reason: fmt.Sprintf("Line length exceeds %d characters.", r.limit),
	})
}

// runeByteOffset returns the byte offset of the n-th rune in s.
func runeByteOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
