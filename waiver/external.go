// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package waiver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/waiver/configlexer"
)

// ApplyExternalWaivers parses an external waiver-config file's content
// (one directive per line, shell-style '#' comments ignored) and folds
// matching directives into m. targetFile is the path of the file being
// linted; a directive with a --file flag only applies when targetFile
// matches that glob.
func ApplyExternalWaivers(m *Map, activeRules map[string]bool, targetFile, content string) error {
	for lineNo, tokens := range configlexer.Lex(content) {
		if len(tokens) == 0 {
			continue
		}
		switch tokens[0].Kind {
		case configlexer.NEWLINE, configlexer.COMMENT:
			continue
		}
		if tokens[0].Kind != configlexer.COMMAND || tokens[0].Text != "waive" {
			return lintrule.NewError(lintrule.ConfigParseError, "", lineNo+1, 0,
				"expected 'waive' command, got %q", tokens[0].Text)
		}
		d, err := parseDirective(tokens[1:], lineNo+1)
		if err != nil {
			return err
		}
		if d.rule == "" {
			return lintrule.NewError(lintrule.ConfigParseError, "", lineNo+1, 0, "waiver entry missing --rule")
		}
		if activeRules != nil && !activeRules[d.rule] {
			return lintrule.NewError(lintrule.UnknownRule, "", lineNo+1, 0, "waiver refers to unknown rule %q", d.rule)
		}
		if d.file != "" {
			g, err := glob.Compile(d.file, '/')
			if err != nil {
				return lintrule.NewError(lintrule.ConfigParseError, "", lineNo+1, 0, "invalid --file pattern %q: %v", d.file, err)
			}
			if !g.Match(targetFile) {
				continue
			}
		}
		switch {
		case d.location != "":
			m.WaiveWithRegex(d.rule, d.location)
		case d.lineBegin > 0:
			end := d.lineEnd
			if end == 0 {
				end = d.lineBegin
			}
			// --line is 1-based and inclusive; the internal map is
			// 0-based and half-open. beginZero = begin-1, endZero =
			// end-1, and the half-open upper bound is endZero+1 = end.
			m.WaiveLineRange(d.rule, d.lineBegin-1, end)
		default:
			return lintrule.NewError(lintrule.ConfigParseError, "", lineNo+1, 0,
				"waiver entry for %q needs --line or --location", d.rule)
		}
	}
	return nil
}

type directive struct {
	rule              string
	lineBegin, lineEnd int
	location          string
	file              string
}

func parseDirective(tokens []configlexer.Token, lineNo int) (directive, error) {
	var d directive
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.Kind {
		case configlexer.FLAG_WITH_ARG:
			if i+1 >= len(tokens) || tokens[i+1].Kind != configlexer.ARG {
				return d, lintrule.NewError(lintrule.ConfigParseError, "", lineNo, 0, "--%s missing a value", t.Text)
			}
			arg := tokens[i+1].Text
			i++
			switch t.Text {
			case "rule":
				d.rule = arg
			case "line":
				begin, end, err := parseLineRange(arg)
				if err != nil {
					return d, lintrule.NewError(lintrule.ConfigParseError, "", lineNo, 0, "invalid --line value %q: %v", arg, err)
				}
				d.lineBegin, d.lineEnd = begin, end
			case "location":
				d.location = arg
			case "file":
				d.file = arg
			default:
				return d, lintrule.NewError(lintrule.ConfigParseError, "", lineNo, 0, "unknown flag --%s", t.Text)
			}
		case configlexer.FLAG:
			return d, lintrule.NewError(lintrule.ConfigParseError, "", lineNo, 0, "flag --%s requires a value", t.Text)
		case configlexer.ERROR:
			return d, lintrule.NewError(lintrule.ConfigParseError, "", lineNo, 0, "malformed token %q", t.Text)
		case configlexer.PARAM:
			return d, lintrule.NewError(lintrule.ConfigParseError, "", lineNo, 0, "unexpected argument %q", t.Text)
		}
	}
	return d, nil
}

func parseLineRange(arg string) (begin, end int, err error) {
	before, after, hasRange := strings.Cut(arg, ":")
	begin, err = strconv.Atoi(before)
	if err != nil {
		return 0, 0, fmt.Errorf("not a number: %q", before)
	}
	if !hasRange {
		return begin, 0, nil
	}
	end, err = strconv.Atoi(after)
	if err != nil {
		return 0, 0, fmt.Errorf("not a number: %q", after)
	}
	return begin, end, nil
}
