// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package waiver implements the two waiver sources spec.md §4.5
// describes: in-source comment directives, scanned line by line, and
// external waiver-config files, parsed with a small dedicated lexer
// (package waiver/configlexer). Both funnel into one Map consulted by
// the linter driver when filtering rule violations.
package waiver

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/svlint/svlint/text"
)

// regexCacheSize bounds the number of compiled --location patterns kept
// warm across waiver-file applications within one process.
const regexCacheSize = 128

var regexCache, _ = lru.New[string, *regexp.Regexp](regexCacheSize)

func compileCached(pattern string) (*regexp.Regexp, error) {
	if re, ok := regexCache.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache.Add(pattern, re)
	return re, nil
}

// Map is the per-rule set of waived line numbers, plus regex patterns
// pending conversion into line numbers once source content is
// available.
type Map struct {
	lines   map[string]map[int]bool
	regexes map[string][]string
}

// NewMap returns an empty waiver Map.
func NewMap() *Map {
	return &Map{lines: map[string]map[int]bool{}, regexes: map[string][]string{}}
}

// WaiveOneLine adds a single waived line for rule.
func (m *Map) WaiveOneLine(rule string, line int) {
	m.ensure(rule)
	m.lines[rule][line] = true
}

// WaiveLineRange waives every line in the half-open range [begin, end)
// for rule.
func (m *Map) WaiveLineRange(rule string, begin, end int) {
	m.ensure(rule)
	for l := begin; l < end; l++ {
		m.lines[rule][l] = true
	}
}

// WaiveWithRegex records a regex pattern to be resolved into line
// numbers later via RegexToLines, once the source content is known.
func (m *Map) WaiveWithRegex(rule, pattern string) {
	m.regexes[rule] = append(m.regexes[rule], pattern)
}

func (m *Map) ensure(rule string) {
	if m.lines[rule] == nil {
		m.lines[rule] = map[int]bool{}
	}
}

// RegexToLines compiles and applies every pending regex pattern against
// content, converting each match's starting byte offset into a line
// number via lcmap and waiving that line.
func (m *Map) RegexToLines(content string, lcmap *text.LineColumnMap) error {
	for rule, patterns := range m.regexes {
		for _, pattern := range patterns {
			re, err := compileCached(pattern)
			if err != nil {
				return fmt.Errorf("waiver: invalid --location regex %q for rule %q: %w", pattern, rule, err)
			}
			for _, loc := range re.FindAllStringIndex(content, -1) {
				lc := lcmap.Lookup(loc[0])
				m.WaiveOneLine(rule, lc.Line)
			}
		}
	}
	m.regexes = map[string][]string{}
	return nil
}

// IsWaived reports whether line is waived for rule.
func (m *Map) IsWaived(rule string, line int) bool {
	set, ok := m.lines[rule]
	if !ok {
		return false
	}
	return set[line]
}

// Empty reports whether no lines are waived for any rule.
func (m *Map) Empty() bool {
	for _, set := range m.lines {
		if len(set) > 0 {
			return false
		}
	}
	return true
}

// Merge folds other's waived lines and pending regexes into m.
func (m *Map) Merge(other *Map) {
	for rule, set := range other.lines {
		m.ensure(rule)
		for line := range set {
			m.lines[rule][line] = true
		}
	}
	for rule, patterns := range other.regexes {
		m.regexes[rule] = append(m.regexes[rule], patterns...)
	}
}
