// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package linter

import (
	"crypto/rand"

	"github.com/svlint/svlint/internal/uuid"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/text"
	"github.com/svlint/svlint/token"
	"github.com/svlint/svlint/waiver"
)

// Linter owns the configured set of rule instances for one lint run and
// drives them over a text.Structure. Grounded on verilog_linter.cc's
// VerilogLintTextStructure driving sequence and on the teacher's own
// driver-composition idiom (a struct holding sub-drivers behind a
// single Run entrypoint).
type Linter struct {
	Config *registry.Configuration

	// WaiverTrigger is the comment trigger word for in-source waiver
	// directives (default "verilog_lint").
	WaiverTrigger string
	// IsComment and IsSpace classify grammar-specific token kinds for
	// the in-source waiver scanner; both default to the reserved kinds
	// in package token when left nil.
	IsComment func(token.Kind) bool
	IsSpace   func(token.Kind) bool

	// ExternalWaivers, if set, is merged into the in-source waiver map
	// before filtering (already populated by the caller via
	// waiver.ApplyExternalWaivers against every configured waiver file).
	ExternalWaivers *waiver.Map
}

// Result is the outcome of one Linter.Lint call: the run's correlation
// id (for structured log correlation across a multi-file run) and the
// waiver-filtered rule statuses.
type Result struct {
	RunID    string
	Statuses []lintrule.RuleStatus
}

func defaultKindPredicate(reserved ...token.Kind) func(token.Kind) bool {
	return func(k token.Kind) bool {
		for _, r := range reserved {
			if k == r {
				return true
			}
		}
		return false
	}
}

// Lint runs the configured rules over s, performing the six steps of
// the orchestrator: build the waiver map, run the text-structure
// driver, the line driver, the token-stream driver, the syntax-tree
// driver, then filter every status's violations against the waiver map.
func (l *Linter) Lint(s *text.Structure, filename string) (*Result, error) {
	isComment := l.IsComment
	if isComment == nil {
		isComment = defaultKindPredicate(token.LineComment, token.BlockComment)
	}
	isSpace := l.IsSpace
	if isSpace == nil {
		isSpace = defaultKindPredicate(token.Space, token.Newline)
	}

	// Step 1: build the waiver map.
	builder := waiver.NewBuilder(l.WaiverTrigger, isComment, isSpace)
	builder.ProcessTextStructure(s)
	waivers := builder.GetLintWaiver()
	if l.ExternalWaivers != nil {
		waivers.Merge(l.ExternalWaivers)
	}
	if err := waivers.RegexToLines(string(s.Contents), s.LineColumnMap); err != nil {
		return nil, err
	}

	var all []lintrule.RuleStatus

	textStructureRules, err := l.instantiateTextStructure()
	if err != nil {
		return nil, err
	}
	lineRules, err := l.instantiateLine()
	if err != nil {
		return nil, err
	}
	tokenRules, err := l.instantiateToken()
	if err != nil {
		return nil, err
	}
	syntaxTreeRules, err := l.instantiateSyntaxTree()
	if err != nil {
		return nil, err
	}

	// Step 2: text-structure driver.
	tsDriver := &TextStructureDriver{Rules: textStructureRules}
	all = append(all, tsDriver.Run(filename, func(r lintrule.TextStructureRule) {
		r.Lint(s, filename)
	})...)

	// Step 3: line driver.
	lineDriver := &LineDriver{Rules: lineRules}
	all = append(all, lineDriver.Run(s.Lines())...)

	// Step 4: token-stream driver, full unfiltered token sequence.
	tokenDriver := &TokenStreamDriver{Rules: tokenRules}
	all = append(all, tokenDriver.Run(s.Tokens)...)

	// Step 5: syntax-tree driver.
	if s.Syntax != nil {
		treeDriver := &SyntaxTreeDriver{Rules: syntaxTreeRules}
		all = append(all, treeDriver.Run(s.Syntax)...)
	}

	// Step 6: filter violations against the waiver map.
	filtered := make([]lintrule.RuleStatus, 0, len(all))
	for _, status := range all {
		kept := make([]lintrule.Violation, 0, len(status.Violations))
		for _, v := range status.Violations {
			offset := v.Offset(s.Contents)
			line := s.LineColumnMap.Lookup(offset).Line
			if !waivers.IsWaived(status.RuleID, line) {
				kept = append(kept, v)
			}
		}
		status.Violations = kept
		filtered = append(filtered, status)
	}

	runID, err := uuid.New(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Result{RunID: runID, Statuses: filtered}, nil
}

func (l *Linter) instantiateLine() ([]lintrule.LineRule, error) {
	var rules []lintrule.LineRule
	for id, rc := range l.Config.Rules {
		if !rc.Enabled {
			continue
		}
		if r, ok := registry.CreateLineRule(id); ok {
			if err := configure(r, rc.Config); err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
	}
	return rules, nil
}

func (l *Linter) instantiateToken() ([]lintrule.TokenRule, error) {
	var rules []lintrule.TokenRule
	for id, rc := range l.Config.Rules {
		if !rc.Enabled {
			continue
		}
		if r, ok := registry.CreateTokenRule(id); ok {
			if err := configure(r, rc.Config); err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
	}
	return rules, nil
}

func (l *Linter) instantiateSyntaxTree() ([]lintrule.SyntaxTreeRule, error) {
	var rules []lintrule.SyntaxTreeRule
	for id, rc := range l.Config.Rules {
		if !rc.Enabled {
			continue
		}
		if r, ok := registry.CreateSyntaxTreeRule(id); ok {
			if err := configure(r, rc.Config); err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
	}
	return rules, nil
}

func (l *Linter) instantiateTextStructure() ([]lintrule.TextStructureRule, error) {
	var rules []lintrule.TextStructureRule
	for id, rc := range l.Config.Rules {
		if !rc.Enabled {
			continue
		}
		if r, ok := registry.CreateTextStructureRule(id); ok {
			if err := configure(r, rc.Config); err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
	}
	return rules, nil
}

// configure applies a rule's configuration string if it implements
// Configurable; a rule that doesn't is expected to accept only the
// empty string, consistent with spec.md §4.3.
func configure(r interface{}, config string) error {
	c, ok := r.(lintrule.Configurable)
	if !ok {
		if config != "" {
			return lintrule.NewError(lintrule.RuleConfigError, "", 0, 0, "rule does not accept configuration %q", config)
		}
		return nil
	}
	if err := c.Configure(config); err != nil {
		return lintrule.NewError(lintrule.RuleConfigError, "", 0, 0, "%v", err)
	}
	return nil
}
