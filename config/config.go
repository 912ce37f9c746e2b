// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package config implements the top-level configuration resolution
// order from spec.md §4.6: select a rule-set preset, apply bundle
// overrides, layer in a rules-config file (explicit or discovered by
// walking up from the lint target), apply every built-in project
// policy, and record waiver-file paths.
package config

import (
	"os"
	"path/filepath"

	"github.com/svlint/svlint/registry"
)

// SearchFilename is the project-local rules-config file Resolve walks
// up the directory tree looking for when RulesConfigSearch is set.
const SearchFilename = ".rules.verible_lint"

// Options collects the CLI-level inputs to Resolve, one field per
// --ruleset/--rules/--rules_config/--rules_config_search/--waiver_files
// flag in cmd/lint.go.
type Options struct {
	RuleSet           string
	Rules             string
	RulesConfig       string
	RulesConfigSearch bool
	WaiverFiles       []string
	// LintTarget is the path Resolve starts its upward search from when
	// RulesConfigSearch is set; typically the file or directory being
	// linted.
	LintTarget string
}

// Resolve runs the full resolution order and returns the Configuration
// a Linter should be driven with.
func Resolve(opts Options) (*registry.Configuration, error) {
	rs, err := registry.ParseRuleSet(opts.RuleSet)
	if err != nil {
		return nil, err
	}
	cfg := registry.NewConfiguration(rs)

	if opts.Rules != "" {
		if err := cfg.ApplyBundle(opts.Rules); err != nil {
			return nil, err
		}
	}

	switch {
	case opts.RulesConfig != "":
		raw, err := os.ReadFile(opts.RulesConfig)
		if err != nil {
			return nil, err
		}
		if err := cfg.ApplyBundle(string(raw)); err != nil {
			return nil, err
		}
	case opts.RulesConfigSearch:
		path, found, err := findUpward(opts.LintTarget, SearchFilename)
		if err != nil {
			return nil, err
		}
		if found {
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			if err := cfg.ApplyBundle(string(raw)); err != nil {
				return nil, err
			}
		}
	}

	registry.ApplyProjectPolicies(cfg, opts.LintTarget)

	cfg.WaiverFiles = append(cfg.WaiverFiles, opts.WaiverFiles...)

	return cfg, nil
}

// findUpward walks from the directory containing start (or start
// itself if it is already a directory) up to the filesystem root,
// looking for a file named name. It reports (path, true, nil) on the
// first match.
func findUpward(start, name string) (string, bool, error) {
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(abs)
	dir := abs
	if err == nil && !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
