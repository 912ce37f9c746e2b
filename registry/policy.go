// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package registry

import (
	"strings"

	"github.com/gobwas/glob"
)

// ProjectPolicy is a path-scoped override: if the target file path
// contains any of PathSubstrings (and none of PathExclusions), its rule
// toggles apply, with DisabledRules applied before EnabledRules so an
// explicit enable always wins over a broader disable.
//
// The only policies are the built-in ones registered via RegisterPolicy;
// the list is empty unless such a registration is present. No policy
// files are read.
type ProjectPolicy struct {
	Name           string
	PathSubstrings []string
	PathExclusions []string
	// PathGlobs, when non-empty, are matched against the file path with
	// gobwas/glob in addition to plain substring matching, supporting
	// patterns like "third_party/**/*.sv".
	PathGlobs      []string
	DisabledRules  []string
	EnabledRules   []string
}

var builtinPolicies []ProjectPolicy

// RegisterPolicy adds a built-in project policy. Intended to be called
// from init() in files that ship a project-specific override; the
// built-in list is empty unless such a file is present.
func RegisterPolicy(p ProjectPolicy) {
	builtinPolicies = append(builtinPolicies, p)
}

// BuiltinPolicies returns the registered built-in project policies.
func BuiltinPolicies() []ProjectPolicy {
	return builtinPolicies
}

// Matches reports whether p applies to path: any path substring (or
// glob) matches, and no exclusion substring matches.
func (p ProjectPolicy) Matches(path string) bool {
	for _, excl := range p.PathExclusions {
		if excl != "" && strings.Contains(path, excl) {
			return false
		}
	}
	for _, sub := range p.PathSubstrings {
		if sub != "" && strings.Contains(path, sub) {
			return true
		}
	}
	for _, pattern := range p.PathGlobs {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			continue
		}
		if g.Match(path) {
			return true
		}
	}
	return false
}

// Apply disables then enables p's listed rules against cfg, leaving
// every other rule untouched. Unknown rule ids in a policy are ignored
// silently (a policy authored against an older rule set shouldn't crash
// a lint run).
func (p ProjectPolicy) Apply(cfg *Configuration) {
	for _, id := range p.DisabledRules {
		if rc, ok := cfg.Rules[id]; ok {
			rc.Enabled = false
			cfg.Rules[id] = rc
		}
	}
	for _, id := range p.EnabledRules {
		if rc, ok := cfg.Rules[id]; ok {
			rc.Enabled = true
			cfg.Rules[id] = rc
		}
	}
}

// ApplyProjectPolicies applies every built-in policy matching path to
// cfg, in registration order.
func ApplyProjectPolicies(cfg *Configuration, path string) {
	for _, p := range builtinPolicies {
		if p.Matches(path) {
			p.Apply(cfg)
		}
	}
}
