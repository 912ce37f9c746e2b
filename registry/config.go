// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/svlint/svlint/lintrule"
)

// RuleSet selects a starting preset of enabled rules before bundle
// overrides are applied.
type RuleSet int

const (
	// RuleSetDefault enables only the hard-coded default-enabled rules.
	RuleSetDefault RuleSet = iota
	// RuleSetAll enables every registered rule.
	RuleSetAll
	// RuleSetNone disables every rule.
	RuleSetNone
)

// ParseRuleSet parses the --ruleset flag value.
func ParseRuleSet(s string) (RuleSet, error) {
	switch s {
	case "default", "":
		return RuleSetDefault, nil
	case "all":
		return RuleSetAll, nil
	case "none":
		return RuleSetNone, nil
	default:
		return RuleSetDefault, lintrule.NewError(lintrule.ConfigParseError, "", 0, 0, "unknown ruleset %q", s)
	}
}

func (rs RuleSet) String() string {
	switch rs {
	case RuleSetAll:
		return "all"
	case RuleSetNone:
		return "none"
	default:
		return "default"
	}
}

// RuleConfig is one rule's resolved enabled/disabled state and
// configuration string.
type RuleConfig struct {
	Enabled bool
	Config  string
}

// Configuration is a mapping from rule id to its resolved RuleConfig,
// plus the list of external waiver-file paths collected alongside it.
type Configuration struct {
	Rules       map[string]RuleConfig
	WaiverFiles []string
}

// NewConfiguration builds a Configuration from a RuleSet preset, with
// every registered rule present in the map.
func NewConfiguration(rs RuleSet) *Configuration {
	cfg := &Configuration{Rules: map[string]RuleConfig{}}
	defaults := map[string]bool{}
	for _, id := range DefaultRuleIDs() {
		defaults[id] = true
	}
	for _, id := range RuleIDs() {
		enabled := false
		switch rs {
		case RuleSetAll:
			enabled = true
		case RuleSetDefault:
			enabled = defaults[id]
		case RuleSetNone:
			enabled = false
		}
		cfg.Rules[id] = RuleConfig{Enabled: enabled}
	}
	return cfg
}

// Enabled returns the sorted list of currently-enabled rule ids.
func (c *Configuration) Enabled() []string {
	ids := make([]string, 0, len(c.Rules))
	for id, rc := range c.Rules {
		if rc.Enabled {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// ApplyBundle parses a rule bundle string and merges it into c,
// enabling/disabling rules and recording per-rule configuration
// strings. Unknown rule ids are rejected.
func (c *Configuration) ApplyBundle(bundle string) error {
	entries, err := ParseRuleBundle(bundle)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, ok := Lookup(e.Name); !ok {
			msg := fmt.Sprintf("unknown rule %q", e.Name)
			if suggestions := DidYouMean(e.Name); len(suggestions) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
			}
			return lintrule.NewError(lintrule.UnknownRule, "", 0, 0, "%s", msg)
		}
		c.Rules[e.Name] = RuleConfig{Enabled: e.Enabled, Config: e.Config}
	}
	return nil
}

// BundleEntry is one parsed element of a rule bundle:
// [+|-]<rule-id>[=<config>].
type BundleEntry struct {
	Name    string
	Enabled bool
	Config  string
}

// ParseRuleBundle parses a comma-or-newline-separated rule bundle,
// tolerating surrounding whitespace and '#' line comments (outside of a
// value).
func ParseRuleBundle(bundle string) ([]BundleEntry, error) {
	var entries []BundleEntry
	for _, raw := range splitBundle(bundle) {
		item := strings.TrimSpace(raw)
		if item == "" || strings.HasPrefix(item, "#") {
			continue
		}
		enabled := true
		switch item[0] {
		case '-':
			enabled = false
			item = item[1:]
		case '+':
			item = item[1:]
		}
		item = strings.TrimSpace(item)
		name, config, hasConfig := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, lintrule.NewError(lintrule.ConfigParseError, "", 0, 0, "empty rule id in bundle entry %q", raw)
		}
		e := BundleEntry{Name: name, Enabled: enabled}
		if hasConfig {
			e.Config = config
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func splitBundle(bundle string) []string {
	replaced := strings.ReplaceAll(bundle, "\n", ",")
	return strings.Split(replaced, ",")
}

// UnparseConfiguration renders c deterministically: enabled rules first
// (each optionally with "=config"), sorted, then disabled rules with a
// "-" prefix, sorted.
func UnparseConfiguration(c *Configuration) string {
	var enabled, disabled []string
	for id, rc := range c.Rules {
		if rc.Enabled {
			if rc.Config != "" {
				enabled = append(enabled, id+"="+rc.Config)
			} else {
				enabled = append(enabled, id)
			}
		} else {
			disabled = append(disabled, id)
		}
	}
	sort.Strings(enabled)
	sort.Strings(disabled)
	out := make([]string, 0, len(enabled)+len(disabled))
	out = append(out, enabled...)
	for _, id := range disabled {
		out = append(out, "-"+id)
	}
	return strings.Join(out, ",")
}
