// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"strings"

	"github.com/spf13/pflag"
)

// repeatedStringFlag implements pflag.Value for a flag that may be
// passed multiple times, accumulating the comma-separated values of
// every occurrence.
type repeatedStringFlag struct {
	v     []string
	isSet bool
}

func newRepeatedStringFlag(init []string) repeatedStringFlag {
	return repeatedStringFlag{v: init}
}

func (f *repeatedStringFlag) Type() string {
	return "string"
}

func (f *repeatedStringFlag) String() string {
	return strings.Join(f.v, ",")
}

func (f *repeatedStringFlag) Set(s string) error {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if !f.isSet {
		f.v = parts
		f.isSet = true
	} else {
		f.v = append(f.v, parts...)
	}
	return nil
}

func addRuleSetFlag(fs *pflag.FlagSet, ruleSet *string) {
	fs.StringVar(ruleSet, "ruleset", "default", "select a starting rule preset: default, all, or none")
}

func addRulesFlag(fs *pflag.FlagSet, rules *string) {
	fs.StringVar(rules, "rules", "", "comma-separated rule bundle overriding the selected ruleset, e.g. +no-tabs,-line-length")
}

func addRulesConfigFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVar(path, "rules_config", "", "path to a rule bundle file applied after --ruleset and --rules")
}

func addRulesConfigSearchFlag(fs *pflag.FlagSet, search *bool) {
	fs.BoolVar(search, "rules_config_search", false, "search upward from the lint target for a .rules.verible_lint file")
}

func addWaiverFilesFlag(fs *pflag.FlagSet, files *repeatedStringFlag) {
	fs.VarP(files, "waiver_files", "", "comma-separated paths to waiver configuration files. This flag can be repeated.")
}

func addShowContextFlag(fs *pflag.FlagSet, show *bool) {
	fs.BoolVar(show, "show_context", false, "print the offending source line and a caret under each violation")
}

func addFormatFlag(fs *pflag.FlagSet, format *string) {
	fs.StringVarP(format, "format", "f", "text", "set output format: text or json")
}

func addIgnoreFlag(fs *pflag.FlagSet, ignoreNames *[]string) {
	fs.StringSliceVarP(ignoreNames, "ignore", "", []string{}, "set file and directory names to ignore during loading (e.g., '.*' excludes hidden files)")
}

func addLogLevelFlag(fs *pflag.FlagSet, level *string) {
	fs.StringVar(level, "log_level", "warn", "set logging verbosity: debug, info, warn, or error")
}
