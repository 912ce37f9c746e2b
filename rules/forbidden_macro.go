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
		Name:           "forbidden-macro",
		Topic:          "preprocessor",
		Description:    "Checks that no macro from a configured banned list is invoked.",
		DefaultEnabled: false,
	}, func() lintrule.TokenRule {
		r := &forbiddenMacroRule{}
		r.init("forbidden-macro", "preprocessor")
		return r
	})
}

// forbiddenMacroRule flags any `NAME macro reference whose bare name
// (without the leading backtick) appears in its configured list.
type forbiddenMacroRule struct {
	reporter
	banned map[string]bool
}

// Configure accepts a comma-separated list of bare macro names, e.g.
// "ASSERT,FATAL_ERROR".
func (r *forbiddenMacroRule) Configure(config string) error {
	r.banned = parseBannedNames(config)
	return nil
}

func (r *forbiddenMacroRule) HandleToken(t token.Token) {
	if t.Kind != svgrammar.MacroIdentifier || len(r.banned) == 0 {
		return
	}
	name := strings.TrimPrefix(string(t.Text), "`")
	if r.banned[name] {
		r.report(lintrule.Violation{
			Token:  t,
			Reason: "Macro `" + name + " is forbidden by project policy.",
		})
	}
}

// parseBannedNames splits a comma-separated configuration string into a
// lookup set, trimming surrounding whitespace from each entry.
func parseBannedNames(config string) map[string]bool {
	out := map[string]bool{}
	for _, part := range strings.Split(config, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			out[name] = true
		}
	}
	return out
}
