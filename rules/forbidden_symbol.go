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
	registry.RegisterTokenRule(registry.Descriptor{
		Name:           "forbidden-symbol",
		Topic:          "forbidden-constructs",
		Description:    "Checks that no identifier from a configured banned list is referenced.",
		DefaultEnabled: false,
	}, func() lintrule.TokenRule {
		r := &forbiddenSymbolRule{}
		r.init("forbidden-symbol", "forbidden-constructs")
		return r
	})
}

// forbiddenSymbolRule flags any plain identifier token whose text
// appears in its configured banned list, e.g. a deprecated signal or
// module name a project wants to phase out.
type forbiddenSymbolRule struct {
	reporter
	banned map[string]bool
}

// Configure accepts a comma-separated list of bare identifier names.
func (r *forbiddenSymbolRule) Configure(config string) error {
	r.banned = parseBannedNames(config)
	return nil
}

func (r *forbiddenSymbolRule) HandleToken(t token.Token) {
	if t.Kind != token.Identifier || len(r.banned) == 0 {
		return
	}
	name := string(t.Text)
	if r.banned[name] {
		r.report(lintrule.Violation{
			Token:  t,
			Reason: "Symbol \"" + name + "\" is forbidden by project policy.",
		})
	}
}
