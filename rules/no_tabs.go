// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"strings"

	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/token"
)

func init() {
	registry.RegisterLineRule(registry.Descriptor{
		Name:           "no-tabs",
		Topic:          "tabs",
		Description:    "Checks that no tabs are used. Spaces should be used instead of tabs.",
		DefaultEnabled: true,
	}, func() lintrule.LineRule {
		r := &noTabsRule{}
		r.init("no-tabs", "tabs")
		return r
	})
}

type noTabsRule struct{ reporter }

// HandleLine reports only the first tab on each line, mirroring the
// original.
func (r *noTabsRule) HandleLine(line string) {
	pos := strings.IndexByte(line, '\t')
	if pos < 0 {
		return
	}
	r.report(lintrule.Violation{
		Token:  token.FromString(token.Space, line[pos:pos+1]),
		Reason: "Use spaces, not tabs.",
	})
}
