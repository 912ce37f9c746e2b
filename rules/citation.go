// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package rules implements the concrete lint checkers: one file per
// rule, each self-registering with package registry from its own
// init(), so adding a rule touches no file outside this package.
package rules

import "fmt"

// styleGuideBaseURL is the root every rule's citation is built under.
// Grounded on common/analysis/citation.h's GetStyleGuideCitation,
// which in the original returns a bare topic name or URL depending on
// build configuration; this module always renders a URL so
// format.Formatter always has something to print after the reason.
const styleGuideBaseURL = "https://google.github.io/styleguide/verilog/style.html"

// styleGuideCitation returns the info URL for a rule topic.
func styleGuideCitation(topic string) string {
	return fmt.Sprintf("%s#%s", styleGuideBaseURL, topic)
}
