// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"strings"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
)

const defaultGenerateLabelPrefix = "gen_"

func init() {
	registry.RegisterSyntaxTreeRule(registry.Descriptor{
		Name:           "generate-label-prefix",
		Topic:          "generate-constructs",
		Description:    "Checks that a generate block's label starts with a configured prefix (default gen_).",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &generateLabelPrefixRule{prefix: defaultGenerateLabelPrefix}
		r.init("generate-label-prefix", "generate-constructs")
		return r
	})
}

type generateLabelPrefixRule struct {
	reporter
	syntaxTreeDefaults
	prefix string
}

// Configure accepts a bare prefix string, e.g. "g_".
func (r *generateLabelPrefixRule) Configure(config string) error {
	if config != "" {
		r.prefix = config
	}
	return nil
}

func (r *generateLabelPrefixRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagGenerateBlock {
		return
	}
	label := generateBlockLabel(node)
	if label == "" || strings.HasPrefix(label, r.prefix) {
		return
	}
	anchor := firstLeaf(node)
	if anchor == nil {
		return
	}
	r.report(lintrule.Violation{
		Token:  anchor.Token,
		Reason: "Generate block label \"" + label + "\" must start with \"" + r.prefix + "\".",
	})
}
