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

func init() {
	registry.RegisterSyntaxTreeRule(registry.Descriptor{
		Name:           "explicit-parameter-storage-type",
		Topic:          "parameters",
		Description:    "Checks that parameter and localparam declarations give an explicit storage type.",
		DefaultEnabled: true,
	}, func() lintrule.SyntaxTreeRule {
		r := &explicitParameterStorageTypeRule{}
		r.init("explicit-parameter-storage-type", "parameters")
		return r
	})
}

type explicitParameterStorageTypeRule struct {
	reporter
	syntaxTreeDefaults
	exemptType string
}

// Configure accepts "exempt_type=string", which exempts parameters whose
// value is a quoted string literal from needing an explicit storage type.
// Any other non-empty entry is a RuleConfigError.
func (r *explicitParameterStorageTypeRule) Configure(config string) error {
	for _, kv := range strings.Split(config, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 && strings.TrimSpace(parts[0]) == "exempt_type" && strings.TrimSpace(parts[1]) == "string" {
			r.exemptType = "string"
			continue
		}
		return lintrule.NewError(lintrule.RuleConfigError, "", 0, 0,
			"explicit-parameter-storage-type: unsupported configuration %q (only exempt_type=string is accepted)", kv)
	}
	return nil
}

func (r *explicitParameterStorageTypeRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	if node.Tag != svgrammar.TagParameterDeclaration || len(node.Children) != 4 {
		return
	}
	keyword, ok := node.Children[0].(*cst.Leaf)
	if !ok {
		return
	}
	if r.exemptType == "string" {
		if value, ok := node.Children[3].(*cst.Leaf); ok && strings.HasPrefix(string(value.Token.Text), `"`) {
			return
		}
	}
	r.report(lintrule.Violation{
		Token:  keyword.Token,
		Reason: "Parameter declared without an explicit storage type.",
	})
}
