// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"path/filepath"
	"strings"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/text"
)

func init() {
	registry.RegisterTextStructureRule(registry.Descriptor{
		Name:           "package-filename",
		Topic:          "file-structure",
		Description:    "Checks that a file declaring exactly one top-level package is named after that package.",
		DefaultEnabled: true,
	}, func() lintrule.TextStructureRule {
		r := &packageFilenameRule{}
		r.init("package-filename", "file-structure")
		return r
	})
}

type packageFilenameRule struct {
	reporter
}

func (r *packageFilenameRule) Lint(s *text.Structure, filename string) {
	if s.Syntax == nil {
		return
	}
	packages := topLevelPackageDeclarations(s.Syntax)
	if len(packages) != 1 {
		return
	}
	name := svgrammar.PackageNameLeaf(packages[0])
	if name == nil {
		return
	}
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if stem == string(name.Token.Text) {
		return
	}
	r.report(lintrule.Violation{
		Token:  name.Token,
		Reason: "File name should match its single top-level package's name: " + string(name.Token.Text),
	})
}

func topLevelPackageDeclarations(root cst.Symbol) []*cst.Node {
	var out []*cst.Node
	var walk func(sym cst.Symbol, insidePackage bool)
	walk = func(sym cst.Symbol, insidePackage bool) {
		node, ok := sym.(*cst.Node)
		if !ok {
			return
		}
		if node.Tag == svgrammar.TagPackageDeclaration {
			if !insidePackage {
				out = append(out, node)
			}
			insidePackage = true
		}
		for _, c := range node.Children {
			walk(c, insidePackage)
		}
	}
	walk(root, false)
	return out
}
