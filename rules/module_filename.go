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
		Name:           "module-filename",
		Topic:          "file-structure",
		Description:    "Checks that a file declaring exactly one top-level module is named after that module.",
		DefaultEnabled: true,
	}, func() lintrule.TextStructureRule {
		r := &moduleFilenameRule{}
		r.init("module-filename", "file-structure")
		return r
	})
}

type moduleFilenameRule struct {
	reporter
}

func (r *moduleFilenameRule) Lint(s *text.Structure, filename string) {
	if s.Syntax == nil {
		return
	}
	modules := topLevelModuleDeclarations(s.Syntax)
	if len(modules) != 1 {
		return
	}
	name := svgrammar.ModuleNameLeaf(modules[0])
	if name == nil {
		return
	}
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if stem == string(name.Token.Text) {
		return
	}
	r.report(lintrule.Violation{
		Token:  name.Token,
		Reason: "File name should match its single top-level module's name: " + string(name.Token.Text),
	})
}

// topLevelModuleDeclarations collects every TagModuleDeclaration node not
// nested inside another one, mirroring svgrammar.TopLevelOnly's "remove
// nested declarations" filter without needing a *cst.Context stack.
func topLevelModuleDeclarations(root cst.Symbol) []*cst.Node {
	var out []*cst.Node
	var walk func(sym cst.Symbol, insideModule bool)
	walk = func(sym cst.Symbol, insideModule bool) {
		node, ok := sym.(*cst.Node)
		if !ok {
			return
		}
		if node.Tag == svgrammar.TagModuleDeclaration {
			if !insideModule {
				out = append(out, node)
			}
			insideModule = true
		}
		for _, c := range node.Children {
			walk(c, insideModule)
		}
	}
	walk(root, false)
	return out
}
