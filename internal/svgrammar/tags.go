// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package svgrammar

import "github.com/svlint/svlint/cst"

// Tag values, one per construct any rule in this module needs to
// recognize. Grounded on verible's NodeEnum naming
// (verilog/CST/*.h), collapsed to the subset this module's checkers
// match against.
const (
	TagModuleDeclaration cst.Tag = iota + 1
	TagModuleHeader
	TagPackageDeclaration
	TagInterfaceDeclaration
	TagPortList
	TagPort

	TagAlwaysStatement
	TagEventControlStar
	TagEventControlEdge
	TagSeqBlock // begin ... end, optionally labeled
	TagBlockingAssignment
	TagNonblockingAssignment

	TagGenerateRegion // legacy `generate` ... `endgenerate`
	TagGenerateBlock  // a labeled block inside a generate construct

	TagParameterDeclaration
	TagParameterOverride // defparam
	TagDataDeclaration
	TagVariableDeclarationAssignment
	TagUnpackedDimension

	TagNullStatement

	TagEnumType
	TagStructType
	TagUnionType
	TagTypedefDeclaration

	TagCastExpression // void'(...)
	TagSystemCallExpression
	TagFunctionDeclaration
	TagTaskDeclaration
	TagFunctionPort
	TagTaskPort

	TagConstraintDeclaration
	TagConditionalStatement // if/else
	TagForLoopStatement
	TagWhileLoopStatement
	TagIfClause
	TagElseClause
)

// Keyword text for the constructs above, used both by rule files and
// by test fixtures that hand-build trees with NewLeaf(token.New(Keyword, []byte(...))).
const (
	KeywordModule      = "module"
	KeywordEndmodule   = "endmodule"
	KeywordPackage     = "package"
	KeywordEndpackage  = "endpackage"
	KeywordAlways      = "always"
	KeywordAlwaysComb  = "always_comb"
	KeywordAlwaysFF    = "always_ff"
	KeywordAlwaysLatch = "always_latch"
	KeywordBegin       = "begin"
	KeywordEnd         = "end"
	KeywordGenerate    = "generate"
	KeywordEndgenerate = "endgenerate"
	KeywordDefparam    = "defparam"
	KeywordParameter   = "parameter"
	KeywordLocalparam  = "localparam"
	KeywordEnum        = "enum"
	KeywordStruct      = "struct"
	KeywordUnion       = "union"
	KeywordTypedef     = "typedef"
	KeywordAutomatic   = "automatic"
	KeywordStatic      = "static"
	KeywordFunction    = "function"
	KeywordTask        = "task"
	KeywordVoid        = "void"
	KeywordIf          = "if"
	KeywordElse        = "else"
)

// FindAllModuleDeclarations returns every TagModuleDeclaration node in
// root, pre-order, including nested ones. Grounded on
// verilog/CST/module.h's FindAllModuleDeclarations.
func FindAllModuleDeclarations(root cst.Symbol) []*cst.Node {
	var out []*cst.Node
	cst.Walk(moduleCollector{&out}, root)
	return out
}

type moduleCollector struct{ out *[]*cst.Node }

func (m moduleCollector) Visit(x cst.Symbol) cst.Visitor {
	if n, ok := x.(*cst.Node); ok && n.Tag == TagModuleDeclaration {
		*m.out = append(*m.out, n)
	}
	return m
}

// TopLevelOnly returns, in their original order, the nodes for which
// isNested reports false, mirroring the original's "remove nested
// declarations" filter pattern (used for both module-filename and
// one-module-per-file).
func TopLevelOnly(nodes []*cst.Node, isNested func(*cst.Node) bool) []*cst.Node {
	out := make([]*cst.Node, 0, len(nodes))
	for _, n := range nodes {
		if !isNested(n) {
			out = append(out, n)
		}
	}
	return out
}

// FindAllPackageDeclarations returns every TagPackageDeclaration node in
// root, pre-order, mirroring FindAllModuleDeclarations.
func FindAllPackageDeclarations(root cst.Symbol) []*cst.Node {
	var out []*cst.Node
	cst.Walk(packageCollector{&out}, root)
	return out
}

type packageCollector struct{ out *[]*cst.Node }

func (p packageCollector) Visit(x cst.Symbol) cst.Visitor {
	if n, ok := x.(*cst.Node); ok && n.Tag == TagPackageDeclaration {
		*p.out = append(*p.out, n)
	}
	return p
}

// PackageNameLeaf returns the identifier leaf naming pkg: "package" name ";" ...
func PackageNameLeaf(pkg *cst.Node) *cst.Leaf {
	if len(pkg.Children) < 2 {
		return nil
	}
	leaf, _ := pkg.Children[1].(*cst.Leaf)
	return leaf
}

// ModuleNameLeaf returns the identifier leaf naming module, which is
// Children[1] of its TagModuleHeader (Children[0] of the module
// declaration): "module" keyword, name, port list, ...
func ModuleNameLeaf(module *cst.Node) *cst.Leaf {
	if len(module.Children) == 0 {
		return nil
	}
	header, ok := module.Children[0].(*cst.Node)
	if !ok || header.Tag != TagModuleHeader || len(header.Children) < 2 {
		return nil
	}
	leaf, _ := header.Children[1].(*cst.Leaf)
	return leaf
}
