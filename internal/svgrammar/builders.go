// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package svgrammar

import (
	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/token"
)

// Tree-builder helpers for rule tests, grounded on
// tree-builder-test-util.h's pattern of small free functions that
// assemble a CST by hand without running a real parser.

func kw(text string) *cst.Leaf  { return cst.NewLeaf(token.New(Keyword, []byte(text))) }
func ident(text string) *cst.Leaf {
	return cst.NewLeaf(token.New(token.Identifier, []byte(text)))
}
func punct(text string) *cst.Leaf {
	return cst.NewLeaf(token.New(Punctuation, []byte(text)))
}

// NewModule builds: Module( Header( "module", name, PortList(...) ), body... )
func NewModule(name string, ports []string, body ...cst.Symbol) *cst.Node {
	var portSyms []cst.Symbol
	for _, p := range ports {
		portSyms = append(portSyms, cst.NewNode(TagPort, ident(p)))
	}
	header := cst.NewNode(TagModuleHeader, kw(KeywordModule), ident(name), cst.NewNode(TagPortList, portSyms...))
	children := append([]cst.Symbol{header}, body...)
	return cst.NewNode(TagModuleDeclaration, children...)
}

// NewAlwaysStar builds: AlwaysStatement( "always", EventControlStar, body )
func NewAlwaysStar(body cst.Symbol) *cst.Node {
	return cst.NewNode(TagAlwaysStatement, kw(KeywordAlways), cst.NewNode(TagEventControlStar, punct("@"), punct("*")), body)
}

// NewAlwaysFF builds: AlwaysStatement( "always_ff", EventControlEdge, body )
func NewAlwaysFF(body cst.Symbol) *cst.Node {
	return cst.NewNode(TagAlwaysStatement, kw(KeywordAlwaysFF), cst.NewNode(TagEventControlEdge), body)
}

// NewSeqBlock builds an (optionally labeled) begin/end block.
func NewSeqBlock(label string, body ...cst.Symbol) *cst.Node {
	children := []cst.Symbol{kw(KeywordBegin)}
	if label != "" {
		children = append(children, punct(":"), ident(label))
	}
	children = append(children, body...)
	children = append(children, kw(KeywordEnd))
	return cst.NewNode(TagSeqBlock, children...)
}

// NewBlockingAssignment builds: lhs "=" rhs ";"
func NewBlockingAssignment(lhs, rhs string) *cst.Node {
	return cst.NewNode(TagBlockingAssignment, ident(lhs), punct("="), ident(rhs), punct(";"))
}

// NewNonblockingAssignment builds: lhs "<=" rhs ";"
func NewNonblockingAssignment(lhs, rhs string) *cst.Node {
	return cst.NewNode(TagNonblockingAssignment, ident(lhs), punct("<="), ident(rhs), punct(";"))
}

// NewNullStatement builds a lone ";" statement.
func NewNullStatement() *cst.Node {
	return cst.NewNode(TagNullStatement, punct(";"))
}

// NewParameterOverride builds: "defparam" lhs "=" rhs ";"
func NewParameterOverride(lhs, rhs string) *cst.Node {
	return cst.NewNode(TagParameterOverride, kw(KeywordDefparam), ident(lhs), punct("="), ident(rhs), punct(";"))
}

// NewGenerateRegion builds a legacy generate/endgenerate region.
func NewGenerateRegion(body ...cst.Symbol) *cst.Node {
	children := append([]cst.Symbol{kw(KeywordGenerate)}, body...)
	children = append(children, kw(KeywordEndgenerate))
	return cst.NewNode(TagGenerateRegion, children...)
}

// NewGenerateBlock builds a labeled generate block: begin : label ... end.
func NewGenerateBlock(label string, body ...cst.Symbol) *cst.Node {
	if label == "" {
		return cst.NewNode(TagGenerateBlock, append([]cst.Symbol{kw(KeywordBegin)}, append(body, kw(KeywordEnd))...)...)
	}
	children := []cst.Symbol{kw(KeywordBegin), punct(":"), ident(label)}
	children = append(children, body...)
	children = append(children, kw(KeywordEnd))
	return cst.NewNode(TagGenerateBlock, children...)
}

// NewEnumType builds an enum type, anonymous unless name != "".
func NewEnumType(name string) *cst.Node {
	n := cst.NewNode(TagEnumType, kw(KeywordEnum))
	if name != "" {
		n.Children = append(n.Children, ident(name))
	}
	return n
}

// NewStructType/NewUnionType mirror NewEnumType for the other anonymous
// aggregate types.
func NewStructType(name string) *cst.Node {
	n := cst.NewNode(TagStructType, kw(KeywordStruct))
	if name != "" {
		n.Children = append(n.Children, ident(name))
	}
	return n
}

func NewUnionType(name string) *cst.Node {
	n := cst.NewNode(TagUnionType, kw(KeywordUnion))
	if name != "" {
		n.Children = append(n.Children, ident(name))
	}
	return n
}

// NewTypedef wraps a type in a typedef declaration, giving it a name
// (this is what makes an otherwise-anonymous enum/struct/union legal).
func NewTypedef(name string, underlying cst.Symbol) *cst.Node {
	return cst.NewNode(TagTypedefDeclaration, kw(KeywordTypedef), underlying, ident(name), punct(";"))
}

// NewCastExpression builds: "void" "'" "(" expr ")"
func NewCastExpression(castType string, expr cst.Symbol) *cst.Node {
	var typeLeaf cst.Symbol
	if castType != "" {
		typeLeaf = ident(castType)
	}
	children := []cst.Symbol{}
	if typeLeaf != nil {
		children = append(children, typeLeaf)
	} else {
		children = append(children, kw(KeywordVoid))
	}
	children = append(children, punct("'"), punct("("), expr, punct(")"))
	return cst.NewNode(TagCastExpression, children...)
}

// NewSystemCallExpression builds a bare (uncast) system-task call, e.g.
// $test$plusargs("FOO").
func NewSystemCallExpression(name string, args ...cst.Symbol) *cst.Node {
	children := append([]cst.Symbol{ident(name)}, args...)
	return cst.NewNode(TagSystemCallExpression, children...)
}

// NewParameterDeclaration builds: "parameter"|"localparam" [storageType] name "=" value
func NewParameterDeclaration(local bool, storageType, name, value string) *cst.Node {
	keyword := KeywordParameter
	if local {
		keyword = KeywordLocalparam
	}
	children := []cst.Symbol{kw(keyword)}
	if storageType != "" {
		children = append(children, ident(storageType))
	}
	children = append(children, ident(name), punct("="), ident(value))
	return cst.NewNode(TagParameterDeclaration, children...)
}

// NewFunctionDeclaration builds a function declaration, optionally with
// an explicit lifetime keyword ("automatic"/"static"; "" means implicit).
func NewFunctionDeclaration(lifetime, name string, ports ...*cst.Node) *cst.Node {
	children := []cst.Symbol{kw(KeywordFunction)}
	if lifetime != "" {
		children = append(children, kw(lifetime))
	}
	children = append(children, ident(name))
	for _, p := range ports {
		children = append(children, p)
	}
	return cst.NewNode(TagFunctionDeclaration, children...)
}

// NewTaskDeclaration mirrors NewFunctionDeclaration for tasks.
func NewTaskDeclaration(lifetime, name string, ports ...*cst.Node) *cst.Node {
	children := []cst.Symbol{kw(KeywordTask)}
	if lifetime != "" {
		children = append(children, kw(lifetime))
	}
	children = append(children, ident(name))
	for _, p := range ports {
		children = append(children, p)
	}
	return cst.NewNode(TagTaskDeclaration, children...)
}

// NewFunctionPort/NewTaskPort build a single port, with an explicit
// type unless typ == "" (implicit int, the thing explicit-*-parameter-
// type rules flag).
func NewFunctionPort(typ, name string) *cst.Node {
	children := []cst.Symbol{}
	if typ != "" {
		children = append(children, ident(typ))
	}
	children = append(children, ident(name))
	return cst.NewNode(TagFunctionPort, children...)
}

func NewTaskPort(typ, name string) *cst.Node {
	children := []cst.Symbol{}
	if typ != "" {
		children = append(children, ident(typ))
	}
	children = append(children, ident(name))
	return cst.NewNode(TagTaskPort, children...)
}

// NewUnpackedDimensionRange builds an unpacked dimension declared with
// range syntax "[a:b]" rather than size syntax "[N]".
func NewUnpackedDimensionRange(lo, hi string) *cst.Node {
	return cst.NewNode(TagUnpackedDimension, punct("["), ident(lo), punct(":"), ident(hi), punct("]"))
}

// NewUnpackedDimensionSize builds an unpacked dimension declared with
// size syntax "[N]".
func NewUnpackedDimensionSize(n string) *cst.Node {
	return cst.NewNode(TagUnpackedDimension, punct("["), ident(n), punct("]"))
}

// NewIfClause builds: "if" "(" cond ")" body
func NewIfClause(cond string, body cst.Symbol) *cst.Node {
	return cst.NewNode(TagIfClause, kw(KeywordIf), punct("("), ident(cond), punct(")"), body)
}

// NewElseClause builds: "else" body
func NewElseClause(body cst.Symbol) *cst.Node {
	return cst.NewNode(TagElseClause, kw(KeywordElse), body)
}

// NewConditionalStatement wraps an if clause and, optionally, an else
// clause (pass nil for elseClause to omit it).
func NewConditionalStatement(ifClause, elseClause *cst.Node) *cst.Node {
	children := []cst.Symbol{ifClause}
	if elseClause != nil {
		children = append(children, elseClause)
	}
	return cst.NewNode(TagConditionalStatement, children...)
}

// NewForLoopStatement builds: "for" "(" header ")" body
func NewForLoopStatement(header string, body cst.Symbol) *cst.Node {
	return cst.NewNode(TagForLoopStatement, ident("for"), punct("("), ident(header), punct(")"), body)
}

// NewWhileLoopStatement builds: "while" "(" cond ")" body
func NewWhileLoopStatement(cond string, body cst.Symbol) *cst.Node {
	return cst.NewNode(TagWhileLoopStatement, ident("while"), punct("("), ident(cond), punct(")"), body)
}

// NewConstraintDeclaration builds: "constraint" name "{" body... "}"
func NewConstraintDeclaration(name string, body ...cst.Symbol) *cst.Node {
	children := append([]cst.Symbol{ident("constraint"), ident(name), punct("{")}, body...)
	children = append(children, punct("}"))
	return cst.NewNode(TagConstraintDeclaration, children...)
}

// NewPackageDeclaration builds: "package" name ";" body... "endpackage"
func NewPackageDeclaration(name string, body ...cst.Symbol) *cst.Node {
	children := append([]cst.Symbol{kw(KeywordPackage), ident(name), punct(";")}, body...)
	children = append(children, kw(KeywordEndpackage))
	return cst.NewNode(TagPackageDeclaration, children...)
}

// NewDataDeclaration builds a variable/net declaration: typ name1, name2, ...
// one of the few places local-scope declarations are modeled, since this
// module's grammar stand-in has no full symbol table (see
// forbid-implicit-declarations).
func NewDataDeclaration(typ string, names ...string) *cst.Node {
	children := []cst.Symbol{ident(typ)}
	for _, n := range names {
		children = append(children, ident(n))
	}
	return cst.NewNode(TagDataDeclaration, children...)
}
