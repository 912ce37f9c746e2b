// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rules

import (
	"fmt"
	"regexp"

	"github.com/svlint/svlint/cst"
	"github.com/svlint/svlint/internal/svgrammar"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/registry"
	"github.com/svlint/svlint/token"
)

// nameStyleSpec describes one declarative-style checker: which node tag
// it fires on, where the declared name sits among that node's children,
// and the naming convention it enforces. Nine of the ten name-style rule
// ids are each a single instantiation of this one generator, mirroring
// how the *_name_style_rule.cc family shares one shape across many
// checkers that otherwise differ only in which declaration and pattern
// they care about; macro-name-style is the tenth, sharing this file but
// built on HandleToken instead since macro names live in the token
// stream rather than the syntax tree (see macroNameStyleRule below).
type nameStyleSpec struct {
	id, topic, description string
	tag                    cst.Tag
	nameIndex              func(*cst.Node) int // index of the declared-name leaf, or -1
	defaultPattern         *regexp.Regexp
	negated                bool // defaultPattern describes what's BANNED, not what's required
	violationSuffix        string
}

var upperSnakePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
var camelCasePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

func init() {
	for _, spec := range nameStyleSpecs {
		spec := spec
		registry.RegisterSyntaxTreeRule(registry.Descriptor{
			Name:           spec.id,
			Topic:          spec.topic,
			Description:    spec.description,
			DefaultEnabled: true,
		}, func() lintrule.SyntaxTreeRule {
			r := &nameStyleRule{spec: spec, pattern: spec.defaultPattern}
			r.init(spec.id, spec.topic)
			return r
		})
	}

	registry.RegisterTokenRule(registry.Descriptor{
		Name:           "macro-name-style",
		Topic:          "naming",
		Description:    "Checks that `define macro names are ALL_CAPS.",
		DefaultEnabled: true,
	}, func() lintrule.TokenRule {
		r := &macroNameStyleRule{pattern: upperSnakePattern}
		r.init("macro-name-style", "naming")
		return r
	})
}

var nameStyleSpecs = []nameStyleSpec{
	{
		id: "parameter-name-style", topic: "naming", tag: svgrammar.TagParameterDeclaration,
		description:     "Checks that parameter/localparam names are ALL_CAPS.",
		nameIndex:       parameterDeclarationNameIndex,
		defaultPattern:  upperSnakePattern,
		violationSuffix: "parameter names should be ALL_CAPS",
	},
	{
		id: "parameter-type-name-style", topic: "naming", tag: svgrammar.TagTypedefDeclaration,
		description:     "Checks that typedef'd type names are CamelCase.",
		nameIndex:       typedefNameIndex,
		defaultPattern:  camelCasePattern,
		violationSuffix: "type names should be CamelCase",
	},
	{
		id: "enum-name-style", topic: "naming", tag: svgrammar.TagEnumType,
		description:     "Checks that named enum types are CamelCase with an _e suffix.",
		nameIndex:       namedAggregateNameIndex,
		defaultPattern:  regexp.MustCompile(`^[A-Z][A-Za-z0-9]*_e$`),
		violationSuffix: "enum type names should be CamelCase with an _e suffix",
	},
	{
		id: "struct-union-name-style", topic: "naming", tag: svgrammar.TagStructType,
		description:     "Checks that named struct/union types are CamelCase with a _t suffix.",
		nameIndex:       namedAggregateNameIndex,
		defaultPattern:  regexp.MustCompile(`^[A-Z][A-Za-z0-9]*_t$`),
		violationSuffix: "struct/union type names should be CamelCase with a _t suffix",
	},
	{
		id: "interface-name-style", topic: "naming", tag: svgrammar.TagInterfaceDeclaration,
		description:     "Checks that interface names are lower_snake_case with an _if suffix.",
		nameIndex:       interfaceNameIndex,
		defaultPattern:  regexp.MustCompile(`^[a-z][a-z0-9_]*_if$`),
		violationSuffix: "interface names should be lower_snake_case with an _if suffix",
	},
	{
		id: "constraint-name-style", topic: "naming", tag: svgrammar.TagConstraintDeclaration,
		description:     "Checks that constraint block names are lower_snake_case with a c_ prefix.",
		nameIndex:       constraintNameIndex,
		defaultPattern:  regexp.MustCompile(`^c_[a-z][a-z0-9_]*$`),
		violationSuffix: "constraint names should be lower_snake_case with a c_ prefix",
	},
	{
		id: "port-name-suffix", topic: "naming", tag: svgrammar.TagPort,
		description:     "Checks that port names carry a direction suffix (_i/_o/_io).",
		nameIndex:       portNameIndex,
		defaultPattern:  regexp.MustCompile(`^[a-z][a-z0-9_]*_(i|o|io)$`),
		violationSuffix: "port names should end in _i, _o, or _io",
	},
	{
		id: "positive-meaning-parameter-name", topic: "naming", tag: svgrammar.TagParameterDeclaration,
		description:     "Checks that boolean-sounding parameter names are phrased positively.",
		nameIndex:       parameterDeclarationNameIndex,
		defaultPattern:  regexp.MustCompile(`^(?:NOT_|DISABLE_|NO_)`),
		negated:         true,
		violationSuffix: "parameter names should be phrased positively, not negatively",
	},
	{
		id: "banned-declared-name-patterns", topic: "naming", tag: svgrammar.TagDataDeclaration,
		description:     "Checks declared names against a configurable deny-list of regexes.",
		nameIndex:       dataDeclarationNameIndex,
		defaultPattern:  regexp.MustCompile(`^(?:tmp|temp|foo|bar)$`),
		negated:         true,
		violationSuffix: "declared name matches a banned pattern",
	},
}

type nameStyleRule struct {
	reporter
	syntaxTreeDefaults
	spec    nameStyleSpec
	pattern *regexp.Regexp
}

// Configure replaces the default pattern with a user-supplied regex.
func (r *nameStyleRule) Configure(config string) error {
	if config == "" {
		return nil
	}
	re, err := regexp.Compile(config)
	if err != nil {
		return lintrule.NewError(lintrule.RuleConfigError, "", 0, 0, "invalid pattern for %s: %v", r.spec.id, err)
	}
	r.pattern = re
	return nil
}

func (r *nameStyleRule) HandleNode(node *cst.Node, ctx *cst.Context) {
	tag := node.Tag
	if tag == svgrammar.TagUnionType && r.spec.tag == svgrammar.TagStructType {
		tag = svgrammar.TagStructType // struct-union-name-style covers unions too
	}
	if tag != r.spec.tag {
		return
	}
	idx := r.spec.nameIndex(node)
	if idx < 0 || idx >= len(node.Children) {
		return
	}
	leaf, ok := node.Children[idx].(*cst.Leaf)
	if !ok {
		return
	}
	name := string(leaf.Token.Text)
	matched := r.pattern.MatchString(name)
	violates := matched != r.spec.negated
	if !violates {
		return
	}
	r.report(lintrule.Violation{
		Token:  leaf.Token,
		Reason: fmt.Sprintf("Declared name %q violates its naming convention: %s.", name, r.spec.violationSuffix),
	})
}

// macroNameStyleRule watches the token stream for `define directives and
// checks the macro name that follows against an ALL_CAPS pattern, the
// one name-style check that can't be expressed as a syntax-tree rule
// since svgrammar never builds a node for a preprocessor `define.
type macroNameStyleRule struct {
	reporter
	pattern    *regexp.Regexp
	expectName bool
}

func (r *macroNameStyleRule) Configure(config string) error {
	if config == "" {
		return nil
	}
	re, err := regexp.Compile(config)
	if err != nil {
		return lintrule.NewError(lintrule.RuleConfigError, "", 0, 0, "invalid pattern for macro-name-style: %v", err)
	}
	r.pattern = re
	return nil
}

func (r *macroNameStyleRule) HandleToken(t token.Token) {
	switch t.Kind {
	case svgrammar.Directive:
		r.expectName = string(t.Text) == "`define"
	case svgrammar.DirectiveIdentifier:
		if !r.expectName {
			return
		}
		r.expectName = false
		name := string(t.Text)
		if !r.pattern.MatchString(name) {
			r.report(lintrule.Violation{
				Token:  t,
				Reason: fmt.Sprintf("Macro name %q should be ALL_CAPS.", name),
			})
		}
	case token.Space, token.Newline, token.LineComment, token.BlockComment:
		// trivia between `define and its name leaves expectName intact
	default:
		r.expectName = false
	}
}

func parameterDeclarationNameIndex(n *cst.Node) int {
	for i, c := range n.Children {
		if leaf, ok := c.(*cst.Leaf); ok && leaf.Token.Kind == svgrammar.Punctuation && string(leaf.Token.Text) == "=" {
			if i == 0 {
				return -1
			}
			return i - 1
		}
	}
	return -1
}

func typedefNameIndex(n *cst.Node) int {
	// NewTypedef: "typedef" underlying name ";"
	if len(n.Children) < 3 {
		return -1
	}
	return len(n.Children) - 2
}

func namedAggregateNameIndex(n *cst.Node) int {
	// NewEnumType/NewStructType/NewUnionType: keyword [name]
	if len(n.Children) < 2 {
		return -1
	}
	return 1
}

func interfaceNameIndex(n *cst.Node) int {
	if len(n.Children) < 2 {
		return -1
	}
	return 1
}

func constraintNameIndex(n *cst.Node) int {
	// NewConstraintDeclaration: "constraint" name "{" body... "}"
	if len(n.Children) < 2 {
		return -1
	}
	return 1
}

func portNameIndex(n *cst.Node) int {
	if len(n.Children) == 0 {
		return -1
	}
	return 0
}

func dataDeclarationNameIndex(n *cst.Node) int {
	// NewDataDeclaration: typ name1 [name2...]; flag the first declared name.
	if len(n.Children) < 2 {
		return -1
	}
	return 1
}
