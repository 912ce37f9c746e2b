// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package registry holds the four per-category rule registries, rule-set
// presets, rule-bundle configuration parsing, and project policies.
// Concrete rule files populate the registries from their own init()
// functions, so adding a rule touches no file outside rules/.
package registry

import (
	"fmt"
	"slices"
	"sort"

	"github.com/svlint/svlint/internal/levenshtein"
	"github.com/svlint/svlint/lintrule"
)

// Descriptor is the static metadata every rule registers alongside its
// factory: its id, the topic/category it belongs to, a one-line
// description, and whether it is enabled in the "default" rule set.
type Descriptor struct {
	Name           string
	Topic          string
	Description    string
	DefaultEnabled bool
}

type lineFactory func() lintrule.LineRule
type tokenFactory func() lintrule.TokenRule
type syntaxTreeFactory func() lintrule.SyntaxTreeRule
type textStructureFactory func() lintrule.TextStructureRule

type lineEntry struct {
	Descriptor
	factory lineFactory
}
type tokenEntry struct {
	Descriptor
	factory tokenFactory
}
type syntaxTreeEntry struct {
	Descriptor
	factory syntaxTreeFactory
}
type textStructureEntry struct {
	Descriptor
	factory textStructureFactory
}

var (
	lineRules          = map[string]lineEntry{}
	tokenRules         = map[string]tokenEntry{}
	syntaxTreeRules    = map[string]syntaxTreeEntry{}
	textStructureRules = map[string]textStructureEntry{}
)

// RegisterLineRule registers a line-category rule under id.
func RegisterLineRule(d Descriptor, factory func() lintrule.LineRule) {
	mustBeUnique(d.Name)
	lineRules[d.Name] = lineEntry{Descriptor: d, factory: factory}
}

// RegisterTokenRule registers a token-stream-category rule under id.
func RegisterTokenRule(d Descriptor, factory func() lintrule.TokenRule) {
	mustBeUnique(d.Name)
	tokenRules[d.Name] = tokenEntry{Descriptor: d, factory: factory}
}

// RegisterSyntaxTreeRule registers a syntax-tree-category rule under id.
func RegisterSyntaxTreeRule(d Descriptor, factory func() lintrule.SyntaxTreeRule) {
	mustBeUnique(d.Name)
	syntaxTreeRules[d.Name] = syntaxTreeEntry{Descriptor: d, factory: factory}
}

// RegisterTextStructureRule registers a text-structure-category rule
// under id.
func RegisterTextStructureRule(d Descriptor, factory func() lintrule.TextStructureRule) {
	mustBeUnique(d.Name)
	textStructureRules[d.Name] = textStructureEntry{Descriptor: d, factory: factory}
}

func mustBeUnique(name string) {
	if _, ok := allDescriptors()[name]; ok {
		panic(fmt.Sprintf("registry: duplicate rule id %q", name))
	}
}

func allDescriptors() map[string]Descriptor {
	out := make(map[string]Descriptor)
	for id, e := range lineRules {
		out[id] = e.Descriptor
	}
	for id, e := range tokenRules {
		out[id] = e.Descriptor
	}
	for id, e := range syntaxTreeRules {
		out[id] = e.Descriptor
	}
	for id, e := range textStructureRules {
		out[id] = e.Descriptor
	}
	return out
}

// RuleIDs returns every registered rule id, sorted, across all four
// categories.
func RuleIDs() []string {
	all := allDescriptors()
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the descriptor for id and whether it was found.
func Lookup(id string) (Descriptor, bool) {
	d, ok := allDescriptors()[id]
	return d, ok
}

// DefaultRuleIDs returns every rule id whose descriptor marks it
// default-enabled, sorted.
func DefaultRuleIDs() []string {
	all := allDescriptors()
	ids := make([]string, 0, len(all))
	for id, d := range all {
		if d.DefaultEnabled {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// CreateLineRule returns a fresh instance of the named line rule, or
// false if id isn't registered as one.
func CreateLineRule(id string) (lintrule.LineRule, bool) {
	e, ok := lineRules[id]
	if !ok {
		return nil, false
	}
	return e.factory(), true
}

// CreateTokenRule returns a fresh instance of the named token-stream
// rule, or false if id isn't registered as one.
func CreateTokenRule(id string) (lintrule.TokenRule, bool) {
	e, ok := tokenRules[id]
	if !ok {
		return nil, false
	}
	return e.factory(), true
}

// CreateSyntaxTreeRule returns a fresh instance of the named
// syntax-tree rule, or false if id isn't registered as one.
func CreateSyntaxTreeRule(id string) (lintrule.SyntaxTreeRule, bool) {
	e, ok := syntaxTreeRules[id]
	if !ok {
		return nil, false
	}
	return e.factory(), true
}

// CreateTextStructureRule returns a fresh instance of the named
// text-structure rule, or false if id isn't registered as one.
func CreateTextStructureRule(id string) (lintrule.TextStructureRule, bool) {
	e, ok := textStructureRules[id]
	if !ok {
		return nil, false
	}
	return e.factory(), true
}

// DidYouMean suggests registered rule ids close to the given (unknown)
// id, for error messages.
func DidYouMean(id string) []string {
	return levenshtein.ClosestStrings(3, id, slices.Values(RuleIDs()))
}

// Reset clears every registry. Intended for tests that want a clean
// slate; production code never calls this since init() populates the
// registries exactly once at process startup.
func Reset() {
	lineRules = map[string]lineEntry{}
	tokenRules = map[string]tokenEntry{}
	syntaxTreeRules = map[string]syntaxTreeEntry{}
	textStructureRules = map[string]textStructureEntry{}
}
