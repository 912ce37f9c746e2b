// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package lintrule defines the shared reporting contract every category
// of lint rule produces against: violations, autofixes, rule status, and
// the typed error taxonomy surfaced by configuration and lexing.
package lintrule

import (
	"fmt"
	"strings"
)

// Code classifies the failure modes a lint run or its configuration
// phase can encounter. Most codes surface as a user-facing diagnostic;
// InternalInvariant instead indicates a programming error and is raised
// via panic rather than returned.
type Code int

const (
	// LexicalError: an unrecognized token in the source. Lint continues
	// on the salvaged CST; this surfaces as a syntax-error diagnostic line.
	LexicalError Code = iota
	// ParseError: an unexpected or unterminated construct. Same recovery
	// as LexicalError.
	ParseError
	// ConfigParseError: a malformed rule bundle, rules-config file, or
	// waiver-config entry.
	ConfigParseError
	// UnknownRule: a rule-id named in configuration that no registry knows.
	UnknownRule
	// RuleConfigError: a rule's Configure returned an error for its
	// configuration substring.
	RuleConfigError
	// AutofixConflict: overlapping edits supplied to an Autofix.
	AutofixConflict
	// IOError: reading a source or waiver file failed.
	IOError
)

func (c Code) String() string {
	switch c {
	case LexicalError:
		return "lexical error"
	case ParseError:
		return "parse error"
	case ConfigParseError:
		return "configuration error"
	case UnknownRule:
		return "unknown rule"
	case RuleConfigError:
		return "rule configuration error"
	case AutofixConflict:
		return "autofix conflict"
	case IOError:
		return "i/o error"
	default:
		return "error"
	}
}

// Error is a single typed failure, optionally anchored to a file and
// 1-based line/column.
type Error struct {
	Code    Code
	File    string
	Line    int // 1-based; 0 means unanchored
	Column  int // 1-based; 0 means unanchored
	Message string
}

// NewError constructs an Error with a formatted message.
func NewError(code Code, file string, line, column int, format string, a ...interface{}) *Error {
	return &Error{
		Code:    code,
		File:    file,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, a...),
	}
}

func (e *Error) Error() string {
	if e.File == "" {
		return e.Message
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	if e.Column == 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}

// Errors aggregates a series of Error values encountered during
// configuration resolution or lexing/parsing recovery.
type Errors []*Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "no error(s)"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	s := make([]string, len(e))
	for i, err := range e {
		s[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n%s", len(e), strings.Join(s, "\n"))
}

// IsCode reports whether err is a *Error carrying the given code.
func IsCode(code Code, err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}

// InternalInvariant panics with a message identifying a programming
// error (CST bounds violations, failed type assertions on the grammar's
// own invariants). These are never recovered.
func InternalInvariant(format string, a ...interface{}) {
	panic(fmt.Sprintf("internal invariant violated: %s", fmt.Sprintf(format, a...)))
}
