// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package loader discovers the SystemVerilog source files cmd/lint.go
// hands to the worker pool: a recursive directory walk with a
// composable exclusion Filter, collecting every file bearing a
// recognized source extension.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Extensions lists the file suffixes treated as SystemVerilog source.
var Extensions = []string{".sv", ".svh", ".v", ".vh"}

// Filter reports whether the file or directory at abspath should be
// excluded from a walk; depth is 0 for an argument path itself,
// increasing with each directory level descended.
type Filter func(abspath string, info os.FileInfo, depth int) bool

// GlobExcludeName excludes files and directories whose names match the
// shell-style pattern at minDepth or greater.
func GlobExcludeName(pattern string, minDepth int) Filter {
	return func(abspath string, info os.FileInfo, depth int) bool {
		match, _ := filepath.Match(pattern, info.Name())
		return match && depth >= minDepth
	}
}

// hasSourceExtension reports whether name ends in one of Extensions.
func hasSourceExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// SourceFiles walks paths (each a file or directory) and returns the
// sorted, de-duplicated list of discovered source file paths. A path
// named explicitly is always included regardless of its extension,
// mirroring the convention that an explicit argument overrides
// extension filtering; only directory recursion applies the extension
// check. filter, if non-nil, additionally excludes any path (file or
// directory) it matches.
func SourceFiles(paths []string, filter Filter) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	errs := loaderErrors{}

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		walkRec(path, filter, 0, &errs, add)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	sort.Strings(out)
	return out, nil
}

func walkRec(path string, filter Filter, depth int, errs *loaderErrors, add func(string)) {
	info, err := os.Stat(path)
	if err != nil {
		*errs = append(*errs, err)
		return
	}
	if filter != nil && filter(path, info, depth) {
		return
	}
	if !info.IsDir() {
		if hasSourceExtension(path) {
			add(path)
		}
		return
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		*errs = append(*errs, err)
		return
	}
	for _, e := range entries {
		walkRec(filepath.Join(path, e.Name()), filter, depth+1, errs, add)
	}
}

// loaderErrors accumulates every error encountered during a walk so a
// single bad path doesn't abort discovery of the rest.
type loaderErrors []error

func (e loaderErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred: %v", len(e), msgs)
}
