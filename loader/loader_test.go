// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestSourceFilesRecursesAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.sv"), "module top; endmodule\n")
	writeFile(t, filepath.Join(dir, "README.md"), "not source")
	writeFile(t, filepath.Join(dir, "sub", "leaf.svh"), "`define X 1\n")
	writeFile(t, filepath.Join(dir, "third_party", "vendor.sv"), "module vendor; endmodule\n")

	filter := GlobExcludeName("third_party", 1)
	got, err := SourceFiles([]string{dir}, filter)
	if err != nil {
		t.Fatalf("SourceFiles: %v", err)
	}
	want := map[string]bool{
		filepath.Join(dir, "top.sv"):        true,
		filepath.Join(dir, "sub", "leaf.svh"): true,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want files matching %v", got, want)
	}
	for _, g := range got {
		if !want[g] {
			t.Errorf("unexpected file in result: %s", g)
		}
	}
}

func TestSourceFilesExplicitPathIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weird.txt")
	writeFile(t, path, "module foo; endmodule\n")

	got, err := SourceFiles([]string{path}, nil)
	if err != nil {
		t.Fatalf("SourceFiles: %v", err)
	}
	if len(got) != 1 || got[0] != path {
		t.Fatalf("got %v, want [%s]", got, path)
	}
}

func TestSourceFilesReportsStatError(t *testing.T) {
	if _, err := SourceFiles([]string{"/nonexistent/path.sv"}, nil); err == nil {
		t.Fatalf("expected an error for a nonexistent path")
	}
}
