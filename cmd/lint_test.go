// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/svlint/svlint/logging"
	logtest "github.com/svlint/svlint/logging/test"
)

func withTestLogger(t *testing.T) *logtest.Logger {
	t.Helper()
	buffered := logtest.New()
	buffered.SetLevel(logging.Debug)
	prev := newLogger
	newLogger = func(string) (logging.Logger, error) { return buffered, nil }
	t.Cleanup(func() { newLogger = prev })
	return buffered
}

func writeSourceFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunLintLogsEachFileAndSummary(t *testing.T) {
	buffered := withTestLogger(t)
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "top.sv", "module top;\nendmodule\n")

	params := newLintParams()
	code, err := runLint(params, []string{path})
	if err != nil {
		t.Fatalf("runLint returned error: %v", err)
	}
	if code != 0 {
		t.Fatalf("got exit code %d, want 0", code)
	}

	var sawLintingFile, sawSummary bool
	for _, entry := range buffered.Entries() {
		if strings.Contains(entry.Message, "linting "+path) {
			sawLintingFile = true
		}
		if strings.Contains(entry.Message, "linted") {
			sawSummary = true
		}
	}
	if !sawLintingFile {
		t.Errorf("expected a debug entry logging %q, got %+v", path, buffered.Entries())
	}
	if !sawSummary {
		t.Errorf("expected an info entry summarizing the run, got %+v", buffered.Entries())
	}
}

func TestRunLintReturnsErrorForUnreadableTarget(t *testing.T) {
	withTestLogger(t)
	params := newLintParams()
	code, err := runLint(params, []string{filepath.Join(t.TempDir(), "missing.sv")})
	if err == nil {
		t.Fatal("expected an error for a nonexistent path")
	}
	if code != 2 {
		t.Fatalf("got exit code %d, want 2", code)
	}
}
