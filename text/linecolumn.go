// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package text holds the source-buffer-level abstractions that sit
// above raw tokens: byte-offset to line/column translation, and the
// bundled representation of a fully lexed (and optionally parsed) file.
package text

import (
	"fmt"
	"sort"
	"strings"
)

// LineColumn is a 0-based line and column pair. Use String for the
// 1-based rendering every diagnostic tool presents to users.
type LineColumn struct {
	Line   int
	Column int
}

// String renders as 1-based "line:column", matching conventional
// compiler diagnostic output.
func (lc LineColumn) String() string {
	return fmt.Sprintf("%d:%d", lc.Line+1, lc.Column+1)
}

// LineColumnMap translates a byte offset into a source buffer into a
// 0-based (line, column) pair, and back.
//
// Construction scans the buffer once for '\n' bytes; lookup is a binary
// search over the recorded line-start offsets.
type LineColumnMap struct {
	// beginningOfLineOffsets[i] is the byte offset at which line i
	// begins. The first entry is always 0. The last entry is the offset
	// following the final newline, i.e. the length of the text (unless
	// the text does not end in a newline, in which case there is no
	// synthetic trailing entry).
	beginningOfLineOffsets []int
}

// NewLineColumnMap scans text for line breaks and builds a map from byte
// offset to line/column.
func NewLineColumnMap(text string) *LineColumnMap {
	offsets := make([]int, 0, strings.Count(text, "\n")+1)
	offsets = append(offsets, 0)
	start := 0
	for {
		idx := strings.IndexByte(text[start:], '\n')
		if idx < 0 {
			break
		}
		offsets = append(offsets, start+idx+1)
		start = start + idx + 1
	}
	return &LineColumnMap{beginningOfLineOffsets: offsets}
}

// NewLineColumnMapFromLines builds a map from an already-split sequence
// of lines, as if each were joined by a single '\n'. This is useful when
// the caller already has line boundaries (e.g. from a text editor model)
// and wants to avoid re-scanning.
func NewLineColumnMapFromLines(lines []string) *LineColumnMap {
	offsets := make([]int, 0, len(lines))
	offset := 0
	for _, line := range lines {
		offsets = append(offsets, offset)
		offset += len(line) + 1
	}
	if len(offsets) == 0 {
		offsets = append(offsets, 0)
	}
	return &LineColumnMap{beginningOfLineOffsets: offsets}
}

// Empty reports whether the map has recorded no lines at all (only
// possible for a zero-value LineColumnMap).
func (m *LineColumnMap) Empty() bool {
	return len(m.beginningOfLineOffsets) == 0
}

// OffsetAtLine returns the byte offset at which the given 0-based line
// begins. A lineno beyond the last known line is clamped to the last one.
func (m *LineColumnMap) OffsetAtLine(lineno int) int {
	if len(m.beginningOfLineOffsets) == 0 {
		return 0
	}
	index := lineno
	if index > len(m.beginningOfLineOffsets)-1 {
		index = len(m.beginningOfLineOffsets) - 1
	}
	if index < 0 {
		index = 0
	}
	return m.beginningOfLineOffsets[index]
}

// Lookup translates a byte offset into a LineColumn. Offsets beyond the
// end of the text still resolve relative to the last known line start.
func (m *LineColumnMap) Lookup(offset int) LineColumn {
	offsets := m.beginningOfLineOffsets
	// upper_bound(offsets, offset) - 1, expressed via sort.Search.
	i := sort.Search(len(offsets), func(i int) bool { return offsets[i] > offset })
	base := i - 1
	if base < 0 {
		base = 0
	}
	return LineColumn{Line: base, Column: offset - offsets[base]}
}

// GetBeginningOfLineOffsets returns the recorded line-start offsets,
// indexed by 0-based line number.
func (m *LineColumnMap) GetBeginningOfLineOffsets() []int {
	return m.beginningOfLineOffsets
}

// EndOffset returns the final recorded line start (the text's length
// when the text ends in a newline), or 0 if the map is empty.
func (m *LineColumnMap) EndOffset() int {
	if m.Empty() {
		return 0
	}
	return m.beginningOfLineOffsets[len(m.beginningOfLineOffsets)-1]
}
