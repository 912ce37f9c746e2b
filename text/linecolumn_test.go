package text

import "testing"

func TestLineColumnMapBasic(t *testing.T) {
	src := "module foo;\n  wire a;\nendmodule\n"
	m := NewLineColumnMap(src)

	cases := []struct {
		offset int
		want   LineColumn
	}{
		{0, LineColumn{0, 0}},
		{7, LineColumn{0, 7}},
		{12, LineColumn{1, 0}},
		{14, LineColumn{1, 2}},
		{22, LineColumn{2, 0}},
	}
	for _, c := range cases {
		got := m.Lookup(c.offset)
		if got != c.want {
			t.Errorf("Lookup(%d) = %+v, want %+v", c.offset, got, c.want)
		}
	}
}

func TestLineColumnMapNoTrailingNewline(t *testing.T) {
	src := "a\nb"
	m := NewLineColumnMap(src)
	if got, want := m.EndOffset(), 2; got != want {
		t.Errorf("EndOffset() = %d, want %d (no synthetic trailing line for missing final newline)", got, want)
	}
}

func TestLineColumnMapString(t *testing.T) {
	lc := LineColumn{Line: 0, Column: 0}
	if got, want := lc.String(), "1:1"; got != want {
		t.Errorf("String() = %q, want %q (1-based rendering)", got, want)
	}
}

func TestOffsetAtLineClamps(t *testing.T) {
	src := "a\nb\nc\n"
	m := NewLineColumnMap(src)
	if got, want := m.OffsetAtLine(100), m.EndOffset(); got != want {
		t.Errorf("OffsetAtLine(100) = %d, want clamp to EndOffset() %d", got, want)
	}
}

func TestFromLinesMatchesScannedConstruction(t *testing.T) {
	lines := []string{"module foo;", "  wire a;", "endmodule"}
	joined := ""
	for i, l := range lines {
		if i > 0 {
			joined += "\n"
		}
		joined += l
	}
	joined += "\n"

	scanned := NewLineColumnMap(joined)
	fromLines := NewLineColumnMapFromLines(lines)

	gotOffsets := fromLines.GetBeginningOfLineOffsets()
	wantOffsets := scanned.GetBeginningOfLineOffsets()[:len(lines)]
	if len(gotOffsets) != len(wantOffsets) {
		t.Fatalf("offset count mismatch: got %v want %v", gotOffsets, wantOffsets)
	}
	for i := range gotOffsets {
		if gotOffsets[i] != wantOffsets[i] {
			t.Errorf("offset[%d] = %d, want %d", i, gotOffsets[i], wantOffsets[i])
		}
	}
}
