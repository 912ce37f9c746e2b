package waiver

import "testing"

func TestApplyExternalWaiversLineRange(t *testing.T) {
	m := NewMap()
	content := "waive --rule=no-tabs --line=5:7\n"
	active := map[string]bool{"no-tabs": true}
	if err := ApplyExternalWaivers(m, active, "foo.sv", content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ln := range []int{4, 5, 6} { // 0-based lines 4,5,6 == 1-based 5,6,7
		if !m.IsWaived("no-tabs", ln) {
			t.Errorf("expected 0-based line %d waived", ln)
		}
	}
	if m.IsWaived("no-tabs", 7) {
		t.Errorf("line after range must not be waived")
	}
}

func TestApplyExternalWaiversSingleLine(t *testing.T) {
	m := NewMap()
	content := "waive --rule=no-tabs --line=3\n"
	if err := ApplyExternalWaivers(m, nil, "foo.sv", content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsWaived("no-tabs", 2) {
		t.Fatalf("expected 0-based line 2 waived for 1-based --line=3")
	}
}

func TestApplyExternalWaiversFileFilter(t *testing.T) {
	m := NewMap()
	content := "waive --rule=no-tabs --line=1 --file=other.sv\n"
	if err := ApplyExternalWaivers(m, nil, "foo.sv", content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Empty() {
		t.Fatalf("waiver scoped to a different file must not apply: %+v", m.lines)
	}
}

func TestApplyExternalWaiversUnknownRule(t *testing.T) {
	m := NewMap()
	content := "waive --rule=no-such-rule --line=1\n"
	active := map[string]bool{"no-tabs": true}
	err := ApplyExternalWaivers(m, active, "foo.sv", content)
	if err == nil {
		t.Fatalf("expected error for unknown rule")
	}
}

func TestApplyExternalWaiversComments(t *testing.T) {
	m := NewMap()
	content := "# a header comment\nwaive --rule=no-tabs --line=1\n"
	if err := ApplyExternalWaivers(m, nil, "foo.sv", content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsWaived("no-tabs", 0) {
		t.Fatalf("expected line 0 waived, comments should be skipped not rejected")
	}
}

func TestApplyExternalWaiversLocation(t *testing.T) {
	m := NewMap()
	content := `waive --rule=forbidden-symbol --location=defparam` + "\n"
	if err := ApplyExternalWaivers(m, nil, "foo.sv", content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	source := "module m;\n  defparam x.y = 1;\nendmodule\n"
	lcmap := newTestLineColumnMap(source)
	if err := m.RegexToLines(source, lcmap); err != nil {
		t.Fatalf("RegexToLines failed: %v", err)
	}
	if !m.IsWaived("forbidden-symbol", 1) {
		t.Fatalf("expected line 1 waived via --location regex")
	}
}
