package format

import (
	"strings"
	"testing"

	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/text"
	"github.com/svlint/svlint/token"
)

func structureOf(content string) ([]byte, []string, *text.LineColumnMap) {
	base := []byte(content)
	lcmap := text.NewLineColumnMap(content)
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	return base, lines, lcmap
}

func tokenAt(base []byte, needle string) token.Token {
	idx := strings.Index(string(base), needle)
	return token.New(token.Identifier, base[idx:idx+len(needle)])
}

func TestFormatViolationBasic(t *testing.T) {
	content := "module foo;\n\tlogic x;\nendmodule\n"
	base, lines, lcmap := structureOf(content)

	v := lintrule.Violation{Token: tokenAt(base, "\t"), Reason: "tabs are forbidden"}
	status := lintrule.RuleStatus{RuleID: "no-tabs", InfoURL: "https://example.com/no-tabs"}

	f := Formatter{}
	got := f.FormatViolation("foo.sv", base, lines, lcmap, status, v)
	want := "foo.sv:2:1: tabs are forbidden https://example.com/no-tabs [no-tabs]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatViolationWithContextASCII(t *testing.T) {
	content := "module foo;\n\tlogic x;\nendmodule\n"
	base, lines, lcmap := structureOf(content)

	v := lintrule.Violation{Token: tokenAt(base, "\t"), Reason: "tabs are forbidden"}
	status := lintrule.RuleStatus{RuleID: "no-tabs"}

	f := Formatter{ShowContext: true}
	got := f.FormatViolation("foo.sv", base, lines, lcmap, status, v)
	parts := strings.Split(got, "\n")
	if len(parts) != 3 {
		t.Fatalf("expected 3 lines (message, source, caret), got %d: %q", len(parts), got)
	}
	if parts[1] != "\tlogic x;" {
		t.Fatalf("source line = %q", parts[1])
	}
	if parts[2] != "^" {
		t.Fatalf("caret line = %q, want a single caret at column 0", parts[2])
	}
}

func TestFormatViolationCaretCountsRunesNotBytes(t *testing.T) {
	// "café" has 4 runes but 5 bytes (é is 2 bytes in UTF-8); the
	// violation token sits right after it, so a byte-counted caret
	// would be off by one.
	content := "café x;\n"
	base, lines, lcmap := structureOf(content)

	v := lintrule.Violation{Token: tokenAt(base, "x"), Reason: "bad identifier"}
	status := lintrule.RuleStatus{RuleID: "stub"}

	f := Formatter{ShowContext: true}
	got := f.FormatViolation("foo.sv", base, lines, lcmap, status, v)
	parts := strings.Split(got, "\n")
	caretLine := parts[2]
	padding := strings.Index(caretLine, "^")
	// rune index of 'x' in "café x;" is 5 ("c","a","f","é"," ","x")
	if padding != 5 {
		t.Fatalf("caret padding (rune count) = %d, want 5; line=%q caret=%q", padding, content, caretLine)
	}
}

func TestFormatViolationHelperExpansion(t *testing.T) {
	content := "module foo; endmodule module bar; endmodule\n"
	base, lines, lcmap := structureOf(content)

	related := tokenAt(base, "bar")
	v := lintrule.Violation{
		Token:         tokenAt(base, "foo"),
		Reason:        `duplicate module, see @1 and a literal \@ sign`,
		RelatedTokens: []token.Token{related},
	}
	status := lintrule.RuleStatus{RuleID: "one-module-per-file"}

	f := Formatter{}
	got := f.FormatViolation("foo.sv", base, lines, lcmap, status, v)
	if !strings.Contains(got, "see foo.sv:1:") {
		t.Fatalf("expected @1 expanded to a location, got %q", got)
	}
	if !strings.Contains(got, "literal @ sign") {
		t.Fatalf("expected \\@ to expand to a literal @, got %q", got)
	}
}

func TestFormatStatusesSortsAcrossRules(t *testing.T) {
	content := "aaa bbb ccc\n"
	base, lines, lcmap := structureOf(content)

	statusLate := lintrule.RuleStatus{
		RuleID:     "rule-late",
		Violations: []lintrule.Violation{{Token: tokenAt(base, "ccc"), Reason: "late"}},
	}
	statusEarly := lintrule.RuleStatus{
		RuleID:     "rule-early",
		Violations: []lintrule.Violation{{Token: tokenAt(base, "aaa"), Reason: "early"}},
	}

	f := Formatter{}
	got := f.FormatStatuses("foo.sv", base, lines, lcmap, []lintrule.RuleStatus{statusLate, statusEarly})
	rendered := strings.Split(got, "\n")
	if len(rendered) != 2 {
		t.Fatalf("expected 2 rendered lines, got %d: %q", len(rendered), got)
	}
	if !strings.Contains(rendered[0], "rule-early") {
		t.Fatalf("expected the earlier-offset violation first, got %q", rendered[0])
	}
	if !strings.Contains(rendered[1], "rule-late") {
		t.Fatalf("expected the later-offset violation second, got %q", rendered[1])
	}
}

func TestFormatAutofixDiffShowsChange(t *testing.T) {
	base := []byte("module foo;\n\tlogic x;\nendmodule\n")
	fix, err := lintrule.NewAutofix("replace tab with spaces", []lintrule.TextEdit{
		{Start: 12, End: 13, Replacement: "  "},
	})
	if err != nil {
		t.Fatalf("unexpected error building autofix: %v", err)
	}
	diff := FormatAutofixDiff(base, fix)
	if diff == "" {
		t.Fatalf("expected a non-empty diff rendering")
	}
}
