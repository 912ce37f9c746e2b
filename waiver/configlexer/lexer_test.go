package configlexer

import "testing"

func TestLexLineBasic(t *testing.T) {
	tokens := LexLine(`waive --rule=no-tabs --line=12`)
	want := []Token{
		{Kind: COMMAND, Text: "waive"},
		{Kind: FLAG_WITH_ARG, Text: "rule"},
		{Kind: ARG, Text: "no-tabs"},
		{Kind: FLAG_WITH_ARG, Text: "line"},
		{Kind: ARG, Text: "12"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestLexLineComment(t *testing.T) {
	tokens := LexLine("  # a comment")
	if len(tokens) != 1 || tokens[0].Kind != COMMENT {
		t.Fatalf("expected single COMMENT token, got %+v", tokens)
	}
}

func TestLexLineBlank(t *testing.T) {
	tokens := LexLine("   ")
	if len(tokens) != 1 || tokens[0].Kind != NEWLINE {
		t.Fatalf("expected single NEWLINE token for blank line, got %+v", tokens)
	}
}

func TestLexLineBareFlag(t *testing.T) {
	tokens := LexLine("waive --rule=no-tabs --verbose")
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(tokens), tokens)
	}
	if tokens[3].Kind != FLAG || tokens[3].Text != "verbose" {
		t.Errorf("expected bare FLAG 'verbose', got %+v", tokens[3])
	}
}

func TestLexMultiline(t *testing.T) {
	content := "waive --rule=a --line=1\n# comment\n\nwaive --rule=b --line=2"
	lines := Lex(content)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %+v", len(lines), lines)
	}
	if lines[1][0].Kind != COMMENT {
		t.Errorf("line 1 should be a comment, got %+v", lines[1])
	}
	if lines[2][0].Kind != NEWLINE {
		t.Errorf("line 2 should be blank, got %+v", lines[2])
	}
}
