package token

import "testing"

func TestEqualSameBuffer(t *testing.T) {
	buf := []byte("module foo;")
	a := New(Identifier, buf[0:6])
	b := New(Identifier, buf[0:6])
	if !a.Equal(b) {
		t.Fatalf("expected %+v to equal %+v", a, b)
	}
}

func TestEqualDifferentKind(t *testing.T) {
	buf := []byte("foo")
	a := New(Identifier, buf)
	b := New(Unknown, buf)
	if a.Equal(b) {
		t.Fatalf("tokens with different kinds must not be equal")
	}
}

func TestEquivalentWithoutLocationIgnoresBuffer(t *testing.T) {
	a := New(Identifier, []byte("foo"))
	b := New(Identifier, []byte("foo"))
	if !a.EquivalentWithoutLocation(b) {
		t.Fatalf("expected equivalence across distinct buffers")
	}
	c := New(Identifier, []byte("bar"))
	if a.EquivalentWithoutLocation(c) {
		t.Fatalf("differing text must not be equivalent")
	}
}

func TestEquivalentWithoutLocationEOF(t *testing.T) {
	a := EOFToken([]byte("module foo;"))
	b := EOFToken([]byte("different buffer"))
	if !a.EquivalentWithoutLocation(b) {
		t.Fatalf("all EOF tokens must be equivalent regardless of text")
	}
}

func TestIsEOF(t *testing.T) {
	buf := []byte("x")
	if New(Identifier, buf).IsEOF() {
		t.Fatalf("identifier token must not report IsEOF")
	}
	if !EOFToken(buf).IsEOF() {
		t.Fatalf("EOFToken must report IsEOF")
	}
}

func TestConcatRebuildsContiguousBuffer(t *testing.T) {
	tokens := []Token{
		New(Identifier, []byte("module")),
		New(Space, []byte(" ")),
		New(Identifier, []byte("foo")),
	}
	buf, out := Concat(tokens)
	if buf != "module foo" {
		t.Fatalf("unexpected concatenated buffer: %q", buf)
	}
	if len(out) != len(tokens) {
		t.Fatalf("expected %d tokens, got %d", len(tokens), len(out))
	}
	for i, tok := range out {
		if !tok.EquivalentWithoutLocation(tokens[i]) {
			t.Fatalf("token %d changed content: got %q want %q", i, tok.Text, tokens[i].Text)
		}
	}
	// Every rewritten token must slice directly into the new buffer, in order.
	cursor := 0
	for i, tok := range out {
		want := buf[cursor : cursor+len(tok.Text)]
		if string(tok.Text) != want {
			t.Fatalf("token %d not contiguous: got %q want %q", i, tok.Text, want)
		}
		cursor += len(tok.Text)
	}
}

func TestConcatEmpty(t *testing.T) {
	buf, out := Concat(nil)
	if buf != "" || len(out) != 0 {
		t.Fatalf("expected empty result for empty input, got %q %v", buf, out)
	}
}
