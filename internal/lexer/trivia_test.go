package lexer

import (
	"testing"

	"github.com/ecmaflow/jsflow/pkg/token"
)

func TestSkipsWhitespaceAndLineComment(t *testing.T) {
	src := "  a // trailing comment\n  b"
	lx := New(src)

	a := lx.Current()
	if a.Kind != token.LIT || a.Text(src) != "a" {
		t.Fatalf("first token: kind=%s text=%q", a.Kind, a.Text(src))
	}
	if a.Line != 1 {
		t.Errorf("a.Line = %d, want 1", a.Line)
	}

	b := lx.Next()
	if b.Kind != token.LIT || b.Text(src) != "b" {
		t.Fatalf("second token: kind=%s text=%q", b.Kind, b.Text(src))
	}
	if b.Line != 2 {
		t.Errorf("b.Line = %d, want 2", b.Line)
	}
}

func TestSkipsBlockCommentSpanningLines(t *testing.T) {
	src := "a /* multi\nline\ncomment */ b"
	lx := New(src)
	lx.Next() // a
	b := lx.Current()
	if b.Text(src) != "b" {
		t.Fatalf("text = %q, want %q", b.Text(src), "b")
	}
	if b.Line != 3 {
		t.Errorf("b.Line = %d, want 3", b.Line)
	}
}

func TestUnterminatedBlockCommentRecordsError(t *testing.T) {
	lx := New("a /* never closed")
	lx.Next() // force scan of the rest
	if len(lx.Errors()) == 0 {
		t.Fatal("expected unterminated block comment error")
	}
}

func TestShebangSkippedOnFirstLine(t *testing.T) {
	src := "#!/usr/bin/env node\nconst x = 1;"
	lx := New(src)
	tok := lx.Current()
	if tok.Kind != token.LIT {
		t.Fatalf("first token after shebang: kind=%s, want LIT (pre-promotion)", tok.Kind)
	}
	if got := tok.Text(src); got != "const" {
		t.Errorf("text = %q, want %q", got, "const")
	}
}
