package lexer

import (
	"testing"

	"github.com/ecmaflow/jsflow/pkg/token"
)

func TestQuotedStrings(t *testing.T) {
	input := `'single' "double" 'with \' escape' "with \" escape"`

	tests := []string{
		`'single'`, `"double"`, `'with \' escape'`, `"with \" escape"`,
	}

	lx := New(input)
	for i, want := range tests {
		tok := lx.Current()
		if tok.Kind != token.STRING {
			t.Fatalf("token %d: kind = %s, want STRING", i, tok.Kind)
		}
		if got := tok.Text(input); got != want {
			t.Errorf("token %d: text = %q, want %q", i, got, want)
		}
		lx.Next()
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	lx := New("'oops")
	tok := lx.Current()
	if tok.Kind != token.STRING {
		t.Fatalf("kind = %s, want STRING", tok.Kind)
	}
	if len(lx.Errors()) == 0 {
		t.Fatal("expected an unterminated-string error to be recorded")
	}
}

func TestTemplateLiteralPlain(t *testing.T) {
	lx := New("`hello world`")
	tok := lx.Current()
	if tok.Kind != token.STRING {
		t.Fatalf("kind = %s, want STRING", tok.Kind)
	}
	if got := tok.Text("`hello world`"); got != "`hello world`" {
		t.Errorf("text = %q, want %q", got, "`hello world`")
	}
	if tok.Special&token.StringOpensInterp != 0 {
		t.Error("plain template must not set StringOpensInterp")
	}
}

func TestTemplateLiteralWithInterpolation(t *testing.T) {
	src := "`a${x}b`"
	lx := New(src)

	head := lx.Current()
	if head.Kind != token.STRING || head.Text(src) != "`a${" {
		t.Fatalf("head: kind=%s text=%q", head.Kind, head.Text(src))
	}
	if head.Special&token.StringOpensInterp == 0 {
		t.Fatal("head must set StringOpensInterp")
	}
	lx.Next()

	x := lx.Current()
	if x.Kind != token.LIT || x.Text(src) != "x" {
		t.Fatalf("interpolated expr: kind=%s text=%q", x.Kind, x.Text(src))
	}
	lx.Next()

	tail := lx.Current()
	if tail.Kind != token.STRING || tail.Text(src) != "}b`" {
		t.Fatalf("tail: kind=%s text=%q", tail.Kind, tail.Text(src))
	}
	if tail.Special&token.StringOpensInterp != 0 {
		t.Error("closing template segment must not set StringOpensInterp")
	}
}

func TestTemplateLiteralNestedInterpolation(t *testing.T) {
	src := "`${`${y}`}`"
	lx := New(src)

	outer := lx.Current()
	if outer.Kind != token.STRING || outer.Text(src) != "`${" {
		t.Fatalf("outer head: kind=%s text=%q", outer.Kind, outer.Text(src))
	}
	lx.Next()

	inner := lx.Current()
	if inner.Kind != token.STRING || inner.Text(src) != "`${" {
		t.Fatalf("inner head: kind=%s text=%q", inner.Kind, inner.Text(src))
	}
	lx.Next()

	y := lx.Current()
	if y.Kind != token.LIT || y.Text(src) != "y" {
		t.Fatalf("y: kind=%s text=%q", y.Kind, y.Text(src))
	}
	lx.Next()

	innerTail := lx.Current()
	if innerTail.Kind != token.STRING || innerTail.Text(src) != "}`" {
		t.Fatalf("inner tail: kind=%s text=%q", innerTail.Kind, innerTail.Text(src))
	}
	lx.Next()

	outerTail := lx.Current()
	if outerTail.Kind != token.STRING || outerTail.Text(src) != "}`" {
		t.Fatalf("outer tail: kind=%s text=%q", outerTail.Kind, outerTail.Text(src))
	}
}
