package lexer

import (
	"testing"

	"github.com/ecmaflow/jsflow/pkg/token"
)

func TestSlashAfterValueIsDivision(t *testing.T) {
	src := "a / b"
	lx := New(src)
	lx.Next() // a
	tok := lx.Current()
	if tok.Kind != token.OP || tok.Text(src) != "/" {
		t.Fatalf("kind=%s text=%q, want division operator", tok.Kind, tok.Text(src))
	}
}

func TestSlashAfterOpenParenIsRegexp(t *testing.T) {
	src := "(/ab+c/)"
	lx := New(src)
	lx.Next() // consume '('
	tok := lx.Current()
	if tok.Kind != token.REGEXP {
		t.Fatalf("kind = %s, want REGEXP", tok.Kind)
	}
	if got := tok.Text(src); got != "/ab+c/" {
		t.Errorf("text = %q, want %q", got, "/ab+c/")
	}
}

func TestSlashAfterSemicolonIsRegexp(t *testing.T) {
	src := "; /x/g"
	lx := New(src)
	lx.Next() // consume ';'
	tok := lx.Current()
	if tok.Kind != token.REGEXP {
		t.Fatalf("kind = %s, want REGEXP", tok.Kind)
	}
	if got := tok.Text(src); got != "/x/g" {
		t.Errorf("text = %q, want %q", got, "/x/g")
	}
}

func TestRegexpCharacterClassSuspendsTerminator(t *testing.T) {
	src := "/[a/b]c/"
	lx := New(src)
	tok := lx.Current()
	if tok.Kind != token.REGEXP {
		t.Fatalf("kind = %s, want REGEXP", tok.Kind)
	}
	if got := tok.Text(src); got != src {
		t.Errorf("text = %q, want %q", got, src)
	}
}

func TestSlashAfterIncDecIsDivision(t *testing.T) {
	src := "a++ / b"
	lx := New(src)
	lx.Next() // ++
	lx.Next() // past ++
	tok := lx.Current()
	if tok.Kind != token.OP || tok.Text(src) != "/" {
		t.Fatalf("kind=%s text=%q, want division operator", tok.Kind, tok.Text(src))
	}
}

func TestDivisionAssignOperator(t *testing.T) {
	src := "a /= b"
	lx := New(src)
	lx.Next() // a
	tok := lx.Current()
	if tok.Kind != token.OP || tok.Text(src) != "/=" {
		t.Fatalf("kind=%s text=%q, want /=", tok.Kind, tok.Text(src))
	}
}
