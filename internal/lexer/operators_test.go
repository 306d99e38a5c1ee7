package lexer

import (
	"testing"

	"github.com/ecmaflow/jsflow/pkg/token"
)

func TestOperators(t *testing.T) {
	// `/` and `/=` follow `++`/`--`: after any other operator a slash
	// opens a regexp literal instead (see slash.go).
	input := `+ - * % **
		= == === != !==
		+= -= *= %= **=
		++ / -- /=
		<< >> >>> & | ^ ~
		&& || ?? ?.
		=> ... ,`

	tests := []struct {
		text    string
		special token.Special
	}{
		{"+", token.OperatorOther},
		{"-", token.OperatorOther},
		{"*", token.OperatorStar},
		{"%", token.OperatorOther},
		{"**", token.OperatorOther},
		{"=", token.OperatorAssign},
		{"==", token.OperatorOther},
		{"===", token.OperatorOther},
		{"!=", token.OperatorOther},
		{"!==", token.OperatorOther},
		{"+=", token.OperatorOther},
		{"-=", token.OperatorOther},
		{"*=", token.OperatorOther},
		{"%=", token.OperatorOther},
		{"**=", token.OperatorOther},
		{"++", token.OperatorIncDec},
		{"/", token.OperatorOther},
		{"--", token.OperatorIncDec},
		{"/=", token.OperatorOther},
		{"<<", token.OperatorOther},
		{">>", token.OperatorOther},
		{">>>", token.OperatorOther},
		{"&", token.OperatorOther},
		{"|", token.OperatorOther},
		{"^", token.OperatorOther},
		{"~", token.OperatorBitNot},
		{"&&", token.OperatorOther},
		{"||", token.OperatorOther},
		{"??", token.OperatorOther},
		{"?.", token.OperatorChain},
		{"=>", token.OperatorArrow},
		{"...", token.OperatorSpread},
		{",", token.OperatorComma},
	}

	lx := New(input)
	for i, tt := range tests {
		tok := lx.Current()
		if tok.Kind != token.OP {
			t.Fatalf("token %d (%q): kind = %s, want OP", i, tt.text, tok.Kind)
		}
		if got := tok.Text(input); got != tt.text {
			t.Errorf("token %d: text = %q, want %q", i, got, tt.text)
		}
		if tok.Special != tt.special {
			t.Errorf("token %d (%q): special = %d, want %d", i, tt.text, tok.Special, tt.special)
		}
		lx.Next()
	}
}

func TestBracketsPushAndPop(t *testing.T) {
	lx := New("([{}])")

	wantKinds := []token.Kind{token.PAREN, token.ARRAY, token.BRACE, token.CLOSE, token.CLOSE, token.CLOSE}
	for i, want := range wantKinds {
		tok := lx.Current()
		if tok.Kind != want {
			t.Fatalf("token %d: kind = %s, want %s", i, tok.Kind, want)
		}
		lx.Next()
	}
}

func TestTernaryColonClosesTernary(t *testing.T) {
	lx := New("a ? b : c")

	// a
	lx.Next()
	// ?
	tok := lx.Current()
	if tok.Kind != token.TERNARY {
		t.Fatalf("kind = %s, want TERNARY", tok.Kind)
	}
	lx.Next()
	// b
	lx.Next()
	// :
	tok = lx.Current()
	if tok.Kind != token.CLOSE {
		t.Fatalf("colon after ternary branch: kind = %s, want CLOSE", tok.Kind)
	}
}

func TestOptionalChainNotConfusedWithTernaryNumber(t *testing.T) {
	// "?.5" inside a conditional-like position must still read as "?" then
	// ".5" when the byte after "?." is a digit (i.e. "a ? .5 : 1").
	lx := New("a ? .5 : 1")
	lx.Next() // a
	tok := lx.Current()
	if tok.Kind != token.TERNARY {
		t.Fatalf("kind = %s, want TERNARY (got text %q)", tok.Kind, tok.Text("a ? .5 : 1"))
	}
}
