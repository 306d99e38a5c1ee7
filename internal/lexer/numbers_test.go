package lexer

import (
	"testing"

	"github.com/ecmaflow/jsflow/pkg/token"
)

func TestNumbers(t *testing.T) {
	input := `0 123 3.14 .5 1e10 1.5e-3 0x1F 0X1f 0o17 0O17 0b101 0B101 0777 10n 1_000_000`

	want := []string{
		"0", "123", "3.14", ".5", "1e10", "1.5e-3",
		"0x1F", "0X1f", "0o17", "0O17", "0b101", "0B101", "0777", "10n", "1_000_000",
	}

	lx := New(input)
	for i, text := range want {
		tok := lx.Current()
		if tok.Kind != token.NUMBER {
			t.Fatalf("token %d (%q): kind = %s, want NUMBER", i, text, tok.Kind)
		}
		if got := tok.Text(input); got != text {
			t.Errorf("token %d: text = %q, want %q", i, got, text)
		}
		lx.Next()
	}

	if final := lx.Current(); final.Kind != token.EOF {
		t.Errorf("trailing token = %s, want EOF", final.Kind)
	}
}

func TestLegacyOctalAndBigInt(t *testing.T) {
	lx := New("0755n")
	tok := lx.Current()
	if tok.Kind != token.NUMBER {
		t.Fatalf("kind = %s, want NUMBER", tok.Kind)
	}
	if got := tok.Text("0755n"); got != "0755n" {
		t.Errorf("text = %q, want %q", got, "0755n")
	}
}

func TestDotNumberVsSpreadAndDot(t *testing.T) {
	// ".5" is a number; "..." is spread; "a.b" is dot-access, not a number.
	lx := New(".5 ... a.b")

	tok := lx.Current()
	if tok.Kind != token.NUMBER || tok.Text(".5 ... a.b") != ".5" {
		t.Fatalf("leading-dot number: got %s %q", tok.Kind, tok.Text(".5 ... a.b"))
	}
	lx.Next()

	tok = lx.Current()
	if tok.Kind != token.OP || tok.Special != token.OperatorSpread {
		t.Fatalf("spread: got kind=%s special=%d", tok.Kind, tok.Special)
	}
}
