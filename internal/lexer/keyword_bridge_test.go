package lexer

import (
	"testing"

	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

func TestPackUnpackKeywordRoundTrip(t *testing.T) {
	for word, want := range map[string]keyword.Entry{
		"if":     {ID: keyword.If, Role: keyword.Keyword | keyword.Control | keyword.ControlParen},
		"let":    {ID: keyword.Let, Role: keyword.Strict | keyword.Decl | keyword.Masquerade},
		"true":   {ID: keyword.True, Role: keyword.Keyword | keyword.ValueLiteral},
		"typeof": {ID: keyword.Typeof, Role: keyword.Keyword | keyword.UnaryOp},
	} {
		entry, ok := keyword.Lookup(word)
		if !ok || entry != want {
			t.Fatalf("keyword.Lookup(%q) = %+v, %v; want %+v", word, entry, ok, want)
		}

		packed := packKeyword(entry)
		if packed&token.LitFlag == 0 {
			t.Fatalf("%q: packed Special must set LitFlag", word)
		}

		got, ok := UnpackKeyword(packed)
		if !ok {
			t.Fatalf("%q: UnpackKeyword reported not-a-keyword", word)
		}
		if got != entry {
			t.Errorf("%q: round-trip = %+v, want %+v", word, got, entry)
		}
	}
}

func TestUnpackKeywordRejectsPlainSpecial(t *testing.T) {
	if _, ok := UnpackKeyword(token.Special(token.Declare | token.Top)); ok {
		t.Fatal("UnpackKeyword must reject a Special with LitFlag clear")
	}
}

func TestLexerTagsKeywordsWithLitFlag(t *testing.T) {
	src := "if (x) {}"
	lx := New(src)
	tok := lx.Current()
	if tok.Kind != token.LIT {
		t.Fatalf("kind = %s, want LIT (pre-promotion)", tok.Kind)
	}
	entry, ok := UnpackKeyword(tok.Special)
	if !ok || entry.ID != keyword.If {
		t.Fatalf("UnpackKeyword = %+v, %v; want keyword.If", entry, ok)
	}
}

func TestDotPropertySuppressesKeywordLookup(t *testing.T) {
	src := "a.if"
	lx := New(src)
	lx.Next() // a
	lx.Next() // .
	tok := lx.Current()
	if tok.Kind != token.LIT {
		t.Fatalf("kind = %s, want LIT", tok.Kind)
	}
	if tok.Special != token.Property {
		t.Errorf("special = %d, want Property (dot suppresses keyword lookup)", tok.Special)
	}
}
