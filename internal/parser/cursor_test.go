package parser

import (
	"testing"

	"github.com/ecmaflow/jsflow/internal/lexer"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// nullSink discards every callback; used by tests that only care about the
// Session's internal bookkeeping (promotion, ASI) rather than the emitted
// event sequence.
type nullSink struct{}

func (nullSink) OnToken(token.Token)            {}
func (nullSink) OnScopeOpen(token.ScopeKind) int { return 0 }
func (nullSink) OnScopeClose(token.ScopeKind)    {}

func newTestSession(src string) *Session {
	lx := lexer.New(src)
	return New(src, lx, nullSink{})
}

func TestPromoteBareIdentifierToSymbol(t *testing.T) {
	s := newTestSession("foo")
	tok := s.promote(s.lex.Current())
	if tok.Kind != token.SYMBOL {
		t.Fatalf("kind = %s, want SYMBOL", tok.Kind)
	}
}

func TestPromoteKeywordToKeyword(t *testing.T) {
	s := newTestSession("if")
	tok := s.promote(s.lex.Current())
	if tok.Kind != token.KEYWORD {
		t.Fatalf("kind = %s, want KEYWORD", tok.Kind)
	}
}

func TestPromoteLabelWhenFollowedByColon(t *testing.T) {
	s := newTestSession("done:")
	tok := s.promote(s.lex.Current())
	if tok.Kind != token.LABEL {
		t.Fatalf("kind = %s, want LABEL", tok.Kind)
	}
}

func TestPromoteMasqueradeAsIdentifierOutsideContext(t *testing.T) {
	// `await` with no enclosing async function is a plain identifier.
	s := newTestSession("await")
	tok := s.promote(s.lex.Current())
	if tok.Kind != token.SYMBOL {
		t.Fatalf("kind = %s, want SYMBOL (await outside async context)", tok.Kind)
	}
}

func TestPromoteAwaitAsKeywordInsideAsyncContext(t *testing.T) {
	s := newTestSession("await")
	s.pushFnContext(true, false)
	tok := s.promote(s.lex.Current())
	if tok.Kind != token.KEYWORD {
		t.Fatalf("kind = %s, want KEYWORD (await inside async context)", tok.Kind)
	}
}

func TestPromotePropertyNeverBecomesKeyword(t *testing.T) {
	s := newTestSession("a.if")
	s.lex.Next() // a
	s.lex.Next() // .
	tok := s.promote(s.lex.Current())
	if tok.Kind != token.SYMBOL {
		t.Fatalf("kind = %s, want SYMBOL", tok.Kind)
	}
	if tok.Special&token.Property == 0 {
		t.Error("property flag must survive promotion")
	}
}

func TestPromoteChangeFlagOnAssignmentTarget(t *testing.T) {
	s := newTestSession("x = 1")
	tok := s.promote(s.lex.Current())
	if tok.Special&token.Change == 0 {
		t.Error("identifier followed by '=' must carry the Change flag")
	}
}

func TestConsumeSemicolonRecognizesExplicitSemicolon(t *testing.T) {
	s := newTestSession("x;")
	s.advance() // consume 'x' (updates lastLine)
	if err := s.consumeSemicolon(); err != nil {
		t.Fatalf("consumeSemicolon: %v", err)
	}
	if !s.at(token.EOF) {
		t.Errorf("expected EOF after consuming explicit semicolon, got %s", s.peek().Kind)
	}
}

func TestConsumeSemicolonInsertsOnLineBreak(t *testing.T) {
	s := newTestSession("x\ny")
	s.advance() // consume 'x' on line 1
	if err := s.consumeSemicolon(); err != nil {
		t.Fatalf("consumeSemicolon: %v", err)
	}
	// No token should have been consumed past 'x' — the synthesized
	// semicolon does not advance the lexer.
	if s.peek().Text("x\ny") != "y" {
		t.Errorf("cursor after ASI = %q, want %q", s.peek().Text("x\ny"), "y")
	}
}

func TestConsumeSemicolonInsertsBeforeClosingBrace(t *testing.T) {
	s := newTestSession("{x}")
	s.lex.ReclassifyAsBlock(false) // the '{' currently open becomes a BLOCK
	s.advance()                    // consume '{'
	s.advance()                    // consume 'x'
	// Current token is the CLOSE matching the reclassified block brace;
	// ASI must fire without requiring a line break.
	if err := s.consumeSemicolon(); err != nil {
		t.Fatalf("consumeSemicolon: %v", err)
	}
}

func TestConsumeSemicolonFailsWithoutBoundary(t *testing.T) {
	s := newTestSession("x y")
	s.advance() // consume 'x', cursor now at 'y' on the same line
	if err := s.consumeSemicolon(); err == nil {
		t.Fatal("expected an error: no semicolon, no line break, no EOF/block boundary")
	}
}
