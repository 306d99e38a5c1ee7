package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/internal/lexer"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// advance reports the current token to the sink (after promotion, if it is
// a LIT) and moves the lexer to the next one, returning the token that was
// just reported.
func (s *Session) advance() token.Token {
	tok := s.promote(s.lex.Current())
	s.emit(tok)
	s.lex.Next()
	return tok
}

func (s *Session) peek() token.Token { return s.lex.Current() }

// peekNext returns the token after the current one without consuming
// either.
func (s *Session) peekNext() token.Token { return s.lex.PeekToken() }

// at reports whether the current token has the given kind.
func (s *Session) at(kind token.Kind) bool { return s.lex.Current().Kind == kind }

func (s *Session) atOp(special token.Special) bool {
	cur := s.lex.Current()
	return cur.Kind == token.OP && cur.Special == special
}

// atWord reports whether the current token is a LIT/KEYWORD resolving to
// the given keyword identity, regardless of whether the lexer classified
// it as LIT or the parser already promoted it to KEYWORD.
func (s *Session) atWord(id keyword.ID) bool {
	return isWord(s.lex.Current(), id)
}

// expect advances past the current token if it has kind k, else records
// an UNEXPECTED diagnostic.
func (s *Session) expect(k token.Kind) (token.Token, error) {
	if !s.at(k) {
		return token.Token{}, s.fail(errors.Unexpected, "unexpected token "+s.lex.Current().Kind.String()+", want "+k.String())
	}
	return s.advance(), nil
}

// expectWord advances past the current token if it resolves to keyword id.
func (s *Session) expectWord(id keyword.ID) (token.Token, error) {
	if !s.atWord(id) {
		return token.Token{}, s.fail(errors.Unexpected, "unexpected token, want keyword")
	}
	return s.advance(), nil
}

// promote implements §4.7's final keyword/symbol/label decision: a LIT
// token is promoted to KEYWORD (when its role mask marks it
// control/decl/masquerade/unary-op/keyword and the masquerade context
// applies), to LABEL (when the next token is `:` and the word is not
// reserved), or to SYMBOL (the default), setting CHANGE when followed by
// an assignment-like operator or `++`/`--`.
func (s *Session) promote(tok token.Token) token.Token {
	if tok.Kind != token.LIT {
		return tok
	}

	// A LIT following `.`/`?.` was already tagged Property by the lexer
	// (identifiers.go's isDotLike) and never looked up in the keyword
	// table — it is always a member name, never a keyword or a label.
	if tok.Special&token.Property != 0 {
		tok.Kind = token.SYMBOL
		return tok
	}

	entry, isKeyword := keywordRole(tok)
	if isKeyword {
		if keyword.IsMasquerade(entry.Role) && !s.maskeradeIsKeyword(entry) {
			// A masquerade word used as a plain identifier in this context
			// (e.g. `let` as a variable name in non-strict sloppy mode,
			// `async`/`await`/`yield` outside their governing context).
			return s.promoteAsSymbolOrLabel(tok)
		}
		tok.Kind = token.KEYWORD
		return tok
	}

	return s.promoteAsSymbolOrLabel(tok)
}

// maskeradeIsKeyword resolves whether a masquerade word acts as a keyword
// in the current context: `await`/`yield` are keywords only inside an
// async/generator function respectively; the rest (`let`, `static`, `of`,
// `as`, `from`, `get`, `set`) are resolved by their surrounding grammar
// production (declaration.go, dict.go, module.go call expectWord/atWord
// directly rather than relying on promotion), so here they default to
// "not a keyword" and are promoted as identifiers.
func (s *Session) maskeradeIsKeyword(entry keyword.Entry) bool {
	switch entry.ID {
	case keyword.Await:
		return s.inAsync()
	case keyword.Yield:
		return s.inGenerator()
	default:
		return false
	}
}

func (s *Session) promoteAsSymbolOrLabel(tok token.Token) token.Token {
	next := s.lex.PeekToken()
	tok.Special = 0
	if next.Kind == token.COLON {
		tok.Kind = token.LABEL
		return tok
	}

	tok.Kind = token.SYMBOL
	if next.Kind == token.OP && (next.Special == token.OperatorAssign || next.Special == token.OperatorIncDec) {
		tok.Special |= token.Change
	}
	return tok
}

// isASIBoundary implements the ASI priority order from §4.7: an explicit
// `;` is consumed elsewhere; this tests the implicit cases once the
// current token is known not to be `;`. prevLine is the line of the last
// token actually consumed by the statement, not the current token's own
// line — a line-break check against itself would always be false.
func (s *Session) isASIBoundary(prevLine int) bool {
	cur := s.lex.Current()
	if cur.Kind == token.EOF {
		return true
	}
	if cur.Kind == token.CLOSE {
		if kind, _ := lexer.DecodeClose(cur.Special); kind == lexer.BlockKind {
			return true
		}
	}
	return cur.Line > prevLine
}

// consumeSemicolon implements the statement-terminator rule of §4.7: an
// explicit `;` is consumed and reported; otherwise ASI is recognized
// (priority order b/c/d) and a zero-length SEMICOLON token is synthesized
// and reported in its place.
func (s *Session) consumeSemicolon() error {
	if s.at(token.SEMICOLON) && !s.lex.Current().IsASI() {
		s.advance()
		return nil
	}
	if s.isASIBoundary(s.lastLine) || s.lex.Current().Kind == token.SEMICOLON {
		s.emitASI(s.lastLine)
		return nil
	}
	return s.fail(errors.Unexpected, "expected semicolon or line break")
}

func (s *Session) emitASI(line int) {
	s.emit(token.Token{Line: line, Kind: token.SEMICOLON})
}
