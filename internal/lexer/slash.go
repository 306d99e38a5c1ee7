package lexer

import (
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// priorEnablesRegexp decides whether a `/` following prior opens a regexp
// literal or is a division/compound-assignment operator (design §4.3): a
// slash starts a regexp unless prior is a value-producing token (an
// identifier, literal, value-literal keyword, `++`/`--`, or a CLOSE that
// matched a value-producing bracket).
func priorEnablesRegexp(prior token.Token) bool {
	switch prior.Kind {
	case token.SEMICOLON, token.COLON, token.TERNARY, token.PAREN, token.ARRAY, token.BRACE:
		return true
	case token.OP:
		return prior.Special != token.OperatorIncDec
	case token.KEYWORD, token.LIT:
		// The lexer's own prior is always the raw LIT; a keyword-shaped LIT
		// carries its role mask, a plain identifier does not.
		entry, ok := UnpackKeyword(prior.Special)
		if !ok {
			return prior.Kind == token.KEYWORD
		}
		role := entry.Role
		return role&(keyword.RelOp|keyword.UnaryOp|keyword.Masquerade) != 0 ||
			(role&keyword.Keyword != 0 && role&keyword.ValueLiteral == 0)
	case token.STRING:
		return prior.Special&token.StringOpensInterp != 0
	case token.CLOSE:
		closedKind, flag := DecodeClose(prior.Special)
		switch closedKind {
		case TernaryKind:
			return true
		case ParenKind:
			// A control-header paren's CLOSE (`if (...)`, `while (...)`, ...)
			// is followed by a statement, so `/` there opens a regexp; an
			// ordinary grouping/call paren's CLOSE produced a value.
			return flag
		case BraceKind:
			return false
		case BlockKind:
			// flag is the block-has-value bit: a statement block's `}`
			// produces no value, an object-literal or pattern `}` does.
			return !flag
		default:
			return false
		}
	default:
		// EOF, NUMBER, SYMBOL, LABEL, REGEXP, BLOCK: all value-producing,
		// so `/` divides.
		return false
	}
}

// scanSlash classifies a `/` as the start of a regexp literal or as a
// division/compound-assignment operator, consulting the immediately
// preceding token (design §4.3's single-token-lookback resolution — no
// save/restore is needed because the ambiguity is resolved before any
// bytes of the body are consumed).
func (s *State) scanSlash(prior token.Token) token.Token {
	if priorEnablesRegexp(prior) {
		return s.scanRegexp()
	}
	return s.scanSlashOperator()
}

func (s *State) scanSlashOperator() token.Token {
	voidStart, start, line := s.markStart()
	if n := opRun(s.src, s.at, "/="); n > 0 {
		s.at += n
		return token.Token{VoidStart: voidStart, Start: start, Length: n, Line: line, Kind: token.OP, Special: token.OperatorOther}
	}
	s.at++
	return token.Token{VoidStart: voidStart, Start: start, Length: 1, Line: line, Kind: token.OP, Special: token.OperatorOther}
}

// scanRegexp consumes a regexp literal body: `/` ... unescaped `/` ...
// trailing flag letters. A `[...]` character class suspends the
// unescaped-slash rule (a literal `/` inside a class does not terminate
// the body), matching ordinary ECMAScript regexp grammar.
func (s *State) scanRegexp() token.Token {
	voidStart, start, line := s.markStart()
	s.at++ // opening '/'

	inClass := false
	for {
		if s.atEnd() {
			s.recordError("unterminated regular expression literal")
			break
		}
		c := s.src[s.at]
		if c == '\n' {
			s.recordError("unterminated regular expression literal")
			break
		}
		if c == '\\' {
			s.at += 2
			continue
		}
		if c == '[' {
			inClass = true
			s.at++
			continue
		}
		if c == ']' {
			inClass = false
			s.at++
			continue
		}
		if c == '/' && !inClass {
			s.at++
			break
		}
		s.at++
	}
	for isIdentContinue(s.byteAt(s.at)) {
		s.at++
	}
	return token.Token{VoidStart: voidStart, Start: start, Length: s.at - start, Line: line, Kind: token.REGEXP}
}
