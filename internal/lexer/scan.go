package lexer

import "github.com/ecmaflow/jsflow/pkg/token"

// scan classifies exactly one token starting at s.at, after skipping
// leading trivia. prior is the token just produced by the previous call
// (or a synthetic leading SEMICOLON for the very first call from New) —
// it is the single piece of lookback the slash and template-resumption
// ambiguities need (design §4.2, §4.3).
//
// scan never returns an error itself; a structural-stack push/pop failure
// (overflow/underflow) is recorded via recordError and reported back as an
// EOF-kind token so the driver can stop.
//
// Every returned token's VoidStart is the offset where the skipped trivia
// began, so source[VoidStart:End()] covers the trivia plus the token.
func (s *State) scan(prior token.Token) (tok token.Token) {
	voidStart := s.at
	defer func() { tok.VoidStart = voidStart }()
	s.skipTrivia()

	if s.atEnd() {
		voidStart, start, line := s.markStart()
		return token.Token{VoidStart: voidStart, Start: start, Length: 0, Line: line, Kind: token.EOF}
	}

	c := s.src[s.at]

	switch {
	case isIdentStart(c):
		return s.scanIdentifier(prior)
	case c == '`':
		return s.scanTemplateHead()
	case c == '\'' || c == '"':
		return s.scanQuotedString(c)
	case c >= '0' && c <= '9':
		return s.scanNumber()
	default:
		tok, err := s.scanOperator(prior)
		if err != nil {
			s.recordError(err.Error())
			voidStart, start, line := s.markStart()
			return token.Token{VoidStart: voidStart, Start: start, Length: 0, Line: line, Kind: token.EOF}
		}
		return tok
	}
}

// Next advances the lexer to the following token and returns it. If a peek
// was already buffered (via PeekToken) it is consumed instead of rescanning.
// Next is bounded by the active save frame's lookahead window (design
// §4.6): once maxLookahead tokens have been consumed since the last Save,
// further calls record ErrLookaheadOverflow and return an EOF token.
func (s *State) Next() token.Token {
	if s.saveActive {
		if err := s.noteConsumed(); err != nil {
			s.recordError(err.Error())
			voidStart, start, line := s.markStart()
			return token.Token{VoidStart: voidStart, Start: start, Length: 0, Line: line, Kind: token.EOF}
		}
	}

	prior := s.cur
	if s.peekValid {
		s.cur = s.peek
		s.peekValid = false
	} else {
		s.cur = s.scan(prior)
	}
	return s.cur
}

// PeekToken returns the token that would be produced by the next call to
// Next, without advancing past it. The peeked token is cached so a
// subsequent Next does not rescan.
func (s *State) PeekToken() token.Token {
	if !s.peekValid {
		s.peek = s.scan(s.cur)
		s.peekValid = true
	}
	return s.peek
}
