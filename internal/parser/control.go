package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// controlParen consumes the `(` of a control-statement header, marking it
// on the structural stack so its matching CLOSE re-enables regexp
// disambiguation afterward (§4.3, stack.go's MarkTopAsControlHeader).
func (s *Session) controlParen() error {
	if _, err := s.expect(token.PAREN); err != nil {
		return err
	}
	s.lex.MarkTopAsControlHeader()
	return nil
}

func (s *Session) ifStatement() error {
	s.openScope(token.SCOPE_CONTROL)
	s.advance() // 'if'
	if err := s.controlParen(); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if err := s.expression(false); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if _, err := s.expect(token.CLOSE); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if err := s.statement(modeBlock); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if isWord(s.peek(), keyword.Else) {
		s.advance()
		if err := s.statement(modeBlock); err != nil {
			s.closeScope(token.SCOPE_CONTROL)
			return err
		}
	}
	s.closeScope(token.SCOPE_CONTROL)
	return nil
}

func (s *Session) whileStatement() error {
	s.openScope(token.SCOPE_CONTROL)
	s.advance() // 'while'
	if err := s.controlParen(); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if err := s.expression(false); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if _, err := s.expect(token.CLOSE); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	err := s.statement(modeBlock)
	s.closeScope(token.SCOPE_CONTROL)
	return err
}

// doWhileStatement consumes `do { ... } while (...)`, with a trailing
// semicolon that is optional per §4.7.
func (s *Session) doWhileStatement() error {
	s.openScope(token.SCOPE_CONTROL)
	s.advance() // 'do'
	if err := s.statement(modeBlock); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if _, err := s.expectWord(keyword.While); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if err := s.controlParen(); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if err := s.expression(false); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if _, err := s.expect(token.CLOSE); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if s.at(token.SEMICOLON) {
		s.advance()
	}
	s.closeScope(token.SCOPE_CONTROL)
	return nil
}

// forStatement disambiguates the three `for` shapes — 3-clause,
// `for (... in ...)`, `for (... of ...)` — and `for await (...)`,
// per §4.7.
func (s *Session) forStatement() error {
	s.openScope(token.SCOPE_CONTROL)
	s.advance() // 'for'
	if isWord(s.peek(), keyword.Await) {
		s.advance()
	}
	if err := s.controlParen(); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}

	if err := s.forHeader(); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}

	if _, err := s.expect(token.CLOSE); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	err := s.statement(modeBlock)
	s.closeScope(token.SCOPE_CONTROL)
	return err
}

func (s *Session) forHeader() error {
	if s.at(token.SEMICOLON) {
		s.advance()
		return s.forThreeClauseTail()
	}

	declID := keyword.None
	if entry, ok := keywordRole(s.peek()); ok {
		switch entry.ID {
		case keyword.Var, keyword.Const:
			declID = entry.ID
		case keyword.Let:
			if s.letStartsDeclaration() {
				declID = keyword.Let
			}
		}
	}

	if declID != keyword.None {
		s.advance() // var/let/const
		if err := s.bindingTarget(true); err != nil {
			return err
		}
	} else {
		if err := s.expression(false); err != nil {
			return err
		}
	}

	if isWord(s.peek(), keyword.In) || isWord(s.peek(), keyword.Of) {
		s.advance()
		if err := s.expression(false); err != nil {
			return err
		}
		return nil
	}

	if declID != keyword.None && s.atOp(token.OperatorAssign) {
		s.advance()
		if err := s.assignment(false); err != nil {
			return err
		}
	}
	for s.atOp(token.OperatorComma) {
		s.advance()
		if err := s.bindingTarget(true); err != nil {
			return err
		}
		if s.atOp(token.OperatorAssign) {
			s.advance()
			if err := s.assignment(false); err != nil {
				return err
			}
		}
	}

	if _, err := s.expect(token.SEMICOLON); err != nil {
		return err
	}
	return s.forThreeClauseTail()
}

func (s *Session) forThreeClauseTail() error {
	if !s.at(token.SEMICOLON) {
		if err := s.expression(false); err != nil {
			return err
		}
	}
	if _, err := s.expect(token.SEMICOLON); err != nil {
		return err
	}
	if !s.at(token.CLOSE) {
		if err := s.expression(false); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) switchStatement() error {
	s.openScope(token.SCOPE_CONTROL)
	s.advance() // 'switch'
	if err := s.controlParen(); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if err := s.expression(false); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if _, err := s.expect(token.CLOSE); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	s.lex.ReclassifyAsBlock(false)
	if _, err := s.expect(token.BRACE); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			s.closeScope(token.SCOPE_CONTROL)
			return s.fail(errors.Unexpected, "unterminated switch body")
		}
		if isWord(s.peek(), keyword.Case) {
			s.advance()
			if err := s.expression(false); err != nil {
				s.closeScope(token.SCOPE_CONTROL)
				return err
			}
		} else if _, err := s.expectWord(keyword.Default); err != nil {
			s.closeScope(token.SCOPE_CONTROL)
			return err
		}
		if _, err := s.expect(token.COLON); err != nil {
			s.closeScope(token.SCOPE_CONTROL)
			return err
		}
		for !s.at(token.CLOSE) && !isWord(s.peek(), keyword.Case) && !isWord(s.peek(), keyword.Default) {
			if s.at(token.EOF) {
				s.closeScope(token.SCOPE_CONTROL)
				return s.fail(errors.Unexpected, "unterminated switch body")
			}
			if err := s.statement(modeBlock); err != nil {
				s.closeScope(token.SCOPE_CONTROL)
				return err
			}
		}
	}
	s.advance() // matching CLOSE
	s.closeScope(token.SCOPE_CONTROL)
	return nil
}

// tryStatement consumes `try { } [catch [(binding)] { }] [finally { }]`.
func (s *Session) tryStatement() error {
	s.openScope(token.SCOPE_CONTROL)
	s.advance() // 'try'
	if err := s.statement(modeBlock); err != nil {
		s.closeScope(token.SCOPE_CONTROL)
		return err
	}
	if isWord(s.peek(), keyword.Catch) {
		s.advance()
		if s.at(token.PAREN) {
			if err := s.controlParen(); err != nil {
				s.closeScope(token.SCOPE_CONTROL)
				return err
			}
			if err := s.bindingTarget(true); err != nil {
				s.closeScope(token.SCOPE_CONTROL)
				return err
			}
			if _, err := s.expect(token.CLOSE); err != nil {
				s.closeScope(token.SCOPE_CONTROL)
				return err
			}
		}
		if err := s.statement(modeBlock); err != nil {
			s.closeScope(token.SCOPE_CONTROL)
			return err
		}
	}
	if isWord(s.peek(), keyword.Finally) {
		s.advance()
		if err := s.statement(modeBlock); err != nil {
			s.closeScope(token.SCOPE_CONTROL)
			return err
		}
	}
	s.closeScope(token.SCOPE_CONTROL)
	return nil
}
