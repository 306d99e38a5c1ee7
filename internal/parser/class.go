package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// classStatement consumes `class name [extends expr] { body }` in
// statement position (the name is required, visible in the enclosing
// scope).
func (s *Session) classStatement() error {
	return s.classCommon(true)
}

// classExpression consumes a class expression; the name, if present, is
// visible only inside the class body.
func (s *Session) classExpression() error {
	return s.classCommon(false)
}

func (s *Session) classCommon(requireName bool) error {
	s.openScope(token.SCOPE_CLASS)
	if _, err := s.expectWord(keyword.Class); err != nil {
		s.closeScope(token.SCOPE_CLASS)
		return err
	}

	if s.peek().Kind == token.LIT {
		if _, isKeyword := keywordRole(s.peek()); !isKeyword {
			s.openScope(token.SCOPE_DECLARE)
			tok := s.peek()
			tok.Kind = token.SYMBOL
			tok.Special = token.Declare
			if requireName {
				tok.Special |= token.Top
			}
			s.emit(tok)
			s.lex.Next()
			s.closeScope(token.SCOPE_DECLARE)
		}
	} else if requireName {
		s.closeScope(token.SCOPE_CLASS)
		return s.fail(errors.Unexpected, "class declaration requires a name")
	}

	if isWord(s.peek(), keyword.Extends) {
		s.advance()
		if err := s.postfix(false); err != nil {
			s.closeScope(token.SCOPE_CLASS)
			return err
		}
	}

	err := s.dict(true)
	s.closeScope(token.SCOPE_CLASS)
	return err
}
