package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// declarationStatement consumes a `var`/`let`/`const` statement: the
// keyword, a comma-separated list of (name-or-destructuring) `= expr`
// bindings, and a statement terminator. Wraps declaration(special) in the
// DECLARE scope-open/close pair plus the statement terminator §4.7 calls
// for around the whole construct.
func (s *Session) declarationStatement(id keyword.ID) error {
	s.openScope(token.SCOPE_DECLARE)
	if err := s.declaration(id); err != nil {
		s.closeScope(token.SCOPE_DECLARE)
		return err
	}
	err := s.consumeSemicolon()
	s.closeScope(token.SCOPE_DECLARE)
	return err
}

// declaration consumes the keyword and binding list without its own
// scope-open/close; declarationStatement supplies the SCOPE_DECLARE pair.
func (s *Session) declaration(id keyword.ID) error {
	s.advance() // var/let/const
	for {
		if err := s.bindingTarget(true); err != nil {
			return err
		}
		if s.atOp(token.OperatorAssign) {
			s.advance()
			if err := s.assignment(false); err != nil {
				return err
			}
		}
		if !s.atOp(token.OperatorComma) {
			return nil
		}
		s.advance()
	}
}

// bindingTarget consumes one binding: a plain identifier (reported
// SYMBOL|DECLARE) or a destructuring pattern (`{...}`/`[...]`, each
// nested name reported SYMBOL|DECLARE|DESTRUCTURING per §4.7's
// destructuring(special) consumer).
func (s *Session) bindingTarget(topLevel bool) error {
	cur := s.peek()
	switch cur.Kind {
	case token.LIT:
		tok := cur
		tok.Kind = token.SYMBOL
		tok.Special = token.Declare
		if !topLevel {
			tok.Special |= token.Destructuring
		}
		s.emit(tok)
		s.lex.Next()
		return nil
	case token.BRACE:
		return s.destructuringObject()
	case token.ARRAY:
		return s.destructuringArray()
	}
	return s.fail(errors.Unexpected, "unexpected binding target")
}

// destructuringObject consumes `{ key: target, ...rest }` recursively.
func (s *Session) destructuringObject() error {
	s.lex.ReclassifyAsBlock(true)
	s.advance() // '{'
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			return s.fail(errors.Unexpected, "unterminated destructuring pattern")
		}
		if s.atOp(token.OperatorSpread) {
			s.advance()
			if err := s.bindingTarget(false); err != nil {
				return err
			}
		} else if s.at(token.LIT) && s.peekNext().Kind != token.COLON {
			// Shorthand `{x}` / `{x = d}`: the key is itself the binding.
			tok := s.peek()
			tok.Kind = token.SYMBOL
			tok.Special = token.Property | token.Declare | token.Destructuring
			s.emit(tok)
			s.lex.Next()
			if s.atOp(token.OperatorAssign) {
				s.advance()
				if err := s.assignment(false); err != nil {
					return err
				}
			}
		} else {
			if err := s.memberKey(); err != nil {
				return err
			}
			if s.at(token.COLON) {
				s.advance()
				if err := s.bindingTarget(false); err != nil {
					return err
				}
			}
			if s.atOp(token.OperatorAssign) {
				s.advance()
				if err := s.assignment(false); err != nil {
					return err
				}
			}
		}
		if s.atOp(token.OperatorComma) {
			s.advance()
		}
	}
	_, err := s.expect(token.CLOSE)
	return err
}

// destructuringArray consumes `[ target, , ...rest ]` recursively.
func (s *Session) destructuringArray() error {
	s.advance() // '['
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			return s.fail(errors.Unexpected, "unterminated destructuring pattern")
		}
		if s.atOp(token.OperatorComma) {
			s.advance() // elision
			continue
		}
		if s.atOp(token.OperatorSpread) {
			s.advance()
		}
		if err := s.bindingTarget(false); err != nil {
			return err
		}
		if s.atOp(token.OperatorAssign) {
			s.advance()
			if err := s.assignment(false); err != nil {
				return err
			}
		}
		if s.atOp(token.OperatorComma) {
			s.advance()
		}
	}
	_, err := s.expect(token.CLOSE)
	return err
}
