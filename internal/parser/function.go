package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// functionStatement consumes a hoisted `[async] function [*] name (...) { ... }`
// declaration, per §4.7's function(special) consumer.
func (s *Session) functionStatement(isAsync bool) error {
	return s.functionCommon(isAsync, true)
}

// functionExpression consumes a function expression; the name, if
// present, is a binding visible only inside the function body, not the
// enclosing scope.
func (s *Session) functionExpression(isAsync bool) error {
	return s.functionCommon(isAsync, false)
}

func (s *Session) functionCommon(isAsync bool, requireName bool) error {
	s.openScope(token.SCOPE_FUNCTION)
	if isAsync {
		s.advance() // 'async'
	}
	if _, err := s.expectWord(keyword.Function); err != nil {
		s.closeScope(token.SCOPE_FUNCTION)
		return err
	}

	isGenerator := s.atOp(token.OperatorStar)
	if isGenerator {
		s.advance()
	}

	if s.peek().Kind == token.LIT {
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
	} else if requireName {
		s.closeScope(token.SCOPE_FUNCTION)
		return s.fail(errors.Unexpected, "function declaration requires a name")
	}

	s.pushFnContext(isAsync, isGenerator)
	if err := s.paramList(); err != nil {
		s.popFnContext()
		s.closeScope(token.SCOPE_FUNCTION)
		return err
	}
	s.openScope(token.SCOPE_INNER)
	err := s.block()
	s.closeScope(token.SCOPE_INNER)
	s.popFnContext()
	s.closeScope(token.SCOPE_FUNCTION)
	return err
}

// definitionGroup consumes a function's parameter list: comma-separated
// definitions, each a binding (or a destructuring pattern) optionally
// followed by `= default`, and allowing a trailing rest parameter.
func (s *Session) definitionGroup() error {
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			return s.fail(errors.Unexpected, "unterminated parameter list")
		}
		if err := s.definition(); err != nil {
			return err
		}
		if s.atOp(token.OperatorComma) {
			s.advance()
		}
	}
	return nil
}

func (s *Session) definition() error {
	isRest := s.atOp(token.OperatorSpread)
	if isRest {
		s.advance()
	}

	switch s.peek().Kind {
	case token.BRACE:
		if err := s.destructuringObject(); err != nil {
			return err
		}
	case token.ARRAY:
		if err := s.destructuringArray(); err != nil {
			return err
		}
	case token.LIT:
		tok := s.peek()
		tok.Kind = token.SYMBOL
		tok.Special = token.Declare
		if isRest {
			tok.Special |= token.Destructuring
		}
		s.emit(tok)
		s.lex.Next()
	default:
		return s.fail(errors.Unexpected, "unexpected parameter")
	}

	if s.atOp(token.OperatorAssign) {
		s.advance()
		return s.assignment(false)
	}
	return nil
}
