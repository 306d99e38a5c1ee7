package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// dict reads an object literal or a class body, per §4.7: repeated
// members terminated by `}`. Members may be spread, computed keys
// (`[expr]`), string/number keys, identifier keys (shorthand `{x}` is
// reported once, as a SYMBOL carrying PROPERTY; no separate reference
// token is emitted), and
// method shorthands (`name(){...}`, `get name(){...}`, `*name(){...}`,
// `async name(){...}`). `static` is honored only for class bodies.
func (s *Session) dict(isClass bool) error {
	s.lex.ReclassifyAsBlock(true)
	s.advance() // '{' -> BRACE (value-producing) token
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			return s.fail(errors.Unexpected, "unterminated object/class body")
		}
		if isClass && s.at(token.SEMICOLON) {
			s.advance()
			continue
		}
		if err := s.dictMember(isClass); err != nil {
			return err
		}
		if !isClass && s.atOp(token.OperatorComma) {
			s.advance()
		}
	}
	_, err := s.expect(token.CLOSE)
	return err
}

func (s *Session) dictMember(isClass bool) error {
	if s.atOp(token.OperatorSpread) {
		s.advance()
		return s.assignment(false)
	}

	isStatic := false
	if isClass && isWord(s.peek(), keyword.Static) && s.peekNext().Kind != token.PAREN {
		isStatic = true
		s.advance()
	}

	isAsync := isWord(s.peek(), keyword.Async) && s.peekNext().Kind != token.PAREN && s.peekNext().Kind != token.OP
	if isAsync {
		s.advance()
	}
	isGenerator := s.atOp(token.OperatorStar)
	if isGenerator {
		s.advance()
	}
	isAccessor := (isWord(s.peek(), keyword.Get) || isWord(s.peek(), keyword.Set)) && s.peekNext().Kind != token.PAREN
	if isAccessor {
		s.advance()
	}

	if err := s.memberKey(); err != nil {
		return err
	}

	if s.at(token.PAREN) {
		return s.methodBody(isAsync, isGenerator, isStatic)
	}

	if s.at(token.COLON) {
		s.advance()
		return s.assignment(false)
	}

	if s.atOp(token.OperatorAssign) {
		s.advance()
		return s.assignment(false)
	}
	return nil
}

// memberKey consumes a property/method key: a computed `[expr]`, a
// string/number literal, or an identifier (reported as a SYMBOL carrying
// PROPERTY, including a bare shorthand `{x}`).
func (s *Session) memberKey() error {
	cur := s.peek()
	switch cur.Kind {
	case token.ARRAY:
		s.advance()
		if err := s.assignment(false); err != nil {
			return err
		}
		_, err := s.expect(token.CLOSE)
		return err
	case token.STRING, token.NUMBER:
		s.advance()
		return nil
	case token.LIT:
		tok := cur
		tok.Kind = token.SYMBOL
		tok.Special = token.Property
		s.emit(tok)
		s.lex.Next()
		return nil
	}
	return s.fail(errors.Unexpected, "unexpected member key")
}

func (s *Session) methodBody(isAsync, isGenerator, isStatic bool) error {
	_ = isStatic
	s.openScope(token.SCOPE_FUNCTION)
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
