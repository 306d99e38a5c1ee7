package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// importStatement consumes a top-level `import` declaration: the bare
// `import "specifier";` form, a default/namespace/named-binding import
// (each reported SYMBOL|DECLARE|EXTERNAL), and the trailing `from
// "specifier"` clause, per §6.
func (s *Session) importStatement() error {
	s.openScope(token.SCOPE_MODULE)
	s.advance() // 'import'

	if s.at(token.STRING) {
		s.advance()
		err := s.consumeSemicolon()
		s.closeScope(token.SCOPE_MODULE)
		return err
	}

	if s.peek().Kind == token.LIT {
		if _, isKeyword := keywordRole(s.peek()); !isKeyword {
			s.emitBinding(token.Declare | token.External | token.Default)
			if s.atOp(token.OperatorComma) {
				s.advance()
			}
		}
	}

	if s.atOp(token.OperatorStar) {
		s.advance()
		if _, err := s.expectWord(keyword.As); err != nil {
			s.closeScope(token.SCOPE_MODULE)
			return err
		}
		s.emitBinding(token.Declare | token.External)
	} else if s.at(token.BRACE) {
		if err := s.importNamedBindings(); err != nil {
			s.closeScope(token.SCOPE_MODULE)
			return err
		}
	}

	if _, err := s.expectWord(keyword.From); err != nil {
		s.closeScope(token.SCOPE_MODULE)
		return err
	}
	if _, err := s.expect(token.STRING); err != nil {
		s.closeScope(token.SCOPE_MODULE)
		return err
	}
	err := s.consumeSemicolon()
	s.closeScope(token.SCOPE_MODULE)
	return err
}

func (s *Session) importNamedBindings() error {
	s.advance() // '{'
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			return s.fail(errors.Unexpected, "unterminated import list")
		}
		if isWord(s.peekNext(), keyword.As) {
			if _, err := s.expect(token.LIT); err != nil {
				return err
			}
			s.advance() // 'as'
		} else if !s.at(token.LIT) {
			_, err := s.expect(token.LIT)
			return err
		}
		s.emitBinding(token.Declare | token.External)
		if s.atOp(token.OperatorComma) {
			s.advance()
		}
	}
	_, err := s.expect(token.CLOSE)
	return err
}

// exportStatement consumes `export` in its statement, default, and
// re-export forms.
func (s *Session) exportStatement() error {
	s.openScope(token.SCOPE_EXPORT)
	s.advance() // 'export'

	if isWord(s.peek(), keyword.Default) {
		s.advance()
		err := s.exportDefaultValue()
		s.closeScope(token.SCOPE_EXPORT)
		return err
	}

	if s.atOp(token.OperatorStar) {
		s.advance()
		if isWord(s.peek(), keyword.As) {
			s.advance()
			s.emitBinding(token.Declare | token.External)
		}
		if _, err := s.expectWord(keyword.From); err != nil {
			s.closeScope(token.SCOPE_EXPORT)
			return err
		}
		if _, err := s.expect(token.STRING); err != nil {
			s.closeScope(token.SCOPE_EXPORT)
			return err
		}
		err := s.consumeSemicolon()
		s.closeScope(token.SCOPE_EXPORT)
		return err
	}

	if s.at(token.BRACE) {
		err := s.exportNamedList()
		s.closeScope(token.SCOPE_EXPORT)
		return err
	}

	err := s.statement(modeTop)
	s.closeScope(token.SCOPE_EXPORT)
	return err
}

// exportDefaultValue consumes `export default` followed by a function
// declaration, a class declaration, or an expression.
func (s *Session) exportDefaultValue() error {
	cur := s.peek()
	if cur.Kind == token.LIT {
		if entry, ok := keywordRole(cur); ok {
			switch entry.ID {
			case keyword.Function:
				return s.functionStatement(false)
			case keyword.Class:
				return s.classStatement()
			case keyword.Async:
				if s.peekNext().Kind == token.LIT && isWord(s.peekNext(), keyword.Function) {
					return s.functionStatement(true)
				}
			}
		}
	}
	s.openScope(token.SCOPE_EXPR)
	if err := s.expression(false); err != nil {
		s.closeScope(token.SCOPE_EXPR)
		return err
	}
	err := s.consumeSemicolon()
	s.closeScope(token.SCOPE_EXPR)
	return err
}

func (s *Session) exportNamedList() error {
	s.advance() // '{'
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			return s.fail(errors.Unexpected, "unterminated export list")
		}
		if _, err := s.expect(token.LIT); err != nil {
			return err
		}
		if isWord(s.peek(), keyword.As) {
			s.advance()
			if _, err := s.expect(token.LIT); err != nil {
				return err
			}
		}
		if s.atOp(token.OperatorComma) {
			s.advance()
		}
	}
	if _, err := s.expect(token.CLOSE); err != nil {
		return err
	}
	if isWord(s.peek(), keyword.From) {
		s.advance()
		if _, err := s.expect(token.STRING); err != nil {
			return err
		}
	}
	return s.consumeSemicolon()
}

// emitBinding reports the current LIT token as a SYMBOL with the given
// flags and advances past it.
func (s *Session) emitBinding(flags token.Special) {
	tok := s.peek()
	tok.Kind = token.SYMBOL
	tok.Special = flags
	s.emit(tok)
	s.lex.Next()
}
