package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// group reads a bracketed expression group — PAREN (call arguments or a
// parenthesized expression) or ARRAY (an index or an array literal) —
// with its matched CLOSE, per §4.7. The opening/closing structural
// matching itself is the lexer's job (the byte-level stack in
// internal/lexer); group only has to consume the right grammar shape in
// between and stop at the CLOSE the lexer hands back.
func (s *Session) group() error {
	s.advance() // PAREN or ARRAY
	if err := s.expressionList(false); err != nil {
		return err
	}
	_, err := s.expect(token.CLOSE)
	return err
}

// tryArrowFunction engages a save-point when `(` or `async (` appears in
// expression position and speculatively parses a parameter list; if it
// resolves to `) =>`, the lexer rewinds to the save-point and the
// parameter list and arrow body are consumed again, this time reported.
// Otherwise Restore rewinds and the caller falls through to ordinary
// expression parsing (the parens become a grouping expression, or,
// for a bare identifier immediately followed by `=>`, the single-param
// shorthand form).
func (s *Session) tryArrowFunction() (bool, error) {
	cur := s.peek()

	isAsync := cur.Kind == token.LIT && isWord(cur, keyword.Async) && s.peekNext().Kind == token.PAREN
	if cur.Kind == token.LIT && isWord(cur, keyword.Async) && s.peekNext().Kind == token.LIT {
		// `async x => ...` single-param shorthand.
		if ok, err := s.tryArrowShorthand(true); ok || err != nil {
			return ok, err
		}
	}
	if cur.Kind == token.LIT {
		if ok, err := s.tryArrowShorthand(false); ok || err != nil {
			return ok, err
		}
	}

	if cur.Kind != token.PAREN && !isAsync {
		return false, nil
	}

	if err := s.lex.Save(); err != nil {
		return false, s.fail(errors.Internal, err.Error())
	}

	if isAsync {
		s.lex.Next()
	}
	if !s.trySpeculativeParamList() || s.peek().Kind != token.OP || s.peek().Special != token.OperatorArrow {
		s.lex.Restore()
		return false, nil
	}
	s.lex.Restore()

	// Replay for real, now reporting tokens: this re-walks the same bytes
	// the speculative pass consumed silently, which is simpler and safer
	// than threading a "was this speculative" flag through every helper.
	s.openScope(token.SCOPE_FUNCTION)
	if isAsync {
		s.advance()
	}
	if err := s.paramList(); err != nil {
		s.closeScope(token.SCOPE_FUNCTION)
		return false, err
	}
	s.advance() // '=>'
	s.pushFnContext(isAsync, false)
	err := s.arrowBody()
	s.popFnContext()
	s.closeScope(token.SCOPE_FUNCTION)
	return true, err
}

// tryArrowShorthand handles `x => ...` / `async x => ...`: a bare
// identifier followed directly by `=>` is a single-parameter arrow
// function without parens.
func (s *Session) tryArrowShorthand(isAsync bool) (bool, error) {
	if err := s.lex.Save(); err != nil {
		return false, s.fail(errors.Internal, err.Error())
	}
	if isAsync {
		s.lex.Next()
	}
	if s.lex.Current().Kind != token.LIT {
		s.lex.Restore()
		return false, nil
	}
	s.lex.Next()
	if s.lex.Current().Kind != token.OP || s.lex.Current().Special != token.OperatorArrow {
		s.lex.Restore()
		return false, nil
	}
	s.lex.Restore() // rewind; the tokens are now consumed and reported

	s.openScope(token.SCOPE_FUNCTION)
	if isAsync {
		s.advance()
	}
	s.openScope(token.SCOPE_DECLARE)
	tok := s.peek()
	tok.Kind = token.SYMBOL
	tok.Special = token.Declare
	s.emit(tok)
	s.lex.Next()
	s.closeScope(token.SCOPE_DECLARE)
	s.advance() // '=>'
	s.pushFnContext(isAsync, false)
	err := s.arrowBody()
	s.popFnContext()
	s.closeScope(token.SCOPE_FUNCTION)
	return true, err
}

// trySpeculativeParamList walks a parameter list using raw lexer Next
// calls (no sink emission) to test the arrow-function hypothesis; it
// returns false as soon as the shape cannot be a parameter list, leaving
// the caller to Restore.
func (s *Session) trySpeculativeParamList() bool {
	if s.lex.Current().Kind != token.PAREN {
		return false
	}
	s.lex.Next()
	depth := 1
	for depth > 0 {
		cur := s.lex.Current()
		switch cur.Kind {
		case token.EOF:
			return false
		case token.PAREN, token.ARRAY, token.BRACE, token.TERNARY:
			depth++
		case token.CLOSE:
			depth--
		}
		s.lex.Next()
	}
	return true
}

// paramList consumes a real (reporting) parameter list: `(` then
// definition_group then matching `)`.
func (s *Session) paramList() error {
	s.advance() // '('
	if err := s.definitionGroup(); err != nil {
		return err
	}
	_, err := s.expect(token.CLOSE)
	return err
}

// arrowBody consumes an arrow function's body: `{ ... }` (a statement
// block) or a bare expression.
func (s *Session) arrowBody() error {
	if s.at(token.BRACE) {
		s.openScope(token.SCOPE_INNER)
		err := s.block()
		s.closeScope(token.SCOPE_INNER)
		return err
	}
	return s.assignment(false)
}

// primary reads a primary expression: a literal, an identifier, a
// parenthesized grouping, an array or object literal, a function or
// class expression, `new` (including `new.target`), `import` (including
// `import(...)` and `import.meta`), or `super`/`this`.
func (s *Session) primary(isStatement bool) error {
	cur := s.peek()

	switch cur.Kind {
	case token.NUMBER, token.STRING, token.REGEXP:
		if cur.Kind == token.STRING && cur.Length > 0 && s.cursorText(cur)[0] == '`' {
			return s.templateLiteral(cur)
		}
		s.advance()
		return nil
	case token.PAREN:
		return s.group()
	case token.ARRAY:
		return s.arrayLiteral()
	case token.BRACE:
		return s.dict(false)
	}

	if cur.Kind == token.LIT {
		entry, isKeyword := keywordRole(cur)
		if isKeyword {
			switch entry.ID {
			case keyword.This, keyword.Super, keyword.Null, keyword.True, keyword.False:
				s.advance()
				return nil
			case keyword.Function:
				return s.functionExpression(false)
			case keyword.Class:
				return s.classExpression()
			case keyword.New:
				return s.newExpression()
			case keyword.Import:
				return s.importExpression()
			}
			if entry.Role&keyword.Masquerade == 0 && entry.Role&keyword.ValueLiteral == 0 {
				if isStatement {
					return nil
				}
				return s.fail(errors.Unexpected, "unexpected keyword in expression")
			}
		}
		if isWord(cur, keyword.Async) && s.peekNext().Kind == token.LIT && isWord(s.peekNext(), keyword.Function) {
			s.advance()
			return s.functionExpression(true)
		}
		s.advance()
		return nil
	}

	if isStatement {
		return nil
	}
	return s.fail(errors.Unexpected, "unexpected token in expression")
}

func (s *Session) arrayLiteral() error {
	s.advance() // '['
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			return s.fail(errors.Unexpected, "unterminated array literal")
		}
		if s.atOp(token.OperatorComma) {
			s.advance() // elision
			continue
		}
		if s.atOp(token.OperatorSpread) {
			s.advance()
		}
		if err := s.assignment(false); err != nil {
			return err
		}
		if s.atOp(token.OperatorComma) {
			s.advance()
		}
	}
	_, err := s.expect(token.CLOSE)
	return err
}

// newExpression consumes `new.target` (a meta-property, supplemented from
// original_source/src/core/parser.c per SPEC_FULL) or `new Callee(...)`.
func (s *Session) newExpression() error {
	s.advance() // 'new'
	if s.peek().Kind == token.OP && s.peek().Special == token.OperatorDot {
		s.advance()
		_, err := s.expect(token.LIT) // 'target'
		return err
	}
	if err := s.postfixNoCall(); err != nil {
		return err
	}
	if s.at(token.PAREN) {
		return s.group()
	}
	return nil
}

// postfixNoCall consumes a callee expression for `new` — member access is
// part of the callee, but a `(...)` belongs to `new`'s own argument list,
// so it stops before the first PAREN at depth 0.
func (s *Session) postfixNoCall() error {
	if err := s.primary(false); err != nil {
		return err
	}
	for {
		cur := s.peek()
		switch {
		case cur.Kind == token.OP && (cur.Special == token.OperatorDot || cur.Special == token.OperatorChain):
			s.advance()
			if _, err := s.expect(token.LIT); err != nil {
				return err
			}
		case cur.Kind == token.ARRAY:
			if err := s.group(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// importExpression consumes `import(...)` (dynamic import) or
// `import.meta`, both expressions per §6 ("import/export productions are
// recognized only at top-level statement position; import(... and
// import.meta are expressions").
func (s *Session) importExpression() error {
	s.advance() // 'import'
	if s.peek().Kind == token.OP && s.peek().Special == token.OperatorDot {
		s.advance()
		_, err := s.expect(token.LIT) // 'meta'
		return err
	}
	return s.group() // '(' specifier ')'
}
