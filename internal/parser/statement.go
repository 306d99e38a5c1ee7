package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/internal/lexer"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// stmtMode is the `mode` parameter of §4.7's statement(mode) consumer.
type stmtMode int

const (
	modeTop stmtMode = iota
	modeBlock
	modeExpression
)

// statement reads exactly one statement, per §4.7. At modeTop, import/export
// are read as module statements; at modeBlock and modeExpression they are
// not. Otherwise the modes are handled alike: function/class are read as
// hoist-statements in every mode, and no production is rejected by mode.
func (s *Session) statement(mode stmtMode) error {
	cur := s.peek()

	if cur.Kind == token.BRACE {
		return s.block()
	}
	if cur.Kind == token.SEMICOLON && cur.Length > 0 {
		s.advance()
		return nil
	}

	if cur.Kind == token.LIT {
		entry, isKeyword := keywordRole(cur)
		if isKeyword {
			switch entry.ID {
			case keyword.Var, keyword.Const:
				return s.declarationStatement(entry.ID)
			case keyword.Let:
				if s.letStartsDeclaration() {
					return s.declarationStatement(keyword.Let)
				}
			case keyword.Function:
				return s.functionStatement(false)
			case keyword.Class:
				return s.classStatement()
			case keyword.If:
				return s.ifStatement()
			case keyword.While:
				return s.whileStatement()
			case keyword.Do:
				return s.doWhileStatement()
			case keyword.For:
				return s.forStatement()
			case keyword.Switch:
				return s.switchStatement()
			case keyword.Try:
				return s.tryStatement()
			case keyword.Return:
				return s.returnLikeStatement(keyword.Return)
			case keyword.Throw:
				return s.returnLikeStatement(keyword.Throw)
			case keyword.Break:
				return s.breakContinueStatement(keyword.Break)
			case keyword.Continue:
				return s.breakContinueStatement(keyword.Continue)
			case keyword.Debugger:
				return s.simpleKeywordStatement()
			case keyword.Import:
				if mode == modeTop {
					return s.importStatement()
				}
			case keyword.Export:
				if mode == modeTop {
					return s.exportStatement()
				}
			case keyword.Async:
				if s.peekNext().Kind == token.LIT && isWord(s.peekNext(), keyword.Function) {
					return s.functionStatement(true)
				}
			}
		}
	}

	// A bare LIT immediately followed by `:` and not reserved is a labeled
	// statement (§4.7 promotion rule 2 applies inside the label consumer
	// too, since the label word itself is promoted to LABEL, not SYMBOL).
	if cur.Kind == token.LIT {
		if _, isKeyword := keywordRole(cur); !isKeyword && s.peekNext().Kind == token.COLON {
			return s.labeledStatement()
		}
	}

	return s.expressionStatement()
}

// block consumes a `{ ... }` statement block, reclassifying the BRACE the
// lexer opened optimistically as a BLOCK (§4.2's brace-ambiguity idiom)
// and emitting a BLOCK scope around its statements.
func (s *Session) block() error {
	s.lex.ReclassifyAsBlock(false)
	s.openScope(token.SCOPE_BLOCK)
	s.advance() // '{' (still a BRACE token; its stack entry is now BLOCK)
	for !s.at(token.CLOSE) {
		if s.at(token.EOF) {
			return s.fail(errors.Unexpected, "unterminated block")
		}
		if err := s.statement(modeBlock); err != nil {
			return err
		}
	}
	s.advance() // matching CLOSE
	s.closeScope(token.SCOPE_BLOCK)
	return nil
}

// simpleKeywordStatement consumes a single keyword statement with no
// operand (`debugger;`).
func (s *Session) simpleKeywordStatement() error {
	s.openScope(token.SCOPE_MISC)
	s.advance()
	err := s.consumeSemicolon()
	s.closeScope(token.SCOPE_MISC)
	return err
}

// returnLikeStatement consumes `return [expr] ;` or `throw expr ;`. Per
// the restricted-production ASI rule, a line break immediately after the
// keyword forces ASI before any operand is attempted.
func (s *Session) returnLikeStatement(id keyword.ID) error {
	s.openScope(token.SCOPE_MISC)
	kwLine := s.peek().Line
	s.advance()

	hasOperand := !(s.peek().Line > kwLine) && !s.atStatementTerminatorAhead()
	if hasOperand {
		if err := s.expression(false); err != nil {
			s.closeScope(token.SCOPE_MISC)
			return err
		}
	}
	err := s.consumeSemicolon()
	s.closeScope(token.SCOPE_MISC)
	return err
}

func (s *Session) atStatementTerminatorAhead() bool {
	cur := s.peek()
	if cur.Kind == token.SEMICOLON || cur.Kind == token.EOF {
		return true
	}
	if cur.Kind == token.CLOSE {
		if kind, _ := lexer.DecodeClose(cur.Special); kind == lexer.BlockKind {
			return true
		}
	}
	return false
}

// breakContinueStatement consumes `break [label] ;` / `continue [label] ;`.
func (s *Session) breakContinueStatement(id keyword.ID) error {
	s.openScope(token.SCOPE_MISC)
	kwLine := s.peek().Line
	s.advance()
	if s.peek().Kind == token.LIT && s.peek().Line == kwLine {
		if _, isKeyword := keywordRole(s.peek()); !isKeyword {
			tok := s.peek()
			tok.Kind = token.LABEL
			s.emit(tok)
			s.lex.Next()
		}
	}
	err := s.consumeSemicolon()
	s.closeScope(token.SCOPE_MISC)
	return err
}

// labeledStatement consumes `label: statement`.
func (s *Session) labeledStatement() error {
	s.openScope(token.SCOPE_LABEL)
	tok := s.peek()
	tok.Kind = token.LABEL
	s.emit(tok)
	s.lex.Next()
	s.advance() // ':'
	err := s.statement(modeBlock)
	s.closeScope(token.SCOPE_LABEL)
	return err
}

// expressionStatement consumes an expression followed by a statement
// terminator (§4.7's "otherwise, expression").
func (s *Session) expressionStatement() error {
	s.openScope(token.SCOPE_EXPR)
	if err := s.expression(true); err != nil {
		s.closeScope(token.SCOPE_EXPR)
		return err
	}
	err := s.consumeSemicolon()
	s.closeScope(token.SCOPE_EXPR)
	return err
}

// letStartsDeclaration disambiguates `let` as a declaration keyword from
// `let` as a plain identifier (§4.4's masquerade handling): it is a
// declaration when followed by an identifier, `[`, or `{`.
func (s *Session) letStartsDeclaration() bool {
	next := s.peekNext()
	if next.Kind == token.LIT {
		return true
	}
	return next.Kind == token.ARRAY || next.Kind == token.BRACE
}
