// Package parser implements the parser driver described in the design: the
// family of mutually-recursive consumers that read a token at a time from
// internal/lexer, make the final keyword/symbol/label promotion decision,
// and emit scope-open/close events bracketing the tokens each consumer
// owns. It never builds an AST — the sink callbacks are the only output.
package parser

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/internal/lexer"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// Callbacks is the sink a Session drives. OnScopeOpen's return value
// engages skip mode for that scope (and everything nested inside it) when
// non-zero: no further OnToken/OnScopeOpen/OnScopeClose calls occur until
// the matching close, mirroring §6's "run the scope in skip mode" contract.
type Callbacks interface {
	OnToken(tok token.Token)
	OnScopeOpen(kind token.ScopeKind) int
	OnScopeClose(kind token.ScopeKind)
}

// Session is the parser driver (renamed from the teacher's Parser): it
// owns the lexer, the caller's sink, and the handful of pieces of
// ambient state the grammar needs across consumer calls (skip-mode
// tracking and the async/generator context stack that governs whether
// `await`/`yield` act as keywords — §4.4/§9 Open Questions).
type Session struct {
	lex *lexer.State
	src string

	sink       Callbacks
	scopeDepth int
	skipActive bool
	skipAt     int

	asyncStack     []bool
	generatorStack []bool

	// lastLine is the source line of the most recently consumed token,
	// tracked so consumeSemicolon can compare it against the following
	// token's line to detect an implicit-semicolon line break — the
	// current token's own line is useless for that comparison.
	lastLine int

	err *errors.Diagnostic
}

// New creates a parser Session over src, driving lx (already primed by
// lexer.New) and reporting to sink.
func New(src string, lx *lexer.State, sink Callbacks) *Session {
	return &Session{
		lex:            lx,
		src:            src,
		sink:           sink,
		asyncStack:     []bool{false},
		generatorStack: []bool{false},
	}
}

// Err returns the diagnostic recorded by the last Run call that returned
// an error, or nil.
func (s *Session) Err() *errors.Diagnostic { return s.err }

// Cursor returns the current token without advancing, per §6.
func (s *Session) Cursor() token.Token { return s.lex.Current() }

func (s *Session) inAsync() bool { return s.asyncStack[len(s.asyncStack)-1] }
func (s *Session) inGenerator() bool { return s.generatorStack[len(s.generatorStack)-1] }

func (s *Session) pushFnContext(isAsync, isGenerator bool) {
	s.asyncStack = append(s.asyncStack, isAsync)
	s.generatorStack = append(s.generatorStack, isGenerator)
}

func (s *Session) popFnContext() {
	s.asyncStack = s.asyncStack[:len(s.asyncStack)-1]
	s.generatorStack = s.generatorStack[:len(s.generatorStack)-1]
}

// fail records a diagnostic and returns it as an error, for the
// "abandon the session" failure semantics of §4.7/§7: the caller's only
// remedy after Run returns an error is to discard the Session.
func (s *Session) fail(code errors.Code, message string) error {
	pos := token.Position{Line: s.lex.Current().Line}
	d := errors.New(code, pos, message, s.src, "")
	s.err = d
	return d
}

// openScope emits (or suppresses, in skip mode) a scope-open event and
// tracks the nesting depth needed to know when the matching close ends
// skip mode.
func (s *Session) openScope(kind token.ScopeKind) {
	if s.skipActive {
		s.scopeDepth++
		return
	}
	res := s.sink.OnScopeOpen(kind)
	s.scopeDepth++
	if res != 0 {
		s.skipActive = true
		s.skipAt = s.scopeDepth
	}
}

// closeScope emits (or suppresses) the matching scope-close event.
func (s *Session) closeScope(kind token.ScopeKind) {
	if s.skipActive {
		s.scopeDepth--
		if s.scopeDepth < s.skipAt {
			// The skipped scope itself was opened with a callback, so its
			// close is reported too.
			s.skipActive = false
			s.sink.OnScopeClose(kind)
		}
		return
	}
	s.scopeDepth--
	s.sink.OnScopeClose(kind)
}

// emit reports tok to the sink unless skip mode is suppressing callbacks,
// and records its line as the last-consumed line for consumeSemicolon's
// ASI line-break check — every reported token, whether via advance() or a
// direct emit+Next pair, funnels through here.
func (s *Session) emit(tok token.Token) {
	if !s.skipActive {
		s.sink.OnToken(tok)
	}
	s.lastLine = tok.Line
}

// Run consumes one top-level statement (§6's run entry point) and reports
// the number of source bytes consumed, 0 at EOF, or an error.
func (s *Session) Run() (int, error) {
	start := s.lex.Current().Start
	if s.lex.Current().Kind == token.EOF {
		return 0, nil
	}
	if err := s.statement(modeTop); err != nil {
		return 0, err
	}
	return s.lex.Current().Start - start, nil
}

// keywordRole reports the keyword.Entry carried by tok's Special field,
// if any (tok.Kind is LIT or KEYWORD and it matched the keyword table).
func keywordRole(tok token.Token) (keyword.Entry, bool) {
	return lexer.UnpackKeyword(tok.Special)
}

func isWord(tok token.Token, id keyword.ID) bool {
	e, ok := keywordRole(tok)
	return ok && e.ID == id
}
