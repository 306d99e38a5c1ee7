// Package jsflow is the public façade over internal/lexer and
// internal/parser: Init, Run, Cursor, and the Callbacks sink, matching
// §6's external interface verbatim. It owns no grammar logic of its own.
package jsflow

import (
	"github.com/ecmaflow/jsflow/internal/errors"
	"github.com/ecmaflow/jsflow/internal/lexer"
	"github.com/ecmaflow/jsflow/internal/parser"
	"github.com/ecmaflow/jsflow/pkg/token"
)

// Callbacks is the sink a Session reports to: one OnToken call per
// emitted token (including zero-length ASI semicolons), and a
// scope-open/close pair bracketing every scope the parser recognizes.
// OnScopeOpen returning non-zero runs that scope (and everything nested
// in it) in skip mode: no further callbacks fire until the matching
// close.
type Callbacks = parser.Callbacks

// Session is a single lexer-parser session over one source buffer. It is
// not safe for concurrent use; per §5, multiple independent Sessions may
// run in parallel across separate goroutines.
type Session struct {
	src  string
	lex  *lexer.State
	pars *parser.Session
}

// Init creates a Session over buffer, per §6's init(buffer, length). The
// buffer is read-only for the lifetime of the Session. A `#!` shebang on
// line 1 is recognized and skipped automatically.
func Init(buffer []byte, callbacks Callbacks) (*Session, error) {
	src := string(buffer)
	lx := lexer.New(src)
	return &Session{
		src:  src,
		lex:  lx,
		pars: parser.New(src, lx, callbacks),
	}, nil
}

// Run consumes one top-level statement, per §6's run() entry point. It
// returns the number of source bytes consumed (>0) on progress, 0 at
// EOF, or an error wrapping one of the UNEXPECTED/STACK/INTERNAL/TODO
// codes from §7. There is no recovery from an error: the caller's only
// remedy is to discard the Session.
func (s *Session) Run() (int, error) {
	return s.pars.Run()
}

// Cursor returns the current token, per §6's cursor() entry point. The
// returned Token is a read-only view; callers must copy out any bytes
// they want to retain via Token.Text.
func (s *Session) Cursor() token.Token {
	return s.pars.Cursor()
}

// Source returns the buffer the Session was initialized over, for
// slicing token text and formatting diagnostics.
func (s *Session) Source() string { return s.src }

// Err returns the diagnostic behind the most recent error-returning Run
// call, or nil.
func (s *Session) Err() *errors.Diagnostic { return s.pars.Err() }

// LexErrors returns the best-effort lexical errors accumulated so far
// (illegal bytes, unterminated strings/comments) — these do not by
// themselves stop Run, per the lexer's "never fails on malformed input"
// contract; they surface alongside whatever parse error eventually
// results.
func (s *Session) LexErrors() []lexer.Error {
	return s.lex.Errors()
}
