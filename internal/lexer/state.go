// Package lexer implements the character reader, primitive lexer,
// structural stack, and bounded lookahead buffer described in the design:
// components 1, 2, 4, and 5. It classifies exactly one token per call to
// Next, consulting the prior token and the structural-stack top to resolve
// the slash, brace, and template-string ambiguities that cannot be
// resolved by looking at a single byte.
//
// The lexer never fails on malformed input; an unrecognized byte is
// recorded as an error and returned as a zero-length token.EOF token, and
// it is the caller's responsibility to stop driving the session.
package lexer

import "github.com/ecmaflow/jsflow/pkg/token"

// maxDepth bounds the structural stack (design §3: "depth ≤ 256").
const maxDepth = 256

// maxLookahead bounds the token window captured during a single save
// frame (design §4.6: "up to 16").
const maxLookahead = 16

// State is the character reader and primitive lexer. It owns the cursor,
// the structural stack, and the single-slot save/restore frame. A State is
// not safe for concurrent use; each parsing session owns exactly one.
type State struct {
	src  string
	at   int
	end  int
	line int

	cur       token.Token
	peek      token.Token
	peekValid bool

	stack [maxDepth]stackEntry
	depth int

	save       saveFrame
	saveActive bool

	errors []Error
}

// New creates a lexer State over src. It detects and skips a `#!`
// shebang on line 1 (design §4.1) and primes the current token.
//
// The structural stack starts at depth 1 with a BLOCK entry at the
// bottom, matching the initial state in the data model: top-level source
// is lexed as if inside an (implicit) block.
func New(src string) *State {
	s := &State{
		src:  src,
		end:  len(src),
		line: 1,
	}
	s.depth = 1
	s.stack[0] = stackEntry{kind: BlockKind, flag: false}

	s.skipShebang()
	s.cur = s.scan(token.Token{Kind: token.SEMICOLON})
	return s
}

// Line returns the lexer's current line counter.
func (s *State) Line() int { return s.line }

// Errors returns the lexical errors accumulated so far (illegal bytes,
// unterminated strings/comments best-effort recovered).
func (s *State) Errors() []Error { return s.errors }

// Current returns the most recently produced token without advancing.
func (s *State) Current() token.Token { return s.cur }

// Depth returns the current structural-stack depth.
func (s *State) Depth() int { return s.depth }

func (s *State) skipShebang() {
	if s.end >= 2 && s.src[0] == '#' && s.src[1] == '!' {
		s.at = 2
		for s.at < s.end && s.src[s.at] != '\n' {
			s.at++
		}
	}
}

// byteAt returns the byte at position i, or 0 past end (acts as the
// sentinel the design calls for without requiring the caller to allocate
// one).
func (s *State) byteAt(i int) byte {
	if i >= s.end {
		return 0
	}
	return s.src[i]
}

func (s *State) atEnd() bool { return s.at >= s.end }
