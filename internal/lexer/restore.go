package lexer

import "github.com/ecmaflow/jsflow/pkg/token"

// saveFrame is the single outermost save/restore slot (design §4.6, §9):
// a snapshot of (cursor, line, depth) taken on Save, discarded on Commit,
// or rolled back to on Restore. Only one save may be active at a time —
// Save on an already-active frame is an internal error, reproducing the
// original implementation's single-slot constraint.
type saveFrame struct {
	at, line, depth int
	cur, peek       token.Token
	peekValid       bool
	consumed        int // tokens produced by Next since Save, bounded by maxLookahead
}

// Save snapshots the lexer's position for speculative parsing (arrow
// lookahead, destructuring lookahead). Exactly one of Commit or Restore
// must follow before another Save is attempted.
func (s *State) Save() error {
	if s.saveActive {
		return ErrNestedSave
	}
	s.save = saveFrame{
		at:        s.at,
		line:      s.line,
		depth:     s.depth,
		cur:       s.cur,
		peek:      s.peek,
		peekValid: s.peekValid,
	}
	s.saveActive = true
	return nil
}

// Commit discards the active save frame, keeping the lexer at its current
// (advanced) position.
func (s *State) Commit() {
	s.saveActive = false
	s.save = saveFrame{}
}

// Restore rewinds the lexer to the position captured by the last Save,
// undoing every token consumed since.
func (s *State) Restore() {
	if !s.saveActive {
		return
	}
	s.at = s.save.at
	s.line = s.save.line
	s.depth = s.save.depth
	s.cur = s.save.cur
	s.peek = s.save.peek
	s.peekValid = s.save.peekValid
	s.saveActive = false
	s.save = saveFrame{}
}

// InSave reports whether a speculative save is currently active.
func (s *State) InSave() bool { return s.saveActive }

// noteConsumed counts one more token produced while a save is active,
// returning ErrLookaheadOverflow once the bounded window is exceeded.
func (s *State) noteConsumed() error {
	if !s.saveActive {
		return nil
	}
	s.save.consumed++
	if s.save.consumed > maxLookahead {
		return ErrLookaheadOverflow
	}
	return nil
}
