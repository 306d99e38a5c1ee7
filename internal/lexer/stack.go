package lexer

import "github.com/ecmaflow/jsflow/pkg/token"

// OpenKind is the closed tagged union of structural-stack entries (design
// §3, §9): every open bracket, brace, paren, ternary, or template
// interpolation the lexer must later match against a CLOSE. It is
// exported because internal/parser reads it off CLOSE tokens (via
// DecodeClose) to know what construct just ended.
type OpenKind uint8

const (
	BraceKind          OpenKind = iota // object literal / destructuring brace
	BlockKind                          // statement block `{ ... }`
	ArrayKind                          // `[`
	ParenKind                          // `(`
	TernaryKind                        // `?` awaiting its `:`
	TemplateInterpKind                 // `${` inside a template string
	StringSentinelKind                 // placeholder kind; never pushed by lexing (the bottom entry is a BLOCK)
)

func (k OpenKind) String() string {
	switch k {
	case BraceKind:
		return "BRACE"
	case BlockKind:
		return "BLOCK"
	case ArrayKind:
		return "ARRAY"
	case ParenKind:
		return "PAREN"
	case TernaryKind:
		return "TERNARY"
	case TemplateInterpKind:
		return "TEMPLATE_INTERP"
	case StringSentinelKind:
		return "STRING_SENTINEL"
	default:
		return "?"
	}
}

// stackEntry records one open delimiter. flag is overloaded by kind: for
// BRACE/BLOCK it is the block-has-value bit from the data model (does a
// matching `}` produce a value?); for PAREN it marks a control-header
// paren (`if (`, `while (`, `for (`, ...) the parser has identified. Both
// uses are mutually exclusive by kind, so one field suffices.
type stackEntry struct {
	kind OpenKind
	flag bool
}

// push opens a new structural-stack entry. It reports ErrStackOverflow if
// depth would exceed maxDepth, per the hard internal-error contract in the
// design ("Exceeding the ... 256-depth limit is a hard internal error").
func (s *State) push(kind OpenKind, flag bool) error {
	if s.depth >= maxDepth {
		return ErrStackOverflow
	}
	s.stack[s.depth] = stackEntry{kind: kind, flag: flag}
	s.depth++
	return nil
}

// pop closes the structural-stack top. It reports ErrStackUnderflow if the
// stack would become empty; the bottom BLOCK entry is never popped.
func (s *State) pop() (stackEntry, error) {
	if s.depth <= 1 {
		return stackEntry{}, ErrStackUnderflow
	}
	s.depth--
	return s.stack[s.depth], nil
}

// TopKind returns the open-kind of the structural-stack top.
func (s *State) TopKind() OpenKind { return s.stack[s.depth-1].kind }

// TopFlag returns the overloaded flag of the structural-stack top (see
// stackEntry).
func (s *State) TopFlag() bool { return s.stack[s.depth-1].flag }

// MarkTopAsControlHeader tells the lexer that the PAREN currently on top
// of the structural stack is a control-statement header (`if (`, `while
// (`, `for (`, `switch (`, `catch (`, ...), so that the matching CLOSE
// later re-enables regexp disambiguation (design §4.3: "the CLOSE of a
// control-header PAREN"). The parser calls this immediately after
// consuming the control keyword's `(`.
func (s *State) MarkTopAsControlHeader() {
	if s.depth > 0 && s.stack[s.depth-1].kind == ParenKind {
		s.stack[s.depth-1].flag = true
	}
}

// ReclassifyAsBlock tells the lexer that the BRACE currently on top of the
// structural stack is actually a statement block, not an object literal —
// the parser decides this from statement-vs-expression position (design
// §4.2, §9's "reinterpretation" idiom, applied to braces instead of
// slashes). hasValue records whether a matching `}` should still be
// treated as producing a value (per the data model's block-has-value
// flag); ordinary statement blocks pass false.
func (s *State) ReclassifyAsBlock(hasValue bool) {
	if s.depth > 0 && s.stack[s.depth-1].kind == BraceKind {
		s.stack[s.depth-1].kind = BlockKind
		s.stack[s.depth-1].flag = hasValue
	}
}

// closeKindMask selects the closed OpenKind in a CLOSE token's Special;
// closeContextBit carries the entry's flag alongside it (see encodeClose).
const (
	closeKindMask      token.Special = 0xFF
	closeContextBit    token.Special = 1 << 8
)

func encodeClose(e stackEntry) token.Special {
	sp := token.Special(e.kind) & closeKindMask
	if e.flag {
		sp |= closeContextBit
	}
	return sp
}

// DecodeClose recovers the OpenKind a CLOSE token matched, and the
// overlaid context flag (control-header-ness for a closed PAREN,
// has-value-ness for a closed BRACE/BLOCK).
func DecodeClose(sp token.Special) (kind OpenKind, flag bool) {
	return OpenKind(sp & closeKindMask), sp&closeContextBit != 0
}
