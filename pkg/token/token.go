// Package token defines the wire types shared by the lexer and the parser:
// the Kind enumeration, the Special role bit-field, and the Token record
// itself. These types are the ABI between internal/lexer and
// internal/parser (and, through pkg/jsflow, the callback sink); both sides
// must agree on exactly what each bit means.
package token

import "fmt"

// Kind classifies a Token. LIT is the pre-classification for
// identifier-shaped tokens; the parser promotes each LIT to SYMBOL,
// KEYWORD, or LABEL before it reaches the sink.
type Kind uint8

const (
	EOF Kind = iota
	LIT
	SEMICOLON
	OP
	COLON
	BRACE
	ARRAY
	PAREN
	TERNARY
	CLOSE
	STRING
	REGEXP
	NUMBER
	SYMBOL
	KEYWORD
	LABEL
	BLOCK
)

var kindNames = [...]string{
	EOF: "EOF", LIT: "LIT", SEMICOLON: "SEMICOLON", OP: "OP", COLON: "COLON",
	BRACE: "BRACE", ARRAY: "ARRAY", PAREN: "PAREN", TERNARY: "TERNARY",
	CLOSE: "CLOSE", STRING: "STRING", REGEXP: "REGEXP", NUMBER: "NUMBER",
	SYMBOL: "SYMBOL", KEYWORD: "KEYWORD", LABEL: "LABEL", BLOCK: "BLOCK",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Special is the per-token role bit-field. Its meaning depends on Kind:
//
//   - LIT / KEYWORD: low 9 bits hold a keyword role mask (see
//     internal/keyword), bits 9-30 hold the keyword identity, and the top
//     bit (LitFlag) is set to mark the field as "keyword-identity-shaped"
//     rather than a SYMBOL flag set. A LIT token that never matched a
//     keyword carries Special == 0.
//   - OP: holds one of the Operator* identities below.
//   - SYMBOL: holds a combination of the symbol flags (Declare, Top,
//     Property, Change, External, Default, Destructuring). LitFlag is
//     always clear on a promoted SYMBOL.
//
// This dual meaning is the "sum type with a single LIT constructor" called
// for by the design notes: a LIT token carries a keyword-shaped payload
// until the parser consumes it and rewrites Special into the SYMBOL shape.
type Special uint32

// Symbol role flags, valid when Kind == SYMBOL (or still pending on a LIT
// the parser hasn't promoted yet). Line-break detection (ASI, the
// restricted-production rule on postfix `++`/`--`, etc.) is done by
// comparing Token.Line against the line of the last-consumed token, not a
// per-token flag — see internal/parser's isASIBoundary and postfix.
const (
	Declare       Special = 1 << iota // introduces a new binding
	Top                               // binding is visible at module/function top
	Property                          // this LIT/SYMBOL is an object/member key, not a lookup
	Change                            // bound name is the target of assignment/update
	External                          // import/export binding from another module
	Default                           // default export/import binding
	Destructuring                     // bound name comes from a destructuring pattern
)

// LitFlag marks Special as holding a keyword-identity payload (keyword.Entry)
// rather than a set of symbol flags. Set on every LIT that matched a
// keyword in the trie, and on every KEYWORD token; cleared when a LIT is
// promoted to SYMBOL or LABEL.
const LitFlag Special = 1 << 31

// StringOpensInterp is set on a STRING token (Kind == STRING) whose last
// two bytes are "${" — a template-string head or middle segment that
// opens a TEMPLATE-INTERP frame. It shares bit 0 with Declare; the two
// never collide because they apply to disjoint Kinds.
const StringOpensInterp Special = 1

// Operator identities, valid when Kind == OP.
const (
	OperatorOther  Special = iota // generic / unclassified operator
	OperatorArrow                 // =>
	OperatorDot                   // .
	OperatorChain                 // ?.
	OperatorSpread                // ...
	OperatorComma                 // ,
	OperatorAssign                // =
	OperatorStar                  // *
	OperatorIncDec                // ++ / --
	OperatorNot                   // !
	OperatorBitNot                // ~
)

// Token is the unit produced by the lexer and consumed by the parser and
// the sink. It is a short-lived view into the source buffer: the sink must
// copy out any bytes it wants to retain past the current callback.
type Token struct {
	VoidStart int     // byte offset where leading trivia begins
	Start     int     // byte offset of the first significant byte
	Length    int     // byte length of the significant span
	Line      int     // 1-based line of the first significant byte
	Kind      Kind
	Special   Special
}

// End returns the byte offset one past the token's significant span.
func (t Token) End() int { return t.Start + t.Length }

// Text returns the token's significant span, sliced out of src.
func (t Token) Text(src string) string {
	if t.Start < 0 || t.End() > len(src) {
		return ""
	}
	return src[t.Start:t.End()]
}

// IsASI reports whether this is a zero-length synthetic SEMICOLON emitted
// by Automatic Semicolon Insertion rather than a real `;` in the source.
func (t Token) IsASI() bool {
	return t.Kind == SEMICOLON && t.Length == 0
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d:%d+%d", t.Kind, t.Line, t.Start, t.Length)
}

// ScopeKind identifies the kind of structural region bracketed by a
// scope-open/scope-close event pair emitted to the sink.
type ScopeKind uint8

const (
	SCOPE_EXPR ScopeKind = iota
	SCOPE_DECLARE
	SCOPE_CONTROL
	SCOPE_BLOCK
	SCOPE_FUNCTION
	SCOPE_CLASS
	SCOPE_MISC
	SCOPE_LABEL
	SCOPE_EXPORT
	SCOPE_MODULE
	SCOPE_INNER
)

var scopeNames = [...]string{
	SCOPE_EXPR: "EXPR", SCOPE_DECLARE: "DECLARE", SCOPE_CONTROL: "CONTROL",
	SCOPE_BLOCK: "BLOCK", SCOPE_FUNCTION: "FUNCTION", SCOPE_CLASS: "CLASS",
	SCOPE_MISC: "MISC", SCOPE_LABEL: "LABEL", SCOPE_EXPORT: "EXPORT",
	SCOPE_MODULE: "MODULE", SCOPE_INNER: "INNER",
}

func (k ScopeKind) String() string {
	if int(k) < len(scopeNames) && scopeNames[k] != "" {
		return scopeNames[k]
	}
	return fmt.Sprintf("ScopeKind(%d)", k)
}

// Position is a human-facing line/column pair, used only by error
// formatting. The core Token itself carries just a line number (per the
// data model); Column is recomputed on demand from the source buffer when
// a diagnostic needs to be printed.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position has a usable line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}
