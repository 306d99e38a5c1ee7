package lexer

import (
	"github.com/ecmaflow/jsflow/internal/keyword"
	"github.com/ecmaflow/jsflow/pkg/token"
)

func lookupKeyword(word string) (keyword.Entry, bool) {
	return keyword.Lookup(word)
}

// roleMask covers keyword.Role's flag set packed into Special
// (bits 0-8: Keyword, Strict, RelOp, UnaryOp, Masquerade, Decl, Control,
// ControlParen, ValueLiteral). keywordIDShift is where the keyword
// identity begins; it must stay clear of both roleMask and token.LitFlag
// (bit 31).
const (
	roleMask       token.Special = 1<<9 - 1
	keywordIDShift               = 9
	keywordIDMask  token.Special = 1<<22 - 1
)

// packKeyword packs a keyword.Entry into the token.Special layout
// documented on token.Special: role flags in bits 0-8, identity in bits
// 9-30, token.LitFlag in bit 31. This is the ABI internal/parser relies on
// to recover a LIT/KEYWORD token's keyword identity and role mask.
func packKeyword(e keyword.Entry) token.Special {
	return token.Special(e.Role)&roleMask | token.Special(e.ID)<<keywordIDShift | token.LitFlag
}

// UnpackKeyword is the inverse of packKeyword, exported for
// internal/parser.
func UnpackKeyword(sp token.Special) (keyword.Entry, bool) {
	if sp&token.LitFlag == 0 {
		return keyword.Entry{}, false
	}
	return keyword.Entry{
		Role: keyword.Role(sp & roleMask),
		ID:   keyword.ID((sp >> keywordIDShift) & keywordIDMask),
	}, true
}
