package lexer

import "github.com/ecmaflow/jsflow/pkg/token"

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// isDotLike reports whether prior is the `.` or `?.` operator, which
// suppresses keyword lookup and tags the following identifier as a
// property key rather than a value reference (design §4.4).
func isDotLike(prior token.Token) bool {
	return prior.Kind == token.OP && (prior.Special == token.OperatorDot || prior.Special == token.OperatorChain)
}

// scanIdentifier consumes an identifier-shaped token starting at s.at
// (already known to be an identifier-start byte) and resolves it against
// the keyword table unless it follows `.`/`?.`. `\uXXXX` and `\u{...}`
// escapes inside the identifier body are tolerated but not decoded — they
// are accepted as identifier-continue bytes, matching the design's
// "tolerated" language rather than full normalization (an explicit
// non-goal).
func (s *State) scanIdentifier(prior token.Token) token.Token {
	voidStart, start, startLine := s.markStart()

	for !s.atEnd() {
		c := s.src[s.at]
		if c == '\\' && s.byteAt(s.at+1) == 'u' {
			s.at += 2
			if s.byteAt(s.at) == '{' {
				for !s.atEnd() && s.src[s.at] != '}' {
					s.at++
				}
				if !s.atEnd() {
					s.at++
				}
			} else {
				for i := 0; i < 4 && !s.atEnd() && isHexDigit(s.src[s.at]); i++ {
					s.at++
				}
			}
			continue
		}
		if !isIdentContinue(c) {
			break
		}
		s.at++
	}

	length := s.at - start
	word := s.src[start : start+length]

	tok := token.Token{VoidStart: voidStart, Start: start, Length: length, Line: startLine, Kind: token.LIT}

	if isDotLike(prior) {
		tok.Special = token.Property
		return tok
	}

	if entry, ok := lookupKeyword(word); ok {
		tok.Special = packKeyword(entry)
	}
	return tok
}

func (s *State) markStart() (voidStart, start, line int) {
	return s.at, s.at, s.line
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
