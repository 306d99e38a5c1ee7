package lexer

import "github.com/ecmaflow/jsflow/pkg/token"

// opRun tries the longest operator starting at s.at among a descending set
// of candidate byte strings, returning the matched length or 0.
func opRun(src string, at int, candidates ...string) int {
	for _, c := range candidates {
		if at+len(c) <= len(src) && src[at:at+len(c)] == c {
			return len(c)
		}
	}
	return 0
}

// scanOperator consumes one punctuator or operator token starting at a
// byte handled by the "longest-match" row of the dispatch table (design
// §4.2). Bracket/brace/paren pushes, CLOSE pops (including template-string
// resumption), `;`, `:`/TERNARY-close, `?`/TERNARY-open, and `.`
// (dot/spread/leading-dot-number) are each handled by dedicated
// sub-dispatch; everything else falls through to the longest-match
// operator tables.
func (s *State) scanOperator(prior token.Token) (token.Token, error) {
	voidStart, start, line := s.markStart()
	c := s.src[s.at]

	mk := func(kind token.Kind, length int, special token.Special) token.Token {
		s.at += length
		return token.Token{VoidStart: voidStart, Start: start, Length: length, Line: line, Kind: kind, Special: special}
	}

	switch c {
	case '(':
		if err := s.push(ParenKind, false); err != nil {
			return token.Token{}, err
		}
		return mk(token.PAREN, 1, 0), nil
	case '[':
		if err := s.push(ArrayKind, false); err != nil {
			return token.Token{}, err
		}
		return mk(token.ARRAY, 1, 0), nil
	case '{':
		if err := s.push(BraceKind, true); err != nil {
			return token.Token{}, err
		}
		return mk(token.BRACE, 1, 0), nil
	case ')', ']':
		entry, err := s.pop()
		if err != nil {
			return token.Token{}, err
		}
		return mk(token.CLOSE, 1, encodeClose(entry)), nil
	case '}':
		if s.TopKind() == TemplateInterpKind {
			return s.resumeTemplate(), nil
		}
		entry, err := s.pop()
		if err != nil {
			return token.Token{}, err
		}
		return mk(token.CLOSE, 1, encodeClose(entry)), nil
	case ';':
		return mk(token.SEMICOLON, 1, 0), nil
	case ',':
		return mk(token.OP, 1, token.OperatorComma), nil
	case ':':
		if s.TopKind() == TernaryKind {
			entry, err := s.pop()
			if err != nil {
				return token.Token{}, err
			}
			return mk(token.CLOSE, 1, encodeClose(entry)), nil
		}
		return mk(token.COLON, 1, 0), nil
	case '?':
		if s.byteAt(s.at+1) == '.' && !isDecimalDigit(s.byteAt(s.at+2)) {
			return mk(token.OP, 2, token.OperatorChain), nil
		}
		if n := opRun(s.src, s.at, "??="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		if n := opRun(s.src, s.at, "??"); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		if err := s.push(TernaryKind, false); err != nil {
			return token.Token{}, err
		}
		return mk(token.TERNARY, 1, 0), nil
	case '.':
		if n := opRun(s.src, s.at, "..."); n > 0 {
			return mk(token.OP, n, token.OperatorSpread), nil
		}
		if isDecimalDigit(s.byteAt(s.at + 1)) {
			return s.scanNumber(), nil
		}
		return mk(token.OP, 1, token.OperatorDot), nil
	case '/':
		return s.scanSlash(prior), nil
	case '=':
		if n := opRun(s.src, s.at, "===", "=="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		if n := opRun(s.src, s.at, "=>"); n > 0 {
			return mk(token.OP, n, token.OperatorArrow), nil
		}
		return mk(token.OP, 1, token.OperatorAssign), nil
	case '<':
		if n := opRun(s.src, s.at, "<<=", "<=", "<<"); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorOther), nil
	case '>':
		if n := opRun(s.src, s.at, ">>>=", ">>>", ">>=", ">=", ">>"); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorOther), nil
	case '&':
		if n := opRun(s.src, s.at, "&&=", "&&", "&="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorOther), nil
	case '|':
		if n := opRun(s.src, s.at, "||=", "||", "|="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorOther), nil
	case '^':
		if n := opRun(s.src, s.at, "^="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorOther), nil
	case '~':
		return mk(token.OP, 1, token.OperatorBitNot), nil
	case '!':
		if n := opRun(s.src, s.at, "!==", "!="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorNot), nil
	case '%':
		if n := opRun(s.src, s.at, "%="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorOther), nil
	case '+':
		if n := opRun(s.src, s.at, "++"); n > 0 {
			return mk(token.OP, n, token.OperatorIncDec), nil
		}
		if n := opRun(s.src, s.at, "+="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorOther), nil
	case '-':
		if n := opRun(s.src, s.at, "--"); n > 0 {
			return mk(token.OP, n, token.OperatorIncDec), nil
		}
		if n := opRun(s.src, s.at, "-="); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorOther), nil
	case '*':
		if n := opRun(s.src, s.at, "**=", "*=", "**"); n > 0 {
			return mk(token.OP, n, token.OperatorOther), nil
		}
		return mk(token.OP, 1, token.OperatorStar), nil
	default:
		// Unrecognized byte: record an error, consume the byte, and return
		// a zero-length EOF token so the driver halts.
		s.recordError("unexpected byte")
		s.at++
		return token.Token{VoidStart: voidStart, Start: start, Length: 0, Line: line, Kind: token.EOF}, nil
	}
}
