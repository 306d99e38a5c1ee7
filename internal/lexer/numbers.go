package lexer

import "github.com/ecmaflow/jsflow/pkg/token"

// scanNumber consumes a NUMBER token starting at a digit or a `.` already
// known to be followed by a digit. It tolerates the forms named in the
// design (decimal, hex, octal, binary, exponent, underscore separators)
// plus, per original_source/src/core/token.c, legacy `0NNN` octal and a
// trailing BigInt `n` suffix.
func (s *State) scanNumber() token.Token {
	voidStart, start, line := s.markStart()

	if s.src[s.at] == '0' && s.at+1 < s.end {
		switch s.src[s.at+1] {
		case 'x', 'X':
			s.at += 2
			s.consumeDigits(isHexDigit)
			s.consumeBigIntSuffix()
			return s.finishNumber(voidStart, start, line)
		case 'o', 'O':
			s.at += 2
			s.consumeDigits(isOctalDigit)
			s.consumeBigIntSuffix()
			return s.finishNumber(voidStart, start, line)
		case 'b', 'B':
			s.at += 2
			s.consumeDigits(isBinaryDigit)
			s.consumeBigIntSuffix()
			return s.finishNumber(voidStart, start, line)
		}
		if isOctalDigit(s.src[s.at+1]) {
			// Legacy octal: 0NNN.
			s.at++
			s.consumeDigits(isOctalDigit)
			s.consumeBigIntSuffix()
			return s.finishNumber(voidStart, start, line)
		}
	}

	s.consumeDigits(isDecimalDigit)

	if !s.atEnd() && s.src[s.at] == '.' {
		s.at++
		s.consumeDigits(isDecimalDigit)
	}

	if !s.atEnd() && (s.src[s.at] == 'e' || s.src[s.at] == 'E') {
		save := s.at
		s.at++
		if !s.atEnd() && (s.src[s.at] == '+' || s.src[s.at] == '-') {
			s.at++
		}
		if !s.atEnd() && isDecimalDigit(s.src[s.at]) {
			s.consumeDigits(isDecimalDigit)
		} else {
			s.at = save
		}
	}

	s.consumeBigIntSuffix()
	return s.finishNumber(voidStart, start, line)
}

func (s *State) consumeDigits(pred func(byte) bool) {
	for !s.atEnd() {
		c := s.src[s.at]
		if pred(c) || c == '_' {
			s.at++
			continue
		}
		break
	}
}

func (s *State) consumeBigIntSuffix() {
	if !s.atEnd() && s.src[s.at] == 'n' {
		s.at++
	}
}

func (s *State) finishNumber(voidStart, start, line int) token.Token {
	return token.Token{VoidStart: voidStart, Start: start, Length: s.at - start, Line: line, Kind: token.NUMBER}
}

func isDecimalDigit(c byte) bool { return c >= '0' && c <= '9' }
func isOctalDigit(c byte) bool   { return c >= '0' && c <= '7' }
func isBinaryDigit(c byte) bool  { return c == '0' || c == '1' }
