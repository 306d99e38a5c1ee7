package lexer

import "github.com/ecmaflow/jsflow/pkg/token"

// scanQuotedString consumes a plain `'...'` or `"..."` string literal
// (design §4.5). A backslash before a newline continues the string onto
// the next line; an unterminated string at EOF (or a bare unescaped
// newline) is recorded as a best-effort error and returns whatever was
// consumed, matching "accepts some invalid inputs with best-effort
// classification".
func (s *State) scanQuotedString(quote byte) token.Token {
	voidStart, start, line := s.markStart()
	s.at++ // opening quote

	for {
		if s.atEnd() {
			s.recordError("unterminated string literal")
			break
		}
		c := s.src[s.at]
		if c == '\n' {
			s.recordError("unterminated string literal")
			break
		}
		if c == '\\' {
			s.at++
			if s.atEnd() {
				break
			}
			if s.src[s.at] == '\n' {
				s.line++
			}
			s.at++
			continue
		}
		if c == quote {
			s.at++
			break
		}
		s.at++
	}

	return token.Token{VoidStart: voidStart, Start: start, Length: s.at - start, Line: line, Kind: token.STRING}
}

// scanTemplateHead consumes a template string starting at its opening
// backtick, stopping at an unescaped closing backtick or at `${` (design
// §4.5). On `${` the token's last two bytes are "${" and a
// TEMPLATE-INTERP frame is pushed onto the structural stack so the parser
// can parse the interpolated expression; the matching `}` later resumes
// template lexing (see resumeTemplate).
func (s *State) scanTemplateHead() token.Token {
	voidStart, start, line := s.markStart()
	s.at++ // opening backtick
	return s.continueTemplate(voidStart, start, line)
}

// resumeTemplate is called by scan when the current byte is `}` and the
// structural-stack top is a TEMPLATE-INTERP frame: it consumes the `}`,
// pops the frame, and re-enters template-string mode for the byte
// immediately after, returning another STRING token whose text starts
// with that `}` (design §4.5, §4.2).
func (s *State) resumeTemplate() token.Token {
	voidStart, start, line := s.markStart()
	s.at++ // consume '}'
	if _, err := s.pop(); err != nil {
		s.recordError(err.Error())
	}
	return s.continueTemplate(voidStart, start, line)
}

func (s *State) continueTemplate(voidStart, start, line int) token.Token {
	for {
		if s.atEnd() {
			s.recordError("unterminated template literal")
			break
		}
		c := s.src[s.at]
		switch {
		case c == '\\':
			s.at += 2
		case c == '\n':
			s.line++
			s.at++
		case c == '`':
			s.at++
			return token.Token{VoidStart: voidStart, Start: start, Length: s.at - start, Line: line, Kind: token.STRING}
		case c == '$' && s.byteAt(s.at+1) == '{':
			s.at += 2
			if err := s.push(TemplateInterpKind, false); err != nil {
				s.recordError(err.Error())
			}
			return token.Token{VoidStart: voidStart, Start: start, Length: s.at - start, Line: line, Kind: token.STRING, Special: token.StringOpensInterp}
		default:
			s.at++
		}
	}
	return token.Token{VoidStart: voidStart, Start: start, Length: s.at - start, Line: line, Kind: token.STRING}
}
