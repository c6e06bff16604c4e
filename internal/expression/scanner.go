package expression

import (
	"fmt"
	"unicode/utf8"
)

// scanner is a cursor over the source text. It lives for exactly one
// ScanTokens call and is never shared.
type scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	column      int
	startColumn int
}

// ScanTokens converts source into an ordered token sequence. The last
// token is always EndOfInput, positioned at the final line and column
// reached by the scan.
func ScanTokens(source string) ([]Token, error) {
	s := &scanner{source: source, line: 1, column: 1}
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, Token{Kind: EndOfInput, Line: s.line, Column: s.column})
	return s.tokens, nil
}

func (s *scanner) scanToken() error {
	c := s.advance()
	switch c {
	case ' ', '\t', '\r':
		return nil
	case '\n':
		s.line++
		s.column = 1
		return nil
	case '+':
		s.addToken(Plus)
	case '-':
		s.addToken(Minus)
	case '<':
		s.addToken(Less)
	case '>':
		s.addToken(Greater)
	case '(':
		s.addToken(LeftParen)
	case ')':
		s.addToken(RightParen)
	case '=':
		if !s.match('=') {
			return s.errorf("unexpected character '%c'", c)
		}
		s.addToken(Equal)
	case '!':
		if !s.match('=') {
			return s.errorf("unexpected character '%c'", c)
		}
		s.addToken(NotEqual)
	default:
		if isDigit(c) {
			return s.number()
		}
		if c >= utf8.RuneSelf {
			// report the whole rune, not its first UTF-8 byte
			r, _ := utf8.DecodeRuneInString(s.source[s.start:])
			return s.errorf("unexpected character '%c'", r)
		}
		return s.errorf("unexpected character '%c'", c)
	}
	return nil
}

func (s *scanner) number() error {
	for isDigit(s.peek()) {
		s.advance()
	}

	// a digit run running straight into a word is a malformed numeral,
	// not a NUMBER followed by garbage
	if c := s.peek(); isAlpha(c) || c == '_' {
		return s.errorf("invalid number format")
	}

	s.addToken(Number)
	return nil
}

func (s *scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	s.column++
	return true
}

func (s *scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	s.column++
	return c
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) addToken(kind TokenKind) {
	s.tokens = append(s.tokens, Token{
		Kind:   kind,
		Lexeme: s.source[s.start:s.current],
		Line:   s.line,
		Column: s.startColumn,
	})
}

func (s *scanner) errorf(format string, args ...any) error {
	return &LexicalError{
		Message: fmt.Sprintf(format, args...),
		Line:    s.line,
		Column:  s.startColumn,
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
