package expression

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	Number TokenKind = iota
	Plus
	Minus
	Less
	Greater
	Equal
	NotEqual
	LeftParen
	RightParen
	EndOfInput
)

var tokenKindNames = map[TokenKind]string{
	Number:     "NUMBER",
	Plus:       "PLUS",
	Minus:      "MINUS",
	Less:       "LESS",
	Greater:    "GREATER",
	Equal:      "EQUAL",
	NotEqual:   "NOT_EQUAL",
	LeftParen:  "LPAREN",
	RightParen: "RPAREN",
	EndOfInput: "EOF",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit. Line and Column are 1-based and point
// at the first character of the lexeme.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}
