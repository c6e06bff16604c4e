package expression

import (
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/samber/lo"
)

// Grammar (precedence low to high):
//
//	Expression := AddExpr (ComparisonOp AddExpr)*
//	AddExpr    := Term (('+' | '-') Term)*
//	Term       := NUMBER | '(' Expression ')'
//
// Comparison chains group from the left: 1<2<3 parses as (1<2)<3. A
// parenthesized sub-expression recurses into the full Expression rule, so
// a comparison result may legally flow back into '+'/'-', e.g. (2+3<4)+1.
// That is part of the exposed language, not an oversight.

var comparisonKinds = []TokenKind{Less, Greater, Equal, NotEqual}

var parserDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("EXPRESSION_INTERPRETER_DEBUG")); v && err == nil {
		parserDebugLog = true
	}
}

// parser consumes a token sequence left-to-right with one token of
// lookahead and never backtracks.
type parser struct {
	tokens  []Token
	current int
}

// Parse builds one expression tree from a token sequence ending in
// EndOfInput. Tokens after the first complete Expression are left
// unconsumed.
func Parse(tokens []Token) (Expr, error) {
	p := &parser{tokens: tokens}
	node, err := p.expression()
	if err != nil {
		return nil, err
	}

	if parserDebugLog {
		pp.Println(node)
	}
	return node, nil
}

func (p *parser) expression() (Expr, error) {
	node, err := p.addExpr()
	if err != nil {
		return nil, err
	}

	for lo.Contains(comparisonKinds, p.peek().Kind) {
		op := p.advance()
		right, err := p.addExpr()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *parser) addExpr() (Expr, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(Plus) || p.match(Minus) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *parser) term() (Expr, error) {
	if p.match(Number) {
		tok := p.previous()
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Message: "invalid integer literal " + strconv.Quote(tok.Lexeme), Token: tok}
		}
		return &LiteralExpr{Value: v, Tok: tok}, nil
	}

	if p.match(LeftParen) {
		node, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return node, nil
	}

	return nil, &SyntaxError{Message: "expected number or '('", Token: p.peek()}
}

func (p *parser) match(kind TokenKind) bool {
	if p.isAtEnd() || p.peek().Kind != kind {
		return false
	}
	p.advance()
	return true
}

func (p *parser) consume(kind TokenKind, message string) (Token, error) {
	if !p.isAtEnd() && p.peek().Kind == kind {
		return p.advance(), nil
	}
	return Token{}, &SyntaxError{Message: message, Token: p.peek()}
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == EndOfInput
}
