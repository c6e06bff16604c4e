package expression

import "fmt"

// LexicalError reports a malformed or unrecognized character sequence.
// Line and Column locate the start of the offending run, not the scan
// cursor's position when the error was noticed.
type LexicalError struct {
	Message string
	Line    int
	Column  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// SyntaxError reports a grammar violation at a specific token.
type SyntaxError struct {
	Message string
	Token   Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// EvaluationError reports an operand type violation at evaluation time.
// Token is the operator whose operands were invalid.
type EvaluationError struct {
	Message string
	Token   Token
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error at line %d, column %d: %s", e.Token.Line, e.Token.Column, e.Message)
}
