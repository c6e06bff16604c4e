package expression

// Run evaluates a single expression line through the full pipeline:
// scan, parse, evaluate. The first failing stage aborts this expression
// only; the returned error is one of *LexicalError, *SyntaxError or
// *EvaluationError. Callers own reporting and may keep feeding further
// lines, since no state survives between calls.
func Run(source string) (Value, error) {
	tokens, err := ScanTokens(source)
	if err != nil {
		return nil, err
	}

	tree, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	return Evaluate(tree)
}
