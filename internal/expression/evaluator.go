package expression

import (
	"fmt"
	"strconv"
)

// Value is the result of evaluating an expression: either IntValue or
// BoolValue, nothing else. Values are produced fresh per evaluation and
// never persisted.
type Value interface {
	fmt.Stringer

	// Type names the value kind, "integer" or "boolean".
	Type() string

	value()
}

type IntValue int64

func (v IntValue) value() {}

func (v IntValue) Type() string { return "integer" }

func (v IntValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

type BoolValue bool

func (v BoolValue) value() {}

func (v BoolValue) Type() string { return "boolean" }

func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

// Evaluate walks the tree in post-order and produces exactly one Value,
// or an *EvaluationError on an operand type violation.
func Evaluate(e Expr) (Value, error) {
	switch n := e.(type) {
	case *LiteralExpr:
		return IntValue(n.Value), nil

	case *BinaryExpr:
		left, err := Evaluate(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return nil, err
		}
		return applyBinary(n.Token(), left, right)

	default:
		panic(fmt.Sprintf("unknown expression node: %T", e))
	}
}

func applyBinary(op Token, left, right Value) (Value, error) {
	switch op.Kind {
	case Plus, Minus:
		l, lok := left.(IntValue)
		r, rok := right.(IntValue)
		if !lok || !rok {
			return nil, &EvaluationError{
				Message: fmt.Sprintf("operands for %q must be integers", op.Lexeme),
				Token:   op,
			}
		}
		if op.Kind == Plus {
			return l + r, nil
		}
		return l - r, nil

	case Less:
		return BoolValue(ordinal(left) < ordinal(right)), nil
	case Greater:
		return BoolValue(ordinal(left) > ordinal(right)), nil
	case Equal:
		return BoolValue(ordinal(left) == ordinal(right)), nil
	case NotEqual:
		return BoolValue(ordinal(left) != ordinal(right)), nil

	default:
		panic(fmt.Sprintf("unknown binary operator: %s", op.Kind))
	}
}

// ordinal places a value on the integer line for comparisons. A boolean
// counts as 0 or 1, so false < true and true == 1. This keeps chained
// comparisons like 2<3<4 meaningful: (2<3)<4 is 1<4.
func ordinal(v Value) int64 {
	switch v := v.(type) {
	case IntValue:
		return int64(v)
	case BoolValue:
		if v {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unknown value: %T", v))
	}
}
