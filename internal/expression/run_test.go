package expression_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/exprlab/expression-interpreter/internal/expression"
)

func TestRun(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		source                string
		expected              expression.Value
		expectToBeScanErr     bool
		expectToBeParseErr    bool
		expectToBeEvaluateErr bool
	}{
		{
			source:             "",
			expectToBeParseErr: true,
		},
		{
			source:             "+",
			expectToBeParseErr: true,
		},
		{
			source:             "-",
			expectToBeParseErr: true,
		},
		{
			source:             "(",
			expectToBeParseErr: true,
		},
		{
			source:             ")",
			expectToBeParseErr: true,
		},
		{
			source:             "()",
			expectToBeParseErr: true,
		},
		{
			source:             "1++2",
			expectToBeParseErr: true,
		},
		{
			source:             "(2+3",
			expectToBeParseErr: true,
		},
		{
			source:             "((1)",
			expectToBeParseErr: true,
		},
		{
			source:   "42",
			expected: expression.IntValue(42),
		},
		{
			source:   "007",
			expected: expression.IntValue(7),
		},
		{
			source:   "1+2",
			expected: expression.IntValue(3),
		},
		{
			source:   "1 + 2",
			expected: expression.IntValue(3),
		},
		{
			source:   "1-2",
			expected: expression.IntValue(-1),
		},
		{
			source:   "10-4-3",
			expected: expression.IntValue(3),
		},
		{
			source:   "(1+2)",
			expected: expression.IntValue(3),
		},
		{
			source:   "((5))",
			expected: expression.IntValue(5),
		},
		{
			source:   "2+3<4",
			expected: expression.BoolValue(false),
		},
		{
			source:   "2+3>4",
			expected: expression.BoolValue(true),
		},
		{
			source:   "2<3<4",
			expected: expression.BoolValue(true),
		},
		{
			source:   "2==3",
			expected: expression.BoolValue(false),
		},
		{
			source:   "2==2",
			expected: expression.BoolValue(true),
		},
		{
			source:   "2!=3",
			expected: expression.BoolValue(true),
		},
		{
			source:   "(2==2)==1",
			expected: expression.BoolValue(true),
		},
		{
			source:   "(2<1)<1",
			expected: expression.BoolValue(true),
		},
		{
			source:            "2=3",
			expectToBeScanErr: true,
		},
		{
			source:            "2!3",
			expectToBeScanErr: true,
		},
		{
			source:            "12a",
			expectToBeScanErr: true,
		},
		{
			source:            "1$",
			expectToBeScanErr: true,
		},
		{
			source:                "(2+3<4)+1",
			expectToBeEvaluateErr: true,
		},
		{
			source:                "1+(2<3)",
			expectToBeEvaluateErr: true,
		},
		{
			source:                "(1<2)-(3<4)",
			expectToBeEvaluateErr: true,
		},
		{
			source:   "9223372036854775807",
			expected: expression.IntValue(9223372036854775807),
		},
		{
			source:             "9223372036854775808",
			expectToBeParseErr: true,
		},
		{
			// the parser stops after one complete expression
			source:   "1 2",
			expected: expression.IntValue(1),
		},
	} {
		tt := tt
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			ret, err := expression.Run(tt.source)
			if err != nil {
				var lexErr *expression.LexicalError
				var synErr *expression.SyntaxError
				var evalErr *expression.EvaluationError
				switch {
				case errors.As(err, &lexErr):
					if !tt.expectToBeScanErr {
						t.Fatalf("unexpected lexical error: %v", err)
					}
				case errors.As(err, &synErr):
					if !tt.expectToBeParseErr {
						t.Fatalf("unexpected syntax error: %v", err)
					}
				case errors.As(err, &evalErr):
					if !tt.expectToBeEvaluateErr {
						t.Fatalf("unexpected evaluation error: %v", err)
					}
				default:
					t.Fatalf("unknown error kind: %v", err)
				}
				return
			}
			if tt.expectToBeScanErr {
				t.Fatal("should be a lexical error")
			}
			if tt.expectToBeParseErr {
				t.Fatal("should be a syntax error")
			}
			if tt.expectToBeEvaluateErr {
				t.Fatal("should be an evaluation error")
			}

			if ret != tt.expected {
				t.Errorf("expect to %v but got %v", tt.expected, ret)
			}
		})
	}
}

func TestRunAdditionTable(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		a, b int64
	}{
		{0, 0},
		{1, 1},
		{7, 35},
		{120, 8},
		{100000, 999999},
	} {
		tt := tt
		a, b := strconv.FormatInt(tt.a, 10), strconv.FormatInt(tt.b, 10)
		t.Run(a+"_"+b, func(t *testing.T) {
			t.Parallel()

			sum, err := expression.Run(a + "+" + b)
			if err != nil {
				t.Fatal(err)
			}
			if sum != expression.IntValue(tt.a+tt.b) {
				t.Errorf("expect to %d but got %v", tt.a+tt.b, sum)
			}

			diff, err := expression.Run(a + "-" + b)
			if err != nil {
				t.Fatal(err)
			}
			if diff != expression.IntValue(tt.a-tt.b) {
				t.Errorf("expect to %d but got %v", tt.a-tt.b, diff)
			}
		})
	}
}

func FuzzRun(f *testing.F) {
	f.Add("2+3 < 4")
	f.Add("(2+3<4)+1")
	f.Fuzz(func(t *testing.T, source string) {
		ret, err := expression.Run(source)
		if err != nil {
			t.Logf("INVALID: %q (%v)", source, err)
			return
		}

		t.Logf("PASS: %q => %v", source, ret)
	})
}
