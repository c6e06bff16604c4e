package script_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/exprlab/expression-interpreter/internal/script"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	const source = `
- "1+2"
- expression: "2+3 < 4"
  expected: false
- expression: "(1+2)"
  expected: 3
`
	s, err := script.ParseYAML(strings.NewReader(source))
	if err != nil {
		t.Fatal(err)
	}

	expected := []script.Entry{
		{Source: "1+2"},
		{Source: "2+3 < 4", Expected: false, HasExpected: true},
		{Source: "(1+2)", Expected: int64(3), HasExpected: true},
	}
	if diff := cmp.Diff(expected, s.Entries); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	const source = `["1+2", {"expression": "2==2", "expected": true}]`
	s, err := script.ParseJSON(strings.NewReader(source))
	if err != nil {
		t.Fatal(err)
	}

	expected := []script.Entry{
		{Source: "1+2"},
		{Source: "2==2", Expected: true, HasExpected: true},
	}
	if diff := cmp.Diff(expected, s.Entries); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestParseJSONLargeInteger(t *testing.T) {
	t.Parallel()

	// 2^53+1 survives only on the json.Number int64 path; a float64
	// round-trip would flatten it to 9007199254740992
	const source = `[{"expression": "9007199254740993-0", "expected": 9007199254740993}]`
	s, err := script.ParseJSON(strings.NewReader(source))
	if err != nil {
		t.Fatal(err)
	}

	expected := []script.Entry{
		{Source: "9007199254740993-0", Expected: int64(9007199254740993), HasExpected: true},
	}
	if diff := cmp.Diff(expected, s.Entries); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		source string
	}{
		{
			name:   "not a list",
			source: `{"expression": "1+2"}`,
		},
		{
			name:   "entry missing expression",
			source: `[{"expected": 3}]`,
		},
		{
			name:   "numeric entry",
			source: `[42]`,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := script.ParseJSON(strings.NewReader(tt.source)); err == nil {
				t.Error("should be an error")
			}
		})
	}
}
