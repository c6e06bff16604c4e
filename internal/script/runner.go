package script

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/exprlab/expression-interpreter/internal/expression"
)

// Runner executes a script against the core pipeline. Jobs > 1 evaluates
// entries concurrently; every entry is an independent scan-parse-evaluate
// unit with no shared state, so no extra synchronization is needed.
// Output keeps the entry order either way.
type Runner struct {
	Out    io.Writer
	ErrOut io.Writer
	Jobs   int
}

type outcome struct {
	value expression.Value
	err   error
}

// Run evaluates every entry and returns the number of failed ones.
// Integer results print in decimal, booleans as true/false. A failing
// entry is reported to ErrOut and does not stop the run.
func (r *Runner) Run(s *Script) int {
	outcomes := make([]outcome, len(s.Entries))
	if r.Jobs > 1 {
		var eg errgroup.Group
		eg.SetLimit(r.Jobs)
		for i, entry := range s.Entries {
			i, entry := i, entry
			eg.Go(func() error {
				value, err := expression.Run(entry.Source)
				outcomes[i] = outcome{value: value, err: err}
				return nil
			})
		}
		eg.Wait() // workers report through outcomes, never through errgroup
	} else {
		for i, entry := range s.Entries {
			value, err := expression.Run(entry.Source)
			outcomes[i] = outcome{value: value, err: err}
		}
	}

	failed := 0
	for i, entry := range s.Entries {
		oc := outcomes[i]
		if oc.err != nil {
			fmt.Fprintln(r.ErrOut, oc.err)
			failed++
			continue
		}
		if entry.HasExpected && !matchesExpected(oc.value, entry.Expected) {
			fmt.Fprintf(r.ErrOut, "%s: expected %v but got %s\n", entry.Source, entry.Expected, oc.value)
			failed++
			continue
		}
		fmt.Fprintln(r.Out, oc.value)
	}
	return failed
}

func matchesExpected(value expression.Value, expected any) bool {
	switch want := expected.(type) {
	case bool:
		got, ok := value.(expression.BoolValue)
		return ok && bool(got) == want

	case int64:
		got, ok := value.(expression.IntValue)
		return ok && int64(got) == want

	case float64:
		// YAML suites may carry 3.0 for an integer result
		got, ok := value.(expression.IntValue)
		return ok && float64(got) == want

	default:
		return false
	}
}
