// Package script loads and runs files of expressions, one expression per
// entry. It is the recovery boundary around the core pipeline: a failing
// entry is reported and the run continues with the next one.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one expression to evaluate. Line is the 1-based source line
// for text scripts, 0 for structured suite entries. Expected is an
// optional expected result (int64, float64 or bool) for suite checking.
type Entry struct {
	Source      string
	Line        int
	Expected    any
	HasExpected bool
}

type Script struct {
	Entries []Entry
}

// ParseText reads one expression per line. Blank lines and lines starting
// with '#' are skipped without producing an entry.
func ParseText(r io.Reader) (*Script, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, Entry{Source: text, Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bufio.Scanner: %w", err)
	}

	return &Script{Entries: entries}, nil
}
