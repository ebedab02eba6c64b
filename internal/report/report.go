// Package report renders the human-readable run report: separators, the
// per-case status lines, and the final summary. The exact line format is
// stable output, kept apart from structured logging.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Separator is the fixed-width rule printed between report sections.
var Separator = strings.Repeat("-", 80)

// Console writes the run report to a single output stream.
type Console struct {
	out io.Writer
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{out: out}
}

// Writer exposes the underlying stream so failure notices emitted inside a
// test body land inline with the report.
func (c *Console) Writer() io.Writer {
	return c.out
}

// BeginCase announces that a test case is about to run.
func (c *Console) BeginCase(name string) {
	fmt.Fprintln(c.out, Separator)
	fmt.Fprintf(c.out, "[    ] Test case '%s'\n", name)
}

// EndCase prints the status line for a finished test case.
func (c *Console) EndCase(ok bool) {
	if ok {
		fmt.Fprintln(c.out, "[    ] Success")
	} else {
		fmt.Fprintln(c.out, "[!!!!] Failure")
	}
}

// Summary closes the report: an all-passed banner when failures is empty,
// otherwise the failure count followed by one line per failing case name.
func (c *Console) Summary(failures []string) {
	fmt.Fprintln(c.out, Separator)
	fmt.Fprintln(c.out, Separator)

	if len(failures) == 0 {
		fmt.Fprintln(c.out, "[    ] All tests passed")
		fmt.Fprintln(c.out, Separator)
		return
	}

	fmt.Fprintf(c.out, "[!!!!] Failed %d test cases:\n", len(failures))
	for _, name := range failures {
		fmt.Fprintf(c.out, "> %s\n", name)
	}
	fmt.Fprintln(c.out, Separator)
}
