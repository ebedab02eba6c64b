package unit

import (
	"fmt"
	"io"
	"runtime"
)

// Func is the signature of a test case body. The runner constructs a fresh
// Result for every invocation and passes it by pointer; the body mutates it
// through the assertion methods.
type Func func(*Result)

// Result is the outcome of a single test case execution. It starts out
// successful, so a body that runs to completion without failing an
// assertion reports as passed.
type Result struct {
	out     io.Writer
	success bool
}

// NewResult returns a Result marked successful. Failure notices emitted by
// the assertion methods are written to out.
func NewResult(out io.Writer) *Result {
	if out == nil {
		out = io.Discard
	}
	return &Result{out: out, success: true}
}

// OK reports whether the test case is still considered successful.
func (r *Result) OK() bool {
	return r.success
}

// Pass marks the test case successful and stops it immediately.
//
// Pass, Fail and the assert methods stop the test via runtime.Goexit, the
// same mechanism testing.T.FailNow uses. They must therefore only be called
// from inside a test body executed by the runner, which runs each body on
// its own goroutine and joins it before moving on.
func (r *Result) Pass() {
	r.success = true
	runtime.Goexit()
}

// Fail prints a failure notice, marks the test case failed, and stops it
// immediately.
func (r *Result) Fail() {
	fmt.Fprintln(r.out, "[    ] Test failed")
	r.success = false
	runtime.Goexit()
}

// AssertTrue stops the test case as failed when cond is false. expr is the
// source text of the checked condition and is echoed in the failure notice.
func (r *Result) AssertTrue(cond bool, expr string) {
	if cond {
		return
	}
	fmt.Fprintf(r.out, "[    ] Test Assert failed: %s\n", expr)
	r.Fail()
}

// AssertFalse stops the test case as failed when cond is true.
func (r *Result) AssertFalse(cond bool, expr string) {
	if !cond {
		return
	}
	fmt.Fprintf(r.out, "[    ] Test Assert failed: %s\n", expr)
	r.Fail()
}
