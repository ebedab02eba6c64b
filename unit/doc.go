// Package unit defines the surface a test author touches: the Func type
// that every test case implements, and the Result passed to it, whose
// methods (Pass, Fail, AssertTrue, AssertFalse) control the outcome and
// stop the test early.
package unit
