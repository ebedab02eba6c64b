// Package runner executes every registered test case exactly once, in a
// deterministic order, prints the run report, and reports aggregate
// success as a single boolean.
package runner
