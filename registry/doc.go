// Package registry holds the process-wide collection of test cases.
//
// Test cases land here in one of two ways: package init functions calling
// the package-level Register against the shared default registry, or Suite
// values registering explicitly into a registry the caller owns. Either
// way the registry is fully populated before the runner reads it, and it
// is never cleared for the lifetime of the process.
package registry
