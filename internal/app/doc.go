// Package app contains the core application logic: it resolves the
// harness configuration, builds the logger and the registry of test
// cases, and drives a single run. It is decoupled from any specific
// entrypoint like a CLI.
package app
