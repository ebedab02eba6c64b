// Package cli turns command-line arguments into an app.Config and owns the
// ExitError type the entrypoint maps to process exit codes.
package cli
