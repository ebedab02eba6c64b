// Package config loads the optional HCL settings file and resolves it
// against command-line flags and built-in defaults. Precedence is always
// explicit flag, then file value, then default.
package config
