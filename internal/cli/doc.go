// Package cli parses command-line flags, builds the diagnostic logger and
// maps errors to process exit codes. Positional arguments are passed on
// untouched to config.Resolve.
package cli
