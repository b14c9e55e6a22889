// Package cli defines the Cobra commands behind the nukit binaries. Each
// tool is a single root command built by its own constructor; the command
// implementations delegate to internal packages for the real work and only
// handle flag parsing, config defaults, and output formatting.
package cli
