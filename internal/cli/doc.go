// Package cli provides the bootstrapping shared by ofx entry points.
//
// It handles:
//   - Version information initialization from ldflags
//   - The --version flag
//   - Mapping errors to exit codes
//
// Example usage:
//
//	package main
//
//	import (
//	    "github.com/alexandremahdhaoui/ofx/internal/cli"
//	)
//
//	// Version information (set via ldflags)
//	var (
//	    Version        = "dev"
//	    CommitSHA      = "unknown"
//	    BuildTimestamp = "unknown"
//	)
//
//	func main() {
//	    cli.Bootstrap(cli.Config{
//	        Name:           "ofx",
//	        Version:        Version,
//	        CommitSHA:      CommitSHA,
//	        BuildTimestamp: BuildTimestamp,
//	        RunCLI:         run,
//	    })
//	}
package cli
