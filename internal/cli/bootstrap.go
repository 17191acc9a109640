package cli

import (
	"io"
	"os"

	"github.com/alexandremahdhaoui/ofx/internal/version"
)

const (
	// ExitSuccess is returned when RunCLI succeeds.
	ExitSuccess = 0
	// ExitFailure is the default exit code for errors returned by RunCLI.
	ExitFailure = 1
	// ExitUsage is the conventional exit code for invalid invocations.
	ExitUsage = 2
)

// Config holds the configuration for CLI bootstrap.
type Config struct {
	// Name is the command name (e.g., "ofx")
	Name string

	// Version information (typically set via ldflags)
	Version        string
	CommitSHA      string
	BuildTimestamp string

	// Args are the command-line arguments without the program name.
	// Defaults to os.Args[1:].
	Args []string
	// Stdout receives the version report. Defaults to os.Stdout.
	Stdout io.Writer

	// RunCLI is the function to execute in normal CLI mode
	RunCLI func(args []string) error

	// ExitCode maps an error returned by RunCLI to an exit code (optional)
	// Defaults to ExitFailure
	ExitCode func(error) int

	// SuccessHandler is called when RunCLI completes successfully (optional)
	SuccessHandler func()

	// FailureHandler is called when RunCLI returns an error (optional)
	// Receives the error and should print it appropriately
	FailureHandler func(error)
}

// Run handles a leading --version flag, executes RunCLI and returns the process exit code.
func Run(cfg Config) int {
	args := cfg.Args
	if args == nil {
		args = os.Args[1:]
	}

	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	// --version is only honoured as the first argument so it is never taken
	// from a flag value.
	if len(args) > 0 && args[0] == "--version" {
		info := version.New(cfg.Name)
		info.Version = cfg.Version
		info.CommitSHA = cfg.CommitSHA
		info.BuildTimestamp = cfg.BuildTimestamp
		info.Fprint(stdout)

		return ExitSuccess
	}

	if err := cfg.RunCLI(args); err != nil {
		if cfg.FailureHandler != nil {
			cfg.FailureHandler(err)
		}

		if cfg.ExitCode != nil {
			return cfg.ExitCode(err)
		}

		return ExitFailure
	}

	if cfg.SuccessHandler != nil {
		cfg.SuccessHandler()
	}

	return ExitSuccess
}

// Bootstrap runs cfg and exits the process with the resulting code.
//
// This function will call os.Exit and never return.
func Bootstrap(cfg Config) {
	os.Exit(Run(cfg))
}
