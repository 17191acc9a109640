package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/alexandremahdhaoui/ofx/internal/cli"
	"github.com/alexandremahdhaoui/ofx/internal/util"
	"github.com/alexandremahdhaoui/ofx/pkg/ofxconfig"
)

const toolName = "ofx"

// Version information (set via ldflags)
var (
	Version        = "dev"
	CommitSHA      = "unknown"
	BuildTimestamp = "unknown"
)

// ----------------------------------------------------- USAGE ------------------------------------------------------ //

const (
	usageTemplate = `## Usage

%s <command> [flags]

Available commands:
  - %q
  - %q
  - %q

Flags:
  -j, --jobs=1                    Number of jobs (cores) to use when compiling.
      --project_generator_path=S  Project Generator path.
      --of_root=S                 The openFrameworks root path.
      --env_file=S                Read additional environment variables from this file.
  -v, --verbose                   Enable verbose output. Repeat for debug logs.
      --version                   Print version information.

The following env variables may be read:
%s`
)

func formatUsage() string {
	return fmt.Sprintf(usageTemplate, toolName,
		ofxconfig.CommandBootstrap, ofxconfig.CommandClean, ofxconfig.CommandInstall,
		util.FormatExpectedEnvList[ofxconfig.Envs]())
}

// ----------------------------------------------------- MAIN ------------------------------------------------------- //

func main() {
	a := &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ(),
		goos:    runtime.GOOS,
	}

	cli.Bootstrap(cli.Config{
		Name:           toolName,
		Version:        Version,
		CommitSHA:      CommitSHA,
		BuildTimestamp: BuildTimestamp,
		RunCLI:         a.run,
		ExitCode:       exitCode,
		FailureHandler: a.printFailure,
	})
}

func exitCode(err error) int {
	if errors.Is(err, errUsage) {
		return cli.ExitUsage
	}

	return cli.ExitFailure
}
