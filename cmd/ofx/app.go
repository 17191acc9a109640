package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/alexandremahdhaoui/ofx/internal/actions"
	"github.com/alexandremahdhaoui/ofx/internal/envutil"
	"github.com/alexandremahdhaoui/ofx/internal/logging"
	"github.com/alexandremahdhaoui/ofx/internal/scriptpath"
	"github.com/alexandremahdhaoui/ofx/pkg/dispatch"
	"github.com/alexandremahdhaoui/ofx/pkg/flaterrors"
	"github.com/alexandremahdhaoui/ofx/pkg/ofxconfig"
)

// errUsage marks errors caused by an invalid invocation.
var errUsage = errors.New("usage error")

// CLI is the command line parsed by kong.
type CLI struct {
	Command              string `arg:"" help:"The command to use: bootstrap, clean or install."`
	Jobs                 int    `short:"j" default:"1" help:"Number of jobs (cores) to use when compiling."`
	ProjectGeneratorPath string `name:"project_generator_path" help:"Project Generator path."`
	OfRoot               string `name:"of_root" help:"The openFrameworks root path."`
	EnvFile              string `name:"env_file" help:"Read additional environment variables from this file."`
	Verbose              int    `short:"v" type:"counter" help:"Enable verbose output. Repeat for debug logs."`
}

type app struct {
	stdout  io.Writer
	stderr  io.Writer
	environ []string
	goos    string
}

func (a *app) run(args []string) error {
	var c CLI

	parser, err := kong.New(&c,
		kong.Name(toolName),
		kong.Description("Bootstrap, clean or install an openFrameworks addon."),
		kong.Writers(a.stdout, a.stderr),
	)
	if err != nil {
		return err
	}

	if _, err := parser.Parse(args); err != nil {
		return flaterrors.Join(err, errUsage)
	}

	// 1. Snapshot the environment.
	snapshot, err := envutil.Snapshot(a.environ, c.EnvFile)
	if err != nil {
		return flaterrors.Join(err, errUsage)
	}

	logger := logging.New(a.stderr, c.Verbose)
	defer func() { _ = logger.Sync() }()

	// 2. Resolve the configuration.
	scriptDir, err := scriptpath.Locate(snapshot)
	if err != nil {
		logger.Warn("cannot locate the ofx script directory", zap.Error(err))
	}

	resolver := ofxconfig.NewResolver(snapshot, scriptDir, logger)
	resolver.GOOS = a.goos

	cfg, err := resolver.Resolve(ofxconfig.Args{
		Command:              c.Command,
		Jobs:                 c.Jobs,
		Verbosity:            c.Verbose,
		ProjectGeneratorPath: c.ProjectGeneratorPath,
		OfRoot:               c.OfRoot,
	})
	if err != nil {
		if errors.Is(err, ofxconfig.ErrInvalidCommand) || errors.Is(err, ofxconfig.ErrInvalidArgument) {
			return flaterrors.Join(err, errUsage)
		}

		return err
	}

	if cfg.Verbosity > 0 {
		if err := printResolved(a.stdout, cfg); err != nil {
			return err
		}
	}

	// 3. Dispatch.
	reporter := actions.Reporter{Out: a.stdout, Logger: logger, GOOS: a.goos}

	return dispatch.New(reporter.Actions()).Dispatch(context.Background(), cfg)
}

func (a *app) printFailure(err error) {
	if errors.Is(err, errUsage) {
		_, _ = fmt.Fprintf(a.stderr, "%s\n", formatUsage())
	}

	_, _ = fmt.Fprintf(a.stderr, "❌ ERROR: %s\n", err.Error())
}

func printResolved(w io.Writer, cfg ofxconfig.ResolvedConfig) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 80) //nolint:gomnd // banner width

	_, err = fmt.Fprintf(w, "%s\n%s%s\n", rule, b, rule)

	return err
}
