// Package actions implements the bootstrap, clean and install commands.
//
// Each action computes the plan of its command from the resolved configuration
// and reports it. Running the planned commands is left to the caller.
package actions

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/alexandremahdhaoui/ofx/pkg/dispatch"
	"github.com/alexandremahdhaoui/ofx/pkg/ofxconfig"
)

// Reporter writes plans to Out.
type Reporter struct {
	Out    io.Writer
	Logger *zap.Logger
	GOOS   string
}

// Actions returns the dispatch actions backed by r.
func (r Reporter) Actions() dispatch.Actions {
	return dispatch.Actions{
		Bootstrap: r.report,
		Clean:     r.report,
		Install:   r.report,
	}
}

func (r Reporter) report(ctx context.Context, cfg ofxconfig.ResolvedConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	_, _ = fmt.Fprintf(r.Out, "⏳ Planning %s of addon %q\n", cfg.Command, cfg.AddonName)

	steps, err := Plan(cfg, r.GOOS)
	if err != nil {
		return err
	}

	for i, step := range steps {
		logger.Debug("planned step", zap.Int("index", i+1), zap.Strings("args", step.Args))
		_, _ = fmt.Fprintf(r.Out, "  %d. %s\n     $ %s\n", i+1, step.Description, step)
	}

	_, _ = fmt.Fprintf(r.Out, "✅ %s planned (%d steps)\n", cfg.Command, len(steps))

	return nil
}
