// Package dispatch runs the action matching a resolved command.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexandremahdhaoui/ofx/pkg/flaterrors"
	"github.com/alexandremahdhaoui/ofx/pkg/ofxconfig"
)

// Action performs one ofx command.
type Action func(ctx context.Context, cfg ofxconfig.ResolvedConfig) error

// Actions holds one Action per command.
type Actions struct {
	Bootstrap Action
	Clean     Action
	Install   Action
}

var (
	// ErrUnknownCommand is returned when no action is registered under the command name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingAction is returned when the action for a known command is nil.
	ErrMissingAction = errors.New("missing action")
	// ErrActionFailed wraps errors returned by an action.
	ErrActionFailed = errors.New("action failed")
)

// Dispatcher selects the action to run for a ResolvedConfig.
type Dispatcher struct {
	actions map[ofxconfig.Command]Action
}

// New returns a Dispatcher for actions.
func New(actions Actions) *Dispatcher {
	return &Dispatcher{
		actions: map[ofxconfig.Command]Action{
			ofxconfig.CommandBootstrap: actions.Bootstrap,
			ofxconfig.CommandClean:     actions.Clean,
			ofxconfig.CommandInstall:   actions.Install,
		},
	}
}

// Dispatch runs exactly one action, chosen by exact match on cfg.Command.
// Nothing runs when the command is unknown or its action is nil.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg ofxconfig.ResolvedConfig) error {
	action, ok := d.actions[cfg.Command]
	if !ok {
		return flaterrors.Join(fmt.Errorf("command %q", cfg.Command), ErrUnknownCommand)
	}

	if action == nil {
		return flaterrors.Join(fmt.Errorf("command %q", cfg.Command), ErrMissingAction)
	}

	if err := action(ctx, cfg); err != nil {
		return flaterrors.Join(err, errors.New(string(cfg.Command)), ErrActionFailed)
	}

	return nil
}
