//go:build unit

package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/ofx/pkg/ofxconfig"
)

type recorder struct {
	calls []ofxconfig.Command
	err   error
}

func (r *recorder) action(name ofxconfig.Command) Action {
	return func(_ context.Context, cfg ofxconfig.ResolvedConfig) error {
		r.calls = append(r.calls, name)
		return r.err
	}
}

func (r *recorder) actions() Actions {
	return Actions{
		Bootstrap: r.action(ofxconfig.CommandBootstrap),
		Clean:     r.action(ofxconfig.CommandClean),
		Install:   r.action(ofxconfig.CommandInstall),
	}
}

func TestDispatch(t *testing.T) {
	t.Run("should run exactly the matching action", func(t *testing.T) {
		for _, c := range ofxconfig.Commands() {
			rec := &recorder{}
			err := New(rec.actions()).Dispatch(context.Background(), ofxconfig.ResolvedConfig{Command: c})
			require.NoError(t, err)
			assert.Equal(t, []ofxconfig.Command{c}, rec.calls)
		}
	})

	t.Run("should pass the resolved config through", func(t *testing.T) {
		var got ofxconfig.ResolvedConfig
		d := New(Actions{Install: func(_ context.Context, cfg ofxconfig.ResolvedConfig) error {
			got = cfg
			return nil
		}})

		want := ofxconfig.ResolvedConfig{Command: ofxconfig.CommandInstall, Jobs: 4, AddonName: "ofxFoo"}
		require.NoError(t, d.Dispatch(context.Background(), want))
		assert.Equal(t, want, got)
	})

	t.Run("should run nothing for unknown commands", func(t *testing.T) {
		rec := &recorder{}
		err := New(rec.actions()).Dispatch(context.Background(), ofxconfig.ResolvedConfig{Command: "deploy"})
		assert.ErrorIs(t, err, ErrUnknownCommand)
		assert.Empty(t, rec.calls)
	})

	t.Run("should fail when the action is missing", func(t *testing.T) {
		err := New(Actions{}).Dispatch(context.Background(), ofxconfig.ResolvedConfig{Command: ofxconfig.CommandClean})
		assert.ErrorIs(t, err, ErrMissingAction)
	})

	t.Run("should wrap action errors", func(t *testing.T) {
		boom := errors.New("boom")
		rec := &recorder{err: boom}

		err := New(rec.actions()).Dispatch(context.Background(), ofxconfig.ResolvedConfig{Command: ofxconfig.CommandBootstrap})
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, ErrActionFailed)
		assert.Equal(t, "boom: bootstrap: action failed", err.Error())
	})
}
