package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/skilledhelpers"
	main "github.com/fwojciec/skilledhelpers/cmd/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/helper"
	"github.com/fwojciec/skilledhelpers/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func electricianDiagnoser() *mock.Diagnoser {
	return &mock.Diagnoser{
		DiagnoseFn: func(_ context.Context, _ string) (*skilledhelpers.Diagnosis, error) {
			return &skilledhelpers.Diagnosis{
				Category:        skilledhelpers.Electrician,
				SafetyTip:       "Switch off the breaker.",
				Reasoning:       "Sparks point to faulty wiring.",
				SuggestedAction: "Stop using the socket.",
			}, nil
		},
	}
}

func TestDiagnoseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the diagnosis", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Helper: helper.NewSession(electricianDiagnoser(), nil),
		}

		err := (&main.DiagnoseCmd{Problem: "socket sparks"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Recommended professional: Electrician")
		assert.Contains(t, output, "Safety First: Switch off the breaker.")
		assert.Contains(t, output, "Immediate Action: Stop using the socket.")
		assert.Contains(t, output, "Sparks point to faulty wiring.")
	})

	t.Run("applies the category as a worker filter", func(t *testing.T) {
		t.Parallel()

		var got skilledhelpers.WorkerFilter
		workers := &mock.WorkerService{
			FindWorkersFn: func(_ context.Context, f skilledhelpers.WorkerFilter) ([]*skilledhelpers.Worker, error) {
				got = f
				return skilledhelpers.FilterWorkers(skilledhelpers.SeedWorkers(), f), nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Workers: workers,
			Helper:  helper.NewSession(electricianDiagnoser(), nil),
		}

		err := (&main.DiagnoseCmd{Problem: "socket sparks", Apply: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, skilledhelpers.Only(skilledhelpers.Electrician), got.Category)
		assert.Empty(t, got.Query)
		assert.Contains(t, stdout.String(), "Electricians")
	})

	t.Run("prints no result when the service fails", func(t *testing.T) {
		t.Parallel()

		d := &mock.Diagnoser{
			DiagnoseFn: func(_ context.Context, _ string) (*skilledhelpers.Diagnosis, error) {
				return nil, skilledhelpers.Errorf(skilledhelpers.EUNAVAILABLE, "unreachable")
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Helper: helper.NewSession(d, nil),
		}

		err := (&main.DiagnoseCmd{Problem: "leaking kitchen sink", Apply: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No diagnosis available")
	})
}

func TestResetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		called := false
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Resetter: resetterFunc(func(context.Context) error { called = true; return nil }),
		}

		err := (&main.ResetCmd{}).Run(deps)

		assert.Equal(t, skilledhelpers.EINVALID, skilledhelpers.ErrorCode(err))
		assert.False(t, called)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("resets with --force", func(t *testing.T) {
		t.Parallel()

		called := false
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Resetter: resetterFunc(func(context.Context) error { called = true; return nil }),
		}

		err := (&main.ResetCmd{Force: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, called)
		assert.Contains(t, stdout.String(), "Storage reset")
	})
}

type resetterFunc func(ctx context.Context) error

func (f resetterFunc) Reset(ctx context.Context) error { return f(ctx) }
