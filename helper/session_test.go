package helper_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/helper"
	"github.com/fwojciec/skilledhelpers/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plumberDiagnosis() *skilledhelpers.Diagnosis {
	return &skilledhelpers.Diagnosis{
		Category:        skilledhelpers.Plumber,
		SafetyTip:       "Shut off the water.",
		Reasoning:       "Leaks are plumbing.",
		SuggestedAction: "Call a plumber.",
	}
}

func TestSession_Submit(t *testing.T) {
	t.Parallel()

	t.Run("records the diagnosis and selects its category", func(t *testing.T) {
		t.Parallel()

		d := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				assert.Equal(t, "leaking kitchen sink", problem)
				return plumberDiagnosis(), nil
			},
		}
		s := helper.NewSession(d, nil)

		got, err := s.Submit(context.Background(), "leaking kitchen sink")

		require.NoError(t, err)
		assert.Equal(t, skilledhelpers.Plumber, got.Category)
		assert.Equal(t, helper.StateResult, s.State())
		assert.Equal(t, got, s.Result())
		filter, ok := s.Apply()
		assert.True(t, ok)
		assert.Equal(t, skilledhelpers.Only(skilledhelpers.Plumber), filter)
	})

	t.Run("ignores a blank problem", func(t *testing.T) {
		t.Parallel()

		d := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				t.Fatal("diagnoser must not be called")
				return nil, nil
			},
		}
		s := helper.NewSession(d, nil)

		got, err := s.Submit(context.Background(), "  \t ")

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, helper.StateIdle, s.State())
	})

	t.Run("collapses diagnoser errors to no result and logs them", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		d := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				return nil, skilledhelpers.Errorf(skilledhelpers.EUNAVAILABLE, "gemini: connection refused")
			},
		}
		s := helper.NewSession(d, logger)

		got, err := s.Submit(context.Background(), "leaking kitchen sink")

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, helper.StateNoResult, s.State())
		filter, ok := s.Apply()
		assert.False(t, ok)
		assert.True(t, filter.IsAll())
		assert.Contains(t, buf.String(), "diagnosis failed")
		assert.Contains(t, buf.String(), "code=unavailable")
	})

	t.Run("rejects a second submit while one is outstanding", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		release := make(chan struct{})
		d := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				close(started)
				<-release
				return plumberDiagnosis(), nil
			},
		}
		s := helper.NewSession(d, nil)

		done := make(chan error, 1)
		go func() {
			_, err := s.Submit(context.Background(), "leaking kitchen sink")
			done <- err
		}()
		<-started

		assert.Equal(t, helper.StateLoading, s.State())
		_, err := s.Submit(context.Background(), "broken fence")
		assert.Equal(t, skilledhelpers.ECONFLICT, skilledhelpers.ErrorCode(err))

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, helper.StateResult, s.State())
	})

	t.Run("drops an answer that arrives after close", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		release := make(chan struct{})
		d := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				close(started)
				<-release
				return plumberDiagnosis(), nil
			},
		}
		s := helper.NewSession(d, nil)

		type outcome struct {
			d   *skilledhelpers.Diagnosis
			err error
		}
		done := make(chan outcome, 1)
		go func() {
			got, err := s.Submit(context.Background(), "leaking kitchen sink")
			done <- outcome{got, err}
		}()
		<-started

		s.Close()
		close(release)
		out := <-done

		require.NoError(t, out.err)
		assert.Nil(t, out.d)
		assert.Nil(t, s.Result())
		assert.Equal(t, helper.StateIdle, s.State())
	})

	t.Run("drops an answer that arrives after reset", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		release := make(chan struct{})
		d := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				close(started)
				<-release
				return plumberDiagnosis(), nil
			},
		}
		s := helper.NewSession(d, nil)

		done := make(chan *skilledhelpers.Diagnosis, 1)
		go func() {
			got, _ := s.Submit(context.Background(), "leaking kitchen sink")
			done <- got
		}()
		<-started

		s.Reset()
		close(release)

		assert.Nil(t, <-done)
		assert.Nil(t, s.Result())
		_, ok := s.Apply()
		assert.False(t, ok)
	})

	t.Run("rejects submits after close", func(t *testing.T) {
		t.Parallel()

		d := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				return plumberDiagnosis(), nil
			},
		}
		s := helper.NewSession(d, nil)
		s.Close()

		_, err := s.Submit(context.Background(), "leaking kitchen sink")

		assert.Equal(t, skilledhelpers.EINVALID, skilledhelpers.ErrorCode(err))
	})
}

func TestSession_Reset(t *testing.T) {
	t.Parallel()

	d := &mock.Diagnoser{
		DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
			return plumberDiagnosis(), nil
		},
	}
	s := helper.NewSession(d, nil)
	_, err := s.Submit(context.Background(), "leaking kitchen sink")
	require.NoError(t, err)

	s.Reset()

	assert.Equal(t, helper.StateIdle, s.State())
	assert.Nil(t, s.Result())

	got, err := s.Submit(context.Background(), "leaking kitchen sink")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
