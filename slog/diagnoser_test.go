package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/mock"
	shslog "github.com/fwojciec/skilledhelpers/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDiagnoser_Diagnose(t *testing.T) {
	t.Parallel()

	t.Run("logs the category without the problem text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				return &skilledhelpers.Diagnosis{
					Category:        skilledhelpers.Plumber,
					SafetyTip:       "tip",
					Reasoning:       "why",
					SuggestedAction: "do",
				}, nil
			},
		}
		d := shslog.NewLoggingDiagnoser(inner, logger)

		got, err := d.Diagnose(context.Background(), "leaking kitchen sink")

		require.NoError(t, err)
		assert.Equal(t, skilledhelpers.Plumber, got.Category)
		output := buf.String()
		assert.Contains(t, output, "diagnose")
		assert.Contains(t, output, "category=Plumber")
		assert.Contains(t, output, "problem_len=20")
		assert.NotContains(t, output, "kitchen")
	})

	t.Run("logs failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Diagnoser{
			DiagnoseFn: func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
				return nil, skilledhelpers.Errorf(skilledhelpers.EUNAUTHORIZED, "API key is missing")
			},
		}
		d := shslog.NewLoggingDiagnoser(inner, logger)

		got, err := d.Diagnose(context.Background(), "leaking kitchen sink")

		assert.Nil(t, got)
		assert.Equal(t, skilledhelpers.EUNAUTHORIZED, skilledhelpers.ErrorCode(err))
		assert.Contains(t, buf.String(), "unauthorized")
	})
}
