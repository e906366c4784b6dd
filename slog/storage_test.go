package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/mock"
	shslog "github.com/fwojciec/skilledhelpers/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingStorage_Get(t *testing.T) {
	t.Parallel()

	t.Run("logs key, size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Storage{
			GetFn: func(ctx context.Context, key string) ([]byte, error) {
				return []byte("[1,2]"), nil
			},
		}
		s := shslog.NewLoggingStorage(inner, debugLogger(&buf))

		got, err := s.Get(context.Background(), skilledhelpers.WorkersKey)

		require.NoError(t, err)
		assert.Equal(t, []byte("[1,2]"), got)
		output := buf.String()
		assert.Contains(t, output, "storage get")
		assert.Contains(t, output, "key="+skilledhelpers.WorkersKey)
		assert.Contains(t, output, "bytes=5")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs and returns errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Storage{
			GetFn: func(ctx context.Context, key string) ([]byte, error) {
				return nil, skilledhelpers.Errorf(skilledhelpers.ENOTFOUND, "key %q not found", key)
			},
		}
		s := shslog.NewLoggingStorage(inner, debugLogger(&buf))

		_, err := s.Get(context.Background(), "k")

		assert.Equal(t, skilledhelpers.ENOTFOUND, skilledhelpers.ErrorCode(err))
		assert.Contains(t, buf.String(), "err=")
		assert.Contains(t, buf.String(), "not_found")
	})
}

func TestLoggingStorage_Set(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var stored []byte
	inner := &mock.Storage{
		SetFn: func(ctx context.Context, key string, value []byte) error {
			stored = value
			return nil
		},
	}
	s := shslog.NewLoggingStorage(inner, debugLogger(&buf))

	err := s.Set(context.Background(), skilledhelpers.ProductsKey, []byte("[]"))

	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), stored)
	assert.Contains(t, buf.String(), "storage set")
	assert.Contains(t, buf.String(), "bytes=2")
}

func TestLoggingStorage_Delete(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Storage{
		DeleteFn: func(ctx context.Context, key string) error {
			return errors.New("disk full")
		},
	}
	s := shslog.NewLoggingStorage(inner, debugLogger(&buf))

	err := s.Delete(context.Background(), "k")

	require.EqualError(t, err, "disk full")
	assert.Contains(t, buf.String(), "storage delete")
	assert.Contains(t, buf.String(), `err="disk full"`)
}

func TestLoggingStorage_DebugOnlyReadsAreQuietAtInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Storage{
		GetFn: func(ctx context.Context, key string) ([]byte, error) {
			return []byte("x"), nil
		},
	}
	s := shslog.NewLoggingStorage(inner, logger)

	_, err := s.Get(context.Background(), "k")

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
