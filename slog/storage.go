// Package slog provides logging decorators for skilledhelpers services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skilledhelpers"
)

// Ensure LoggingStorage implements skilledhelpers.Storage.
var _ skilledhelpers.Storage = (*LoggingStorage)(nil)

// LoggingStorage wraps a Storage with debug logging.
type LoggingStorage struct {
	next   skilledhelpers.Storage
	logger *slog.Logger
}

// NewLoggingStorage creates a new LoggingStorage.
func NewLoggingStorage(next skilledhelpers.Storage, logger *slog.Logger) *LoggingStorage {
	return &LoggingStorage{next: next, logger: logger}
}

// Get delegates to the wrapped storage and logs the read.
func (s *LoggingStorage) Get(ctx context.Context, key string) (value []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("storage get",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Get(ctx, key)
}

// Set delegates to the wrapped storage and logs the write.
func (s *LoggingStorage) Set(ctx context.Context, key string, value []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("storage set",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Set(ctx, key, value)
}

// Delete delegates to the wrapped storage and logs the removal.
func (s *LoggingStorage) Delete(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("storage delete",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Delete(ctx, key)
}
