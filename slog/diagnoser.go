package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skilledhelpers"
)

// Ensure LoggingDiagnoser implements skilledhelpers.Diagnoser.
var _ skilledhelpers.Diagnoser = (*LoggingDiagnoser)(nil)

// LoggingDiagnoser wraps a Diagnoser with logging.
type LoggingDiagnoser struct {
	next   skilledhelpers.Diagnoser
	logger *slog.Logger
}

// NewLoggingDiagnoser creates a new LoggingDiagnoser.
func NewLoggingDiagnoser(next skilledhelpers.Diagnoser, logger *slog.Logger) *LoggingDiagnoser {
	return &LoggingDiagnoser{next: next, logger: logger}
}

// Diagnose delegates to the wrapped diagnoser and logs the outcome.
// The problem text itself is not logged.
func (d *LoggingDiagnoser) Diagnose(ctx context.Context, problem string) (result *skilledhelpers.Diagnosis, err error) {
	defer func(begin time.Time) {
		var category skilledhelpers.Category
		if result != nil {
			category = result.Category
		}
		d.logger.Info("diagnose",
			"problem_len", len(problem),
			"category", string(category),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Diagnose(ctx, problem)
}
