package mock

import (
	"context"

	"github.com/fwojciec/skilledhelpers"
)

var _ skilledhelpers.Diagnoser = (*Diagnoser)(nil)

// Diagnoser is a mock implementation of skilledhelpers.Diagnoser.
type Diagnoser struct {
	DiagnoseFn func(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error)
}

func (d *Diagnoser) Diagnose(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
	return d.DiagnoseFn(ctx, problem)
}
