package mock

import (
	"context"

	"github.com/fwojciec/skilledhelpers"
)

var _ skilledhelpers.WorkerService = (*WorkerService)(nil)

// WorkerService is a mock implementation of skilledhelpers.WorkerService.
type WorkerService struct {
	CreateWorkerFn func(ctx context.Context, worker *skilledhelpers.Worker) error
	FindWorkersFn  func(ctx context.Context, filter skilledhelpers.WorkerFilter) ([]*skilledhelpers.Worker, error)
}

func (s *WorkerService) CreateWorker(ctx context.Context, worker *skilledhelpers.Worker) error {
	return s.CreateWorkerFn(ctx, worker)
}

func (s *WorkerService) FindWorkers(ctx context.Context, filter skilledhelpers.WorkerFilter) ([]*skilledhelpers.Worker, error) {
	return s.FindWorkersFn(ctx, filter)
}
