package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/skilledhelpers"
	main "github.com/fwojciec/skilledhelpers/cmd/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWorkerCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates a worker with the default rate for a non-numeric rate", func(t *testing.T) {
		t.Parallel()

		var created *skilledhelpers.Worker
		workers := &mock.WorkerService{
			CreateWorkerFn: func(_ context.Context, w *skilledhelpers.Worker) error {
				w.ID = "new-id"
				created = w
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Workers: workers}

		err := (&main.AddWorkerCmd{
			Name: "Asha", Phone: "555-0110", Location: "Nizamabad",
			Category: "gardeners", Rate: "abc",
		}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, skilledhelpers.Gardener, created.Category)
		assert.Equal(t, float64(skilledhelpers.DefaultHourlyRate), created.HourlyRate)
		assert.Equal(t, []string{string(skilledhelpers.Gardener)}, created.Services)
		assert.Contains(t, stdout.String(), "Added Asha (new-id)")
	})

	t.Run("rejects the wildcard category", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.AddWorkerCmd{Name: "Asha", Phone: "1", Location: "X", Category: "All"}).Run(deps)

		assert.Equal(t, skilledhelpers.EINVALID, skilledhelpers.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		err := (&main.AddWorkerCmd{Name: "  ", Phone: "1", Location: "X", Category: "Plumber"}).Run(deps)

		assert.Equal(t, skilledhelpers.EINVALID, skilledhelpers.ErrorCode(err))
	})
}

func TestAddProductCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates a product with defaults", func(t *testing.T) {
		t.Parallel()

		var created *skilledhelpers.Product
		products := &mock.ProductService{
			CreateProductFn: func(_ context.Context, p *skilledhelpers.Product) error {
				p.ID = "p-new"
				created = p
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Products: products}

		err := (&main.AddProductCmd{Name: "Ladder", Price: "cheap"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Zero(t, created.Price)
		assert.Equal(t, skilledhelpers.DefaultProductCategory, created.Category)
		assert.Equal(t, skilledhelpers.DefaultProductImage, created.Image)
		assert.Contains(t, stdout.String(), "Added Ladder (p-new)")
	})

	t.Run("reports storage failures", func(t *testing.T) {
		t.Parallel()

		products := &mock.ProductService{
			CreateProductFn: func(_ context.Context, _ *skilledhelpers.Product) error {
				return skilledhelpers.Errorf(skilledhelpers.EUNAVAILABLE, "storage is read-only")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Products: products}

		err := (&main.AddProductCmd{Name: "Ladder", Price: "10", Category: "Tools"}).Run(deps)

		assert.Equal(t, skilledhelpers.EUNAVAILABLE, skilledhelpers.ErrorCode(err))
		assert.Contains(t, stderr.String(), "storage is read-only")
	})
}
