package main

import (
	"fmt"

	"github.com/fwojciec/skilledhelpers"
)

// Run executes the add-worker command.
func (c *AddWorkerCmd) Run(deps *Dependencies) error {
	worker, err := skilledhelpers.WorkerForm{
		Name:        c.Name,
		Phone:       c.Phone,
		Location:    c.Location,
		Category:    c.Category,
		Rate:        c.Rate,
		Description: c.Description,
	}.Build()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}

	if err := deps.Workers.CreateWorker(deps.Ctx, worker); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %s (%s) at %s/hr\n", worker.Name, worker.ID, formatAmount(worker.HourlyRate))
	return nil
}

// Run executes the add-product command.
func (c *AddProductCmd) Run(deps *Dependencies) error {
	product, err := skilledhelpers.ProductForm{
		Name:     c.Name,
		Price:    c.Price,
		Category: c.Category,
	}.Build()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}

	if err := deps.Products.CreateProduct(deps.Ctx, product); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %s (%s) at %s\n", product.Name, product.ID, formatAmount(product.Price))
	return nil
}
