package main

import (
	"fmt"

	"github.com/fwojciec/skilledhelpers"
)

// Run executes the products command.
func (c *ProductsCmd) Run(deps *Dependencies) error {
	products, err := deps.Products.FindProducts(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Tools & Equipment")
	if len(products) == 0 {
		fmt.Fprintln(deps.Stdout, "Shelf is empty. Use 'skilledhelpers add-product' to list one.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %.1f\n", p.ID, p.Name, p.Category, formatAmount(p.Price), p.Rating)
	}
	return nil
}
