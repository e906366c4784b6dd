package main

import (
	"fmt"

	"github.com/fwojciec/skilledhelpers"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, skilledhelpers.AllCategories)
	for _, cat := range skilledhelpers.Categories() {
		fmt.Fprintf(deps.Stdout, "%s  (%s)\n", cat, cat.Label())
	}
	return nil
}
