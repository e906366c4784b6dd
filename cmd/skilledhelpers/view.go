package main

import (
	"fmt"

	"github.com/fwojciec/skilledhelpers"
)

// Run executes the view command. Unknown screen names show home.
func (c *ViewCmd) Run(deps *Dependencies) error {
	switch skilledhelpers.ParseView(c.Name) {
	case skilledhelpers.ViewProducts:
		return (&ProductsCmd{}).Run(deps)
	case skilledhelpers.ViewOthers:
		fmt.Fprintln(deps.Stdout, "Other Resources")
		fmt.Fprintln(deps.Stdout, "  Add Listing: register a professional ('skilledhelpers add-worker') or list a product ('skilledhelpers add-product').")
		fmt.Fprintln(deps.Stdout, "  Join the Community: connect with other helpers and homeowners.")
		return nil
	case skilledhelpers.ViewAbout:
		fmt.Fprintln(deps.Stdout, skilledhelpers.AppName)
		fmt.Fprintf(deps.Stdout, "%q\n", skilledhelpers.Tagline)
		fmt.Fprintln(deps.Stdout, "Connecting households with skilled workers at fair prices.")
		return nil
	default:
		return listWorkers(deps, skilledhelpers.WorkerFilter{Category: skilledhelpers.AllCategories})
	}
}
