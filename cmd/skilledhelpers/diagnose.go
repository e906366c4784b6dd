package main

import (
	"fmt"

	"github.com/fwojciec/skilledhelpers"
)

// Run executes the diagnose command. Service failures print "no result"
// rather than an error.
func (c *DiagnoseCmd) Run(deps *Dependencies) error {
	d, err := deps.Helper.Submit(deps.Ctx, c.Problem)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}
	if d == nil {
		fmt.Fprintln(deps.Stdout, "No diagnosis available. Describe the problem differently or browse all professionals with 'skilledhelpers workers'.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Recommended professional: %s\n", d.Category)
	fmt.Fprintf(deps.Stdout, "  %s\n", d.Reasoning)
	fmt.Fprintf(deps.Stdout, "Safety First: %s\n", d.SafetyTip)
	fmt.Fprintf(deps.Stdout, "Immediate Action: %s\n", d.SuggestedAction)

	if !c.Apply {
		fmt.Fprintf(deps.Stdout, "\nRun 'skilledhelpers workers --category %q' to view %s.\n", string(d.Category), d.Category.Label())
		return nil
	}

	filter, ok := deps.Helper.Apply()
	if !ok {
		return nil
	}
	fmt.Fprintln(deps.Stdout)
	return listWorkers(deps, skilledhelpers.WorkerFilter{Category: filter})
}
