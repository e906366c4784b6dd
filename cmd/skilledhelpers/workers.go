package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/skilledhelpers"
)

// Run executes the workers command.
func (c *WorkersCmd) Run(deps *Dependencies) error {
	category, err := skilledhelpers.ParseCategoryFilter(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}
	return listWorkers(deps, skilledhelpers.WorkerFilter{Category: category, Query: c.Search})
}

// listWorkers prints the workers passing filter under a heading.
func listWorkers(deps *Dependencies, filter skilledhelpers.WorkerFilter) error {
	workers, err := deps.Workers.FindWorkers(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}

	heading := "Recommended Professionals"
	if !filter.Category.IsAll() {
		heading = filter.Category.Label()
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		heading += fmt.Sprintf(" (Searching: %q)", q)
	}
	fmt.Fprintln(deps.Stdout, heading)

	if len(workers) == 0 {
		fmt.Fprintln(deps.Stdout, "No professionals found. Try adjusting your search or category, or use 'skilledhelpers add-worker'.")
		return nil
	}

	for _, w := range workers {
		printWorker(deps.Stdout, w)
	}
	return nil
}

func printWorker(w io.Writer, worker *skilledhelpers.Worker) {
	verified := ""
	if worker.IsVerified {
		verified = "  [verified]"
	}
	fmt.Fprintf(w, "%s  %s  %s  %.1f (%d reviews)  %s/hr  %s  %s%s\n",
		worker.ID,
		worker.Name,
		worker.Category,
		worker.Rating,
		worker.Reviews,
		formatAmount(worker.HourlyRate),
		worker.Location,
		worker.Phone,
		verified,
	)
	if worker.Description != "" {
		fmt.Fprintf(w, "    %s\n", worker.Description)
	}
}

// formatAmount prints whole amounts without decimals.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("₹%d", int64(v))
	}
	return fmt.Sprintf("₹%.2f", v)
}
