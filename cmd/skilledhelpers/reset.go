package main

import (
	"fmt"

	"github.com/fwojciec/skilledhelpers"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintln(deps.Stderr, "This discards every added worker and product. Use --force to confirm.")
		return skilledhelpers.Errorf(skilledhelpers.EINVALID, "reset requires --force")
	}

	if err := deps.Resetter.Reset(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Storage reset to the seed listings.")
	return nil
}
