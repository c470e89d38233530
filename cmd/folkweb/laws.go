package main

import (
	"fmt"

	"github.com/mpickford/folkweb"
)

// Run executes the laws command.
func (c *LawsCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.LawsIndex(deps.Ctx, c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", folkweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
