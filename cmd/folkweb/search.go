package main

import (
	"fmt"

	"github.com/mpickford/folkweb"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", folkweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
