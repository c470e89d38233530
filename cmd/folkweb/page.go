package main

import (
	"fmt"

	"github.com/mpickford/folkweb"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.Page(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", folkweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
