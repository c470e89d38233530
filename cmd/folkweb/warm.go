package main

import (
	"fmt"

	"github.com/mpickford/folkweb"
)

// Run executes the warm command.
func (c *WarmCmd) Run(deps *Dependencies) error {
	if err := deps.Warmer.Warm(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", folkweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Index documents cached.")
	return nil
}
