package main

import (
	"fmt"

	"github.com/mpickford/folkweb"
)

// Run executes the ballads command.
func (c *BalladsCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.ChildBallads(deps.Ctx, c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", folkweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
