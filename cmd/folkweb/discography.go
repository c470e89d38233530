package main

import (
	"fmt"

	"github.com/mpickford/folkweb"
)

// Run executes the discography command.
func (c *DiscographyCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.ArtistDiscography(deps.Ctx, c.Artist)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", folkweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
