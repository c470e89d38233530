package main

// Run executes the serve command, blocking until the client disconnects.
func (c *ServeCmd) Run(deps *Dependencies) error {
	return deps.MCP.ServeStdio()
}
