package main

import "fmt"

// Run executes the labels command.
func (c *LabelsCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Service.RecordLabels())
	return nil
}
