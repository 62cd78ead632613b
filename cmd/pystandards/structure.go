package main

import (
	"github.com/fwojciec/pystandards/assistant"
)

// Run executes the structure command.
func (c *StructureCmd) Run(deps *Dependencies) error {
	tree, err := deps.assistant().ProjectStructure(deps.Ctx)
	if err != nil {
		return deps.report(err)
	}
	deps.printText(tree)
	return nil
}

// Run executes the pyproject command.
func (c *PyprojectCmd) Run(deps *Dependencies) error {
	deps.printText(assistant.PyprojectTOML())
	return nil
}
