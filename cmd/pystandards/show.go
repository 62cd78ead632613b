package main

import (
	"github.com/fwojciec/pystandards"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	category, err := pystandards.ParseCategory(c.Category)
	if err != nil {
		return deps.report(err)
	}

	std, err := deps.Standards.FindStandard(deps.Ctx, category)
	if err != nil {
		return deps.report(err)
	}

	deps.printMarkdown(pystandards.FormatStandard(std))
	return nil
}
